// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrpng

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

// EncodeBMP writes an 8-bit paletted BMP image displaying the code to
// w.
func (c *Code) EncodeBMP(w io.Writer) error {
	if !c.isValid() || w == nil {
		return ErrArgs
	}
	if c.tooLarge() {
		return ErrLargeImage
	}
	return bmp.Encode(w, c.paletted())
}

// paletted returns the image with black at index 0 and white at 1.
func (c *Code) paletted() *image.Paletted {
	ci := codeImage{c}
	r := ci.Bounds()
	m := image.NewPaletted(r, color.Palette{blackColor, whiteColor})
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Pix[y*m.Stride:]
		for x := r.Min.X; x < r.Max.X; x++ {
			if !ci.dark(x, y) {
				row[x] = 1
			}
		}
	}
	return m
}
