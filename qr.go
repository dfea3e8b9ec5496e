// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrpng encodes byte strings as QR codes and renders them as
images.

Data is encoded in a single byte mode segment at error correction
level M, in the smallest of QR versions 1 to 20 that holds it, up to
666 bytes.  Rendering is to PNG, BMP, PBM, data URIs and text.

	png, err := qrpng.Generate([]byte("otpauth://totp/..."), 4, 4)
*/
package qrpng // import "github.com/unixdj/qrpng"

import (
	"errors"
	"image"
	"image/color"

	"github.com/unixdj/qrpng/coding"
)

var (
	ErrArgs       = errors.New("qr: invalid arguments")
	ErrLargeImage = errors.New("qr: image too large")
	ErrFormat     = errors.New("qr: unknown image format")
)

const (
	DefaultScale  = 4 // image pixels per module
	DefaultBorder = 4 // quiet zone width in modules

	maxPixels = 32767 * 8 // maximum image side
)

// A Code is a square pixel grid.
// It implements image.Image and direct PNG encoding.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version   coding.Version // QR version
	Mask      coding.Mask    // data mask
	Penalties []int          // penalty per mask

	Scale   int  // number of image pixels per QR pixel
	Border  int  // quiet zone width in QR pixels
	Reverse bool // white on black
}

// Encode returns a QR code for data, choosing the mask by runs and
// boxes.
func Encode(data []byte) (*Code, error) {
	return EncodeScoring(data, coding.RunsAndBoxes)
}

// EncodeScoring returns a QR code for data, choosing the mask by the
// penalty rules s.
func EncodeScoring(data []byte, s coding.Scoring) (*Code, error) {
	cc, err := coding.Encode(data, s)
	if err != nil {
		return nil, err
	}
	return &Code{
		Bitmap:    cc.Bitmap,
		Size:      cc.Size,
		Stride:    cc.Stride,
		Version:   cc.Version,
		Mask:      cc.Mask,
		Penalties: cc.Penalties,
		Scale:     DefaultScale,
		Border:    DefaultBorder,
	}, nil
}

// Generate returns a PNG image of the QR code for data, with scale
// image pixels per module and a quiet zone of border modules.
func Generate(data []byte, scale, border int) ([]byte, error) {
	c, err := Encode(data)
	if err != nil {
		return nil, err
	}
	c.Scale, c.Border = scale, border
	return c.PNG()
}

func (c *Code) isValid() bool {
	return c.Scale > 0 && c.Border >= 0 && c.Size > 0 &&
		c.Stride == (c.Size+7)>>3 && len(c.Bitmap) == c.Stride*c.Size
}

// pixels returns the image side in pixels.
func (c *Code) pixels() int {
	return c.Scale * (c.Size + c.Border*2)
}

// tooLarge reports whether the image side would exceed maxPixels.
// c must be valid.  Huge Scale and Border values do not overflow.
func (c *Code) tooLarge() bool {
	n := maxPixels/c.Scale - c.Size
	return n < 0 || c.Border > n/2
}

// Black reports whether the pixel at (x,y) is black.
// Pixels outside the symbol are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}

// Image returns an Image displaying the code, quiet zone included.
// A Scale below 1 is taken as 1 and a negative Border as 0.
func (c *Code) Image() image.Image {
	if c.Scale < 1 || c.Border < 0 {
		cc := *c
		cc.Scale, cc.Border = max(cc.Scale, 1), max(cc.Border, 0)
		c = &cc
	}
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := c.pixels()
	return image.Rect(0, 0, d, d)
}

// dark reports whether the image pixel at (x,y) is dark.
func (c *codeImage) dark(x, y int) bool {
	s := c.Scale
	return c.Black(x/s-c.Border, y/s-c.Border) != c.Reverse
}

func (c *codeImage) At(x, y int) color.Color {
	if c.dark(x, y) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
