// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrpng

import (
	"io"
	"strings"
)

// String returns the code, quiet zone included, as lines of UTF-8
// half block characters, two rows of modules per line.  It is meant
// for dark text on a light terminal background; c.Reverse inverts it.
// c.Scale is ignored.
func (c *Code) String() string {
	var b strings.Builder
	bord := c.Border
	ink := func(x, y int) bool { return c.Black(x, y) != c.Reverse }
	// ink per pair of modules, top one in bit 1
	blocks := [4]string{" ", "▄", "▀", "█"}
	b.Grow((c.Size + 2*bord) * (c.Size + 2*bord + 1) * 3 / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			n := 0
			if ink(x, y) {
				n = 2
			}
			if y+1 < c.Size+bord && ink(x, y+1) {
				n++
			}
			b.WriteString(blocks[n])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ASCII returns the code, quiet zone included, drawn with two "#"
// characters per black module.  c.Reverse draws white modules
// instead.  c.Scale is ignored.
func (c *Code) ASCII() string {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	return string(b)
}

// WriteText writes c.String() to w, or c.ASCII() if ascii is set.
func (c *Code) WriteText(w io.Writer, ascii bool) error {
	s := c.String()
	if ascii {
		s = c.ASCII()
	}
	_, err := io.WriteString(w, s)
	return err
}
