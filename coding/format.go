// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "math/bits"

// WriteFormat writes both copies of the 15-bit format information
// for level M and mask k, least significant bit first: around the top
// left finder, then below the top right finder and to the right of
// the bottom left one.
func (m *Matrix) WriteFormat(k Mask) {
	fb := ftab[k]
	siz := m.Size
	for i := 0; i < 15; i++ {
		dark := fb>>i&1 != 0
		switch {
		case i < 6:
			m.set(i, 8, dark)
		case i < 8: // skip horizontal timing strip
			m.set(i+1, 8, dark)
		case i == 8:
			m.set(8, 7, dark)
		default: // skip vertical timing strip
			m.set(8, 14-i, dark)
		}
		if i < 8 {
			m.set(8, siz-1-i, dark)
		} else {
			m.set(siz-15+i, 8, dark)
		}
	}
}

// ReadFormat returns both copies of the format information in m.
func (m *Matrix) ReadFormat() (a, b uint16) {
	siz := m.Size
	bit := func(r, c, i int) uint16 {
		if m.At(r, c) == Dark {
			return 1 << i
		}
		return 0
	}
	for i := 0; i < 15; i++ {
		switch {
		case i < 6:
			a |= bit(i, 8, i)
		case i < 8:
			a |= bit(i+1, 8, i)
		case i == 8:
			a |= bit(8, 7, i)
		default:
			a |= bit(8, 14-i, i)
		}
		if i < 8 {
			b |= bit(8, siz-1-i, i)
		} else {
			b |= bit(siz-15+i, 8, i)
		}
	}
	return a, b
}

// DecodeFormat returns the level and mask encoded in the format word
// nearest to fb.  It fails if no word is within 3 bit errors.
func DecodeFormat(fb uint16) (Level, Mask, error) {
	for k, w := range ftab {
		if bits.OnesCount16(fb^w) <= 3 {
			return M, Mask(k), nil
		}
	}
	return 0, 0, ErrFormat
}

// ReadVersion returns both copies of the version information in m,
// or zeros below version 7.
func (m *Matrix) ReadVersion() (a, b uint32) {
	if m.Version < 7 {
		return 0, 0
	}
	for i := 0; i < 18; i++ {
		x, y := m.Size-11+i%3, i/3
		if m.At(y, x) == Dark {
			a |= 1 << i
		}
		if m.At(x, y) == Dark {
			b |= 1 << i
		}
	}
	return a, b
}
