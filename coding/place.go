// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Place writes codewords to the Unset modules of m in zigzag scan
// order, most significant bit first: two columns at a time from the
// right, alternately upwards and downwards, skipping the vertical
// timing strip.  Modules left over after the last bit are Light.
// Place panics if the codewords do not fit.
func (m *Matrix) Place(codewords []byte) {
	s := NewBitStream(codewords)
	siz := m.Size
	up := true
	for x := siz - 1; x >= 1; x -= 2 {
		if x == 6 { // vertical timing strip
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if m.At(y, xx) == Unset {
					m.set(y, xx, s.Next() != 0)
				}
			}
		}
		up = !up
	}
	if s.Len() != 0 {
		panic("qr: too many codewords")
	}
}
