// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Module is the state of a single cell of the symbol.
type Module byte

const (
	Unset Module = iota // not yet written
	Light
	Dark
)

func (m Module) String() string {
	switch m {
	case Unset:
		return "unset"
	case Light:
		return "light"
	case Dark:
		return "dark"
	}
	return "Module(" + strconv.Itoa(int(m)) + ")"
}

func module(dark bool) Module {
	if dark {
		return Dark
	}
	return Light
}

// A Matrix is the square grid of modules of a QR symbol under
// construction, indexed by row and column.
type Matrix struct {
	Version Version
	Size    int
	mod     []Module
}

// NewMatrix returns a matrix for version v with all function
// patterns drawn: finder patterns and their separators, timing
// patterns, alignment patterns, the dark module, version information
// and cells reserved for format information.  Remaining cells are
// Unset and receive data.
func NewMatrix(v Version) (*Matrix, error) {
	if !v.valid() {
		return nil, ErrVersion
	}
	siz := v.Size()
	m := &Matrix{Version: v, Size: siz, mod: make([]Module, siz*siz)}

	// Position boxes with separators.
	m.finder(0, 0)
	m.finder(0, siz-7)
	m.finder(siz-7, 0)
	for i := 0; i < 8; i++ {
		m.set(7, i, false)
		m.set(i, 7, false)
		m.set(7, siz-1-i, false)
		m.set(i, siz-8, false)
		m.set(siz-8, i, false)
		m.set(siz-1-i, 7, false)
	}

	// Timing markers, not overwriting boxes.
	for i := 0; i < siz; i++ {
		if m.At(6, i) == Unset {
			m.set(6, i, i%2 == 0)
		}
		if m.At(i, 6) == Unset {
			m.set(i, 6, i%2 == 0)
		}
	}

	// Alignment boxes.
	align := vtab[v].align
	for _, r := range align {
		for _, c := range align {
			if !overlapsFinder(r, c, siz) {
				m.alignBox(r, c)
			}
		}
	}

	// One lonely dark module.
	m.set(siz-8, 8, true)

	// Format information, written after masking.
	for i := 0; i < 9; i++ {
		if m.At(8, i) == Unset {
			m.set(8, i, false)
		}
		if m.At(i, 8) == Unset {
			m.set(i, 8, false)
		}
	}
	for i := 0; i < 8; i++ {
		m.set(8, siz-1-i, false)
		if m.At(siz-1-i, 8) == Unset {
			m.set(siz-1-i, 8, false)
		}
	}

	m.writeVersion()
	return m, nil
}

// overlapsFinder reports whether a 5x5 alignment box centred at
// row r, column c would overlap a finder pattern or its separator.
func overlapsFinder(r, c, siz int) bool {
	top, left := r-2 <= 7, c-2 <= 7
	bottom, right := r+2 >= siz-8, c+2 >= siz-8
	return top && left || top && right || bottom && left
}

// finder draws a 7x7 position box at upper left row r, column c.
func (m *Matrix) finder(r, c int) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			ring := y == 0 || y == 6 || x == 0 || x == 6
			core := 2 <= y && y <= 4 && 2 <= x && x <= 4
			m.set(r+y, c+x, ring || core)
		}
	}
}

// alignBox draws a 5x5 alignment box centred at row r, column c.
func (m *Matrix) alignBox(r, c int) {
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			ring := y == -2 || y == 2 || x == -2 || x == 2
			m.set(r+y, c+x, ring || x == 0 && y == 0)
		}
	}
}

// writeVersion draws the two 3x6 version information blocks for
// version 7 and above.  Bit i goes to row i/3, column siz-11+i%3 and
// its transposition.
func (m *Matrix) writeVersion() {
	vp := vtab[m.Version].pattern
	if vp == 0 {
		return
	}
	for i := 0; i < 18; i++ {
		dark := vp>>i&1 != 0
		a, b := m.Size-11+i%3, i/3
		m.set(b, a, dark)
		m.set(a, b, dark)
	}
}

// At returns the module at row r, column c.
func (m *Matrix) At(r, c int) Module {
	return m.mod[r*m.Size+c]
}

// Set sets the module at row r, column c.
func (m *Matrix) Set(r, c int, v Module) {
	m.mod[r*m.Size+c] = v
}

func (m *Matrix) set(r, c int, dark bool) {
	m.mod[r*m.Size+c] = module(dark)
}

// Clone returns a copy of m.
func (m *Matrix) Clone() *Matrix {
	c := *m
	c.mod = append([]Module(nil), m.mod...)
	return &c
}

// Count returns the number of modules in state v.
func (m *Matrix) Count(v Module) int {
	n := 0
	for _, x := range m.mod {
		if x == v {
			n++
		}
	}
	return n
}

// Code returns m as a bitmap.  Unset modules are light.
func (m *Matrix) Code() *Code {
	siz := m.Size
	stride := (siz + 7) >> 3
	c := &Code{
		Bitmap:  make([]byte, stride*siz),
		Size:    siz,
		Stride:  stride,
		Version: m.Version,
	}
	for y := 0; y < siz; y++ {
		row := c.Bitmap[y*stride:]
		for x, v := range m.mod[y*siz : (y+1)*siz] {
			if v == Dark {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// A Code is a square pixel grid.
type Code struct {
	Bitmap []byte // 1 is black, 0 is white
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Version   Version // QR version
	Mask      Mask    // mask applied to data
	Penalties []int   // penalty per mask, nil if the mask was fixed
}

// Black reports whether the pixel at column x, row y is black.
// Pixels outside the symbol are white.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(1<<uint(7&^x)) != 0
}
