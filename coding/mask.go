// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

// A Mask is a QR data mask pattern, 0 to 7.
//
// Mask patterns:
//
//	0: ▄▀▄▀▄▀▄▀▄▀▄▀  1: ▄▄▄▄▄▄▄▄▄▄▄▄  2:  ██ ██ ██ ██  3: ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▄█▀▄█▀▄█▀▄█▀
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     ▀▄█▀▄█▀▄█▀▄█
//	   ▄▀▄▀▄▀▄▀▄▀▄▀     ▄▄▄▄▄▄▄▄▄▄▄▄      ██ ██ ██ ██     █▀▄█▀▄█▀▄█▀▄
//
//	4:    ███   ███  5:  ▄▄▄▄▄ ▄▄▄▄▄  6:    ▄▄▄   ▄▄▄  7: ▄█▄▀ ▀▄█▄▀ ▀
//	   ███   ███         █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	      ███   ███      ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
//	   ███   ███         ▄▄▄▄▄ ▄▄▄▄▄        ▄▄▄   ▄▄▄     ▄█▄▀ ▀▄█▄▀ ▀
//	      ███   ███      █▀▄▀█ █▀▄▀█      ▄▀▄ █ ▄▀▄ █     ▄▀█▀▄ ▄▀█▀▄
//	   ███   ███         ██▄██ ██▄██      █▄▄▀  █▄▄▀      ▄  ▀██▄  ▀██
type Mask int

const NumMasks = 8

func (k Mask) String() string { return strconv.Itoa(int(k)) }

func (k Mask) valid() bool { return 0 <= k && k < NumMasks }

// Invert reports whether mask k inverts the module at row r,
// column c.
func (k Mask) Invert(r, c int) bool {
	switch k {
	case 0:
		return (r+c)%2 == 0
	case 1:
		return r%2 == 0
	case 2:
		return c%3 == 0
	case 3:
		return (r+c)%3 == 0
	case 4:
		return (r/2+c/3)%2 == 0
	case 5:
		return r*c%2+r*c%3 == 0
	case 6:
		return (r*c%2+r*c%3)%2 == 0
	case 7:
		return ((r+c)%2+r*c%3)%2 == 0
	}
	panic("qr: invalid mask")
}

// ApplyMask inverts the modules of m selected by mask k, except those
// that are set in fn, the matrix of function patterns.
func (m *Matrix) ApplyMask(fn *Matrix, k Mask) {
	siz := m.Size
	for r := 0; r < siz; r++ {
		for c := 0; c < siz; c++ {
			if fn.At(r, c) != Unset || !k.Invert(r, c) {
				continue
			}
			i := r*siz + c
			switch m.mod[i] {
			case Light:
				m.mod[i] = Dark
			case Dark:
				m.mod[i] = Light
			}
		}
	}
}

// A Scoring selects the penalty rules used for choosing the mask.
type Scoring int

const (
	// RunsAndBoxes scores runs of same-colour modules and 2x2
	// boxes.
	RunsAndBoxes Scoring = iota
	// AllRules adds finder-like patterns and colour balance.
	AllRules
)

func (s Scoring) String() string {
	switch s {
	case RunsAndBoxes:
		return "runs"
	case AllRules:
		return "all"
	}
	return "Scoring(" + strconv.Itoa(int(s)) + ")"
}

// Penalty returns the penalty value for m.  Unset modules count as
// light.  Lower is better.
//
//   - RunP: for non-overlapping runs of n modules, n>=5 -> n-2
//   - BoxP: for possibly overlapping 2x2 boxes -> 3
//   - FindP: for possibly overlapping finder-like patterns -> 40
//     The pattern is 1011101 with 0000 on either side, within the
//     symbol.  AllRules only.
//   - BalP: for n% of dark modules -> 10*(ceiling(abs(n-50)/5)-1)
//     AllRules only.
//
// https://www.nayuki.io/page/creating-a-qr-code-step-by-step
func Penalty(m *Matrix, s Scoring) int {
	const (
		MinRun    = 5  // RunP:  minimum run length
		RunPDelta = -2 // RunP:  add to run length
		BoxPP     = 3  // BoxP:  points per box
		FindPP    = 40 // FindP: points per pattern
		BalPP     = 10 // BalP:  points per 5% step

		// finder-like patterns, 11 modules, oldest in the top bit
		FindB   = 0b0000_1011101 // light before
		FindA   = 0b1011101_0000 // light after
		FindLen = 11
		findM   = 1<<FindLen - 1
	)
	siz := m.Size
	dark := func(r, c int) bool { return m.mod[r*siz+c] == Dark }
	all := s == AllRules

	p := 0
	// line scans row or column i for RunP and FindP.
	line := func(i int, at func(i, j int) bool) {
		r := 1
		pat := 0
		prev := at(i, 0)
		if prev {
			pat = 1
		}
		for j := 1; j < siz; j++ {
			d := at(i, j)
			pat = (pat<<1 | b2i(d)) & findM
			if d == prev {
				r++
			} else {
				if r >= MinRun {
					p += r + RunPDelta
				}
				r, prev = 1, d
			}
			if all && j >= FindLen-1 && (pat == FindB || pat == FindA) {
				p += FindPP
			}
		}
		if r >= MinRun {
			p += r + RunPDelta
		}
	}
	for i := 0; i < siz; i++ {
		line(i, dark)
		line(i, func(i, j int) bool { return dark(j, i) })
	}

	for r := 0; r < siz-1; r++ {
		for c := 0; c < siz-1; c++ {
			d := dark(r, c)
			if d == dark(r, c+1) && d == dark(r+1, c) && d == dark(r+1, c+1) {
				p += BoxPP
			}
		}
	}

	if all {
		n := m.Count(Dark)
		total := siz * siz
		// Deviation from 50% in 5% steps, rounded up, less one.
		k := (abs(n*20-total*10)+total-1)/total - 1
		p += k * BalPP
	}
	return p
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SelectMask returns the mask giving the lowest penalty for m, the
// matrix with data placed, and the penalty for each mask.  fn is the
// matrix of function patterns before placement.  Each candidate is
// scored with its format information written.  Ties go to the lowest
// mask.  m is not modified.
func SelectMask(m, fn *Matrix, s Scoring) (Mask, []int) {
	best := Mask(0)
	pen := make([]int, NumMasks)
	c := m.Clone()
	for k := Mask(0); k < NumMasks; k++ {
		copy(c.mod, m.mod)
		c.ApplyMask(fn, k)
		c.WriteFormat(k)
		pen[k] = Penalty(c, s)
		if pen[k] < pen[best] {
			best = k
		}
	}
	return best, pen
}
