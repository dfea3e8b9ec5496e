// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

// An RSEncoder implements Reed-Solomon encoding
// over a given field using a given number of error correction bytes.
type RSEncoder struct {
	f   *Field
	c   int
	gen []byte // generator polynomial, highest degree first
	p   []byte // scratch space for long division
}

// gen returns the generator polynomial of degree e, the product of
// (x - α**i) for i in [0, e), highest degree coefficient first.
func (f *Field) gen(e int) []byte {
	p := make([]byte, 1, e+1)
	p[0] = 1
	for i := 0; i < e; i++ {
		// p *= x + α**i.  Subtraction is addition in GF(2**n).
		a := f.exp[i]
		p = append(p, 0)
		for j := len(p) - 1; j > 0; j-- {
			p[j] ^= f.Mul(p[j-1], a)
		}
	}
	return p
}

// NewRSEncoder returns a new Reed-Solomon encoder
// over the given field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c < 1 || c > 254 {
		panic("gf256: invalid number of check bytes")
	}
	return &RSEncoder{f: f, c: c, gen: f.gen(c)}
}

// Gen returns a copy of the generator polynomial, highest degree
// coefficient first.  The leading coefficient is always 1.
func (rs *RSEncoder) Gen() []byte {
	return append([]byte(nil), rs.gen...)
}

// ECC writes to check the error correcting code bytes
// for data using the given Reed-Solomon parameters.
// The check bytes are the remainder of data·x**c divided by the
// generator polynomial.
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	// The check bytes are the remainder after dividing
	// data padded with c zeros by the generator polynomial.
	n := len(data) + rs.c
	if cap(rs.p) < n {
		rs.p = make([]byte, n)
	}
	p := rs.p[:n]
	copy(p, data)
	clear(p[len(data):])

	f, gen := rs.f, rs.gen[1:]
	for i := range data {
		k := p[i]
		if k == 0 {
			continue
		}
		q := p[i+1 : i+1+rs.c]
		for j, g := range gen {
			q[j] ^= f.Mul(g, k)
		}
	}
	copy(check, p[len(data):])
}
