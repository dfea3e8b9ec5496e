// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var qrField = NewField(0x11d, 2)

func TestFieldTables(t *testing.T) {
	f := qrField
	assert.Equal(t, byte(1), f.Exp(0))
	assert.Equal(t, byte(2), f.Exp(1))
	assert.Equal(t, byte(0x1d), f.Exp(8), "α**8 reduces by 0x11d")
	assert.Equal(t, byte(1), f.Exp(255))
	assert.Equal(t, -1, f.Log(0))
	seen := make(map[byte]bool)
	for i := 0; i < 255; i++ {
		x := f.Exp(i)
		require.False(t, seen[x], "α**%d repeats", i)
		seen[x] = true
		assert.Equal(t, i, f.Log(x))
	}
	for i := 0; i < 512; i++ {
		assert.Equal(t, f.exp[i%255], f.exp[i], "exp[%d]", i)
	}
}

func TestMul(t *testing.T) {
	f := qrField
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			want := byte(mul(x, y, 0x11d))
			if got := f.Mul(byte(x), byte(y)); got != want {
				t.Fatalf("Mul(%#x, %#x) = %#x, want %#x",
					x, y, got, want)
			}
		}
		if x != 0 {
			assert.Equal(t, byte(1), f.Mul(byte(x), f.Inv(byte(x))))
		}
	}
	assert.Equal(t, byte(0), f.Inv(0))
	assert.Equal(t, byte(0x33^0x55), Add(0x33, 0x55))
}

func TestNewFieldInvalid(t *testing.T) {
	assert.Panics(t, func() { NewField(0x11b, 2) }, "2 does not generate GF(256) mod 0x11b")
	assert.Panics(t, func() { NewField(0x100, 2) }, "reducible")
	assert.Panics(t, func() { NewField(0xff, 2) }, "degree")
}

func TestGen(t *testing.T) {
	f := qrField
	// Generator polynomial for 7 check bytes, as exponents of α:
	// x**7 + α**87 x**6 + α**229 x**5 + α**146 x**4 + α**149 x**3
	// + α**238 x**2 + α**102 x + α**21
	want := []byte{1}
	for _, e := range []int{87, 229, 146, 149, 238, 102, 21} {
		want = append(want, f.Exp(e))
	}
	assert.Equal(t, want, NewRSEncoder(f, 7).Gen())
}

func TestECCHelloWorld(t *testing.T) {
	// "HELLO WORLD" at version 1-M
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77,
		67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	check := make([]byte, len(want))
	NewRSEncoder(qrField, len(want)).ECC(data, check)
	assert.Equal(t, want, check)
}

// eval evaluates polynomial p, highest degree first, at x.
func eval(f *Field, p []byte, x byte) byte {
	var r byte
	for _, c := range p {
		r = f.Mul(r, x) ^ c
	}
	return r
}

func TestECCZeroRemainder(t *testing.T) {
	f := qrField
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{7, 10, 16, 22, 26, 30, 68} {
		rs := NewRSEncoder(f, n)
		for _, nd := range []int{1, 16, 43, 119} {
			data := make([]byte, nd)
			rnd.Read(data)
			check := make([]byte, n)
			rs.ECC(data, check)
			cw := append(append([]byte(nil), data...), check...)
			// data‖check is a multiple of the generator, so
			// it vanishes at every root α**0 .. α**(n-1).
			for i := 0; i < n; i++ {
				require.Zero(t, eval(f, cw, f.Exp(i)),
					"n=%d len=%d root α**%d", n, nd, i)
			}
			// Dividing again leaves no remainder.
			rs.ECC(cw, check)
			require.Equal(t, make([]byte, n), check)
		}
	}
}

func TestECCPanics(t *testing.T) {
	rs := NewRSEncoder(qrField, 10)
	assert.Panics(t, func() { rs.ECC([]byte{1}, make([]byte, 9)) })
	assert.Panics(t, func() { NewRSEncoder(qrField, 0) })
}
