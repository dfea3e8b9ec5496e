// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrpng/gf256"

const byteMode = 0b0100 // mode indicator for 8-bit bytes

// EncodeData returns the data codewords for data at version v: a byte
// mode segment header, the data, a terminator and padding up to
// v.DataBytes().
func EncodeData(v Version, data []byte) (*Bits, error) {
	if !v.valid() {
		return nil, ErrVersion
	}
	if c := v.Capacity(); len(data) > c {
		return nil, &CapacityError{Len: len(data), Max: c, Version: v}
	}
	b := NewBits(v)
	b.Write(byteMode, 4)
	b.Write(uint32(len(data)), v.countLength())
	b.Append(data)
	b.Pad(v.DataBytes())
	return b, nil
}

// Interleave splits data codewords into the blocks of version v,
// computes check codewords for each block and returns all codewords
// in transmission order: the data codewords interleaved across
// blocks, then the check codewords interleaved likewise.  Blocks of
// the second group are one codeword longer; their last codewords come
// after all others.
func Interleave(v Version, data []byte) []byte {
	vt := &vtab[v]
	nd := v.DataBytes()
	if len(data) != nd {
		panic("qr: wrong data length")
	}
	nblock := vt.nblock()
	check := make([]byte, nblock*vt.check)
	rs := gf256.NewRSEncoder(Field(), vt.check)
	src, chk := data, check
	for _, g := range vt.group {
		for i := 0; i < g.nblock; i++ {
			rs.ECC(src[:g.data], chk[:vt.check])
			src, chk = src[g.data:], chk[vt.check:]
		}
	}

	dst := make([]byte, vt.bytes)
	interleave(dst[:nd], data, nblock)
	interleave(dst[nd:], check, nblock)
	return dst
}

// interleave interleaves nblock blocks from src to dst, which must be
// of equal length.  Blocks are of the same length, except that the
// last len(src)%nblock blocks are one byte longer.
func interleave(dst, src []byte, nblock int) {
	db := len(src) / nblock
	extra := dst[db*nblock:]
	dst = dst[:db*nblock]
	normal := nblock - len(extra)
	for i := 0; i < nblock; i++ {
		for j, v := range src[:db] {
			dst[j*nblock+i] = v
		}
		src = src[db:]
		if i >= normal {
			extra[i-normal] = src[0]
			src = src[1:]
		}
	}
}

// Encode encodes data as a QR code of the smallest version that holds
// it, choosing the mask with the lowest penalty under scoring s.
func Encode(data []byte, s Scoring) (*Code, error) {
	v, err := SelectVersion(len(data))
	if err != nil {
		return nil, err
	}
	return encode(v, data, s, -1)
}

// EncodeMask encodes data as a QR code of version v with mask k.
func EncodeMask(v Version, data []byte, k Mask) (*Code, error) {
	if !k.valid() {
		return nil, ErrMask
	}
	return encode(v, data, RunsAndBoxes, k)
}

func encode(v Version, data []byte, s Scoring, k Mask) (*Code, error) {
	b, err := EncodeData(v, data)
	if err != nil {
		return nil, err
	}
	cw := Interleave(v, b.Bytes())
	m, err := NewMatrix(v)
	if err != nil {
		return nil, err
	}
	fn := m.Clone()
	m.Place(cw)
	var pen []int
	if k < 0 {
		k, pen = SelectMask(m, fn, s)
	}
	m.ApplyMask(fn, k)
	m.WriteFormat(k)
	c := m.Code()
	c.Mask, c.Penalties = k, pen
	return c, nil
}
