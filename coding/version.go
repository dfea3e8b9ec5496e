// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: byte mode
// segments, error correction, symbol layout, masking and format
// information for versions 1 to 20 at error correction level M.
package coding // import "github.com/unixdj/qrpng/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/unixdj/qrpng/gf256"
)

var (
	ErrVersion  = errors.New("qr: invalid version")
	ErrMask     = errors.New("qr: invalid mask")
	ErrCapacity = errors.New("qr: data too long")
	ErrFormat   = errors.New("qr: invalid format information")
)

// CapacityError reports data too long for a version, or for any
// supported version if Version is zero.
type CapacityError struct {
	Len     int     // data length in bytes
	Max     int     // capacity in bytes
	Version Version // requested version, or 0
}

func (e *CapacityError) Error() string {
	if e.Version == 0 {
		return fmt.Sprintf("qr: cannot encode %d bytes, maximum is %d",
			e.Len, e.Max)
	}
	return fmt.Sprintf("qr: cannot encode %d bytes into version %s, "+
		"maximum is %d", e.Len, e.Version, e.Max)
}

// Is reports whether target is ErrCapacity.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }

// Field returns the field for QR error correction.  The tables are
// built on first use.
var Field = sync.OnceValue(func() *gf256.Field {
	return gf256.NewField(0x11d, 2)
})

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 20: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 20 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

func (v Version) valid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side.
func (v Version) Size() int { return int(v)*4 + 17 }

// Bytes returns the total number of data and check codewords.
func (v Version) Bytes() int { return vtab[v].bytes }

// DataBytes returns the number of data codewords, including the
// segment header and padding.
func (v Version) DataBytes() int {
	vt := &vtab[v]
	return vt.bytes - vt.nblock()*vt.check
}

// Capacity returns the maximum length in bytes of data encodable in
// a single byte mode segment.
func (v Version) Capacity() int { return vtab[v].capacity }

// countLength returns the length of the character count field.
func (v Version) countLength() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// SelectVersion returns the smallest version capable of holding n
// bytes of data.
func SelectVersion(n int) (Version, error) {
	for v := MinVersion; v <= MaxVersion; v++ {
		if vtab[v].capacity >= n {
			return v, nil
		}
	}
	return 0, &CapacityError{Len: n, Max: MaxVersion.Capacity()}
}

// A Level represents a QR error correction level.  Its value is the
// level indicator in the format information.  Only M (15% recovery)
// is supported.
type Level int

const M Level = 0

func (l Level) String() string {
	if l == M {
		return "M"
	}
	return strconv.Itoa(int(l))
}

// A version describes metadata associated with a version.
type version struct {
	capacity int      // byte mode capacity in bytes
	bytes    int      // total codewords
	check    int      // check codewords per block
	group    [2]group // block groups
	align    []int    // alignment pattern centre coordinates
	pattern  uint32   // version information, from version 7
}

// A group describes blocks of the same length.
type group struct {
	nblock int // number of blocks
	data   int // data codewords per block
}

func (vt *version) nblock() int {
	return vt.group[0].nblock + vt.group[1].nblock
}
