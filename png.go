// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrpng

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zlib"
)

// PNG returns a 1-bit grayscale PNG image displaying the code.
func (c *Code) PNG() ([]byte, error) {
	var w pngWriter
	if err := w.encode(c); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	var pw pngWriter
	if err := pw.encode(c); err != nil {
		return err
	}
	_, err := pw.buf.WriteTo(w)
	return err
}

// A pngWriter assembles PNG chunks in memory.
type pngWriter struct {
	buf   bytes.Buffer
	tmp   [13]byte
	start int // offset of current chunk
}

const pngHeader = "\x89PNG\r\n\x1a\n"

// filter type for all scanlines
var ftNone = []byte{0}

func (w *pngWriter) encode(c *Code) error {
	if !c.isValid() {
		return ErrArgs
	}
	if c.tooLarge() {
		return ErrLargeImage
	}
	pix := c.pixels()

	// Header
	w.buf.WriteString(pngHeader)

	// Header block
	binary.BigEndian.PutUint32(w.tmp[0:4], uint32(pix))
	binary.BigEndian.PutUint32(w.tmp[4:8], uint32(pix))
	w.tmp[8] = 1  // 1-bit
	w.tmp[9] = 0  // gray
	w.tmp[10] = 0 // deflate
	w.tmp[11] = 0 // adaptive filtering
	w.tmp[12] = 0 // no interlace
	w.writeChunk("IHDR", w.tmp[:13])

	// Data
	w.startChunk("IDAT")
	if err := w.writeCode(c); err != nil {
		return err
	}
	w.endChunk()

	// End
	w.writeChunk("IEND", nil)
	return nil
}

func (w *pngWriter) writeChunk(name string, data []byte) {
	w.startChunk(name)
	w.buf.Write(data)
	w.endChunk()
}

// startChunk writes the chunk name twice, the first standing in for
// the length.
func (w *pngWriter) startChunk(name string) {
	w.start = w.buf.Len()
	w.buf.WriteString(name)
	w.buf.WriteString(name)
}

func (w *pngWriter) endChunk() {
	w.endChunkAt(w.buf.Bytes()[w.start:])
}

// endChunkAt sets the length of chunk b and appends its CRC.
func (w *pngWriter) endChunkAt(b []byte) {
	binary.BigEndian.PutUint32(b, uint32(len(b)-8))
	binary.BigEndian.PutUint32(w.tmp[0:4], crc32.ChecksumIEEE(b[4:]))
	w.buf.Write(w.tmp[0:4])
}

// writeCode writes the zlib compressed scanlines of the image.
// PNG gray bits are set for white.
func (w *pngWriter) writeCode(c *Code) error {
	white := byte(255)
	if c.Reverse {
		white = 0
	}
	zw, err := zlib.NewWriterLevel(&w.buf, zlib.BestCompression)
	if err != nil {
		return err
	}
	err = c.writeRows(white, func(row []byte) error {
		if _, err := zw.Write(ftNone); err != nil {
			return err
		}
		_, err := zw.Write(row)
		return err
	})
	if err != nil {
		return err
	}
	return zw.Close()
}
