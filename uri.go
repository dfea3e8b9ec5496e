// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrpng

import (
	"bytes"
	"encoding/base64"
	"io"
	"strconv"
)

// A Format is an image file format.
type Format int

const (
	PNG Format = iota // Portable Network Graphics
	BMP               // Windows bitmap
	PBM               // Netpbm bitmap
)

var formats = [...]struct {
	name   string
	mime   string
	encode func(*Code, io.Writer) error
}{
	PNG: {"png", "image/png", (*Code).EncodePNG},
	BMP: {"bmp", "image/bmp", (*Code).EncodeBMP},
	PBM: {"pbm", "image/x-portable-bitmap", (*Code).EncodePBM},
}

func (f Format) valid() bool { return 0 <= f && int(f) < len(formats) }

func (f Format) String() string {
	if !f.valid() {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formats[f].name
}

// MediaType returns the MIME type of f.
func (f Format) MediaType() string {
	if !f.valid() {
		return ""
	}
	return formats[f].mime
}

// Encode writes the code to w in format f.
func (c *Code) Encode(w io.Writer, f Format) error {
	if !f.valid() {
		return ErrFormat
	}
	return formats[f].encode(c, w)
}

// DataURI returns the image in format f as a base64 data URI.
func (c *Code) DataURI(f Format) (string, error) {
	if !f.valid() {
		return "", ErrFormat
	}
	var b bytes.Buffer
	if err := formats[f].encode(c, &b); err != nil {
		return "", err
	}
	return "data:" + formats[f].mime + ";base64," +
		base64.StdEncoding.EncodeToString(b.Bytes()), nil
}

// DataURI returns a PNG image of the QR code for data as a base64
// data URI, for embedding in HTML.
func DataURI(data []byte, scale, border int) (string, error) {
	c, err := Encode(data)
	if err != nil {
		return "", err
	}
	c.Scale, c.Border = scale, border
	return c.DataURI(PNG)
}
