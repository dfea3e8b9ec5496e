// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrpng

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/unixdj/qrpng/coding"
)

// dark returns whether the image pixel (x,y) of c should be dark.
func dark(c *Code, x, y int) bool {
	return c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse
}

// checkImage compares decoded image m with c pixel by pixel.
func checkImage(t *testing.T, c *Code, m image.Image) {
	t.Helper()
	d := c.Scale * (c.Size + 2*c.Border)
	require.Equal(t, image.Rect(0, 0, d, d), m.Bounds())
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			r, _, _, _ := m.At(x, y).RGBA()
			if (r == 0) != dark(c, x, y) {
				t.Fatalf("scale %d border %d reverse %v: pixel (%d,%d) "+
					"is %#x", c.Scale, c.Border, c.Reverse, x, y, r)
			}
		}
	}
}

func TestGenerate(t *testing.T) {
	b, err := Generate([]byte("HELLO"), DefaultScale, DefaultBorder)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("\x89PNG\r\n\x1a\n")))
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 116, cfg.Width)
	assert.Equal(t, 116, cfg.Height)

	b2, err := Generate([]byte("HELLO"), DefaultScale, DefaultBorder)
	require.NoError(t, err)
	assert.Equal(t, b, b2, "output differs between calls")

	c, err := Encode([]byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, coding.Version(1), c.Version)
	assert.Equal(t, 21, c.Size)
	m, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	checkImage(t, c, m)
}

func TestPNGChunks(t *testing.T) {
	c, err := Encode([]byte("chunks"))
	require.NoError(t, err)
	b, err := c.PNG()
	require.NoError(t, err)
	b = b[len(pngHeader):]
	var names []string
	for len(b) >= 12 {
		n := int(b[0])<<24 | int(b[1])<<16 | int(b[2])<<8 | int(b[3])
		names = append(names, string(b[4:8]))
		b = b[12+n:]
	}
	assert.Empty(t, b)
	assert.Equal(t, []string{"IHDR", "IDAT", "IEND"}, names)
}

func TestPNG(t *testing.T) {
	c, err := Encode([]byte("https://example.com/render"))
	require.NoError(t, err)
	for _, scale := range []int{1, 2, 3, 4, 5, 7, 8, 12} {
		for _, border := range []int{0, 1, 2, 3, 4} {
			for _, rev := range []bool{false, true} {
				c.Scale, c.Border, c.Reverse = scale, border, rev
				var buf bytes.Buffer
				require.NoError(t, c.EncodePNG(&buf))
				m, err := png.Decode(&buf)
				require.NoError(t, err)
				checkImage(t, c, m)
			}
		}
	}
}

func TestPBM(t *testing.T) {
	c, err := Encode([]byte("PBM"))
	require.NoError(t, err)
	for _, scale := range []int{1, 3, 4, 8} {
		for _, border := range []int{0, 1, 4} {
			c.Scale, c.Border = scale, border
			var buf bytes.Buffer
			require.NoError(t, c.EncodePBM(&buf))
			d := scale * (c.Size + 2*border)
			hdr := fmt.Sprintf("P4\n%d %d\n", d, d)
			b := buf.Bytes()
			require.True(t, bytes.HasPrefix(b, []byte(hdr)))
			b = b[len(hdr):]
			stride := (d + 7) / 8
			require.Len(t, b, stride*d)
			for y := 0; y < d; y++ {
				for x := 0; x < d; x++ {
					bit := b[y*stride+x/8]>>(7-x%8)&1 != 0
					require.Equal(t, dark(c, x, y), bit,
						"scale %d border %d (%d,%d)", scale, border, x, y)
				}
			}
		}
	}
}

func TestBMP(t *testing.T) {
	c, err := Encode([]byte("BMP"))
	require.NoError(t, err)
	c.Scale, c.Border, c.Reverse = 3, 2, true
	var buf bytes.Buffer
	require.NoError(t, c.EncodeBMP(&buf))
	assert.Equal(t, "BM", buf.String()[:2])
	m, err := bmp.Decode(&buf)
	require.NoError(t, err)
	checkImage(t, c, m)
}

func TestImage(t *testing.T) {
	c, err := Encode([]byte("image"))
	require.NoError(t, err)
	c.Scale, c.Border = 2, 1
	checkImage(t, c, c.Image())
}

func TestDataURI(t *testing.T) {
	s, err := DataURI([]byte("HELLO"), DefaultScale, DefaultBorder)
	require.NoError(t, err)
	const prefix = "data:image/png;base64,"
	require.True(t, strings.HasPrefix(s, prefix))
	b, err := base64.StdEncoding.DecodeString(s[len(prefix):])
	require.NoError(t, err)
	g, err := Generate([]byte("HELLO"), DefaultScale, DefaultBorder)
	require.NoError(t, err)
	assert.Equal(t, g, b)

	c, err := Encode([]byte("HELLO"))
	require.NoError(t, err)
	for f, mime := range map[Format]string{
		PNG: "image/png",
		BMP: "image/bmp",
		PBM: "image/x-portable-bitmap",
	} {
		s, err := c.DataURI(f)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(s, "data:"+mime+";base64,"), f)
		assert.Equal(t, mime, f.MediaType())
	}
	_, err = c.DataURI(Format(3))
	assert.Equal(t, ErrFormat, err)
	assert.Equal(t, ErrFormat, c.Encode(&bytes.Buffer{}, -1))
	assert.Equal(t, "Format(3)", Format(3).String())
}

func TestErrors(t *testing.T) {
	_, err := Generate(make([]byte, 667), 4, 4)
	assert.True(t, errors.Is(err, coding.ErrCapacity))
	_, err = DataURI(make([]byte, 667), 4, 4)
	assert.True(t, errors.Is(err, coding.ErrCapacity))

	_, err = Generate([]byte("x"), 0, 4)
	assert.Equal(t, ErrArgs, err)
	_, err = Generate([]byte("x"), 4, -1)
	assert.Equal(t, ErrArgs, err)
	_, err = Generate([]byte("x"), 10000, 4)
	assert.Equal(t, ErrLargeImage, err)

	c, err := Encode([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, ErrArgs, c.EncodePNG(nil))
	assert.Equal(t, ErrArgs, c.EncodePBM(nil))
	assert.Equal(t, ErrArgs, c.EncodeBMP(nil))
	c.Bitmap = c.Bitmap[1:]
	_, err = c.PNG()
	assert.Equal(t, ErrArgs, err)
}

func TestLargeImage(t *testing.T) {
	_, err := Generate([]byte("x"), math.MaxInt/2, 4)
	assert.Equal(t, ErrLargeImage, err)
	_, err = DataURI([]byte("x"), 1, math.MaxInt/2)
	assert.Equal(t, ErrLargeImage, err)

	c, err := Encode([]byte("x"))
	require.NoError(t, err)
	for _, tt := range []struct{ scale, border int }{
		{1, math.MaxInt / 2},
		{1, math.MaxInt},
		{math.MaxInt, 0},
		{math.MaxInt / 4, 1},
		{maxPixels / 21, 1},
		{maxPixels/21 + 1, 0},
		{1, (maxPixels-21)/2 + 1},
	} {
		c.Scale, c.Border = tt.scale, tt.border
		_, err := c.PNG()
		assert.Equal(t, ErrLargeImage, err, "scale %d border %d", tt.scale, tt.border)
		for _, f := range []Format{PNG, BMP, PBM} {
			assert.Equal(t, ErrLargeImage, c.Encode(io.Discard, f),
				"%v scale %d border %d", f, tt.scale, tt.border)
		}
	}

	// largest images that fit
	c.Scale, c.Border = 1, (maxPixels-21)/2
	assert.False(t, c.tooLarge())
	assert.Equal(t, maxPixels-1, c.pixels())
	c.Scale, c.Border = maxPixels/21, 0
	assert.False(t, c.tooLarge())
}

func TestImageClamp(t *testing.T) {
	c, err := Encode([]byte("clamp"))
	require.NoError(t, err)
	c.Scale, c.Border = 0, -3
	m := c.Image()
	assert.Equal(t, image.Rect(0, 0, 21, 21), m.Bounds())
	assert.Equal(t, blackColor, m.At(0, 0))
	assert.Equal(t, 0, c.Scale, "Code modified")

	c.Scale, c.Border = 1, 0
	checkImage(t, c, m)
}

func TestText(t *testing.T) {
	c, err := Encode([]byte("text"))
	require.NoError(t, err)
	c.Border = 0
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	require.Len(t, lines, 11)
	for _, l := range lines {
		assert.Equal(t, 21, utf8.RuneCountInString(l))
	}
	assert.True(t, strings.HasPrefix(lines[0], "█▀▀▀▀▀█"))
	assert.True(t, strings.HasPrefix(lines[10], "▀▀▀▀▀▀▀"))

	c.Border = 1
	a := strings.Split(strings.TrimSuffix(c.ASCII(), "\n"), "\n")
	require.Len(t, a, 23)
	assert.Equal(t, strings.Repeat(" ", 46), a[0])
	assert.True(t, strings.HasPrefix(a[1], "  ##############  "))
	c.Reverse = true
	a = strings.Split(strings.TrimSuffix(c.ASCII(), "\n"), "\n")
	assert.Equal(t, strings.Repeat("#", 46), a[0])

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf, true))
	assert.Equal(t, c.ASCII(), buf.String())
}

// TestDecode scans generated images with an independent decoder.
func TestDecode(t *testing.T) {
	text := strings.Repeat("Sphinx of black quartz, judge my vow! ", 20)
	for _, tt := range []struct {
		n int
		v coding.Version
	}{
		{5, 1},
		{110, 7}, // first with version information
		{666, 20},
	} {
		for _, s := range []coding.Scoring{coding.RunsAndBoxes, coding.AllRules} {
			data := text[:tt.n]
			c, err := EncodeScoring([]byte(data), s)
			require.NoError(t, err)
			require.Equal(t, tt.v, c.Version)
			b, err := c.PNG()
			require.NoError(t, err)
			m, err := png.Decode(bytes.NewReader(b))
			require.NoError(t, err)
			bm, err := gozxing.NewBinaryBitmapFromImage(m)
			require.NoError(t, err)
			res, err := qrcode.NewQRCodeReader().Decode(bm, nil)
			require.NoError(t, err, "version %v mask %v", c.Version, c.Mask)
			assert.Equal(t, data, res.GetText())
		}
	}
}

func ExampleEncode() {
	c, err := Encode([]byte("HELLO"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("version %v, %dx%d modules, %d pixels at scale %d\n",
		c.Version, c.Size, c.Size, c.pixels(), c.Scale)
	// Output:
	// version 1, 21x21 modules, 116 pixels at scale 4
}

func ExampleDataURI() {
	s, err := DataURI([]byte("otpauth://totp/ACME:alice?secret=JBSWY3DPEHPK3PXP"), 4, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s[:len("data:image/png;base64,")])
	// Output:
	// data:image/png;base64,
}
