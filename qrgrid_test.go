// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgrid_test

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unixdj/qrgrid"
	"github.com/unixdj/qrgrid/coding"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("HELLO WORLD", qrgrid.M)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Version)
	assert.Equal(t, 21, c.Size)
	assert.Equal(t, qrgrid.M, c.Level)
	assert.Equal(t, 8, c.Scale)
	assert.Equal(t, 4, c.Border)
	assert.GreaterOrEqual(t, c.Mask, 0)
	assert.Less(t, c.Mask, 8)

	assert.True(t, c.Black(0, 0), "finder corner")
	assert.True(t, c.Black(6, 6), "finder ring")
	assert.False(t, c.Black(7, 7), "separator")
	assert.True(t, c.Black(8, 13), "dark module")

	assert.False(t, c.Black(-1, 0))
	assert.False(t, c.Black(0, -1))
	assert.False(t, c.Black(21, 0))
	assert.False(t, c.Black(0, 21))
}

func TestEncodeData(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.EncodeData([]byte("x"), qrgrid.L, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Version)
	assert.Equal(t, 45, c.Size)

	_, err = qrgrid.EncodeData(bytes.Repeat([]byte{'x'}, 18), qrgrid.L, 1)
	assert.ErrorIs(t, err, coding.ErrLong)
	_, err = qrgrid.EncodeData([]byte("x"), qrgrid.Level(9), 0)
	assert.ErrorIs(t, err, coding.ErrLevel)
	_, err = qrgrid.EncodeData([]byte("x"), qrgrid.L, 41)
	assert.ErrorIs(t, err, coding.ErrVersion)
}

func TestEncodeLatin1(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.EncodeLatin1("Grüße", qrgrid.M)
	require.NoError(t, err)
	want, err := qrgrid.EncodeData([]byte{'G', 'r', 0xfc, 0xdf, 'e'},
		qrgrid.M, 0)
	require.NoError(t, err)
	assert.Equal(t, want.Version, c.Version)
	assert.Equal(t, want.Mask, c.Mask)
	assert.Equal(t, want.PNG(), c.PNG())

	_, err = qrgrid.EncodeLatin1("円", qrgrid.M)
	assert.Error(t, err, "not representable in Latin-1")
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "L", qrgrid.L.String())
	assert.Equal(t, "M", qrgrid.M.String())
	assert.Equal(t, "Q", qrgrid.Q.String())
	assert.Equal(t, "H", qrgrid.H.String())
}

func TestImage(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("IMG", qrgrid.H)
	require.NoError(t, err)
	img := c.Image()
	assert.Equal(t, 232, img.Bounds().Dx())
	assert.Equal(t, 232, img.Bounds().Dy())
	assert.Equal(t, color.GrayModel, img.ColorModel())
	assert.Equal(t, color.Gray{0xff}, img.At(0, 0), "quiet zone")
	assert.Equal(t, color.Gray{0x00}, img.At(60, 60), "finder centre")
}

func TestEncodePNG(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("PNG", qrgrid.M)
	require.NoError(t, err)
	c.Scale, c.Border = 4, 2

	decode := func() func(x, y int) uint8 {
		img, err := png.Decode(bytes.NewReader(c.PNG()))
		require.NoError(t, err)
		require.Equal(t, 100, img.Bounds().Dx())
		return func(x, y int) uint8 {
			return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
		}
	}

	// Module (3, 3) is the centre of the top left finder; with a
	// quiet zone of 2 its pixels start at (2+3)*4.
	at := decode()
	assert.EqualValues(t, 0xff, at(0, 0))
	assert.EqualValues(t, 0x00, at(22, 22))

	c.Reverse = true
	at = decode()
	assert.EqualValues(t, 0x00, at(0, 0))
	assert.EqualValues(t, 0xff, at(22, 22))
}

func TestEncodePBM(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("PBM", qrgrid.L)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, c.EncodePBM(&buf))

	header := "P4\n232 232\n"
	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte(header)))
	const rowLen = (232 + 7) / 8
	require.Equal(t, len(header)+232*rowLen, len(out))

	rows := out[len(header):]
	assert.Equal(t, make([]byte, rowLen), rows[:rowLen], "quiet zone row")

	// First module row: the finder spans pixels 32 to 87, bytes 4
	// to 10; byte 11 is the separator.
	r := rows[32*rowLen : 33*rowLen]
	assert.Equal(t, byte(0), r[0])
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 7), r[4:11])
	assert.Equal(t, byte(0), r[11])

	c.Reverse = true
	buf.Reset()
	require.NoError(t, c.EncodePBM(&buf))
	rows = buf.Bytes()[len(header):]
	assert.Equal(t, bytes.Repeat([]byte{0xff}, rowLen), rows[:rowLen])
}

func TestEncodeSVG(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("SVG", qrgrid.M)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, c.EncodeSVG(&buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 29 29" `+
			`width="232" height="232" shape-rendering="crispEdges">`))
	assert.Contains(t, out, `<rect width="29" height="29" fill="#fff"/>`)
	assert.Contains(t, out, `<path fill="#000" d="M4,4h7v1h-7z`,
		"top row of the first finder")
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))

	c.Reverse = true
	buf.Reset()
	require.NoError(t, c.EncodeSVG(&buf))
	out = buf.String()
	assert.Contains(t, out, `<rect width="29" height="29" fill="#000"/>`)
	assert.Contains(t, out, `<path fill="#fff"`)
}

func TestString(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("TEXT", qrgrid.M)
	require.NoError(t, err)
	c.Border = 2

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 14)
	assert.Empty(t, lines[13])
	for i, l := range lines[:13] {
		assert.Equal(t, 25, utf8.RuneCountInString(l), "line %d", i)
	}
	assert.Equal(t, strings.Repeat(" ", 25), lines[0])
	assert.Equal(t, strings.Repeat(" ", 25), lines[12])

	// Line 1 holds module rows 0 and 1: the finder corner is dark in
	// both, its neighbour only in row 0.
	r := []rune(lines[1])
	assert.Equal(t, ' ', r[0])
	assert.Equal(t, '█', r[2])
	assert.Equal(t, '▀', r[3])

	c.Reverse = true
	lines = strings.Split(c.String(), "\n")
	assert.Equal(t, strings.Repeat("█", 25), lines[0])
}

func TestRendererArgs(t *testing.T) {
	t.Parallel()

	c, err := qrgrid.Encode("x", qrgrid.L)
	require.NoError(t, err)
	var buf bytes.Buffer
	assert.ErrorIs(t, c.EncodePNG(nil), qrgrid.ErrArgs)
	assert.ErrorIs(t, c.EncodePBM(nil), qrgrid.ErrArgs)
	assert.ErrorIs(t, c.EncodeSVG(nil), qrgrid.ErrArgs)

	c.Scale = 0
	assert.ErrorIs(t, c.EncodePNG(&buf), qrgrid.ErrArgs)
	assert.Nil(t, c.PNG())
	assert.Equal(t, "", c.String())
	c.Scale = 8

	c.Size++
	assert.ErrorIs(t, c.EncodePBM(&buf), qrgrid.ErrArgs)
	c.Size--

	c.Border = -1
	assert.ErrorIs(t, c.EncodeSVG(&buf), qrgrid.ErrArgs)

	var nilCode *qrgrid.Code
	assert.ErrorIs(t, nilCode.EncodePNG(&buf), qrgrid.ErrArgs)
	assert.Equal(t, "", nilCode.String())
}

func ExampleEncode() {
	c, err := qrgrid.Encode("HELLO WORLD", qrgrid.M)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Printf("version %d, %d modules per side, level %s\n",
		c.Version, c.Size, c.Level)
	// Output: version 1, 21 modules per side, level M
}
