// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qrgrid encodes QR codes.

Data is stored in byte mode at one of four error correction levels.
The encoder picks the smallest symbol version that fits the data and
the mask with the best penalty score, and returns a module grid ready
for rendering as PNG, PBM, SVG or terminal text.
*/
package qrgrid

import (
	"errors"

	"golang.org/x/text/encoding/charmap"

	"github.com/unixdj/qrgrid/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // recovers ~7% damage
	M              // recovers ~15% damage
	Q              // recovers ~25% damage
	H              // recovers ~30% damage
)

func (l Level) String() string {
	return coding.Level(l).String()
}

// ErrArgs is returned by renderers when Scale or Border make no
// sense.
var ErrArgs = errors.New("qrgrid: invalid arguments")

// A Code is an encoded QR symbol with rendering options.
type Code struct {
	Grid    *coding.Grid // module grid, true is dark
	Size    int          // number of modules on a side
	Version int          // symbol version, 1 to 40
	Level   Level        // error correction level
	Mask    int          // mask pattern applied to the data cells
	Scale   int          // image pixels per module
	Border  int          // quiet zone width in modules
	Reverse bool         // render light on dark
}

const (
	defaultScale  = 8
	defaultBorder = 4
)

// Encode returns an encoding of the UTF-8 bytes of text at the given
// error correction level, in the smallest version that fits.
func Encode(text string, level Level) (*Code, error) {
	return EncodeData([]byte(text), level, 0)
}

// EncodeLatin1 is like Encode, but transcodes text to ISO 8859-1
// first, the character set byte mode historically assumed.  It fails
// if text contains characters outside Latin-1.
func EncodeLatin1(text string, level Level) (*Code, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(text)
	if err != nil {
		return nil, err
	}
	return EncodeData([]byte(t), level, 0)
}

// EncodeData returns an encoding of data at the given error
// correction level and version.  Version 0 picks the smallest
// version that fits.
func EncodeData(data []byte, level Level, version int) (*Code, error) {
	cc, err := coding.Encode(coding.Version(version),
		coding.Level(level), data)
	if err != nil {
		return nil, err
	}
	return &Code{
		Grid:    cc.Grid,
		Size:    cc.Size(),
		Version: int(cc.Version),
		Level:   Level(cc.Level),
		Mask:    cc.Mask,
		Scale:   defaultScale,
		Border:  defaultBorder,
	}, nil
}

// Black returns whether the module at column x, row y is dark.
// Out of range coordinates are light, so renderers can scan the
// quiet zone uniformly.
func (c *Code) Black(x, y int) bool {
	return x >= 0 && x < c.Size && y >= 0 && y < c.Size && c.Grid.At(x, y)
}

// ink returns the rendered colour of the module at (x, y):
// Black unless Reverse flips it.
func (c *Code) ink(x, y int) bool {
	return c.Black(x, y) != c.Reverse
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c != nil && c.Grid != nil && c.Size == c.Grid.Size() &&
		c.Scale >= 1 && c.Border >= 0
}
