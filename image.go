// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgrid

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image returns an Image displaying the code at c.Scale pixels per
// module, surrounded by a quiet zone of c.Border modules.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// PNG returns a PNG image displaying the code,
// or nil if c is not renderable.
func (c *Code) PNG() []byte {
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

// EncodePNG writes a PNG image displaying the code to w.
func (c *Code) EncodePNG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	return png.Encode(w, c.Image())
}

// codeImage implements image.Image.
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.Border) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.ink(x/c.Scale-c.Border, y/c.Scale-c.Border) {
		return blackColor
	}
	return whiteColor
}

func (c *codeImage) ColorModel() color.Model {
	return color.GrayModel
}
