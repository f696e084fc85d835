// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgrid

import "strings"

// String renders the code for a terminal using Unicode half-block
// characters, packing two module rows into each text line.  The
// quiet zone is c.Border modules wide.  Set Reverse for terminals
// with a dark background.
func (c *Code) String() string {
	if !c.isValid() {
		return ""
	}
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	var b strings.Builder
	b.Grow((pix*3 + 1) * (pix/2 + 1))
	for y := -bord; y < siz+bord; y += 2 {
		for x := -bord; x < siz+bord; x++ {
			top, bottom := c.ink(x, y), c.ink(x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
