// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgrid

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.
func (c *Code) EncodePBM(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	scale := c.Scale
	bord := c.Border
	length := scale * (c.Size + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	// PBM packs 8 pixels per byte, MSB leftmost, 1 is black.
	// blank holds the light module colour, so toggling the bits of
	// dark modules yields the right image in either direction.
	row := make([]byte, (length+7)/8)
	blank := make([]byte, len(row))
	if c.Reverse {
		for i := range blank {
			blank[i] = 0xff
		}
	}
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(blank); err != nil {
			return err
		}
	}
	for y := 0; y < c.Size; y++ {
		copy(row, blank)
		for x := 0; x < c.Size; x++ {
			if !c.Black(x, y) {
				continue
			}
			for i := 0; i < scale; i++ {
				p := (x+bord)*scale + i
				row[p>>3] ^= 0x80 >> (p & 7)
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	for i := 0; i < scale*bord; i++ {
		if _, err := b.Write(blank); err != nil {
			return err
		}
	}
	return b.Flush()
}
