// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qrgrid

import (
	"bufio"
	"fmt"
	"io"
)

// EncodeSVG writes an SVG image displaying the code to w.  The
// viewBox is in module units, so the image scales losslessly; width
// and height are set from c.Scale.
func (c *Code) EncodeSVG(w io.Writer) error {
	if w == nil || !c.isValid() {
		return ErrArgs
	}
	b := bufio.NewWriter(w)
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	bg, fg := "#fff", "#000"
	if c.Reverse {
		bg, fg = fg, bg
	}
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d" shape-rendering="crispEdges">`+"\n",
		pix, pix, pix*c.Scale, pix*c.Scale)
	fmt.Fprintf(b, `<rect width="%d" height="%d" fill="%s"/>`+"\n",
		pix, pix, bg)
	// One path of unit squares keeps the output small and avoids
	// hairline seams between adjacent modules.
	b.WriteString(`<path fill="` + fg + `" d="`)
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; {
			if !c.Black(x, y) {
				x++
				continue
			}
			run := 1
			for x+run < siz && c.Black(x+run, y) {
				run++
			}
			fmt.Fprintf(b, "M%d,%dh%dv1h-%dz",
				x+bord, y+bord, run, run)
			x += run
		}
	}
	b.WriteString(`"/>` + "\n</svg>\n")
	return b.Flush()
}
