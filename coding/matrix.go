// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Grid is a square module matrix; true is dark.
type Grid struct {
	siz int
	b   []bool
}

// NewGrid returns a light grid of siz modules on a side.
func NewGrid(siz int) *Grid {
	return &Grid{siz: siz, b: make([]bool, siz*siz)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int {
	return g.siz
}

// At returns the module at column x, row y.
func (g *Grid) At(x, y int) bool {
	return g.b[y*g.siz+x]
}

// Set sets the module at column x, row y.
func (g *Grid) Set(x, y int, v bool) {
	g.b[y*g.siz+x] = v
}

// A matrix is a symbol under construction: the module grid and a
// same-shaped grid marking cells owned by function patterns or
// reserved for format and version words.  The data placer never
// writes where function is set.
type matrix struct {
	modules  *Grid
	function *Grid
}

// newMatrix returns a matrix with all function patterns drawn and
// all metadata areas reserved for version v.
func newMatrix(v Version) *matrix {
	siz := v.Size()
	m := &matrix{modules: NewGrid(siz), function: NewGrid(siz)}
	m.finder(3, 3)
	m.finder(siz-4, 3)
	m.finder(3, siz-4)
	m.timing()
	for _, cy := range alignment[v] {
		for _, cx := range alignment[v] {
			m.alignBox(cx, cy)
		}
	}
	m.reserveFormat()
	if v >= 7 {
		m.reserveVersion()
	}
	// The dark module sits in the reserved strip beside the
	// bottom left finder and survives format placement.
	m.set(8, siz-8, true)
	return m
}

// set sets a function module.
func (m *matrix) set(x, y int, v bool) {
	m.modules.Set(x, y, v)
	m.function.Set(x, y, true)
}

// finder draws a finder pattern centered on (cx, cy): a 3x3 dark
// core in a dark 7x7 ring, with a light separator band around it.
// Cells off the grid are clipped.
func (m *matrix) finder(cx, cy int) {
	siz := m.modules.Size()
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			x, y := cx+dx, cy+dy
			if x < 0 || x >= siz || y < 0 || y >= siz {
				continue
			}
			d := max(abs(dx), abs(dy))
			m.set(x, y, d != 2 && d != 4)
		}
	}
}

// timing draws the timing patterns in row 6 and column 6, dark on
// even coordinates.
func (m *matrix) timing() {
	for i := 8; i < m.modules.Size()-8; i++ {
		m.set(i, 6, i&1 == 0)
		m.set(6, i, i&1 == 0)
	}
}

// alignBox draws a 5x5 alignment pattern centered on (cx, cy):
// a dark center in a light ring in a dark border.  The three
// combinations overlapping finder patterns are skipped.
func (m *matrix) alignBox(cx, cy int) {
	last := m.modules.Size() - 7
	if cx == 6 && cy == 6 || cx == 6 && cy == last || cx == last && cy == 6 {
		return
	}
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			m.set(cx+dx, cy+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// reserveFormat marks the format word strips beside the finder
// patterns as function cells without touching their modules; the
// word is written after masking.
func (m *matrix) reserveFormat() {
	siz := m.modules.Size()
	for i := 0; i < 9; i++ {
		m.function.Set(i, 8, true)
		m.function.Set(8, i, true)
	}
	for i := 0; i < 8; i++ {
		m.function.Set(siz-1-i, 8, true)
		m.function.Set(8, siz-1-i, true)
	}
}

// reserveVersion marks the two version word blocks: 6x3 above the
// bottom left finder and 3x6 left of the top right finder.
func (m *matrix) reserveVersion() {
	siz := m.modules.Size()
	for i := 0; i < 18; i++ {
		m.function.Set(i/3, siz-11+i%3, true)
		m.function.Set(siz-11+i%3, i/3, true)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// alignment holds the alignment pattern center coordinates per
// version: none for version 1, otherwise anchors at 6 and size-7
// with evenly spaced centers between them, the spacing rounded up
// to an even step and positions built from the last backward.
// Version 32 is the one version whose published spacing deviates
// from the computed step; it is pinned.
var alignment [MaxVersion + 1][]int

func init() {
	for v := Version(2); v <= MaxVersion; v++ {
		n := int(v)/7 + 2
		first, last := 6, v.Size()-7
		step := (last - first + n - 2) / (n - 1)
		step += step & 1
		if v == 32 {
			step = 26
		}
		pos := make([]int, n)
		pos[0] = first
		for i, p := n-1, last; i > 0; i, p = i-1, p-step {
			pos[i] = p
		}
		alignment[v] = pos
	}
}
