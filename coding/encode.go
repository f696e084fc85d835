// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: versions
// and capacity, the byte mode bit stream, Reed-Solomon blocks,
// matrix construction, masking and metadata words.  Most callers
// want the qrgrid package instead.
package coding

// A Code is an encoded QR symbol.
type Code struct {
	Grid    *Grid // module grid, true is dark
	Version Version
	Level   Level
	Mask    int // mask pattern applied to the data cells
}

// Size returns the number of modules on a side of the symbol.
func (c *Code) Size() int {
	return c.Grid.Size()
}

// Black returns whether the module at column x, row y is dark.
// Out of range coordinates are light.
func (c *Code) Black(x, y int) bool {
	siz := c.Grid.Size()
	return x >= 0 && x < siz && y >= 0 && y < siz && c.Grid.At(x, y)
}

// Encode encodes data at level l into a symbol of version v, or of
// the smallest version that fits when v is 0.
func Encode(v Version, l Level, data []byte) (*Code, error) {
	if !l.valid() {
		return nil, ErrLevel
	}
	switch {
	case v == 0:
		var err error
		if v, err = VersionFor(len(data), l); err != nil {
			return nil, err
		}
	case !v.valid():
		return nil, ErrVersion
	default:
		if len(data) > v.Capacity(l) {
			return nil, ErrLong
		}
	}
	m := newMatrix(v)
	m.place(checkBytes(dataBits(data, v, l), v, l))
	mask := m.chooseMask()
	m.placeFormat(l, mask)
	m.placeVersion(v)
	return &Code{Grid: m.modules, Version: v, Level: l, Mask: mask}, nil
}

// place lays the codeword bits over the non-function cells, most
// significant first: column pairs from the right edge leftward,
// skipping the timing column, alternating upward and downward
// traversal starting upward, right column before left within a row.
// Cells past the last codeword bit stay light.
func (m *matrix) place(codewords []byte) {
	s := bitStream{b: codewords}
	siz := m.modules.Size()
	up := true
	for x := siz - 1; x > 0; x -= 2 {
		if x == 6 {
			x--
		}
		for i := 0; i < siz; i++ {
			y := i
			if up {
				y = siz - 1 - i
			}
			for _, xx := range [2]int{x, x - 1} {
				if !m.function.At(xx, y) {
					m.modules.Set(xx, y, s.next())
				}
			}
		}
		up = !up
	}
}

// A bitStream reads bits most significant first, reading light past
// the end of the buffer.
type bitStream struct {
	b   []byte
	pos int
}

func (s *bitStream) next() bool {
	if s.pos>>3 >= len(s.b) {
		return false
	}
	v := s.b[s.pos>>3]>>(7-s.pos&7)&1 != 0
	s.pos++
	return v
}
