// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// formatBits returns the 15-bit format word for level l and mask:
// five data bits (level, then mask) followed by their BCH(15,5)
// remainder, xor-masked so that no level and mask combination
// yields an all-light word.
func formatBits(l Level, mask int) uint {
	const (
		gen  = 0b101_0011_0111
		xor  = 0b101_0100_0001_0010
		data = 10 // data bits sit above the 10 remainder bits
	)
	f := (l.ecBits()<<3 | uint(mask)) << data
	rem := f
	for i := 4; i >= 0; i-- {
		if rem&(1<<(i+data)) != 0 {
			rem ^= gen << i
		}
	}
	return (f | rem) ^ xor
}

// versionBits returns the 18-bit version word for v: six data bits
// followed by their BCH(18,6) remainder.  Only versions 7 and up
// carry one.
func versionBits(v Version) uint {
	const (
		gen  = 0b1_1111_0010_0101
		data = 12
	)
	f := uint(v) << data
	rem := f
	for i := 5; i >= 0; i-- {
		if rem&(1<<(i+data)) != 0 {
			rem ^= gen << i
		}
	}
	return f | rem
}

// placeFormat writes the format word for level l and mask into both
// reserved strips.  Bit i of the word lands on the standard's
// position i; the dark module between the two halves of the second
// copy is untouched.
func (m *matrix) placeFormat(l Level, mask int) {
	w := formatBits(l, mask)
	siz := m.modules.Size()
	bit := func(i int) bool { return w>>i&1 != 0 }
	// Around the top left finder, skipping the timing row and
	// column.
	for i := 0; i < 6; i++ {
		m.modules.Set(8, i, bit(i))
	}
	m.modules.Set(8, 7, bit(6))
	m.modules.Set(8, 8, bit(7))
	m.modules.Set(7, 8, bit(8))
	for i := 9; i < 15; i++ {
		m.modules.Set(14-i, 8, bit(i))
	}
	// Below the top right finder and beside the bottom left one.
	for i := 0; i < 8; i++ {
		m.modules.Set(siz-1-i, 8, bit(i))
	}
	for i := 8; i < 15; i++ {
		m.modules.Set(8, siz-15+i, bit(i))
	}
}

// placeVersion writes the version word into both reserved blocks,
// bit i at row i/3 of the top right block and mirrored across the
// diagonal into the bottom left one.
func (m *matrix) placeVersion(v Version) {
	if v < 7 {
		return
	}
	w := versionBits(v)
	siz := m.modules.Size()
	for i := 0; i < 18; i++ {
		bit := w>>i&1 != 0
		m.modules.Set(siz-11+i%3, i/3, bit)
		m.modules.Set(i/3, siz-11+i%3, bit)
	}
}
