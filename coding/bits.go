// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Bits is a bit stream being written, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

// Len returns the number of bits written.
func (b *Bits) Len() int {
	return b.nbit
}

// Bytes returns the stream contents.  It panics if the stream does
// not end on a byte boundary.
func (b *Bits) Bytes() []byte {
	if b.nbit&7 != 0 {
		panic("qrgrid: fractional byte")
	}
	return b.b
}

// Write appends the nbit low bits of v to the stream, most
// significant first.
func (b *Bits) Write(v uint32, nbit int) {
	for nbit > 0 {
		if b.nbit&7 == 0 {
			b.b = append(b.b, 0)
		}
		n := 8 - b.nbit&7
		if n > nbit {
			n = nbit
		}
		bits := v >> (nbit - n) & (1<<n - 1)
		b.b[len(b.b)-1] |= byte(bits << (8 - b.nbit&7 - n))
		b.nbit += n
		nbit -= n
	}
}

// close terminates the stream for version v at level l: up to 4
// terminator bits capped by the remaining data bit budget, zero fill
// to a byte boundary, then alternating pad codewords 0xec and 0x11
// up to the version's data capacity.
func (b *Bits) close(v Version, l Level) {
	n := v.DataBytes(l) * 8
	if b.nbit > n {
		panic("qrgrid: too much data")
	}
	if t := n - b.nbit; t < 4 {
		b.Write(0, t)
	} else {
		b.Write(0, 4)
	}
	b.Write(0, -b.nbit&7)
	for pad := uint32(0xec); b.nbit < n; pad ^= 0xec ^ 0x11 {
		b.Write(pad, 8)
	}
}

// dataBits assembles the byte mode data codewords for payload p:
// mode indicator, character count, payload, terminator and padding.
// The result is exactly v.DataBytes(l) long.  The payload must fit
// v.Capacity(l).
func dataBits(p []byte, v Version, l Level) []byte {
	b := Bits{b: make([]byte, 0, v.DataBytes(l))}
	b.Write(0b0100, 4)
	b.Write(uint32(len(p)), v.countBits())
	for _, c := range p {
		b.Write(uint32(c), 8)
	}
	b.close(v, l)
	return b.Bytes()
}
