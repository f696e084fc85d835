// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "github.com/unixdj/qrgrid/gf256"

// Field is the Galois field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// checkBytes splits the data codewords into the error correction
// blocks for version v at level l, computes the Reed-Solomon check
// bytes of each block, and returns the codewords interleaved in
// transmission order: data codewords position by position across
// blocks, then check bytes likewise.  The result has vtab[v].bytes
// codewords.
func checkBytes(data []byte, v Version, l Level) []byte {
	lev := vtab[v].level[l]
	short := len(data) / lev.nblock
	nlong := len(data) % lev.nblock
	rs := gf256.NewRSEncoder(Field, lev.check)

	check := make([]byte, lev.nblock*lev.check)
	blocks := make([][]byte, lev.nblock)
	for i, rest := 0, data; i < lev.nblock; i++ {
		n := short
		if i >= lev.nblock-nlong {
			n++
		}
		blocks[i], rest = rest[:n], rest[n:]
		rs.ECC(blocks[i], check[i*lev.check:(i+1)*lev.check])
	}

	out := make([]byte, 0, vtab[v].bytes)
	for i := 0; i < short+1; i++ {
		for _, b := range blocks {
			if i < len(b) {
				out = append(out, b[i])
			}
		}
	}
	for i := 0; i < lev.check; i++ {
		for j := 0; j < lev.nblock; j++ {
			out = append(out, check[j*lev.check+i])
		}
	}
	return out
}
