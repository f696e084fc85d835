// Copyright 2010 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gf256 implements arithmetic over the Galois field GF(256).
package gf256

import "strconv"

// A Field represents an instance of GF(256) defined by a reduction
// polynomial.  The zero Field is not usable: construct with NewField.
type Field struct {
	log [256]byte // log[0] is unused
	exp [510]byte // exp doubled, so that Mul needs no reduction mod 255
}

// logZero marks the logarithm of the zero element in tables of
// logarithms of polynomial coefficients.
const logZero = 255

// NewField returns the field defined by the degree-8 reduction
// polynomial poly (0x100..0x1ff) and the generator element α.
// It panics if poly is reducible or α is not primitive.
// QR error correction uses NewField(0x11d, 2).
func NewField(poly, α int) *Field {
	if poly < 0x100 || poly >= 0x200 || reducible(poly) {
		panic("gf256: invalid polynomial: " + strconv.Itoa(poly))
	}
	var f Field
	x := 1
	for i := 0; i < 255; i++ {
		if x == 1 && i != 0 {
			panic("gf256: generator " + strconv.Itoa(α) +
				" is not primitive")
		}
		f.exp[i] = byte(x)
		f.exp[i+255] = byte(x)
		f.log[x] = byte(i)
		x = mul(x, α, poly)
	}
	f.log[0] = logZero
	return &f
}

// nbit returns the number of significant bits in p.
func nbit(p int) uint {
	n := uint(0)
	for ; p > 0; p >>= 1 {
		n++
	}
	return n
}

// mul multiplies binary polynomials x and y modulo poly,
// one shift and conditional xor per bit of x.
func mul(x, y, poly int) int {
	z := 0
	for x > 0 {
		if x&1 != 0 {
			z ^= y
		}
		x >>= 1
		y <<= 1
		if y&0x100 != 0 {
			y ^= poly
		}
	}
	return z
}

// polyDiv returns the remainder of the binary polynomial p
// divided by q.
func polyDiv(p, q int) int {
	np, nq := nbit(p), nbit(q)
	for ; np >= nq; np-- {
		if p&(1<<(np-1)) != 0 {
			p ^= q << (np - nq)
		}
	}
	return p
}

// reducible reports whether the binary polynomial p has a
// nontrivial factor.
func reducible(p int) bool {
	// A factor of an n-bit polynomial has at most n/2+1 bits.
	for q := 2; q < 1<<(nbit(p)/2+1); q++ {
		if polyDiv(p, q) == 0 {
			return true
		}
	}
	return false
}

// Add returns the sum of x and y in the field,
// which is their xor in GF(256).
func (f *Field) Add(x, y byte) byte {
	return x ^ y
}

// Exp returns αᵉ in the field.
func (f *Field) Exp(e int) byte {
	if e < 0 {
		panic("gf256: negative exponent")
	}
	return f.exp[e%255]
}

// Log returns the base-α logarithm of x in the field.
// It panics if x == 0.
func (f *Field) Log(x byte) int {
	if x == 0 {
		panic("gf256: log of zero")
	}
	return int(f.log[x])
}

// Inv returns the multiplicative inverse of x in the field.
// It panics if x == 0.
func (f *Field) Inv(x byte) byte {
	if x == 0 {
		panic("gf256: inverse of zero")
	}
	return f.exp[255-int(f.log[x])]
}

// Mul returns the product of x and y in the field.
func (f *Field) Mul(x, y byte) byte {
	if x == 0 || y == 0 {
		return 0
	}
	return f.exp[int(f.log[x])+int(f.log[y])]
}

// An RSEncoder computes Reed-Solomon check bytes over a field
// for a fixed check byte count.
type RSEncoder struct {
	f    *Field
	c    int
	lgen []byte // logs of the generator coefficients below the leading 1
	rem  []byte // remainder register, reused between calls
}

// NewRSEncoder returns an encoder producing c check bytes over the
// field f.  The generator polynomial is Π (x - αⁱ) for i in [0, c).
// It panics unless 0 < c < 256.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	if c <= 0 || c >= 256 {
		panic("gf256: invalid check byte count " + strconv.Itoa(c))
	}
	return &RSEncoder{f: f, c: c, lgen: f.gen(c), rem: make([]byte, c)}
}

// gen returns the logs of the low e coefficients of the generator
// polynomial Π (x - αⁱ), i in [0, e).  The leading coefficient is 1
// and is omitted.
func (f *Field) gen(e int) []byte {
	// p[0] is the x^e coefficient, p[e] the constant term.
	p := make([]byte, e+1)
	p[e] = 1
	for i := 0; i < e; i++ {
		// p *= (x - αⁱ); in GF(256) subtraction is addition.
		c := f.Exp(i)
		for j := 0; j < e; j++ {
			p[j] = f.Mul(p[j], c) ^ p[j+1]
		}
		p[e] = f.Mul(p[e], c)
	}
	lp := make([]byte, e)
	for i, c := range p[1:] {
		if c == 0 {
			lp[i] = logZero
		} else {
			lp[i] = byte(f.Log(c))
		}
	}
	return lp
}

// ECC writes the c Reed-Solomon check bytes for data into check,
// which must have length c.  The check bytes are the remainder of
// data·xᶜ divided by the generator polynomial, computed in a shift
// register with the generator held in log form.
func (rs *RSEncoder) ECC(data, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	f, rem := rs.f, rs.rem
	for i := range rem {
		rem[i] = 0
	}
	for _, b := range data {
		factor := b ^ rem[0]
		copy(rem, rem[1:])
		rem[len(rem)-1] = 0
		if factor == 0 {
			continue
		}
		exp := f.exp[f.log[factor]:]
		for j, lg := range rs.lgen {
			if lg != logZero {
				rem[j] ^= exp[lg]
			}
		}
	}
	copy(check, rem)
}
