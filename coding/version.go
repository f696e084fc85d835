// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrLevel   = errors.New("qrgrid: invalid error correction level")
	ErrVersion = errors.New("qrgrid: invalid version")
	ErrLong    = errors.New("qrgrid: data too long to encode")
)

// A Version represents a QR version.  The version specifies the size
// of the symbol: version v has 4v+17 modules on a side.  The larger
// the version, the more data the symbol can store.
type Version int

const (
	MinVersion Version = 1
	MaxVersion Version = 40
)

func (v Version) String() string {
	return strconv.Itoa(int(v))
}

func (v Version) valid() bool {
	return v >= MinVersion && v <= MaxVersion
}

// Size returns the number of modules on a side of a version v symbol.
func (v Version) Size() int {
	return 4*int(v) + 17
}

// countBits returns the width of the byte mode character count field
// for version v.
func (v Version) countBits() int {
	if v <= 9 {
		return 8
	}
	return 16
}

// DataBytes returns the number of data codewords that can be stored
// in a symbol of version v at level l, after error correction bytes
// are subtracted.  The version and level must be valid.
func (v Version) DataBytes(l Level) int {
	vi := &vtab[v]
	lev := &vi.level[l]
	return vi.bytes - lev.nblock*lev.check
}

// Capacity returns the byte mode payload capacity of version v at
// level l: the data codewords minus the mode indicator, character
// count and terminator overhead.  The version and level must be valid.
func (v Version) Capacity(l Level) int {
	return (v.DataBytes(l)*8 - 4 - v.countBits()) / 8
}

// VersionFor returns the smallest version whose byte mode capacity at
// level l fits n payload bytes.  It returns ErrLong when no version
// fits, and ErrLevel for an invalid level.
func VersionFor(n int, l Level) (Version, error) {
	if !l.valid() {
		return 0, ErrLevel
	}
	for v := MinVersion; v <= MaxVersion; v++ {
		if v.Capacity(l) >= n {
			return v, nil
		}
	}
	return 0, ErrLong
}

// A Level represents a QR error correction level.  From least to
// most resilient: L recovers from about 7% symbol damage, M from
// 15%, Q from 25% and H from 30%.
type Level int

const (
	L Level = iota
	M
	Q
	H
)

func (l Level) String() string {
	if l.valid() {
		return "LMQH"[l : l+1]
	}
	return "Level(" + strconv.Itoa(int(l)) + ")"
}

func (l Level) valid() bool {
	return l >= L && l <= H
}

// ecBits returns the two format information bits encoding the level.
// The wire order differs from the Level order: L=01, M=00, Q=11, H=10.
func (l Level) ecBits() uint {
	return uint(l ^ 1)
}

// ParseLevel returns the level named by a one-letter string,
// upper or lower case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "l":
		return L, nil
	case "m":
		return M, nil
	case "q":
		return Q, nil
	case "h":
		return H, nil
	}
	return 0, ErrLevel
}

// A version describes the codeword geometry of a QR version.
type version struct {
	bytes int // total codewords, data and check
	level [4]level
}

// A level describes the error correction geometry of a version at
// one level: data codewords are split into nblock blocks, each
// extended with check Reed-Solomon bytes.  When nblock does not
// divide the data codewords evenly, the last blocks are one byte
// longer.
type level struct {
	nblock int
	check  int
}

var vtab = [MaxVersion + 1]version{
	1:  {26, [4]level{{1, 7}, {1, 10}, {1, 13}, {1, 17}}},
	2:  {44, [4]level{{1, 10}, {1, 16}, {1, 22}, {1, 28}}},
	3:  {70, [4]level{{1, 15}, {1, 26}, {2, 18}, {2, 22}}},
	4:  {100, [4]level{{1, 20}, {2, 18}, {2, 26}, {4, 16}}},
	5:  {134, [4]level{{1, 26}, {2, 24}, {4, 18}, {4, 22}}},
	6:  {172, [4]level{{2, 18}, {4, 16}, {4, 24}, {4, 28}}},
	7:  {196, [4]level{{2, 20}, {4, 18}, {6, 18}, {5, 26}}},
	8:  {242, [4]level{{2, 24}, {4, 22}, {6, 22}, {6, 26}}},
	9:  {292, [4]level{{2, 30}, {5, 22}, {8, 20}, {8, 24}}},
	10: {346, [4]level{{4, 18}, {5, 26}, {8, 24}, {8, 28}}},
	11: {404, [4]level{{4, 20}, {5, 30}, {8, 28}, {11, 24}}},
	12: {466, [4]level{{4, 24}, {8, 22}, {10, 26}, {11, 28}}},
	13: {532, [4]level{{4, 26}, {9, 22}, {12, 24}, {16, 22}}},
	14: {581, [4]level{{4, 30}, {9, 24}, {16, 20}, {16, 24}}},
	15: {655, [4]level{{6, 22}, {10, 24}, {12, 30}, {18, 24}}},
	16: {733, [4]level{{6, 24}, {10, 28}, {17, 24}, {16, 30}}},
	17: {815, [4]level{{6, 28}, {11, 28}, {16, 28}, {19, 28}}},
	18: {901, [4]level{{6, 30}, {13, 26}, {18, 28}, {21, 28}}},
	19: {991, [4]level{{7, 28}, {14, 26}, {21, 26}, {25, 26}}},
	20: {1085, [4]level{{8, 28}, {16, 26}, {20, 30}, {25, 28}}},
	21: {1156, [4]level{{8, 28}, {17, 26}, {23, 28}, {25, 30}}},
	22: {1258, [4]level{{9, 28}, {17, 28}, {23, 30}, {34, 24}}},
	23: {1364, [4]level{{9, 30}, {18, 28}, {25, 30}, {30, 30}}},
	24: {1474, [4]level{{10, 30}, {20, 28}, {27, 30}, {32, 30}}},
	25: {1588, [4]level{{12, 26}, {21, 28}, {29, 30}, {35, 30}}},
	26: {1706, [4]level{{12, 28}, {23, 28}, {34, 28}, {37, 30}}},
	27: {1828, [4]level{{12, 30}, {25, 28}, {34, 30}, {40, 30}}},
	28: {1921, [4]level{{13, 30}, {26, 28}, {35, 30}, {42, 30}}},
	29: {2051, [4]level{{14, 30}, {28, 28}, {38, 30}, {45, 30}}},
	30: {2185, [4]level{{15, 30}, {29, 28}, {40, 30}, {48, 30}}},
	31: {2323, [4]level{{16, 30}, {31, 28}, {43, 30}, {51, 30}}},
	32: {2465, [4]level{{17, 30}, {33, 28}, {45, 30}, {54, 30}}},
	33: {2611, [4]level{{18, 30}, {35, 28}, {48, 30}, {57, 30}}},
	34: {2761, [4]level{{19, 30}, {37, 28}, {51, 30}, {60, 30}}},
	35: {2876, [4]level{{19, 30}, {38, 28}, {53, 30}, {63, 30}}},
	36: {3034, [4]level{{20, 30}, {40, 28}, {56, 30}, {66, 30}}},
	37: {3196, [4]level{{21, 30}, {43, 28}, {59, 30}, {70, 30}}},
	38: {3362, [4]level{{22, 30}, {45, 28}, {62, 30}, {74, 30}}},
	39: {3532, [4]level{{24, 30}, {47, 28}, {65, 30}, {77, 30}}},
	40: {3706, [4]level{{25, 30}, {49, 28}, {68, 30}, {81, 30}}},
}
