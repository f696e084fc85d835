// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// maskFuncs are the eight mask predicates.  A data module at column
// x, row y is flipped when its mask predicate holds.
var maskFuncs = [8]func(x, y int) bool{
	func(x, y int) bool { return (x+y)%2 == 0 },
	func(x, y int) bool { return y%2 == 0 },
	func(x, y int) bool { return x%3 == 0 },
	func(x, y int) bool { return (x+y)%3 == 0 },
	func(x, y int) bool { return (y/2+x/3)%2 == 0 },
	func(x, y int) bool { return x*y%2+x*y%3 == 0 },
	func(x, y int) bool { return (x*y%2+x*y%3)%2 == 0 },
	func(x, y int) bool { return ((x+y)%2+x*y%3)%2 == 0 },
}

// applyMask flips every non-function module selected by mask.
// Masking is an xor, so applying the same mask twice restores the
// grid.
func (m *matrix) applyMask(mask int) {
	f := maskFuncs[mask]
	siz := m.modules.Size()
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if f(x, y) && !m.function.At(x, y) {
				m.modules.Set(x, y, !m.modules.At(x, y))
			}
		}
	}
}

// chooseMask trials all eight masks, scoring each and undoing it,
// and leaves the lowest-penalty mask applied, returning its id.
// Strictly lower wins, so the first of tied masks stays.
func (m *matrix) chooseMask() int {
	best, bestPenalty := 0, -1
	for mask := range maskFuncs {
		m.applyMask(mask)
		if p := m.modules.penalty(); bestPenalty < 0 || p < bestPenalty {
			best, bestPenalty = mask, p
		}
		m.applyMask(mask)
	}
	m.applyMask(best)
	return best
}

// penalty scores the grid by the four mask evaluation rules.
// Lower is better.  Function cells count like any other.
func (g *Grid) penalty() int {
	return g.penaltyRuns() + g.penaltyBlocks() +
		g.penaltyFinders() + g.penaltyBalance()
}

// penaltyRuns scores every horizontal and vertical run of five or
// more same-colored modules: 3 points plus one per module past five.
func (g *Grid) penaltyRuns() int {
	p := 0
	for i := 0; i < g.siz; i++ {
		n := i
		p += g.lineRuns(func(j int) bool { return g.At(j, n) })
		p += g.lineRuns(func(j int) bool { return g.At(n, j) })
	}
	return p
}

func (g *Grid) lineRuns(at func(int) bool) int {
	p, run := 0, 1
	for i := 1; i < g.siz; i++ {
		if at(i) == at(i-1) {
			run++
			continue
		}
		if run >= 5 {
			p += run - 2
		}
		run = 1
	}
	if run >= 5 {
		p += run - 2
	}
	return p
}

// penaltyBlocks scores every 2x2 block of one color 3 points;
// overlapping blocks all count.
func (g *Grid) penaltyBlocks() int {
	p := 0
	for y := 0; y < g.siz-1; y++ {
		for x := 0; x < g.siz-1; x++ {
			c := g.At(x, y)
			if g.At(x+1, y) == c &&
				g.At(x, y+1) == c &&
				g.At(x+1, y+1) == c {
				p += 3
			}
		}
	}
	return p
}

// finderSeq is the module sequence penalized by rule 3: a finder
// pattern cross-section followed by four light modules.
var finderSeq = [11]bool{
	true, false, true, true, true, false, true,
	false, false, false, false,
}

// penaltyFinders scores every horizontal or vertical 11-module
// window matching finderSeq, forward or reversed, 40 points.
func (g *Grid) penaltyFinders() int {
	p := 0
	for i := 0; i < g.siz; i++ {
		n := i
		p += g.lineFinders(func(j int) bool { return g.At(j, n) })
		p += g.lineFinders(func(j int) bool { return g.At(n, j) })
	}
	return p
}

func (g *Grid) lineFinders(at func(int) bool) int {
	p := 0
	for i := 0; i+len(finderSeq) <= g.siz; i++ {
		fwd, rev := true, true
		for k := 0; k < len(finderSeq) && (fwd || rev); k++ {
			v := at(i + k)
			fwd = fwd && v == finderSeq[k]
			rev = rev && v == finderSeq[len(finderSeq)-1-k]
		}
		if fwd || rev {
			p += 40
		}
	}
	return p
}

// penaltyBalance scores the deviation of the dark module share from
// 50%: 10 points per full 5% step.
func (g *Grid) penaltyBalance() int {
	dark := 0
	for _, v := range g.b {
		if v {
			dark++
		}
	}
	return abs(dark*100/len(g.b)-50) / 5 * 10
}
