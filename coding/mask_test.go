// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cloneGrid(g *Grid) *Grid {
	c := NewGrid(g.Size())
	copy(c.b, g.b)
	return c
}

func TestApplyMaskInvolution(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewSource(1))
	m := newMatrix(2)
	siz := m.modules.Size()
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if !m.function.At(x, y) {
				m.modules.Set(x, y, rnd.Intn(2) == 0)
			}
		}
	}
	orig := cloneGrid(m.modules)

	for mask := range maskFuncs {
		m.applyMask(mask)
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				if m.function.At(x, y) {
					assert.Equal(t, orig.At(x, y),
						m.modules.At(x, y),
						"mask %d touched function cell (%d,%d)",
						mask, x, y)
				}
			}
		}
		m.applyMask(mask)
		assert.Equal(t, orig.b, m.modules.b,
			"mask %d applied twice is not the identity", mask)
	}
}

func TestApplyMaskFlipsSelected(t *testing.T) {
	t.Parallel()

	for mask, f := range maskFuncs {
		m := &matrix{modules: NewGrid(6), function: NewGrid(6)}
		// Reserve a band to prove masking skips function cells.
		for x := 0; x < 6; x++ {
			m.function.Set(x, 2, true)
		}
		m.applyMask(mask)
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				want := f(x, y) && y != 2
				assert.Equal(t, want, m.modules.At(x, y),
					"mask %d at (%d,%d)", mask, x, y)
			}
		}
	}
}

func TestLineRuns(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		seq  []bool
		want int
	}{
		{"short runs score nothing", []bool{true, true, true, true, false, false, false, false}, 0},
		{"run of five scores three", []bool{true, true, true, true, true, false}, 3},
		{"run of six scores four", []bool{true, true, true, true, true, true}, 4},
		{"adjacent runs score separately", []bool{false, false, false, false, false, true, true, true, true, true}, 6},
		{"run at line end is counted", []bool{false, true, true, true, true, true}, 3},
	} {
		t.Run(tt.name, func(t *testing.T) {
			g := &Grid{siz: len(tt.seq)}
			got := g.lineRuns(func(i int) bool { return tt.seq[i] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPenaltyBlocks(t *testing.T) {
	t.Parallel()

	g := NewGrid(3)
	assert.Equal(t, 12, g.penaltyBlocks(), "four overlapping light blocks")
	g.Set(1, 1, true)
	assert.Equal(t, 0, g.penaltyBlocks(), "center module breaks every block")
	g.Set(0, 0, true)
	g.Set(1, 0, true)
	g.Set(0, 1, true)
	assert.Equal(t, 3, g.penaltyBlocks(), "one dark block")
}

func TestPenaltyFinders(t *testing.T) {
	t.Parallel()

	g := NewGrid(12)
	for i, v := range finderSeq {
		g.Set(i, 3, v)
	}
	assert.Equal(t, 40, g.penaltyFinders(), "forward pattern in a row")

	g = NewGrid(12)
	for i, v := range finderSeq {
		g.Set(3, len(finderSeq)-1-i, v)
	}
	assert.Equal(t, 40, g.penaltyFinders(), "reversed pattern in a column")

	assert.Equal(t, 0, NewGrid(12).penaltyFinders())
}

func TestPenaltyBalance(t *testing.T) {
	t.Parallel()

	g := NewGrid(10)
	assert.Equal(t, 100, g.penaltyBalance(), "all light")
	n := 0
	for y := 0; y < 10 && n < 50; y++ {
		for x := 0; x < 10 && n < 50; x++ {
			g.Set(x, y, true)
			n++
		}
	}
	assert.Equal(t, 0, g.penaltyBalance(), "half dark")
	g.Set(5, 5, true)
	g.Set(6, 5, true)
	g.Set(7, 5, true)
	g.Set(8, 5, true)
	assert.Equal(t, 0, g.penaltyBalance(), "54% dark rounds within the band")
	g.Set(9, 5, true)
	assert.Equal(t, 10, g.penaltyBalance(), "55% dark")
}

func TestChooseMaskPicksLowestPenalty(t *testing.T) {
	t.Parallel()

	m := newMatrix(1)
	m.place(checkBytes(dataBits([]byte("HELLO"), 1, M), 1, M))
	before := cloneGrid(m.modules)

	mask := m.chooseMask()
	require.GreaterOrEqual(t, mask, 0)
	require.Less(t, mask, 8)

	// Recompute every candidate from the premask state.
	penalties := make([]int, 8)
	for k := range maskFuncs {
		trial := &matrix{modules: cloneGrid(before), function: m.function}
		trial.applyMask(k)
		penalties[k] = trial.modules.penalty()
	}
	for k, p := range penalties {
		assert.GreaterOrEqual(t, p, penalties[mask],
			"mask %d beats the chosen mask %d", k, mask)
	}
	for k := 0; k < mask; k++ {
		assert.Greater(t, penalties[k], penalties[mask],
			"tie with mask %d should keep the earlier mask", k)
	}

	// The matrix is left with the chosen mask applied.
	want := &matrix{modules: before, function: m.function}
	want.applyMask(mask)
	assert.Equal(t, want.modules.b, m.modules.b)
}
