// Package gridmodel is the grid data model shared by all three solvers
// (spec.md §3, §4.2): cells hold a candidate bitmask, regions group N cells
// that must each hold a distinct value, and intersections capture the
// box/line overlap the intersection rule engine eliminates across.
package gridmodel

import (
	"math/bits"

	"github.com/sudokulab/engine/internal/bitutil"
)

// Cell is one grid position. Its Mask only ever loses bits once the grid has
// been built (spec.md I2): a hypothesis guess narrows the cell to one of its
// current candidates, and only building a fresh grid starts a cell from the
// full candidate set.
type Cell struct {
	Mask  bitutil.Mask
	Given bool
	Row   int
	Col   int
}

// IsSolved reports whether exactly one candidate remains.
func (c Cell) IsSolved() bool {
	return bitutil.PopCount(c.Mask) == 1
}

// IsContradiction reports whether no candidate remains (spec.md I3).
func (c Cell) IsContradiction() bool {
	return c.Mask == 0
}

// Value returns the solved digit (1-based) and true if the cell is solved;
// otherwise returns 0, false. Per the Open Question in spec.md §9 about the
// reference's VALUE helper returning a digit for an empty mask, this
// implementation explicitly signals "no value" via the boolean instead of
// guessing at DIGIT[0].
func (c Cell) Value() (int, bool) {
	if bitutil.PopCount(c.Mask) != 1 {
		return 0, false
	}
	return bits.TrailingZeros32(c.Mask) + 1, true
}

// HasCandidate reports whether v (1-based) is still a candidate.
func (c Cell) HasCandidate(v int) bool {
	return c.Mask&(1<<uint(v-1)) != 0
}

// NumCandidates returns the number of remaining candidates.
func (c Cell) NumCandidates() int {
	return bitutil.PopCount(c.Mask)
}
