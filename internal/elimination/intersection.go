package elimination

import (
	"fmt"

	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// ApplyIntersectionRules runs the box/line intersection elimination —
// spec.md §4.5 — generalizing the teacher's findLockedCandidates (box
// implies line) and findPointingTuples (line implies box) into a single
// symmetric-difference check: any candidate confined to the overlap from
// one side is cleared from the other side's outer cells (R1 or R2, as
// defined in gridmodel.Intersection).
func ApplyIntersectionRules(g *gridmodel.Grid, isectIdx int, bus *obs.Bus) Result {
	isect := &g.Intersections[isectIdx]
	if !isect.Changed {
		return Result{}
	}
	isect.Changed = false

	res := Result{}

	overlapMask := unionMask(g, isect.Overlap)
	boxOnly := unionMask(g, isect.R1)
	lineOnly := unionMask(g, isect.R2)

	// Values confined to the overlap from the box's perspective (absent
	// from R1) can be cleared from R2 — the line's outer cells.
	boxConfined := overlapMask &^ boxOnly
	if boxConfined != 0 {
		cleared, contradiction := clearFromCells(g, isect.R2, boxConfined)
		res.Eliminations += bitutil.PopCount(cleared)
		if contradiction {
			res.Contradiction = true
		}
		if cleared != 0 && bus != nil {
			bus.PublishMessage(obs.Message{
				Verbosity: obs.Quiet,
				Text:      fmt.Sprintf("box %d confines %#x to its overlap with line %d, clearing from the line", isect.Box, boxConfined, isect.Line),
			})
		}
	}

	// Values confined to the overlap from the line's perspective (absent
	// from R2) can be cleared from R1 — the box's outer cells.
	lineConfined := overlapMask &^ lineOnly
	if lineConfined != 0 && !res.Contradiction {
		cleared, contradiction := clearFromCells(g, isect.R1, lineConfined)
		res.Eliminations += bitutil.PopCount(cleared)
		if contradiction {
			res.Contradiction = true
		}
		if cleared != 0 && bus != nil {
			bus.PublishMessage(obs.Message{
				Verbosity: obs.Quiet,
				Text:      fmt.Sprintf("line %d confines %#x to its overlap with box %d, clearing from the box", isect.Line, lineConfined, isect.Box),
			})
		}
	}

	return res
}

func unionMask(g *gridmodel.Grid, cells []int) bitutil.Mask {
	m := bitutil.Mask(0)
	for _, idx := range cells {
		m |= g.Cells[idx].Mask
	}
	return m
}

func clearFromCells(g *gridmodel.Grid, cells []int, remove bitutil.Mask) (cleared bitutil.Mask, contradiction bool) {
	for _, idx := range cells {
		c, bad := g.ClearCandidates(idx, remove)
		cleared |= c
		if bad {
			contradiction = true
		}
	}
	return cleared, contradiction
}
