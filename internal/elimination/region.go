// Package elimination implements the three rule engines spec.md §4.3-§4.5
// describe, plus the fixed-point driver (§4.6) that runs them to
// completion. The region and line engines are built on the same primitive —
// Hall's condition over a SubsetTable — generalizing what the teacher hardcodes as
// a separate function per cardinality (findNakedPairs, findNakedTriples,
// findNakedQuadruples, and their Hidden/X-Wing/Swordfish/Jellyfish
// counterparts in internal/solver/techniques.go) into one routine parameterized
// by subset size.
package elimination

import (
	"fmt"

	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// Result reports what one rule application accomplished.
type Result struct {
	Eliminations  int
	Contradiction bool
}

// ApplyRegionRules runs the direct (naked-subset) and dual (hidden-subset)
// forms of Hall's condition over one region (spec.md §4.3). It returns
// immediately, doing nothing, if the region is not marked Changed.
//
// Direct form: a set B of k unsolved cells whose candidate masks union to
// exactly k values means those k values are confined to B — clear them from
// every other cell in the region (the teacher's Naked Pair/Triple/Quadruple).
//
// Dual form: a set V of k values that, among unsolved cells, appear only in
// exactly k cells means those cells must collectively hold V — clear every
// candidate not in V from those cells (the teacher's Hidden Pair/Triple/
// Quadruple).
func ApplyRegionRules(g *gridmodel.Grid, regionIdx int, bus *obs.Bus) Result {
	region := &g.Regions[regionIdx]
	if !region.Changed {
		return Result{}
	}
	region.Changed = false

	unsolved := make([]int, 0, g.N)
	for _, idx := range region.Cells {
		if !g.Cells[idx].IsSolved() {
			unsolved = append(unsolved, idx)
		}
	}

	res := Result{}
	// Clear each solved cell's value from the other cells of the region.
	for _, idx := range region.Cells {
		if !g.Cells[idx].IsSolved() {
			continue
		}
		for _, peer := range region.Cells {
			if peer != idx {
				cleared, bad := g.ClearCandidates(peer, g.Cells[idx].Mask)
				res.Eliminations += bitutil.PopCount(cleared)
				res.Contradiction = res.Contradiction || bad
			}
		}
	}
	if len(unsolved) < 2 {
		return res
	}

	res.merge(applyNakedSubsets(g, region, unsolved, bus))
	if res.Contradiction {
		return res
	}
	res.merge(applyHiddenSubsets(g, region, unsolved, bus))
	return res
}

func (r *Result) merge(other Result) {
	r.Eliminations += other.Eliminations
	if other.Contradiction {
		r.Contradiction = true
	}
}

// applyNakedSubsets is the direct form: subsets are built over local
// positions within unsolved, 0..len(unsolved)-1.
func applyNakedSubsets(g *gridmodel.Grid, region *gridmodel.Region, unsolved []int, bus *obs.Bus) Result {
	m := len(unsolved)
	table := bitutil.For(m)
	res := Result{}
	for k := 1; k < m; k++ {
		for _, posSet := range table.SubsetsOfSize(k) {
			union := bitutil.Mask(0)
			for pos := 0; pos < m; pos++ {
				if posSet&(1<<uint(pos)) != 0 {
					union |= g.Cells[unsolved[pos]].Mask
				}
			}
			unionSize := bitutil.PopCount(union)
			if unionSize < k {
				// Hall's condition violated: k cells whose candidates span
				// fewer than k values can never be filled distinctly.
				res.Contradiction = true
				return res
			}
			if unionSize != k {
				continue
			}
			changed := false
			for pos := 0; pos < m; pos++ {
				if posSet&(1<<uint(pos)) != 0 {
					continue
				}
				idx := unsolved[pos]
				cleared, contradiction := g.ClearCandidates(idx, union)
				if cleared != 0 {
					changed = true
					res.Eliminations += bitutil.PopCount(cleared)
				}
				if contradiction {
					res.Contradiction = true
				}
			}
			if changed {
				publishNakedSubset(bus, region, k, unsolved, posSet)
			}
			if res.Contradiction {
				return res
			}
		}
	}
	return res
}

// applyHiddenSubsets is the dual form: subsets are built over values
// 1..N, represented as positions 0..N-1 in a value mask.
func applyHiddenSubsets(g *gridmodel.Grid, region *gridmodel.Region, unsolved []int, bus *obs.Bus) Result {
	n := g.N
	table := bitutil.For(n)
	res := Result{}

	// remaining is the union of every unsolved cell's mask: values already
	// placed elsewhere in the region never appear in it. Hall's condition
	// is only meaningful over values still in play — a value solved
	// elsewhere already has its own cell satisfying it, so a subset that
	// reaches outside remaining is never a deficiency, just irrelevant.
	remaining := bitutil.Mask(0)
	for _, idx := range unsolved {
		remaining |= g.Cells[idx].Mask
	}

	for k := 1; k < len(unsolved); k++ {
		for _, valueSet := range table.SubsetsOfSize(k) {
			if valueSet&^remaining != 0 {
				continue
			}
			var cells []int
			for _, idx := range unsolved {
				if g.Cells[idx].Mask&valueSet != 0 {
					cells = append(cells, idx)
				}
			}
			if len(cells) < k {
				// Hall's condition violated (dual form): k values that
				// together fit in fewer than k cells can never all be
				// placed.
				res.Contradiction = true
				return res
			}
			if len(cells) != k {
				continue
			}
			changed := false
			for _, idx := range cells {
				extra := g.Cells[idx].Mask &^ valueSet
				cleared, contradiction := g.ClearCandidates(idx, extra)
				if cleared != 0 {
					changed = true
					res.Eliminations += bitutil.PopCount(cleared)
				}
				if contradiction {
					res.Contradiction = true
				}
			}
			if changed {
				publishHiddenSubset(bus, region, k, cells, valueSet)
			}
			if res.Contradiction {
				return res
			}
		}
	}
	return res
}

func publishNakedSubset(bus *obs.Bus, region *gridmodel.Region, k int, unsolved []int, posSet bitutil.Mask) {
	if bus == nil {
		return
	}
	cells := make([]int, 0, k)
	for pos := range unsolved {
		if posSet&(1<<uint(pos)) != 0 {
			cells = append(cells, unsolved[pos])
		}
	}
	bus.PublishMessage(obs.Message{
		Verbosity: obs.Quiet,
		Text:      fmt.Sprintf("%s in %s: naked subset at %v", subsetName(k), region.Name, cells),
	})
}

func publishHiddenSubset(bus *obs.Bus, region *gridmodel.Region, k int, cells []int, valueSet bitutil.Mask) {
	if bus == nil {
		return
	}
	bus.PublishMessage(obs.Message{
		Verbosity: obs.Quiet,
		Text:      fmt.Sprintf("%s in %s: hidden subset at %v restricted to %#x", subsetName(k), region.Name, cells, valueSet),
	})
}

func subsetName(k int) string {
	switch k {
	case 1:
		return "single"
	case 2:
		return "pair"
	case 3:
		return "triple"
	case 4:
		return "quadruple"
	default:
		return fmt.Sprintf("%d-subset", k)
	}
}
