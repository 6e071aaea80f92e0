// Package backtrack is the reference brute-force solver (spec.md §4.7): a
// plain depth-first search with no logical propagation, used as the
// ground-truth cross-check for the elimination and exact-cover solvers.
// Grounded on the teacher's own backtracking helper in
// internal/solver/dancing_links_util.go and the DFS in
// other_examples/50fb5ea3_rybkr-sudoku (backtrack(ctx), FindMRVCell).
package backtrack

import (
	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// Mode selects how many solutions to collect.
type Mode int

const (
	First Mode = iota
	All
)

// Stats reports how much work the search did.
type Stats struct {
	NodesVisited int
	Solutions    []*gridmodel.Grid
}

// Solver runs a depth-first search over g, filling the first empty cell in
// row-major order at each step.
type Solver struct {
	Mode Mode
	Bus  *obs.Bus
}

// Solve searches g for one or every solution, depending on Mode.
func (s *Solver) Solve(g *gridmodel.Grid) *Stats {
	stats := &Stats{}
	if s.Bus != nil {
		s.Bus.PublishGrid(obs.GridEvent{Kind: obs.INIT, Grid: g})
	}
	s.search(g, stats, 0)
	return stats
}

func (s *Solver) search(g *gridmodel.Grid, stats *Stats, depth int) bool {
	stats.NodesVisited++

	idx, ok := firstEmptyCell(g)
	if !ok {
		if isConsistent(g) {
			stats.Solutions = append(stats.Solutions, g)
			if s.Bus != nil {
				s.Bus.PublishGrid(obs.GridEvent{Kind: obs.SOLVED, Grid: g, Depth: depth})
			}
			return s.Mode == First
		}
		return false
	}

	r, c := idx/g.N, idx%g.N
	for v := 1; v <= g.N; v++ {
		bit := bitutil.Mask(1) << uint(v-1)
		if g.Cells[idx].Mask&bit == 0 || !canPlace(g, r, c, v) {
			continue
		}
		branch := g.Copy()
		branch.Cells[idx].Mask = bit
		if s.Bus != nil {
			s.Bus.PublishGrid(obs.GridEvent{Kind: obs.CHANGE, Grid: branch, Depth: depth + 1})
		}
		if s.search(branch, stats, depth+1) {
			*g = *branch
			return true
		}
	}
	return false
}

// firstEmptyCell scans row-major for the first cell not yet solved, giving
// the plain DFS its placement order (no MRV heuristic — that belongs to the
// elimination driver's hypothesis step, spec.md §4.6; this solver is
// deliberately the unoptimized reference).
func firstEmptyCell(g *gridmodel.Grid) (int, bool) {
	for i := range g.Cells {
		if !g.Cells[i].IsSolved() {
			return i, true
		}
	}
	return 0, false
}

// canPlace reports whether v can legally occupy (r,c): no cell sharing its
// row, column, or box is already solved to v. This replaces the teacher's
// admitted row/column/box duplicate-check bug (spec.md §9: the original
// combines the box check with && where it needed a separate branch) with
// three independent scans.
func canPlace(g *gridmodel.Grid, r, c, v int) bool {
	n, s := g.N, g.S
	for i := 0; i < n; i++ {
		if solvedTo(g, r, i) == v {
			return false
		}
		if solvedTo(g, i, c) == v {
			return false
		}
	}
	br, bc := (r/s)*s, (c/s)*s
	for dr := 0; dr < s; dr++ {
		for dc := 0; dc < s; dc++ {
			if solvedTo(g, br+dr, bc+dc) == v {
				return false
			}
		}
	}
	return true
}

func solvedTo(g *gridmodel.Grid, r, c int) int {
	cell := g.Cells[g.CellIndex(r, c)]
	v, ok := cell.Value()
	if !ok {
		return 0
	}
	return v
}

// isConsistent re-validates every region once the grid is fully assigned,
// as a final guard against the DFS having placed a value some other
// branch's partial state made only locally valid.
func isConsistent(g *gridmodel.Grid) bool {
	return g.IsSolved()
}
