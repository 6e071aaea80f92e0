// Package exactcover encodes a grid as a Dancing Links exact-cover matrix
// and decodes the search result back into solved grids (spec.md §4.8).
// Only the encoding/decoding is this package's job; internal/dlx does the
// actual search, mirroring how the teacher keeps its own from-scratch
// Dancing Links implementation (internal/solver/dancing_links.go) as a
// separate concern from buildMatrix/applySolution.
package exactcover

import (
	"fmt"

	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/dlx"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// Mode selects how many solutions to collect.
type Mode int

const (
	First Mode = iota
	All
)

// Stats reports encoder/search statistics.
type Stats struct {
	dlx.Stats
	Solutions []*gridmodel.Grid
}

// Solve encodes g into a 4*N^2 column exact-cover matrix with one row per
// remaining (row, column, value) candidate, at most N^3 rows, and solves it
// with internal/dlx. The four constraint families match spec.md
// §4.8: each cell holds exactly one value, and each value appears exactly
// once per row, column, and box.
func Solve(g *gridmodel.Grid, mode Mode, bus *obs.Bus) *Stats {
	n := g.N
	s := g.S
	numCols := 4 * n * n
	m := dlx.NewMatrix(numCols, columnNames(n))

	rowID := func(r, c, v int) int { return (r*n+c)*n + (v - 1) }

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			box := (r/s)*s + c/s
			cell := g.Cells[g.CellIndex(r, c)]
			for v := 1; v <= n; v++ {
				if !cell.HasCandidate(v) {
					continue
				}
				id := rowID(r, c, v)
				m.AddRow(id, []int{
					cellConstraint(n, r, c),
					rowConstraint(n, r, v),
					colConstraint(n, c, v),
					boxConstraint(n, box, v),
				})
			}
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cell := g.Cells[g.CellIndex(r, c)]
			if v, ok := cell.Value(); ok && cell.Given {
				m.PreCover(rowID(r, c, v))
			}
		}
	}

	if bus != nil {
		bus.PublishGrid(obs.GridEvent{Kind: obs.INIT, Grid: g})
	}

	rawSolutions, dlxStats := m.Solve(mode == All)

	stats := &Stats{Stats: dlxStats}
	for _, sol := range rawSolutions {
		solved := g.Copy()
		solved.MarkAllChanged()
		for _, id := range sol {
			r, c, v := decodeRow(n, id)
			idx := solved.CellIndex(r, c)
			solved.Cells[idx] = gridmodel.Cell{Mask: bitutil.Mask(1) << uint(v-1), Given: solved.Cells[idx].Given, Row: r, Col: c}
		}
		// Pre-covered givens never appear in sol; their cells already carry
		// the right singleton mask from g.Copy().
		stats.Solutions = append(stats.Solutions, solved)
		if bus != nil {
			bus.PublishGrid(obs.GridEvent{Kind: obs.SOLVED, Grid: solved})
		}
	}
	return stats
}

func decodeRow(n, id int) (r, c, v int) {
	v = id%n + 1
	id /= n
	c = id % n
	r = id / n
	return r, c, v
}

func cellConstraint(n, r, c int) int { return r*n + c }
func rowConstraint(n, r, v int) int  { return n*n + r*n + (v - 1) }
func colConstraint(n, c, v int) int  { return 2*n*n + c*n + (v - 1) }
func boxConstraint(n, box, v int) int { return 3*n*n + box*n + (v - 1) }

func columnNames(n int) []string {
	names := make([]string, 4*n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			names[cellConstraint(n, r, c)] = fmt.Sprintf("cell(%d,%d)", r, c)
		}
	}
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			names[rowConstraint(n, r, v)] = fmt.Sprintf("row(%d)=%d", r, v)
		}
	}
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			names[colConstraint(n, c, v)] = fmt.Sprintf("col(%d)=%d", c, v)
		}
	}
	for box := 0; box < n; box++ {
		for v := 1; v <= n; v++ {
			names[boxConstraint(n, box, v)] = fmt.Sprintf("box(%d)=%d", box, v)
		}
	}
	return names
}
