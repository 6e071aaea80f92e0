package gridmodel

import (
	"fmt"
	"sync/atomic"

	"github.com/sudokulab/engine/internal/bitutil"
)

// MinS and MaxS bound the supported square side (spec.md §1: S in 2..5).
const (
	MinS = 2
	MaxS = 5
)

var nextID uint64

// Grid owns the flat cell array and every region/intersection that
// references it by index (spec.md §3, §9). A Grid is never shared across
// goroutines concurrently — the package has no locking, matching spec.md §5
// ("Multiple concurrent solves are out of scope").
type Grid struct {
	S, N int
	ID   uint64

	Cells         []Cell         // length N*N, row-major: index = row*N+col
	Regions       []Region       // length 3N: [0,N)=rows, [N,2N)=columns, [2N,3N)=boxes
	Intersections []Intersection // length 2*N*S: [0,N*S)=row-intersections, [N*S,2*N*S)=column-intersections
}

// ValidateOrder returns an error if s is outside the supported range. Grid
// construction for an unsupported order is a programming error, not a
// recoverable input condition (spec.md §7 Resource-fatal: "map to a
// panic/abort in the same spirit") — callers are expected to have already
// validated S before reaching here.
func ValidateOrder(s int) error {
	if s < MinS || s > MaxS {
		return fmt.Errorf("gridmodel: unsupported order S=%d (supported range is %d..%d)", s, MinS, MaxS)
	}
	return nil
}

// NewEmpty builds an order-S grid with every cell holding the full candidate
// set, its topology (regions/intersections) fully wired, and every
// region/intersection marked changed (spec.md §4.2 build, for the all-empty
// case).
func NewEmpty(s int) *Grid {
	if err := ValidateOrder(s); err != nil {
		panic(err)
	}
	n := s * s
	g := &Grid{
		S:  s,
		N:  n,
		ID: atomic.AddUint64(&nextID, 1),
	}
	g.Cells = make([]Cell, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			g.Cells[r*n+c] = Cell{Mask: bitutil.Full(n), Row: r, Col: c}
		}
	}
	g.buildTopology()
	return g
}

// Build constructs a grid from a set of given values. given[r][c] is 0 for
// an empty cell or a value in 1..N for a given. Returns an error if any
// value is out of range (spec.md §6: "any value outside range => return
// NONE") or if placing the givens immediately violates I1 (two equal values
// sharing a region — spec.md §7 Input-invalid).
func Build(s int, given [][]int) (*Grid, error) {
	if err := ValidateOrder(s); err != nil {
		return nil, err
	}
	n := s * s
	if len(given) != n {
		return nil, fmt.Errorf("gridmodel: expected %d rows, got %d", n, len(given))
	}
	g := NewEmpty(s)
	for r := 0; r < n; r++ {
		if len(given[r]) != n {
			return nil, fmt.Errorf("gridmodel: expected %d columns in row %d, got %d", n, r, len(given[r]))
		}
		for c := 0; c < n; c++ {
			v := given[r][c]
			if v == 0 {
				continue
			}
			if v < 1 || v > n {
				return nil, fmt.Errorf("gridmodel: value %d at (%d,%d) out of range 1..%d", v, r, c, n)
			}
			idx := r*n + c
			bit := bitutil.Mask(1) << uint(v-1)
			if g.Cells[idx].Mask&bit == 0 {
				return nil, fmt.Errorf("gridmodel: conflicting given at (%d,%d)", r, c)
			}
			g.Cells[idx] = Cell{Mask: bit, Given: true, Row: r, Col: c}
			if err := g.propagateGiven(idx, bit); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// propagateGiven removes bit as a candidate from every peer of idx, failing
// if doing so finds a peer that was already forced to the same value
// (spec.md §7 Input-invalid: "pre-covering a given immediately contradicts
// another given").
func (g *Grid) propagateGiven(idx int, bit bitutil.Mask) error {
	r, c := idx/g.N, idx%g.N
	for _, peer := range g.peers(r, c) {
		if peer == idx {
			continue
		}
		cell := &g.Cells[peer]
		if cell.Given && cell.Mask == bit {
			return fmt.Errorf("gridmodel: duplicate given value in shared region at (%d,%d) and (%d,%d)",
				r, c, cell.Row, cell.Col)
		}
		cell.Mask &^= bit
	}
	g.onCellMutated(idx)
	return nil
}

// peers returns every other cell index sharing a row, column, or box with
// (r,c).
func (g *Grid) peers(r, c int) []int {
	n, s := g.N, g.S
	peers := make([]int, 0, 3*n)
	for i := 0; i < n; i++ {
		peers = append(peers, r*n+i)
		peers = append(peers, i*n+c)
	}
	br, bc := (r/s)*s, (c/s)*s
	for dr := 0; dr < s; dr++ {
		for dc := 0; dc < s; dc++ {
			peers = append(peers, (br+dr)*n+(bc+dc))
		}
	}
	return peers
}

// Box returns the index (0..N-1) of the box containing (r,c).
func (g *Grid) Box(r, c int) int {
	s := g.S
	return (r/s)*s + c/s
}

// CellIndex returns the flat index of (r,c).
func (g *Grid) CellIndex(r, c int) int {
	return r*g.N + c
}

// RowRegion, ColRegion, and BoxRegion return the global index into Regions
// for the row/column/box region named by the given 0-based index.
func (g *Grid) RowRegion(row int) int    { return row }
func (g *Grid) ColRegion(col int) int    { return g.N + col }
func (g *Grid) BoxRegion(box int) int    { return 2*g.N + box }

// rowIntersectionIndex and colIntersectionIndex return the global index into
// Intersections of the row/column intersection touching (r,c).
func (g *Grid) rowIntersectionIndex(r, c int) int { return r*g.S + c/g.S }
func (g *Grid) colIntersectionIndex(r, c int) int { return g.N*g.S + c*g.S + r/g.S }

// onCellMutated marks changed every region and intersection containing the
// cell at idx (spec.md §4.2).
func (g *Grid) onCellMutated(idx int) {
	r, c := idx/g.N, idx%g.N
	g.Regions[g.RowRegion(r)].Changed = true
	g.Regions[g.ColRegion(c)].Changed = true
	g.Regions[g.BoxRegion(g.Box(r, c))].Changed = true
	g.Intersections[g.rowIntersectionIndex(r, c)].Changed = true
	g.Intersections[g.colIntersectionIndex(r, c)].Changed = true
}

// ClearCandidates removes every bit in remove from the cell at idx. It
// reports which bits were actually cleared (zero if the cell already lacked
// them all) and whether the cell's mask became zero, i.e. a contradiction
// (spec.md §7 Logically-invalid). Mutation only ever clears bits (spec.md
// I2); ClearCandidates has no way to set one.
func (g *Grid) ClearCandidates(idx int, remove bitutil.Mask) (cleared bitutil.Mask, contradiction bool) {
	cell := &g.Cells[idx]
	cleared = cell.Mask & remove
	if cleared == 0 {
		return 0, false
	}
	cell.Mask &^= remove
	g.onCellMutated(idx)
	return cleared, cell.Mask == 0
}

// AssignHypothesis forces the cell at idx to the single candidate bit,
// clearing every other candidate (spec.md §4.6: "assign that candidate").
// Used only on a freshly-copied grid inside the hypothesis step.
func (g *Grid) AssignHypothesis(idx int, bit bitutil.Mask) {
	cell := &g.Cells[idx]
	if cell.Mask&bit == 0 {
		panic("gridmodel: AssignHypothesis given a bit that is not a candidate")
	}
	cell.Mask = bit
	g.onCellMutated(idx)
}

// EmptyCount returns the number of cells whose mask does not have a
// population of exactly 1 (spec.md §4.2).
func (g *Grid) EmptyCount() int {
	count := 0
	for i := range g.Cells {
		if bitutil.PopCount(g.Cells[i].Mask) != 1 {
			count++
		}
	}
	return count
}

// IsSolved reports whether every cell holds exactly one candidate and no
// region has two cells sharing a value (spec.md I4).
func (g *Grid) IsSolved() bool {
	for i := range g.Cells {
		if !g.Cells[i].IsSolved() {
			return false
		}
	}
	for i := range g.Regions {
		seen := bitutil.Mask(0)
		for _, idx := range g.Regions[i].Cells {
			m := g.Cells[idx].Mask
			if seen&m != 0 {
				return false
			}
			seen |= m
		}
	}
	return true
}

// IsInvalid reports whether the grid already violates spec.md I3: some
// cell's mask is empty, or some region cannot place all N values across its
// cells (Hall's condition, spec.md I5, checked here only for singleton
// subsets — the full Hall's-condition check is the job of the region rule
// engine at solve time; this is the cheap, always-on invariant check).
func (g *Grid) IsInvalid() bool {
	for i := range g.Cells {
		if g.Cells[i].IsContradiction() {
			return true
		}
	}
	for i := range g.Regions {
		union := bitutil.Mask(0)
		for _, idx := range g.Regions[i].Cells {
			union |= g.Cells[idx].Mask
		}
		if union != bitutil.Full(g.N) {
			return true
		}
	}
	return false
}

// Copy performs the deep copy spec.md §4.2/§9 requires before every
// hypothesis branch: Cells is copied by value (plain data, no pointers), and
// Regions/Intersections are copied as new slices of structs so the copy's
// Changed flags are independent of the source's — but each Region/
// Intersection's own Cells/Overlap/R1/R2 index slices are shared by
// reference with the source, since grid topology never changes after
// construction (spec.md §9 "Cyclic ownership": index-based membership makes
// this safe without pointer fix-up).
func (g *Grid) Copy() *Grid {
	cp := &Grid{
		S:  g.S,
		N:  g.N,
		ID: atomic.AddUint64(&nextID, 1),
	}
	cp.Cells = make([]Cell, len(g.Cells))
	copy(cp.Cells, g.Cells)
	cp.Regions = make([]Region, len(g.Regions))
	copy(cp.Regions, g.Regions)
	cp.Intersections = make([]Intersection, len(g.Intersections))
	copy(cp.Intersections, g.Intersections)
	return cp
}

// MarkAllChanged resets every region and intersection to changed=true,
// matching the build-time state (used when an elimination pass needs to
// re-scan the whole grid, e.g. for a freshly decoded exact-cover solution).
func (g *Grid) MarkAllChanged() {
	for i := range g.Regions {
		g.Regions[i].Changed = true
	}
	for i := range g.Intersections {
		g.Intersections[i].Changed = true
	}
}

// buildTopology wires Regions and Intersections for a freshly-allocated
// empty grid. Membership (which cells belong to which region/intersection)
// depends only on S, so this never needs to run again for a given grid.
func (g *Grid) buildTopology() {
	n, s := g.N, g.S
	g.Regions = make([]Region, 3*n)
	for r := 0; r < n; r++ {
		cells := make([]int, n)
		for c := 0; c < n; c++ {
			cells[c] = g.CellIndex(r, c)
		}
		g.Regions[g.RowRegion(r)] = Region{Kind: RegionRow, Index: r, Cells: cells, Changed: true, Name: RowName(r)}
	}
	for c := 0; c < n; c++ {
		cells := make([]int, n)
		for r := 0; r < n; r++ {
			cells[r] = g.CellIndex(r, c)
		}
		g.Regions[g.ColRegion(c)] = Region{Kind: RegionColumn, Index: c, Cells: cells, Changed: true, Name: ColName(c)}
	}
	for box := 0; box < n; box++ {
		br, bc := (box/s)*s, (box%s)*s
		cells := make([]int, n)
		i := 0
		for dr := 0; dr < s; dr++ {
			for dc := 0; dc < s; dc++ {
				cells[i] = g.CellIndex(br+dr, bc+dc)
				i++
			}
		}
		g.Regions[g.BoxRegion(box)] = Region{Kind: RegionBox, Index: box, Cells: cells, Changed: true,
			Name: fmt.Sprintf("box %d", box+1)}
	}

	g.Intersections = make([]Intersection, 2*n*s)
	for r := 0; r < n; r++ {
		for j := 0; j < s; j++ {
			box := (r/s)*s + j
			colBase := j * s
			overlap := make([]int, s)
			for k := 0; k < s; k++ {
				overlap[k] = g.CellIndex(r, colBase+k)
			}
			r1 := make([]int, 0, n-s)
			for _, idx := range g.Regions[g.BoxRegion(box)].Cells {
				if idx/n != r {
					r1 = append(r1, idx)
				}
			}
			r2 := make([]int, 0, n-s)
			for c := 0; c < n; c++ {
				if c < colBase || c >= colBase+s {
					r2 = append(r2, g.CellIndex(r, c))
				}
			}
			g.Intersections[r*s+j] = Intersection{
				LineKind: RegionRow,
				Box:      g.BoxRegion(box),
				Line:     g.RowRegion(r),
				Overlap:  overlap,
				R1:       r1,
				R2:       r2,
				Changed:  true,
			}
		}
	}
	for c := 0; c < n; c++ {
		for j := 0; j < s; j++ {
			box := j*s + c/s
			rowBase := j * s
			overlap := make([]int, s)
			for k := 0; k < s; k++ {
				overlap[k] = g.CellIndex(rowBase+k, c)
			}
			r1 := make([]int, 0, n-s)
			for _, idx := range g.Regions[g.BoxRegion(box)].Cells {
				if idx%n != c {
					r1 = append(r1, idx)
				}
			}
			r2 := make([]int, 0, n-s)
			for r := 0; r < n; r++ {
				if r < rowBase || r >= rowBase+s {
					r2 = append(r2, g.CellIndex(r, c))
				}
			}
			g.Intersections[n*s+c*s+j] = Intersection{
				LineKind: RegionColumn,
				Box:      g.BoxRegion(box),
				Line:     g.ColRegion(c),
				Overlap:  overlap,
				R1:       r1,
				R2:       r2,
				Changed:  true,
			}
		}
	}
}
