package gridmodel

// RegionKind distinguishes the three kinds of region/house that partition a
// grid (spec.md §3): every cell belongs to exactly one of each kind.
type RegionKind int

const (
	RegionRow RegionKind = iota
	RegionColumn
	RegionBox
)

func (k RegionKind) String() string {
	switch k {
	case RegionRow:
		return "row"
	case RegionColumn:
		return "column"
	case RegionBox:
		return "box"
	default:
		return "region"
	}
}

// Region is a row, column, or box: an ordered sequence of N cell indices
// that must collectively hold each value 1..N exactly once (spec.md §3).
// Cells holds indices into the owning Grid's Cells slice; this slice is
// built once at grid-construction time and is never mutated afterward, so
// it can be shared by value across Grid.Copy without a deep copy (spec.md
// §9 "Cyclic ownership").
type Region struct {
	Kind    RegionKind
	Index   int // 0..N-1 within this Kind
	Cells   []int
	Changed bool
	Name    string
}

// Intersection is the S-cell overlap of one box with one row or column
// (spec.md §3, §4.5). R1 holds the box's N-S cells outside the overlap, R2
// holds the line's N-S cells outside the overlap — both as indices into the
// owning Grid's Cells slice, immutable after construction for the same
// reason as Region.Cells.
type Intersection struct {
	LineKind RegionKind // RegionRow or RegionColumn
	Box      int        // global region index of the box
	Line     int        // global region index of the row/column
	Overlap  []int      // the S shared cells
	R1       []int      // box cells outside the overlap (N-S)
	R2       []int      // line cells outside the overlap (N-S)
	Changed  bool
}
