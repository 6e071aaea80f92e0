// Package dlx implements Knuth's Dancing Links (Algorithm X) over an
// abstract 0/1 matrix: callers add rows as sets of column indices and get
// back, for each exact cover found, the list of row IDs that make it up.
// This package knows nothing about Sudoku — internal/exactcover is the
// layer that encodes a grid into a dlx.Matrix and decodes a solution back.
//
// Grounded on the teacher's self-contained internal/solver/dancing_links.go
// and dancing_links_util.go: the teacher hand-writes Algorithm X in-repo
// rather than importing a third-party Dancing Links library, so this
// package does the same, generalized from the teacher's fixed 9x9/324-column
// matrix to an arbitrary column count.
package dlx

// Node is one cell of the sparse matrix, linked circularly in all four
// directions within its row and column.
type Node struct {
	left, right, up, down *Node
	column                *columnNode
	rowID                 int
}

type columnNode struct {
	Node
	size int
	name string
}

// Matrix is the Dancing Links structure: a circular header row of column
// nodes, each heading a circular column of row nodes.
type Matrix struct {
	header  *columnNode
	columns []*columnNode
	rows    [][]*Node // rows[rowID] is every node belonging to that row
}

// NewMatrix allocates a matrix with numCols columns named by colNames (or
// numeric names if colNames is nil).
func NewMatrix(numCols int, colNames []string) *Matrix {
	m := &Matrix{}
	m.header = &columnNode{name: "header"}
	m.header.left = &m.header.Node
	m.header.right = &m.header.Node

	m.columns = make([]*columnNode, numCols)
	for i := 0; i < numCols; i++ {
		name := ""
		if colNames != nil {
			name = colNames[i]
		}
		col := &columnNode{name: name}
		col.up = &col.Node
		col.down = &col.Node
		col.column = col
		m.columns[i] = col

		col.left = m.header.left
		col.right = &m.header.Node
		m.header.left.right = &col.Node
		m.header.left = &col.Node
	}
	return m
}

// AddRow inserts a row covering every column in cols, recorded under rowID
// (the caller's own row identifier — exactcover uses the subset's flat
// index, e.g. r*N*N+c*N+v).
func (m *Matrix) AddRow(rowID int, cols []int) {
	nodes := make([]*Node, len(cols))
	for i, colIdx := range cols {
		col := m.columns[colIdx]
		node := &Node{column: col, rowID: rowID}
		nodes[i] = node

		node.down = &col.Node
		node.up = col.up
		col.up.down = node
		col.up = node
		col.size++
	}
	for i := range nodes {
		nodes[i].left = nodes[(i-1+len(nodes))%len(nodes)]
		nodes[i].right = nodes[(i+1)%len(nodes)]
	}
	for len(m.rows) <= rowID {
		m.rows = append(m.rows, nil)
	}
	m.rows[rowID] = nodes
}

// PreCover removes rowID from further search and marks its columns
// satisfied without adding it to any returned solution's row list — used by
// exactcover to pre-cover the rows a puzzle's given values already satisfy,
// so the search only has to decide the empty cells.
func (m *Matrix) PreCover(rowID int) {
	nodes := m.rows[rowID]
	if nodes == nil {
		return
	}
	seen := map[*columnNode]bool{}
	for _, n := range nodes {
		if !seen[n.column] {
			m.cover(n.column)
			seen[n.column] = true
		}
	}
}

// Stats reports how much search work Solve performed.
type Stats struct {
	NodesVisited int
}

// Solve runs Algorithm X. If findAll is false, it stops at the first exact
// cover; otherwise it exhausts the search and returns every exact cover
// found. Each returned solution is the set of row IDs selected.
func (m *Matrix) Solve(findAll bool) ([][]int, Stats) {
	var solutions [][]int
	var current []int
	var stats Stats

	var search func() bool
	search = func() bool {
		stats.NodesVisited++
		if m.header.right == &m.header.Node {
			solutions = append(solutions, append([]int(nil), current...))
			return !findAll
		}

		col := m.chooseColumn()
		if col.size == 0 {
			return false
		}
		m.cover(col)

		for r := col.down; r != &col.Node; r = r.down {
			current = append(current, r.rowID)
			for j := r.right; j != r; j = j.right {
				m.cover(j.column)
			}

			if search() {
				return true
			}

			for j := r.left; j != r; j = j.left {
				m.uncover(j.column)
			}
			current = current[:len(current)-1]
		}

		m.uncover(col)
		return false
	}

	search()
	return solutions, stats
}

// chooseColumn selects the column with the fewest remaining rows (the MRV
// heuristic the teacher's own chooseColumn uses).
func (m *Matrix) chooseColumn() *columnNode {
	var chosen *columnNode
	minSize := int(^uint(0) >> 1)
	for col := m.header.right; col != &m.header.Node; col = col.right {
		c := col.column
		if c.size < minSize {
			chosen = c
			minSize = c.size
		}
	}
	return chosen
}

func (m *Matrix) cover(col *columnNode) {
	col.right.left = col.left
	col.left.right = col.right
	for i := col.down; i != &col.Node; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.column.size--
		}
	}
}

func (m *Matrix) uncover(col *columnNode) {
	for i := col.up; i != &col.Node; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.column.size++
			j.down.up = j
			j.up.down = j
		}
	}
	col.right.left = &col.Node
	col.left.right = &col.Node
}
