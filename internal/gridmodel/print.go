package gridmodel

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// givenColor and solvedColor distinguish given clues from values the solver
// placed, mirroring the teacher's fixed/locked value distinction
// (internal/puzzle/printer.go) but without that printer's fixed 3x3
// candidate sub-grid, which does not generalize past S=3.
var (
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
	emptyColor  = color.New(color.FgHiBlack)
)

// Print writes the grid's solved values to stdout as a box-drawn table,
// generalized to an arbitrary S x S arrangement of S x S boxes. Unsolved
// cells print as the empty placeholder.
func (g *Grid) Print() {
	fmt.Println(g.border(topLeft, topMid, topRight))
	for r := 0; r < g.N; r++ {
		if r != 0 {
			if r%g.S == 0 {
				fmt.Println(g.border(majorLeft, majorMid, majorRight))
			} else {
				fmt.Println(g.border(minorLeft, minorMid, minorRight))
			}
		}
		g.printRow(r)
	}
	fmt.Println(g.border(botLeft, botMid, botRight))
}

func (g *Grid) printRow(r int) {
	var b strings.Builder
	for c := 0; c < g.N; c++ {
		if c%g.S == 0 {
			b.WriteString(g.vedge(c))
		} else {
			b.WriteString(" ")
		}
		cell := g.Cells[g.CellIndex(r, c)]
		v, ok := cell.Value()
		switch {
		case ok && cell.Given:
			b.WriteString(givenColor.Sprintf(" %c ", ValueRune(v)))
		case ok:
			b.WriteString(solvedColor.Sprintf(" %c ", ValueRune(v)))
		default:
			b.WriteString(emptyColor.Sprintf(" %c ", emptyRune))
		}
	}
	b.WriteString(g.vedge(g.N))
	fmt.Println(b.String())
}

func (g *Grid) vedge(c int) string {
	if c%g.S == 0 {
		return "║"
	}
	return "│"
}

const (
	topLeft, topMid, topRight       = "╔", "╦", "╗"
	botLeft, botMid, botRight       = "╚", "╩", "╝"
	majorLeft, majorMid, majorRight = "╠", "╬", "╣"
	minorLeft, minorMid, minorRight = "╟", "╫", "╢"
)

// border renders a full-width horizontal rule using the given left/mid/right
// corner glyphs, breaking every S columns and spanning 3 characters per
// cell (matching the " %c " cell width printRow uses).
func (g *Grid) border(left, mid, right string) string {
	var b strings.Builder
	b.WriteString(left)
	for c := 0; c < g.N; c++ {
		b.WriteString("═══")
		if c == g.N-1 {
			continue
		}
		if (c+1)%g.S == 0 {
			b.WriteString(mid)
		} else {
			b.WriteString("═")
		}
	}
	b.WriteString(right)
	return b.String()
}

// PrintCandidates writes, for every unsolved cell, its remaining candidate
// digits on one line, keyed by cell name (spec.md §6). Intended for
// diagnosing a stalled elimination pass rather than as the primary board
// view, since a per-cell 3x3 candidate sub-grid (as the teacher's printer
// draws for S=3) does not generalize cleanly up to S=5.
func (g *Grid) PrintCandidates() {
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			cell := g.Cells[g.CellIndex(r, c)]
			if cell.IsSolved() {
				continue
			}
			var digits strings.Builder
			for v := 1; v <= g.N; v++ {
				if cell.HasCandidate(v) {
					digits.WriteRune(ValueRune(v))
				}
			}
			fmt.Printf("%s: %s\n", CellName(r, c), digits.String())
		}
	}
}
