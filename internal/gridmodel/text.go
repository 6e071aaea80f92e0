package gridmodel

import (
	"fmt"
	"strings"
)

// digitRunes lists the value glyphs in order: 1-9, then a-z, then @ (spec.md
// §6: "value names are the digits 1-9, then the lowercase letters a-z, then
// @, in that order, for the values beyond what fits in a single digit").
// MaxS=5 gives N=25, so at most 25 of these are ever used.
const digitRunes = "123456789abcdefghijklmnopqrstuvwxyz@"

// emptyRune is the text-format placeholder for an unfilled cell.
const emptyRune = '.'

// ValueRune returns the glyph for value v (1-based). v==0 returns the empty
// placeholder.
func ValueRune(v int) rune {
	if v == 0 {
		return emptyRune
	}
	if v < 1 || v > len(digitRunes) {
		panic(fmt.Sprintf("gridmodel: value %d has no glyph", v))
	}
	return rune(digitRunes[v-1])
}

// RuneValue is the inverse of ValueRune: it returns the value (1-based, 0
// for empty) a glyph denotes, and false if the rune is not recognized.
// Parsing is case-insensitive (spec.md §6) and '0' is accepted as a synonym
// for the empty placeholder.
func RuneValue(r rune) (int, bool) {
	if r == emptyRune || r == '0' {
		return 0, true
	}
	lower := r
	if r >= 'A' && r <= 'Z' {
		lower = r - 'A' + 'a'
	}
	for i, d := range digitRunes {
		if rune(d) == lower {
			return i + 1, true
		}
	}
	return 0, false
}

// RowName returns the row label for row index r (0-based): uppercase
// letters, 'A'+r (spec.md §6 example: cell "Ab" is row A, column b).
func RowName(r int) string {
	return string(rune('A' + r))
}

// ColName returns the column label for column index c (0-based): lowercase
// letters, 'a'+c.
func ColName(c int) string {
	return string(rune('a' + c))
}

// CellName returns the two-character cell name, e.g. "Ab" for row 0,
// column 1.
func CellName(r, c int) string {
	return RowName(r) + ColName(c)
}

// ParseText decodes a text-format grid of order s (spec.md §6: any character
// not recognized as a row/value glyph is ignored, so free-form layout with
// newlines, spaces, and separators is accepted). It returns the given
// values as an N x N grid of 0 (empty) or 1..N, reading glyphs left to
// right, top to bottom, collecting exactly N*N recognized value characters.
func ParseText(s int, text string) ([][]int, error) {
	if err := ValidateOrder(s); err != nil {
		return nil, err
	}
	n := s * s
	vals := make([]int, 0, n*n)
	for _, r := range text {
		v, ok := RuneValue(r)
		if !ok {
			continue
		}
		vals = append(vals, v)
	}
	if len(vals) != n*n {
		return nil, fmt.Errorf("gridmodel: expected %d value characters, found %d", n*n, len(vals))
	}
	grid := make([][]int, n)
	for r := 0; r < n; r++ {
		grid[r] = vals[r*n : (r+1)*n]
	}
	return grid, nil
}

// Text renders the grid's solved/given values back to text form, one row
// per line, using emptyRune for any cell that is not yet solved. It
// satisfies obs.GridView so a *Grid can be published directly on the
// observer bus.
func (g *Grid) Text() string {
	return FormatText(g)
}

// FormatText renders the grid's solved/given values back to text form, one
// row per line, using emptyRune for any cell that is not yet solved.
func FormatText(g *Grid) string {
	var b strings.Builder
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			cell := g.Cells[g.CellIndex(r, c)]
			v, ok := cell.Value()
			if !ok {
				v = 0
			}
			b.WriteRune(ValueRune(v))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
