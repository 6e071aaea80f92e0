package elimination

import (
	"fmt"

	"github.com/sudokulab/engine/internal/bitutil"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// ApplyLineRules runs the fish pattern — spec.md §4.4 — for one value
// across every row (direction=Row) or every column (direction=Column). This
// generalizes the teacher's separate findXWings (k=2), findSwordfish (k=3),
// and findJellyfish (k=4) into one Hall's-condition sweep over any k,
// matching how applyNakedSubsets/applyHiddenSubsets generalize the region
// rule engine.
//
// For a fixed value v, a set of k lines (rows, say) whose v-candidate
// positions fall entirely within k columns means v must occupy exactly one
// cell per line among those columns — so v can be eliminated from every
// other cell in those columns. direction selects which axis plays the role
// of "line" and which plays "cross-line".
func ApplyLineRules(g *gridmodel.Grid, direction gridmodel.RegionKind, v int, bus *obs.Bus) Result {
	n := g.N
	bit := bitutil.Mask(1) << uint(v-1)

	// linePos[i] is the bitmask, over the cross-axis, of where v is still a
	// candidate in line i.
	linePos := make([]bitutil.Mask, n)
	for i := 0; i < n; i++ {
		var regionIdx int
		if direction == gridmodel.RegionRow {
			regionIdx = g.RowRegion(i)
		} else {
			regionIdx = g.ColRegion(i)
		}
		for pos, idx := range g.Regions[regionIdx].Cells {
			if g.Cells[idx].Mask&bit != 0 {
				linePos[i] |= bitutil.Mask(1) << uint(pos)
			}
		}
	}

	active := make([]int, 0, n)
	for i, pos := range linePos {
		c := bitutil.PopCount(pos)
		if c >= 2 && c <= n-1 {
			active = append(active, i)
		}
	}
	if len(active) < 2 {
		return Result{}
	}

	res := Result{}
	table := bitutil.For(len(active))
	for k := 2; k <= len(active); k++ {
		for _, lineSet := range table.SubsetsOfSize(k) {
			union := bitutil.Mask(0)
			lines := make([]int, 0, k)
			for pos := 0; pos < len(active); pos++ {
				if lineSet&(1<<uint(pos)) != 0 {
					union |= linePos[active[pos]]
					lines = append(lines, active[pos])
				}
			}
			unionSize := bitutil.PopCount(union)
			if unionSize < k {
				// Hall's condition violated: k lines whose candidate
				// positions for v span fewer than k cross-indices can
				// never each place v distinctly.
				res.Contradiction = true
				return res
			}
			if unionSize != k {
				continue
			}
			changed := false
			for cross := 0; cross < n; cross++ {
				if union&(bitutil.Mask(1)<<uint(cross)) == 0 {
					continue
				}
				// v is confined to the chosen lines within this cross index;
				// eliminate it from every other line crossing the same index.
				for _, line := range otherLines(allLines(n), lines) {
					idx := crossCellIndex(g, direction, line, cross)
					cleared, contradiction := g.ClearCandidates(idx, bit)
					if cleared != 0 {
						changed = true
						res.Eliminations++
					}
					if contradiction {
						res.Contradiction = true
					}
				}
			}
			if changed && bus != nil {
				bus.PublishMessage(obs.Message{
					Verbosity: obs.Quiet,
					Text:      fmt.Sprintf("fish(%d) on value %d across %s lines %v", k, v, direction, lines),
				})
			}
			if res.Contradiction {
				return res
			}
		}
	}
	return res
}

func allLines(n int) []int {
	lines := make([]int, n)
	for i := range lines {
		lines[i] = i
	}
	return lines
}

func otherLines(active, chosen []int) []int {
	chosenSet := make(map[int]bool, len(chosen))
	for _, l := range chosen {
		chosenSet[l] = true
	}
	var rest []int
	for _, l := range active {
		if !chosenSet[l] {
			rest = append(rest, l)
		}
	}
	return rest
}

// crossCellIndex returns the flat cell index at (line, cross) when direction
// is RegionRow (line=row, cross=col), or (cross, line) when direction is
// RegionColumn.
func crossCellIndex(g *gridmodel.Grid, direction gridmodel.RegionKind, line, cross int) int {
	if direction == gridmodel.RegionRow {
		return g.CellIndex(line, cross)
	}
	return g.CellIndex(cross, line)
}
