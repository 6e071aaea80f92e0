package sudoku

import (
	"errors"
	"testing"
)

// fullGrid9 is one valid, fully solved 9x9 grid, generated by the standard
// base-pattern formula cell(r,c) = (r*3 + r/3 + c) % 9 + 1.
func fullGrid9() [][]int {
	g := make([][]int, 9)
	for r := 0; r < 9; r++ {
		g[r] = make([]int, 9)
		for c := 0; c < 9; c++ {
			g[r][c] = (r*3+r/3+c)%9 + 1
		}
	}
	return g
}

func cloneGrid(g [][]int) [][]int {
	cp := make([][]int, len(g))
	for i, row := range g {
		cp[i] = append([]int(nil), row...)
	}
	return cp
}

func TestSolveElimination9x9WithManyGivens(t *testing.T) {
	full := fullGrid9()
	given := cloneGrid(full)
	// Zero every third cell, leaving a well-populated but incomplete puzzle.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if (r+c)%3 == 0 {
				given[r][c] = 0
			}
		}
	}

	res, err := Solve(3, given, Elimination, First)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Outcome != Solved {
		t.Fatalf("Outcome = %v, want Solved", res.Outcome)
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("len(Solutions) = %d, want 1", len(res.Solutions))
	}
	sol := res.Solutions[0]
	if !sol.IsSolved() {
		t.Fatal("returned solution is not actually solved")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if given[r][c] == 0 {
				continue
			}
			v, ok := sol.Cells[sol.CellIndex(r, c)].Value()
			if !ok || v != given[r][c] {
				t.Fatalf("cell (%d,%d) = %v, want given value %d preserved", r, c, v, given[r][c])
			}
		}
	}
}

func TestSolveDetectsContradictionInInput(t *testing.T) {
	given := make([][]int, 9)
	for r := range given {
		given[r] = make([]int, 9)
	}
	given[0][0] = 5
	given[0][1] = 5 // duplicate value in the same row
	_, err := Solve(3, given, Elimination, First)
	if err == nil {
		t.Fatal("Solve = nil error, want ErrInvalidInput for two equal givens sharing a row")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want wrapping ErrInvalidInput", err)
	}
}

func TestSolveAllEmptyGridFirstMode(t *testing.T) {
	given := make([][]int, 9)
	for r := range given {
		given[r] = make([]int, 9)
	}
	res, err := Solve(3, given, Elimination, First)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Outcome != Solved {
		t.Fatalf("Outcome = %v, want Solved", res.Outcome)
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("len(Solutions) = %d, want 1 for First mode", len(res.Solutions))
	}
	if !res.Solutions[0].IsSolved() {
		t.Error("solution is not actually solved")
	}
}

func TestSolveAllModeFindsMultipleSolutions(t *testing.T) {
	given := make([][]int, 4)
	for r := range given {
		given[r] = make([]int, 4)
	}
	given[0][0] = 1 // minimally constrained 4x4, many completions exist
	res, err := Solve(2, given, Elimination, All)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if len(res.Solutions) < 2 {
		t.Fatalf("len(Solutions) = %d, want at least 2 for ALL mode", len(res.Solutions))
	}
	for _, sol := range res.Solutions {
		if !sol.IsSolved() {
			t.Error("ALL mode returned an unsolved grid")
		}
	}
}

func TestSolveRejectsOutOfRangeValue(t *testing.T) {
	given := make([][]int, 9)
	for r := range given {
		given[r] = make([]int, 9)
	}
	given[0][0] = 10 // out of range for N=9
	_, err := Solve(3, given, Elimination, First)
	if err == nil {
		t.Fatal("Solve = nil error, want ErrInvalidInput for value 10 on a 9x9 grid")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want wrapping ErrInvalidInput", err)
	}
}

func TestSolve4x4DeterministicCase(t *testing.T) {
	given := [][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 0},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	res, err := Solve(2, given, Elimination, First)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Outcome != Solved || len(res.Solutions) != 1 {
		t.Fatalf("Outcome=%v len(Solutions)=%d, want Solved with exactly 1 solution", res.Outcome, len(res.Solutions))
	}
	sol := res.Solutions[0]
	want := [][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			v, ok := sol.Cells[sol.CellIndex(r, c)].Value()
			if !ok || v != want[r][c] {
				t.Errorf("cell (%d,%d) = %v, want %d", r, c, v, want[r][c])
			}
		}
	}
	if res.Stats.HypothesisCount != 0 {
		t.Errorf("HypothesisCount = %d, want 0: this puzzle should resolve by propagation alone", res.Stats.HypothesisCount)
	}
	if res.MethodUsed != Elimination {
		t.Errorf("MethodUsed = %v, want Elimination (no hypothesis needed)", res.MethodUsed)
	}
}

func TestSolveBacktrackingAndExactCoverAgreeWithElimination(t *testing.T) {
	// This puzzle (also used by TestSolve4x4DeterministicCase) has a unique
	// solution, so every method must agree regardless of search order.
	given := [][]int{
		{1, 0, 3, 4},
		{3, 4, 1, 0},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	}
	elimRes, err := Solve(2, given, Elimination, First)
	if err != nil {
		t.Fatalf("Solve(Elimination): %v", err)
	}
	backRes, err := Solve(2, given, Backtracking, First)
	if err != nil {
		t.Fatalf("Solve(Backtracking): %v", err)
	}
	xcRes, err := Solve(2, given, ExactCover, First)
	if err != nil {
		t.Fatalf("Solve(ExactCover): %v", err)
	}
	if elimRes.Outcome != Solved || backRes.Outcome != Solved || xcRes.Outcome != Solved {
		t.Fatalf("all three methods should solve this puzzle: elim=%v back=%v xc=%v",
			elimRes.Outcome, backRes.Outcome, xcRes.Outcome)
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			ev, _ := elimRes.Solutions[0].Cells[elimRes.Solutions[0].CellIndex(r, c)].Value()
			bv, _ := backRes.Solutions[0].Cells[backRes.Solutions[0].CellIndex(r, c)].Value()
			xv, _ := xcRes.Solutions[0].Cells[xcRes.Solutions[0].CellIndex(r, c)].Value()
			if ev != bv || ev != xv {
				t.Errorf("cell (%d,%d) disagrees across methods: elimination=%d backtracking=%d exactcover=%d", r, c, ev, bv, xv)
			}
		}
	}
}

func TestResultExitCode(t *testing.T) {
	// spec.md §6: 0 no solution, 1 elimination solved without hypothesis,
	// 2 elimination required hypothesis (or pure backtracking), 3 exact
	// cover. NoSolution and Invalid both collapse to the same "NONE"
	// result and so share exit code 0.
	tests := []struct {
		name string
		res  Result
		want int
	}{
		{"no solution", Result{Outcome: NoSolution}, 0},
		{"invalid input", Result{Outcome: Invalid}, 0},
		{"elimination without hypothesis", Result{Outcome: Solved, MethodUsed: Elimination}, 1},
		{"elimination with hypothesis promotes to backtracking", Result{Outcome: Solved, MethodUsed: Backtracking}, 2},
		{"pure backtracking", Result{Outcome: Solved, MethodUsed: Backtracking}, 2},
		{"exact cover", Result{Outcome: Solved, MethodUsed: ExactCover}, 3},
	}
	for _, tt := range tests {
		if got := tt.res.ExitCode(); got != tt.want {
			t.Errorf("%s: ExitCode() = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSolveNorvigHardestPromotesToBacktracking(t *testing.T) {
	// spec.md §8 scenario #1: exactly one solution, and ELIMINATION returns
	// BACKTRACKING because propagation alone can't finish it.
	given := [][]int{
		{8, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 3, 6, 0, 0, 0, 0, 0},
		{0, 7, 0, 0, 9, 0, 2, 0, 0},
		{0, 5, 0, 0, 0, 7, 0, 0, 0},
		{0, 0, 0, 0, 4, 5, 7, 0, 0},
		{0, 0, 0, 1, 0, 0, 0, 3, 0},
		{0, 0, 1, 0, 0, 0, 0, 6, 8},
		{0, 0, 8, 5, 0, 0, 0, 1, 0},
		{0, 9, 0, 0, 0, 0, 4, 0, 0},
	}
	res, err := Solve(3, given, Elimination, First)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if res.Outcome != Solved {
		t.Fatalf("Outcome = %v, want Solved", res.Outcome)
	}
	if len(res.Solutions) != 1 {
		t.Fatalf("len(Solutions) = %d, want exactly 1", len(res.Solutions))
	}
	if res.Stats.HypothesisCount == 0 {
		t.Error("HypothesisCount = 0, want at least one hypothesis branch for this puzzle")
	}
	if res.MethodUsed != Backtracking {
		t.Errorf("MethodUsed = %v, want Backtracking (elimination promotes when hypothesis is used)", res.MethodUsed)
	}
	if res.ExitCode() != 2 {
		t.Errorf("ExitCode() = %d, want 2", res.ExitCode())
	}
}
