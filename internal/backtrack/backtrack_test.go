package backtrack

import (
	"testing"

	"github.com/sudokulab/engine/internal/gridmodel"
)

func TestSolveSimple4x4(t *testing.T) {
	given := [][]int{
		{1, 0, 0, 4},
		{0, 4, 1, 0},
		{0, 1, 4, 0},
		{4, 0, 0, 1},
	}
	g, err := gridmodel.Build(2, given)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := &Solver{Mode: First}
	stats := s.Solve(g)
	if len(stats.Solutions) != 1 {
		t.Fatalf("len(Solutions) = %d, want 1", len(stats.Solutions))
	}
	if !stats.Solutions[0].IsSolved() {
		t.Error("solution not actually solved")
	}
}

func TestSolveAllModeOnEmptyGridFindsMany(t *testing.T) {
	given := make([][]int, 4)
	for r := range given {
		given[r] = make([]int, 4)
	}
	given[0][0] = 1
	g, err := gridmodel.Build(2, given)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	s := &Solver{Mode: All}
	stats := s.Solve(g)
	if len(stats.Solutions) < 2 {
		t.Fatalf("len(Solutions) = %d, want at least 2", len(stats.Solutions))
	}
}

func TestSolveContradictionYieldsNoSolution(t *testing.T) {
	given := make([][]int, 4)
	for r := range given {
		given[r] = make([]int, 4)
	}
	g, err := gridmodel.Build(2, given)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	g.Cells[0].Mask = 0
	s := &Solver{Mode: First}
	stats := s.Solve(g)
	if len(stats.Solutions) != 0 {
		t.Error("expected no solutions when a cell starts contradictory")
	}
}

func TestCanPlaceRejectsBoxConflict(t *testing.T) {
	given := make([][]int, 4)
	for r := range given {
		given[r] = make([]int, 4)
	}
	given[0][0] = 1
	g, err := gridmodel.Build(2, given)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if canPlace(g, 1, 1, 1) {
		t.Error("canPlace should reject placing 1 at (1,1): shares box 0 with the given at (0,0)")
	}
}
