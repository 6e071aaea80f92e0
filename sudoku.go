// Package sudoku is a constraint-propagation and search engine for square
// Sudoku grids of order S in {2,3,4,5} (N = S^2 candidate values). Three
// independent solvers share one grid model and observer bus: Elimination
// (a human-style logical reasoner with a recursive hypothesis fallback),
// Backtracking (a reference brute-force depth-first search), and
// ExactCover (a Dancing Links / Algorithm X encoding).
package sudoku

import (
	"errors"
	"fmt"

	"github.com/sudokulab/engine/internal/backtrack"
	"github.com/sudokulab/engine/internal/elimination"
	"github.com/sudokulab/engine/internal/exactcover"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

// Method selects which solver runs the grid.
type Method int

const (
	// Elimination runs the human-style logical reasoner, falling back to
	// recursive hypothesis when propagation stalls.
	Elimination Method = iota
	// Backtracking runs the plain depth-first reference solver.
	Backtracking
	// ExactCover encodes the grid as a Dancing Links exact-cover problem.
	ExactCover
)

func (m Method) String() string {
	switch m {
	case Elimination:
		return "elimination"
	case Backtracking:
		return "backtracking"
	case ExactCover:
		return "exact-cover"
	default:
		return "unknown"
	}
}

// Mode selects how many solutions to search for.
type Mode int

const (
	// First stops at the first solution found.
	First Mode = iota
	// All exhausts the search and returns every distinct solution.
	All
)

// Outcome classifies the result of a solve: Solved means Result.Solutions
// holds at least one grid, NoSolution means the input was accepted but the
// search finished without finding a solution (propagation or search proved
// the grid contradictory), and Invalid
// means the input itself was rejected before any solving began. Per
// spec.md §6/§7, both NoSolution and Invalid collapse to the same "NONE"
// result and the same exit code — see Result.ExitCode.
type Outcome int

const (
	Solved Outcome = iota
	NoSolution
	Invalid
)

// Result is the outcome of one Solve call.
type Result struct {
	Outcome Outcome
	// MethodUsed is the method that actually terminated the solve (spec.md
	// §6: "solve(initial, method, mode) -> method_actually_used"). It
	// matches the requested Method except when Elimination falls back to
	// recursive hypothesis, which promotes MethodUsed to Backtracking —
	// the hypothesis step *is* a backtracking search, so the method that
	// actually found the solution was backtracking, not pure propagation.
	// MethodUsed is meaningless (left zero) when Outcome != Solved.
	MethodUsed Method
	Solutions  []*gridmodel.Grid
	Stats      Stats
}

// ExitCode maps the result onto the process exit code contract spec.md §6
// describes: 0 when no solution was found (covering both Invalid input and
// a proven-unsolvable grid — spec.md §7 surfaces both as the same "NONE"
// result), 1 when elimination solved the grid by propagation alone, 2 when
// elimination required at least one hypothesis branch or the Backtracking
// method was used directly, 3 for the exact-cover method. Resource-fatal
// conditions (§7) are signaled by this package panicking rather than
// returning, so code 2's reservation in some CLI conventions never applies
// here.
func (r Result) ExitCode() int {
	if r.Outcome != Solved {
		return 0
	}
	switch r.MethodUsed {
	case Elimination:
		return 1
	case Backtracking:
		return 2
	case ExactCover:
		return 3
	default:
		return 0
	}
}

// Stats reports whichever counters the chosen Method produced; fields that
// don't apply to the method that ran are left zero.
type Stats struct {
	RegionEliminations       int
	LineEliminations         int
	IntersectionEliminations int
	HypothesisCount          int
	MaxDepth                 int
	NodesVisited             int
}

// ErrInvalidInput is returned (wrapped) when the given values fail basic
// validation — out of range, or two givens already conflicting (spec.md §7
// Input-invalid).
var ErrInvalidInput = errors.New("sudoku: invalid input")

// Option configures a Solve call.
type Option func(*options)

type options struct {
	bus *obs.Bus
}

// WithBus threads an explicit *obs.Bus through the solve (spec.md §9:
// "re-scope to a per-solve observer context passed through the solver as
// an explicit argument"). Without this option, no events are published —
// callers that want the package-level default bus pass WithBus(obs.Default).
func WithBus(bus *obs.Bus) Option {
	return func(o *options) { o.bus = bus }
}

// Solve is the public entry point (spec.md §6): initial is an S^2 x S^2
// grid of 0 (empty) or 1..N givens. It validates and builds the grid, then
// dispatches to the chosen Method and Mode.
func Solve(s int, initial [][]int, method Method, mode Mode, opts ...Option) (Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g, err := gridmodel.Build(s, initial)
	if err != nil {
		return Result{Outcome: Invalid}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if g.IsInvalid() {
		return Result{Outcome: Invalid}, fmt.Errorf("%w: grid already violates a region constraint", ErrInvalidInput)
	}

	switch method {
	case Elimination:
		return solveElimination(g, mode, o.bus), nil
	case Backtracking:
		return solveBacktracking(g, mode, o.bus), nil
	case ExactCover:
		return solveExactCover(g, mode, o.bus), nil
	default:
		panic(fmt.Sprintf("sudoku: unknown method %v", method))
	}
}

func solveElimination(g *gridmodel.Grid, mode Mode, bus *obs.Bus) Result {
	d := &elimination.Driver{Mode: elimination.Mode(mode), Bus: bus}
	stats := d.Solve(g)
	res := Result{
		Solutions: stats.Solutions,
		Stats: Stats{
			RegionEliminations:       stats.RegionEliminations,
			LineEliminations:         stats.LineEliminations,
			IntersectionEliminations: stats.IntersectionEliminations,
			HypothesisCount:          stats.HypothesisCount,
			MaxDepth:                 stats.MaxDepth,
		},
	}
	if len(res.Solutions) == 0 {
		res.Outcome = NoSolution
		return res
	}
	res.Outcome = Solved
	if stats.HypothesisCount > 0 {
		// The hypothesis fallback is itself a backtracking search, so the
		// method that actually found the solution was backtracking
		// (spec.md §6: "elimination may promote to BACKTRACKING if
		// hypothesis was used").
		res.MethodUsed = Backtracking
	} else {
		res.MethodUsed = Elimination
	}
	return res
}

func solveBacktracking(g *gridmodel.Grid, mode Mode, bus *obs.Bus) Result {
	s := &backtrack.Solver{Mode: backtrack.Mode(mode), Bus: bus}
	stats := s.Solve(g)
	res := Result{
		Solutions: stats.Solutions,
		Stats:     Stats{NodesVisited: stats.NodesVisited},
	}
	if len(res.Solutions) == 0 {
		res.Outcome = NoSolution
		return res
	}
	res.Outcome = Solved
	res.MethodUsed = Backtracking
	return res
}

func solveExactCover(g *gridmodel.Grid, mode Mode, bus *obs.Bus) Result {
	stats := exactcover.Solve(g, exactcover.Mode(mode), bus)
	res := Result{
		Solutions: stats.Solutions,
		Stats:     Stats{NodesVisited: stats.NodesVisited},
	}
	if len(res.Solutions) == 0 {
		res.Outcome = NoSolution
		return res
	}
	res.Outcome = Solved
	res.MethodUsed = ExactCover
	return res
}
