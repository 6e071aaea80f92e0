// Command sudoku reads a grid from stdin and solves it using one of the
// three engines in this module.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sudokulab/engine"
	"github.com/sudokulab/engine/internal/gridmodel"
	"github.com/sudokulab/engine/internal/obs"
)

func main() {
	s := flag.Int("s", 3, "grid order S (N=S^2 candidate values); supported range 2..5")
	methodName := flag.String("method", "elimination", "solver to use: elimination, backtracking, or exact-cover")
	allSolutions := flag.Bool("all", false, "find every solution instead of stopping at the first")
	trace := flag.Bool("trace", false, "print rule-trace messages and grid-lifecycle events to stderr as the solve runs")
	verbose := flag.Bool("verbose", false, "with -trace, include Verbose-level rule-trace messages")
	flag.Parse()

	if *trace {
		gridTok := obs.Default.OnGrid(obs.KindAll, obs.NewColorGridSink())
		maxVerbosity := obs.Quiet
		if *verbose {
			maxVerbosity = obs.Verbose
		}
		msgTok := obs.Default.OnMessage(obs.NewColorMessageSink(maxVerbosity))
		defer func() {
			obs.Default.OffGrid(obs.KindAll, gridTok)
			obs.Default.OffMessage(msgTok)
		}()
	}

	method, err := parseMethod(*methodName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if isStdinTTY() {
		n := *s * *s
		fmt.Printf("Enter the initial board as %d lines of %d characters.\n", n, n)
		fmt.Println("Use '.' or '0' for empty cells; digits 1-9 then a-z then @ for larger grids.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku: reading stdin:", err)
		os.Exit(2)
	}

	given, err := gridmodel.ParseText(*s, string(text))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}

	mode := sudoku.First
	if *allSolutions {
		mode = sudoku.All
	}

	res, err := sudoku.Solve(*s, given, method, mode, sudoku.WithBus(obs.Default))
	if err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(res.ExitCode())
	}

	switch res.Outcome {
	case sudoku.Solved:
		color.HiWhite("\nSolution: (method used: %s)", res.MethodUsed)
	default:
		color.HiWhite("\nNo solution found.")
	}
	for i, sol := range res.Solutions {
		if len(res.Solutions) > 1 {
			fmt.Printf("\n--- Solution %d ---\n", i+1)
		}
		sol.Print()
	}

	os.Exit(res.ExitCode())
}

func parseMethod(name string) (sudoku.Method, error) {
	switch name {
	case "elimination":
		return sudoku.Elimination, nil
	case "backtracking":
		return sudoku.Backtracking, nil
	case "exact-cover":
		return sudoku.ExactCover, nil
	default:
		return 0, fmt.Errorf("sudoku: unknown -method %q (want elimination, backtracking, or exact-cover)", name)
	}
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
