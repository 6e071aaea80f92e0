package obs

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// initColor, changeColor, and solvedColor pick the teacher's progress color for each event kind
// (internal/solver/print.go uses color.Yellow for all progress lines; here
// SOLVED gets its own color since it is the more interesting terminal
// state).
var (
	initColor   = color.New(color.FgYellow)
	changeColor = color.New(color.FgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiGreen)
)

// NewColorGridSink returns a GridSink that writes a one-line progress
// message per event to stderr, colorized the way the teacher's
// printProgress does (internal/solver/print.go).
func NewColorGridSink() GridSink {
	return func(ev GridEvent) {
		switch ev.Kind {
		case INIT:
			initColor.Fprintf(os.Stderr, "init: depth=%d\n", ev.Depth)
		case CHANGE:
			changeColor.Fprintf(os.Stderr, "change: depth=%d\n", ev.Depth)
		case SOLVED:
			solvedColor.Fprintf(os.Stderr, "solved: depth=%d\n", ev.Depth)
		}
	}
}

// NewColorMessageSink returns a MessageSink that writes each rule-trace
// message to stderr, filtering to at most the given verbosity (spec.md
// §4.9).
func NewColorMessageSink(max Verbosity) MessageSink {
	return func(msg Message) {
		if msg.Verbosity > max {
			return
		}
		fmt.Fprintln(os.Stderr, color.YellowString(msg.Text))
	}
}
