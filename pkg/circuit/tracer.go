package circuit

import (
	"fmt"
	"io"
)

// SolveAttempt describes a single Solve call for the benefit of a
// Tracer: the assumption literals in effect and the outcome reached.
type SolveAttempt interface {
	Assumptions() []Lit
	Outcome() Outcome
}

// Tracer observes Solve attempts. There is no backtracking search in
// this package to trace positions within, so a Tracer here simply
// observes each top-level Solve call.
type Tracer interface {
	Trace(a SolveAttempt)
}

// DefaultTracer discards every trace.
type DefaultTracer struct{}

func (DefaultTracer) Trace(SolveAttempt) {}

// LoggingTracer writes a human-readable line per Solve attempt.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(a SolveAttempt) {
	fmt.Fprintf(t.Writer, "solve: %d assumptions -> %s\n", len(a.Assumptions()), a.Outcome())
}

type solveAttempt struct {
	assumptions []Lit
	outcome     Outcome
}

func (a solveAttempt) Assumptions() []Lit { return a.assumptions }
func (a solveAttempt) Outcome() Outcome   { return a.outcome }
