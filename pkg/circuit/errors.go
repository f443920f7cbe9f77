package circuit

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrZeroLiteral is the panic value when a caller passes the literal 0
// to an operation that requires a circuit variable — a caller-side
// program error, not a solver condition.
var ErrZeroLiteral = errors.New("circuit: 0 is not a valid literal")

// ErrNotSolved is returned by Val when no successful Solve has run
// yet, or the most recent Solve returned Unknown. Bindings are
// expected to convert this to a user-visible exception; the graph
// itself does not crash.
var ErrNotSolved = errors.New("circuit: no satisfying solution is available")

// UnknownVariable is the panic value when a caller references a
// circuit variable magnitude that was never minted by this graph.
type UnknownVariable Lit

func (e UnknownVariable) Error() string {
	return fmt.Sprintf("circuit: variable %d was never minted by this graph", Lit(e))
}

// internalError aggregates invariant violations the graph detects in
// itself: if this is ever non-empty it indicates a bug in this
// package, not in caller input.
type internalError []error

func (internalError) Error() string {
	return "circuit: internal invariant violation"
}

func (e internalError) orNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
