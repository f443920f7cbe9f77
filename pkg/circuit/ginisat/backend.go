// Package ginisat adapts github.com/go-air/gini to the circuit.Backend
// contract: translate circuit.Lit to gini's z.Lit, push raw clauses
// through gini's Add/terminator convention, and read results back out
// through Solve/Value/Why.
package ginisat

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/cipherboy/cmsh/pkg/circuit"
)

const (
	giniSat     = 1
	giniUnsat   = -1
	giniUnknown = 0
)

// Backend is a circuit.Backend implementation over *gini.Gini.
//
// gini has no native worker-thread pool or on-the-fly Gaussian
// elimination over XOR clauses (those are CryptoMiniSat-specific
// features, the backend the original cmsh project wrapped);
// SetNumThreads and SetAllowOTFGauss are accepted and recorded but do
// not change gini's behavior. SetMaxConflicts is likewise recorded
// but not enforced: gini does not expose a conflict-count budget on
// its public Solve path, only a blocking Solve(); only SetMaxTime is
// actually enforced here, via a wall-clock deadline around the
// (otherwise blocking) Solve call.
type Backend struct {
	g *gini.Gini

	nvars int

	timeout      time.Duration
	maxConflicts int64
	threads      int
	otfGauss     bool
}

// New constructs a Backend over a fresh gini solver instance.
func New() *Backend {
	return &Backend{g: gini.New()}
}

func toZ(m circuit.Lit) z.Lit {
	lit := z.Var(int(m.Var())).Pos()
	if m.Sign() < 0 {
		return lit.Not()
	}
	return lit
}

func fromZ(m z.Lit) circuit.Lit {
	v := circuit.Lit(m.Var())
	if m.Sign() < 0 {
		return -v
	}
	return v
}

func (b *Backend) NewVars(n int) {
	b.nvars += n
}

func (b *Backend) NVars() int {
	return b.nvars
}

func (b *Backend) AddClause(lits []circuit.Lit) {
	for _, m := range lits {
		b.g.Add(toZ(m))
	}
	b.g.Add(z.LitNull)
}

func (b *Backend) Solve(assumptions []circuit.Lit) circuit.Outcome {
	if len(assumptions) > 0 {
		ms := make([]z.Lit, len(assumptions))
		for i, m := range assumptions {
			ms[i] = toZ(m)
		}
		b.g.Assume(ms...)
	}

	if b.timeout <= 0 {
		return outcomeOf(b.g.Solve())
	}

	result := make(chan int, 1)
	go func() { result <- b.g.Solve() }()
	select {
	case r := <-result:
		return outcomeOf(r)
	case <-time.After(b.timeout):
		return circuit.Unknown
	}
}

func outcomeOf(r int) circuit.Outcome {
	switch r {
	case giniSat:
		return circuit.Sat
	case giniUnsat:
		return circuit.Unsat
	default:
		return circuit.Unknown
	}
}

func (b *Backend) Model() []circuit.TriBool {
	model := make([]circuit.TriBool, b.nvars+1)
	for v := 1; v <= b.nvars; v++ {
		lit := z.Var(v).Pos()
		if b.g.Value(lit) {
			model[v] = circuit.True
		} else {
			model[v] = circuit.False
		}
	}
	return model
}

func (b *Backend) Conflict() []circuit.Lit {
	whys := b.g.Why(nil)
	if len(whys) == 0 {
		return nil
	}
	out := make([]circuit.Lit, len(whys))
	for i, w := range whys {
		out[i] = fromZ(w)
	}
	return out
}

func (b *Backend) SetMaxTime(seconds float64) {
	if seconds <= 0 {
		b.timeout = 0
		return
	}
	b.timeout = time.Duration(seconds * float64(time.Second))
}

func (b *Backend) SetMaxConflicts(count int64) {
	b.maxConflicts = count
}

func (b *Backend) SetNumThreads(n int) {
	b.threads = n
}

func (b *Backend) SetAllowOTFGauss(allow bool) {
	b.otfGauss = allow
}

var _ circuit.Backend = (*Backend)(nil)
