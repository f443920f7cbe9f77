package circuit

import (
	"github.com/sirupsen/logrus"
)

// Graph is the owning container of a circuit: every minted variable,
// every gate, the assertion/assumption sets, the variable manager
// bridging the circuit and CNF namespaces, and (once Solve has
// succeeded) the solution map. A Graph is not safe for concurrent use.
type Graph struct {
	vars *varManager

	gates        []*gate
	valueIndex   map[Lit]*gate   // +cv (gate output) -> gate
	operandIndex map[Lit][]*gate // +cv (operand) -> gates referencing it

	asserts *assertionSet
	assumes *assumptionSet

	solution map[Lit]bool
	solved   bool // true only while the most recent Solve returned Sat

	backend Backend
	logger  logrus.FieldLogger
	tracer  Tracer

	// scratch queues, reused across encode/extend calls to avoid
	// reallocating on every Solve; never aliased with each other.
	encodeQueue []Lit
	stage       []*gate
	extendQueue []Lit

	cfg config
	err internalError
}

type config struct {
	timeoutSeconds float64
	maxConflicts   int64
	threads        int
	otfGauss       bool
}

// Option configures a Graph at construction time via the functional
// options pattern.
type Option func(*Graph)

// WithBackend supplies the SAT backend to drive. Required; NewGraph
// panics if no backend is supplied.
func WithBackend(b Backend) Option {
	return func(g *Graph) { g.backend = b }
}

// WithLogger supplies a structured logger. Defaults to
// logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(g *Graph) { g.logger = l }
}

// WithTracer supplies a Tracer observing Solve attempts. Defaults to
// DefaultTracer{}.
func WithTracer(t Tracer) Option {
	return func(g *Graph) { g.tracer = t }
}

// WithTimeout bounds each Solve call by wall-clock seconds. A
// non-positive value (the default) means unlimited.
func WithTimeout(seconds float64) Option {
	return func(g *Graph) { g.cfg.timeoutSeconds = seconds }
}

// WithConflictBudget bounds each Solve call by conflict count. A
// negative value (the default) means unlimited.
func WithConflictBudget(count int64) Option {
	return func(g *Graph) { g.cfg.maxConflicts = count }
}

// WithThreads configures the backend's worker thread count. Must be
// set before the graph's first clause is emitted, i.e. passed to
// NewGraph rather than changed afterward.
func WithThreads(n int) Option {
	return func(g *Graph) { g.cfg.threads = n }
}

// WithOTFGaussElim toggles on-the-fly Gaussian elimination on
// backends that support it.
func WithOTFGaussElim(allow bool) Option {
	return func(g *Graph) { g.cfg.otfGauss = allow }
}

// NewGraph constructs an empty circuit over the given backend.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		vars:         newVarManager(),
		valueIndex:   make(map[Lit]*gate),
		operandIndex: make(map[Lit][]*gate),
		asserts:      newAssertionSet(),
		assumes:      newAssumptionSet(),
		solution:     make(map[Lit]bool),
		logger:       logrus.StandardLogger(),
		tracer:       DefaultTracer{},
		cfg: config{
			timeoutSeconds: -1,
			maxConflicts:   -1,
			threads:        1,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.backend == nil {
		panic("circuit: NewGraph requires WithBackend")
	}
	g.backend.SetNumThreads(g.cfg.threads)
	g.backend.SetAllowOTFGauss(g.cfg.otfGauss)
	g.backend.SetMaxTime(g.cfg.timeoutSeconds)
	g.backend.SetMaxConflicts(g.cfg.maxConflicts)
	return g
}

// Var mints and returns a fresh, unconstrained circuit variable.
func (g *Graph) Var() Lit {
	v := g.vars.fresh()
	g.operandIndex[v] = nil
	return v
}

func (g *Graph) requireMinted(m Lit) {
	if m == LitNull {
		panic(ErrZeroLiteral)
	}
	v := m.Var()
	if v >= g.vars.nextCV {
		panic(UnknownVariable(v))
	}
}

// intern is the gate graph's sole construction path: canonicalize,
// dedup against the smaller operand bucket, or mint and register a
// new gate.
func (g *Graph) intern(op Op, left, right Lit) Lit {
	g.requireMinted(left)
	g.requireMinted(right)

	l, r := canon(left, right)

	bucketL := g.operandIndex[l.Var()]
	bucketR := g.operandIndex[r.Var()]
	bucket := bucketL
	if len(bucketR) < len(bucketL) {
		bucket = bucketR
	}
	for _, candidate := range bucket {
		if candidate.matches(l, op, r) {
			return candidate.value
		}
	}

	value := g.vars.fresh()
	gt := newGate(l, op, r, value)
	g.gates = append(g.gates, gt)
	g.valueIndex[value] = gt
	g.operandIndex[value] = nil
	g.operandIndex[l.Var()] = append(g.operandIndex[l.Var()], gt)
	g.operandIndex[r.Var()] = append(g.operandIndex[r.Var()], gt)

	g.internExtend(gt)

	return value
}

// And interns an AND gate and returns its output literal.
func (g *Graph) And(l, r Lit) Lit { return g.intern(AndOp, l, r) }

// Nand interns a NAND gate and returns its output literal.
func (g *Graph) Nand(l, r Lit) Lit { return g.intern(NandOp, l, r) }

// Or interns an OR gate and returns its output literal.
func (g *Graph) Or(l, r Lit) Lit { return g.intern(OrOp, l, r) }

// Nor interns a NOR gate and returns its output literal.
func (g *Graph) Nor(l, r Lit) Lit { return g.intern(NorOp, l, r) }

// Xor interns an XOR gate and returns its output literal.
func (g *Graph) Xor(l, r Lit) Lit { return g.intern(XorOp, l, r) }

// Close releases the backend if it supports it.
func (g *Graph) Close() error {
	if c, ok := g.backend.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
