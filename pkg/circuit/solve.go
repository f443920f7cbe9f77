package circuit

import "fmt"

// Assert adds cv as a unit fact: translates it to a signed CNF
// literal (minting one if necessary), records it in the (monotone)
// assertion set, and immediately triggers reachability encoding from
// it.
func (g *Graph) Assert(cv Lit) {
	g.requireMinted(cv)
	nv := g.vars.cnfOf(cv)
	g.asserts.Add(nv)
	g.addReachable(cv)
}

// AssertMany asserts every literal in cvs, in order.
func (g *Graph) AssertMany(cvs []Lit) {
	for _, cv := range cvs {
		g.Assert(cv)
	}
}

// Assume adds cv as a per-solve hypothesis. Unlike Assert, this does
// not trigger encoding immediately; assumption-reachable gates are
// encoded at Solve time, since an assumption may be withdrawn before
// ever being solved over.
func (g *Graph) Assume(cv Lit) {
	g.requireMinted(cv)
	nv := g.vars.cnfOf(cv)
	g.assumes.Add(nv)
}

// Unassume removes cv's underlying variable from the assumption set,
// erasing both polarities. A no-op if cv was never assumed, or never
// even translated to a CNF literal.
func (g *Graph) Unassume(cv Lit) {
	g.requireMinted(cv)
	nv := g.vars.peekCNFOf(cv.Var())
	if nv == LitNull {
		return
	}
	g.assumes.Unassume(nv)
}

// Solve runs the solve driver: emit unit clauses for every assertion,
// encode every assumption-reachable subgraph, invoke the backend under
// the current assumption set, and — on Sat — run the solution
// extender so unencoded gates become queryable too.
//
// onlyIndep is accepted and ignored: it is neither recorded nor
// passed to the backend, since the Backend contract's Solve takes
// only the assumption literals.
func (g *Graph) Solve(onlyIndep bool) Outcome {
	_ = onlyIndep

	for _, nv := range g.asserts.Slice() {
		g.backend.AddClause([]Lit{nv})
	}

	assumptions := make([]Lit, 0, g.assumes.Len())
	for _, nv := range g.assumes.Slice() {
		g.addReachable(g.vars.cvOf(nv.Var()))
		assumptions = append(assumptions, nv)
	}

	outcome := g.backend.Solve(assumptions)
	g.tracer.Trace(solveAttempt{assumptions: assumptions, outcome: outcome})
	g.logger.WithField("outcome", outcome.String()).Debug("circuit: solve finished")

	g.solved = outcome == Sat
	if g.solved {
		model := g.backend.Model()
		if len(model) < int(g.vars.maxNV())+1 {
			g.err = append(g.err, fmt.Errorf("circuit: backend model length %d shorter than allocated CNF vars %d", len(model), g.vars.maxNV()))
		} else {
			g.seedSolution(model)
			g.extendSolution()
		}
	}
	return outcome
}

// Err reports any internal invariant violation this graph has detected
// in itself. A non-nil return means this package has a bug; it is
// never caused by caller input.
func (g *Graph) Err() error {
	return g.err.orNil()
}

// Val returns the boolean value of cv under the most recent
// successful solve. It returns ErrNotSolved if Solve has not returned
// Sat, and false, false if cv is unreachable from both the assertion
// closure and the extend-solution closure (a legitimate "no value"
// outcome, not an error).
func (g *Graph) Val(cv Lit) (value bool, ok bool, err error) {
	g.requireMinted(cv)
	if !g.solved {
		return false, false, ErrNotSolved
	}
	v, ok := g.solution[cv.Var()]
	if !ok {
		return false, false, nil
	}
	if cv.Sign() < 0 {
		v = !v
	}
	return v, true, nil
}

// Cnf returns the CNF literal bound to cv, or LitNull if cv has never
// been reached by any assert or assume.
func (g *Graph) Cnf(cv Lit) Lit {
	g.requireMinted(cv)
	nv := g.vars.peekCNFOf(cv.Var())
	if nv == LitNull {
		return LitNull
	}
	if cv.Sign() < 0 {
		return -nv
	}
	return nv
}

// Stats reports circuit- and CNF-level sizes.
type Stats struct {
	NumVars       int
	NumGates      int
	NumCNFVars    int
	NumCNFClauses int
}

func (s Stats) String() string {
	return fmt.Sprintf("vars=%d gates=%d cnfVars=%d cnfClauses=%d",
		s.NumVars, s.NumGates, s.NumCNFVars, s.NumCNFClauses)
}

// Stats returns current counts of circuit variables, gates, CNF
// variables, and staged CNF clauses (3 per AND/NAND/OR/NOR gate, 4 per
// XOR gate, counting only gates that have actually been encoded).
func (g *Graph) Stats() Stats {
	clauses := 0
	for _, gt := range g.gates {
		if !gt.encoded() {
			continue
		}
		if gt.op == XorOp {
			clauses += 4
		} else {
			clauses += 3
		}
	}
	return Stats{
		NumVars:       g.vars.numCVs(),
		NumGates:      len(g.gates),
		NumCNFVars:    int(g.vars.maxNV()),
		NumCNFClauses: clauses,
	}
}
