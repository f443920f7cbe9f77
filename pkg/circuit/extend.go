package circuit

import "github.com/bits-and-blooms/bitset"

// seedSolution replaces solution with the backend's model
// immediately after a Sat result: values from any earlier solve are
// dropped, then every allocated positive nv with a definite
// (non-Undef) value contributes solution[cv] = value.
func (g *Graph) seedSolution(model []TriBool) {
	clear(g.solution)
	for cv, nv := range g.vars.cvToNV {
		idx := int(nv)
		if idx < 0 || idx >= len(model) {
			continue
		}
		switch model[idx] {
		case True:
			g.solution[cv] = true
		case False:
			g.solution[cv] = false
		}
	}
}

// extendSolution closes the solution over gates that were never
// reached by the encoder: it propagates known values across the full
// gate graph, including unencoded subgraphs, until no further gate can
// be resolved.
//
// Implementation note: rather than a single visited-on-dequeue BFS
// (which would permanently drop a node reached before its value was
// known), this uses a worklist of "values that just became known",
// re-triggering each consuming gate whenever one of its operands
// newly gains a value. Since solution only grows monotonically and
// every cv is assigned at most once, this always terminates and
// reaches the full closure described by property 5.
func (g *Graph) extendSolution() {
	n := uint(g.vars.numCVs() + 1)
	queued := bitset.New(n)
	queue := g.extendQueue[:0]

	enqueue := func(v Lit) {
		if !queued.Test(uint(v)) {
			queued.Set(uint(v))
			queue = append(queue, v)
		}
	}

	for cv := range g.solution {
		enqueue(cv)
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		queued.Clear(uint(v))

		for _, gt := range g.operandIndex[v] {
			if _, done := g.solution[gt.value]; done {
				continue
			}
			lv, lok := g.solution[gt.left.Var()]
			rv, rok := g.solution[gt.right.Var()]
			if !lok || !rok {
				continue
			}
			g.solution[gt.value] = gt.eval(lv, rv)
			enqueue(gt.value)
		}
	}

	g.extendQueue = queue
}

// internExtend opportunistically evaluates a freshly interned gate if
// a solution is already present and both its operands are already
// valued. This gives a cv queried immediately after construction the
// same value it would have after a fresh extendSolution pass.
func (g *Graph) internExtend(gt *gate) {
	if len(g.solution) == 0 {
		return
	}
	lv, lok := g.solution[gt.left.Var()]
	if !lok {
		return
	}
	rv, rok := g.solution[gt.right.Var()]
	if !rok {
		return
	}
	if _, done := g.solution[gt.value]; done {
		return
	}
	g.solution[gt.value] = gt.eval(lv, rv)
}
