package circuit

import "github.com/bits-and-blooms/bitset"

// addReachable walks the gate graph backwards from start (spec
// §4.5), assigning CNF literals to every gate it first encounters and
// staging its Tseitin clauses, then emits those clauses only after
// notifying the backend of the new variable high-water mark — clause
// emission before variable notification is unsupported on some
// backends.
//
// Calling addReachable again from the same (or an already-subsumed)
// root is a no-op: every gate it would re-visit is already encoded.
func (g *Graph) addReachable(start Lit) {
	n := uint(g.vars.numCVs() + 1)
	visited := bitset.New(n)
	queue := append(g.encodeQueue[:0], start.Var())
	stage := g.stage[:0]

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if visited.Test(uint(v)) {
			continue
		}
		visited.Set(uint(v))

		gt, isGate := g.valueIndex[v]
		if !isGate {
			continue
		}
		if !gt.encoded() {
			gt.cnfLeft = g.vars.cnfOf(gt.left)
			gt.cnfRight = g.vars.cnfOf(gt.right)
			gt.cnfValue = g.vars.cnfOf(gt.value)
			stage = append(stage, gt)
		}
		if lv := gt.left.Var(); !visited.Test(uint(lv)) {
			queue = append(queue, lv)
		}
		if rv := gt.right.Var(); !visited.Test(uint(rv)) {
			queue = append(queue, rv)
		}
	}

	g.encodeQueue = queue
	g.stage = stage

	if delta := int(g.vars.maxNV()) - g.backend.NVars(); delta > 0 {
		g.backend.NewVars(delta)
	}
	for _, gt := range stage {
		for _, clause := range gt.tseitinClauses() {
			g.backend.AddClause(clause)
		}
	}
	if len(stage) > 0 {
		g.logger.WithField("gates", len(stage)).Debug("circuit: encoded reachable gates")
	}
}
