package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherboy/cmsh/pkg/circuit"
	"github.com/cipherboy/cmsh/pkg/circuit/ginisat"
)

func newTestGraph(t *testing.T) *circuit.Graph {
	t.Helper()
	return circuit.NewGraph(circuit.WithBackend(ginisat.New()))
}

func TestDedup(t *testing.T) {
	type tc struct {
		Name string
		Op   func(g *circuit.Graph, l, r circuit.Lit) circuit.Lit
		L1   func(l, m circuit.Lit) circuit.Lit
		R1   func(l, m circuit.Lit) circuit.Lit
		L2   func(l, m circuit.Lit) circuit.Lit
		R2   func(l, m circuit.Lit) circuit.Lit
		Same bool
	}
	id := func(l, m circuit.Lit) circuit.Lit { return l }
	other := func(l, m circuit.Lit) circuit.Lit { return m }
	neg := func(l, m circuit.Lit) circuit.Lit { return l.Not() }

	for _, tt := range []tc{
		{Name: "and commutes", Op: (*circuit.Graph).And, L1: id, R1: other, L2: other, R2: id, Same: true},
		{Name: "or commutes", Op: (*circuit.Graph).Or, L1: id, R1: other, L2: other, R2: id, Same: true},
		{Name: "xor commutes", Op: (*circuit.Graph).Xor, L1: id, R1: other, L2: other, R2: id, Same: true},
		{Name: "and(-l,r) == and(r,-l)", Op: (*circuit.Graph).And, L1: neg, R1: other, L2: other, R2: neg, Same: true},
		{Name: "and(l,r) != and(-l,r)", Op: (*circuit.Graph).And, L1: id, R1: other, L2: neg, R2: other, Same: false},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			g := newTestGraph(t)
			l, r := g.Var(), g.Var()
			x1 := tt.Op(g, tt.L1(l, r), tt.R1(l, r))
			x2 := tt.Op(g, tt.L2(l, r), tt.R2(l, r))
			if tt.Same {
				assert.Equal(t, x1, x2)
			} else {
				assert.NotEqual(t, x1, x2)
			}
		})
	}
}

func TestSignPreservation(t *testing.T) {
	g := newTestGraph(t)
	l1, l2, l3 := g.Var(), g.Var(), g.Var()
	r1 := g.And(l1, l2)
	r2 := g.Or(r1, l3)

	g.Assert(r1.Not())
	g.Assert(r2)
	require.Equal(t, circuit.Sat, g.Solve(false))

	for _, m := range []circuit.Lit{l1, l2, l3, r1, r2} {
		v, ok, err := g.Val(m)
		require.NoError(t, err)
		if !ok {
			continue
		}
		notV, notOk, err := g.Val(m.Not())
		require.NoError(t, err)
		require.True(t, notOk)
		assert.Equal(t, !v, notV)
	}
}

func TestBijection(t *testing.T) {
	g := newTestGraph(t)
	l1, l2 := g.Var(), g.Var()
	r := g.And(l1, l2)

	assert.Equal(t, circuit.LitNull, g.Cnf(r))
	g.Assert(r)
	assert.NotEqual(t, circuit.LitNull, g.Cnf(r))
	assert.NotEqual(t, circuit.LitNull, g.Cnf(l1))
	assert.NotEqual(t, circuit.LitNull, g.Cnf(l2))

	seen := map[circuit.Lit]bool{}
	for _, m := range []circuit.Lit{l1, l2, r} {
		nv := g.Cnf(m)
		require.False(t, seen[nv], "nv %s reused across distinct cvs", nv)
		seen[nv] = true
	}
}

func TestTseitinSoundnessAllOps(t *testing.T) {
	ops := []struct {
		name string
		op   func(g *circuit.Graph, l, r circuit.Lit) circuit.Lit
		eval func(l, r bool) bool
	}{
		{"and", (*circuit.Graph).And, func(l, r bool) bool { return l && r }},
		{"nand", (*circuit.Graph).Nand, func(l, r bool) bool { return !(l && r) }},
		{"or", (*circuit.Graph).Or, func(l, r bool) bool { return l || r }},
		{"nor", (*circuit.Graph).Nor, func(l, r bool) bool { return !(l || r) }},
		{"xor", (*circuit.Graph).Xor, func(l, r bool) bool { return l != r }},
	}

	for _, tt := range ops {
		for _, lv := range []bool{false, true} {
			for _, rv := range []bool{false, true} {
				t.Run(tt.name, func(t *testing.T) {
					g := newTestGraph(t)
					l, r := g.Var(), g.Var()
					v := tt.op(g, l, r)

					lAssert, rAssert := l, r
					if !lv {
						lAssert = l.Not()
					}
					if !rv {
						rAssert = r.Not()
					}
					g.Assert(lAssert)
					g.Assert(rAssert)
					g.Assert(v)
					want := tt.eval(lv, rv)
					got := g.Solve(false)
					if want {
						require.Equal(t, circuit.Sat, got)
						val, ok, err := g.Val(v)
						require.NoError(t, err)
						require.True(t, ok)
						assert.True(t, val)
					} else {
						require.Equal(t, circuit.Unsat, got)
					}
				})
			}
		}
	}
}

func TestUnassumeIdempotent(t *testing.T) {
	g := newTestGraph(t)
	l1, l2 := g.Var(), g.Var()
	g.Assert(g.Or(l1, l2))

	g.Assume(l1.Not())
	require.Equal(t, circuit.Sat, g.Solve(false))
	v, _, _ := g.Val(l1)
	assert.False(t, v)

	g.Unassume(l1)
	g.Unassume(l1) // idempotent
	g.Assume(l1)
	require.Equal(t, circuit.Sat, g.Solve(false))
	v, _, _ = g.Val(l1)
	assert.True(t, v)
}

func TestIncrementalityNeverReducesAssertions(t *testing.T) {
	g := newTestGraph(t)
	l1, l2, l3 := g.Var(), g.Var(), g.Var()
	r1 := g.And(l1, l2)
	r2 := g.Or(r1, l3)

	g.Assert(r2.Not())
	require.Equal(t, circuit.Sat, g.Solve(false))

	g.Assert(r1)
	require.Equal(t, circuit.Unsat, g.Solve(false))

	// Further asserts over an already-unsat instance must stay unsat.
	g.Assert(l1)
	require.Equal(t, circuit.Unsat, g.Solve(false))
}
