// Package bitvec is a higher-level client of pkg/circuit's gate API:
// fixed-width boolean vectors, a ripple-carry adder, a comparator
// network, bitwise reductions, and rotations. None of it has
// privileged access to circuit.Graph internals — every operation here
// is expressible by any caller of the public gate API, which is the
// point of keeping this layer out of the core.
package bitvec

import "github.com/cipherboy/cmsh/pkg/circuit"

// Vec is a fixed-width vector of circuit literals, bit 0 least
// significant.
type Vec []circuit.Lit

// New allocates a width-bit vector of fresh, unconstrained circuit
// variables.
func New(g *circuit.Graph, width int) Vec {
	v := make(Vec, width)
	for i := range v {
		v[i] = g.Var()
	}
	return v
}

// Const returns a width-bit vector tied to the literal bits of value
// via a fresh variable asserted to match — the simplest encoding
// available purely through the public gate API, which has no direct
// notion of a constant literal.
func Const(g *circuit.Graph, width int, value uint64) Vec {
	v := make(Vec, width)
	for i := range v {
		bit := g.Var()
		if value&(1<<uint(i)) != 0 {
			g.Assert(bit)
		} else {
			g.Assert(bit.Not())
		}
		v[i] = bit
	}
	return v
}

// Width returns the number of bits in v.
func (v Vec) Width() int { return len(v) }

func zip(g *circuit.Graph, a, b Vec, op func(*circuit.Graph, circuit.Lit, circuit.Lit) circuit.Lit) Vec {
	if len(a) != len(b) {
		panic("bitvec: width mismatch")
	}
	out := make(Vec, len(a))
	for i := range a {
		out[i] = op(g, a[i], b[i])
	}
	return out
}

// And returns the bitwise AND of a and b.
func And(g *circuit.Graph, a, b Vec) Vec {
	return zip(g, a, b, (*circuit.Graph).And)
}

// Or returns the bitwise OR of a and b.
func Or(g *circuit.Graph, a, b Vec) Vec {
	return zip(g, a, b, (*circuit.Graph).Or)
}

// Xor returns the bitwise XOR of a and b.
func Xor(g *circuit.Graph, a, b Vec) Vec {
	return zip(g, a, b, (*circuit.Graph).Xor)
}

// Not returns the bitwise complement of v. No gate is needed: circuit
// negation lives entirely in a literal's sign bit, so complementing a
// vector is just flipping each of its literals.
func Not(v Vec) Vec {
	out := make(Vec, len(v))
	for i, bit := range v {
		out[i] = bit.Not()
	}
	return out
}

// RotateLeft returns v rotated left by n bits (mod the width).
func (v Vec) RotateLeft(n int) Vec {
	w := len(v)
	if w == 0 {
		return v
	}
	n = ((n % w) + w) % w
	out := make(Vec, w)
	for i := range v {
		out[(i+n)%w] = v[i]
	}
	return out
}

// RotateRight returns v rotated right by n bits (mod the width).
func (v Vec) RotateRight(n int) Vec {
	return v.RotateLeft(-n)
}

// halfAdder returns (sum, carry) for a+b.
func halfAdder(g *circuit.Graph, a, b circuit.Lit) (sum, carry circuit.Lit) {
	return g.Xor(a, b), g.And(a, b)
}

// fullAdder returns (sum, carry) for a+b+cin.
func fullAdder(g *circuit.Graph, a, b, cin circuit.Lit) (sum, carry circuit.Lit) {
	s1, c1 := halfAdder(g, a, b)
	s2, c2 := halfAdder(g, s1, cin)
	return s2, g.Or(c1, c2)
}

// Add returns a+b as a same-width sum vector and the final carry-out,
// built as a ripple-carry adder over the gate API.
func Add(g *circuit.Graph, a, b Vec) (sum Vec, carryOut circuit.Lit) {
	if len(a) != len(b) {
		panic("bitvec: width mismatch")
	}
	sum = make(Vec, len(a))
	var carry circuit.Lit
	for i := range a {
		if i == 0 {
			sum[i], carry = halfAdder(g, a[i], b[i])
			continue
		}
		sum[i], carry = fullAdder(g, a[i], b[i], carry)
	}
	return sum, carry
}

// Eq returns a single literal that is true iff a and b are bitwise
// equal: the AND-reduction of per-bit XNOR (built here as NOT(XOR)).
func Eq(g *circuit.Graph, a, b Vec) circuit.Lit {
	xnor := Not(Xor(g, a, b))
	return Reduce(xnor, g.And)
}

// Lt returns a single literal that is true iff the unsigned value of
// a is less than that of b, built as a ripple comparator from the
// most to the least significant bit: at each bit position, a<b if the
// higher bits are equal and this bit is 0 in a, 1 in b, or the higher
// bits already decided a<b.
func Lt(g *circuit.Graph, a, b Vec) circuit.Lit {
	if len(a) != len(b) {
		panic("bitvec: width mismatch")
	}
	if len(a) == 0 {
		return circuit.LitNull
	}
	top := len(a) - 1
	lt := g.And(a[top].Not(), b[top])
	eqSoFar := g.Xor(a[top], b[top]).Not()
	for i := top - 1; i >= 0; i-- {
		bitLt := g.And(a[i].Not(), b[i])
		lt = g.Or(lt, g.And(eqSoFar, bitLt))
		eqSoFar = g.And(eqSoFar, g.Xor(a[i], b[i]).Not())
	}
	return lt
}

// Reduce folds a vector down to a single literal with the given
// two-input gate operator (e.g. g.And for an AND-reduction, g.Or for
// an OR-reduction).
func Reduce(v Vec, op func(circuit.Lit, circuit.Lit) circuit.Lit) circuit.Lit {
	if len(v) == 0 {
		return circuit.LitNull
	}
	acc := v[0]
	for _, bit := range v[1:] {
		acc = op(acc, bit)
	}
	return acc
}
