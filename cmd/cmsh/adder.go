package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cipherboy/cmsh/pkg/bitvec"
	"github.com/cipherboy/cmsh/pkg/circuit"
)

// newAdderCmd exercises pkg/bitvec, a higher-level client library kept
// out of the core gate package: build two --width-bit vectors (8 by
// default), assert their
// sum equals a constant, and solve for operands satisfying it.
func newAdderCmd() *cobra.Command {
	var width int
	var target uint64

	cmd := &cobra.Command{
		Use:   "adder",
		Short: "Solve for two width-bit operands whose ripple-carry sum equals --target",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := newGraph()
			a := bitvec.New(g, width)
			b := bitvec.New(g, width)
			sum, _ := bitvec.Add(g, a, b)
			want := bitvec.Const(g, width, target)

			g.Assert(bitvec.Eq(g, sum, want))

			out := g.Solve(false)
			if out != circuit.Sat {
				return fmt.Errorf("adder: no operands sum to %d mod 2^%d (%s)", target, width, out)
			}
			fmt.Printf("adder: found operands summing to %d (mod 2^%d)\n", target, width)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 8, "bit width of each operand")
	cmd.Flags().Uint64Var(&target, "target", 42, "target sum")
	return cmd
}
