package main

import "github.com/spf13/cobra"

func newSudokuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku",
		Short: `Build the "one-of-nine" constraint over every row, column, and box and solve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return scenarioS6()
		},
	}
}
