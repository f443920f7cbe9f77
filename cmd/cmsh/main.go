// Command cmsh is a small CLI over pkg/circuit's worked examples: a
// handful of named scenarios and a sudoku-style "one-of-nine" load
// test, runnable instead of only living in tests.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cmsh",
		Short: "cmsh",
		Long:  `A circuit-to-CNF SAT front end: gates in, a satisfying model out.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.AddCommand(newScenarioCmd())
	rootCmd.AddCommand(newSudokuCmd())
	rootCmd.AddCommand(newAdderCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
