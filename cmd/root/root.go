package root

import (
	"github.com/spf13/cobra"

	"github.com/qbfkit/qbfkit/cmd/examples"
	"github.com/qbfkit/qbfkit/cmd/qdimacs"
	"github.com/qbfkit/qbfkit/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qbfkit",
		Short: "qbfkit is a quantified boolean formula toolkit",
		Long: `A toolkit for quantified boolean formulas written in Go: a grammar
with forall/exists prefixes, a reference evaluator with full traces,
a SAT-backed engine, and QDIMACS export for external solvers.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(qdimacs.NewQDimacsCommand())
	rootCmd.AddCommand(examples.NewExamplesCommand())

	return rootCmd
}
