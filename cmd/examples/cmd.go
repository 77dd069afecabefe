package examples

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qbfkit/qbfkit/internal/examples"
	"github.com/qbfkit/qbfkit/internal/render"
	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
	"github.com/qbfkit/qbfkit/pkg/qbf/solver"
)

func NewExamplesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Lists the built-in example formulas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, ex := range examples.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %-22s %s\n", ex.Name, ex.Formula, ex.Description)
			}
			return nil
		},
	}

	cmd.AddCommand(newRunCommand())
	return cmd
}

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [name]",
		Short: "Evaluates one example, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected := examples.All()
			if len(args) == 1 {
				ex, ok := examples.Find(args[0])
				if !ok {
					return fmt.Errorf("unknown example %q", args[0])
				}
				selected = []examples.Example{ex}
			}

			s := solver.New(solver.WithoutTrace())
			r := render.New(cmd.OutOrStdout())
			for _, ex := range selected {
				f, err := parser.Parse(ex.Formula)
				if err != nil {
					return fmt.Errorf("example %q does not parse: %w", ex.Name, err)
				}
				ev, err := s.Solve(cmd.Context(), f)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "=== %s (expected %s) ===\n", ex.Name, ex.Expected)
				r.Report(f, ev)
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
