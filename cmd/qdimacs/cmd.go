package qdimacs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
	"github.com/qbfkit/qbfkit/pkg/qdimacs"
)

func NewQDimacsCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qdimacs <formula>",
		Short: "Exports a formula in QDIMACS format",
		Long: `Exports a formula in QDIMACS, the prenex-CNF input format of
dedicated QBF solvers. For instance:

  qbfkit qdimacs "forall x exists y (x | y)"

prints:

  p cnf 2 1
  c x=1
  c y=2
  a 1 0
  e 2 0
  1 2 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := parser.Parse(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("error creating output file (%s): %w", output, err)
				}
				defer file.Close()
				out = file
			}
			return qdimacs.Write(out, f)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")

	return cmd
}
