package solve

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qbfkit/qbfkit/internal/render"
	"github.com/qbfkit/qbfkit/pkg/qbf"
	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
	"github.com/qbfkit/qbfkit/pkg/qbf/solver"
	"github.com/qbfkit/qbfkit/pkg/sat"
)

// Exit codes follow the convention of dedicated QBF solvers such as
// DepQBF, so scripts can branch on the verdict.
const (
	exitSatisfiable   = 10
	exitUnsatisfiable = 20
)

func NewSolveCommand() *cobra.Command {
	var (
		engine string
		file   string
		trace  bool
		quiet  bool
	)

	cmd := &cobra.Command{
		Use:   "solve [formula]",
		Short: "Decides a quantified boolean formula",
		Long: `Decides a quantified boolean formula. For instance:

  qbfkit solve "forall x exists y (x | y) & ~x"

A formula is a prefix of "forall v" / "exists v" bindings followed by
one expression over "&", "|", "~" and parentheses. Every variable in
the expression must be bound by the prefix.

Exit status is 10 when the formula is satisfiable and 20 when it is
not, matching dedicated QBF solvers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := formulaText(args, file)
			if err != nil {
				return err
			}
			return run(cmd, text, engine, trace, quiet)
		},
	}

	cmd.Flags().StringVar(&engine, "engine", "expand", "evaluation engine: expand (reference) or sat (gini-backed)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the formula from a file instead of the argument")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the full evaluation trace (expand engine only)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print the verdict only")

	return cmd
}

func formulaText(args []string, file string) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("error reading formula file (%s): %w", file, err)
		}
		return strings.TrimSpace(string(data)), nil
	}
	if len(args) == 1 {
		return args[0], nil
	}
	return "", fmt.Errorf("no formula given: pass one as an argument or with --file")
}

func run(cmd *cobra.Command, text, engine string, trace, quiet bool) error {
	f, err := parser.Parse(text)
	if err != nil {
		// Lex and parse errors stay typed and positional so callers
		// retrying upstream translation can tell them apart.
		return err
	}

	var s solver.Solver
	switch engine {
	case "expand":
		options := []solver.Option{}
		if !trace {
			options = append(options, solver.WithoutTrace())
		}
		s = solver.New(options...)
	case "sat":
		s = sat.NewEngine()
	default:
		return fmt.Errorf("unknown engine %q: want expand or sat", engine)
	}

	ev, err := s.Solve(cmd.Context(), f)
	if err != nil {
		return err
	}

	var renderOptions []render.Option
	if trace {
		renderOptions = append(renderOptions, render.WithTrace())
	}
	if quiet {
		renderOptions = append(renderOptions, render.Quiet())
	}
	render.New(cmd.OutOrStdout(), renderOptions...).Report(f, ev)

	if ev.Result == qbf.Satisfiable {
		os.Exit(exitSatisfiable)
	}
	os.Exit(exitUnsatisfiable)
	return nil
}
