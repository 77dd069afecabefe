// Package render formats evaluations for terminal display.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

type Renderer struct {
	out       io.Writer
	showTrace bool
	quiet     bool
	sat       *color.Color
	unsat     *color.Color
}

type Option func(r *Renderer)

// WithTrace prints the full evaluation trace after the verdict.
func WithTrace() Option {
	return func(r *Renderer) { r.showTrace = true }
}

// Quiet prints the verdict line only.
func Quiet() Option {
	return func(r *Renderer) { r.quiet = true }
}

func New(out io.Writer, options ...Option) *Renderer {
	r := &Renderer{
		out:   out,
		sat:   color.New(color.FgGreen, color.Bold),
		unsat: color.New(color.FgRed, color.Bold),
	}
	for _, option := range options {
		option(r)
	}
	// No color when output is not a terminal, e.g. piped into another
	// tool or a test buffer.
	if f, ok := out.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		r.sat.DisableColor()
		r.unsat.DisableColor()
	}
	return r
}

// Report prints the verdict for f, then witness, stats and trace
// unless quiet.
func (r *Renderer) Report(f *qbf.Formula, ev *qbf.Evaluation) {
	verdict := ev.Result.String()
	if ev.Result == qbf.Satisfiable {
		verdict = r.sat.Sprint(verdict)
	} else {
		verdict = r.unsat.Sprint(verdict)
	}
	fmt.Fprintln(r.out, verdict)
	if r.quiet {
		return
	}

	fmt.Fprintf(r.out, "formula: %s\n", f)
	if ev.Witness != nil {
		label := "witness"
		if ev.Result == qbf.Unsatisfiable {
			label = "counter-example"
		}
		fmt.Fprintf(r.out, "%s: %s\n", label, ev.Witness)
	} else if ev.Result == qbf.Satisfiable && len(f.Bindings) > 0 && f.Bindings[0].Quantifier == qbf.Forall {
		fmt.Fprintln(r.out, "all branches hold")
	}
	if ev.MatrixEvals > 0 {
		fmt.Fprintf(r.out, "matrix evaluations: %d\n", ev.MatrixEvals)
	}
	fmt.Fprintf(r.out, "elapsed: %s\n", ev.Elapsed)

	if r.showTrace && len(ev.Steps) > 0 {
		fmt.Fprintln(r.out, "trace:")
		for _, step := range ev.Steps {
			fmt.Fprintf(r.out, "  %s\n", step)
		}
	}
}
