package solver

import (
	"fmt"
	"io"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

// Tracer observes evaluation steps as the solver produces them.
type Tracer interface {
	Trace(step qbf.Step)
}

// WriterTracer prints each step to an io.Writer, one line per step,
// indented by quantifier depth.
type WriterTracer struct {
	W io.Writer
}

func (t WriterTracer) Trace(step qbf.Step) {
	fmt.Fprintln(t.W, step.String())
}
