package render_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbfkit/qbfkit/internal/render"
	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
	"github.com/qbfkit/qbfkit/pkg/qbf/solver"
)

func report(t *testing.T, text string, options ...render.Option) string {
	t.Helper()
	f, err := parser.Parse(text)
	require.NoError(t, err)
	ev, err := solver.New().Solve(context.Background(), f)
	require.NoError(t, err)
	var buf bytes.Buffer
	render.New(&buf, options...).Report(f, ev)
	return buf.String()
}

func TestReportSatisfiable(t *testing.T) {
	out := report(t, "exists x forall y (x | y)")
	assert.Contains(t, out, "SATISFIABLE\n")
	assert.Contains(t, out, "witness: x=true")
	assert.Contains(t, out, "matrix evaluations: 4")
}

func TestReportCounterExample(t *testing.T) {
	out := report(t, "forall x (x & ~x)")
	assert.Contains(t, out, "UNSATISFIABLE")
	assert.Contains(t, out, "counter-example: x=false")
}

func TestReportAllBranchesHold(t *testing.T) {
	out := report(t, "forall x (x | ~x)")
	assert.Contains(t, out, "all branches hold")
}

func TestReportQuiet(t *testing.T) {
	out := report(t, "forall x (x | ~x)", render.Quiet())
	assert.Equal(t, "SATISFIABLE\n", out)
}

func TestReportTrace(t *testing.T) {
	out := report(t, "forall x (x | ~x)", render.WithTrace())
	assert.Contains(t, out, "trace:")
	assert.Contains(t, out, "matrix(x=true) = true")
}

func TestReportNoColorOnBuffers(t *testing.T) {
	out := report(t, "forall x (x | ~x)")
	assert.NotContains(t, out, "\x1b[")
}
