package solver_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qbfkit/qbfkit/pkg/qbf"
	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
	"github.com/qbfkit/qbfkit/pkg/qbf/solver"
)

func parse(t *testing.T, text string) *qbf.Formula {
	t.Helper()
	f, err := parser.Parse(text)
	require.NoError(t, err, "parsing %q", text)
	return f
}

func TestSolve(t *testing.T) {
	type tc struct {
		Name    string
		Formula string
		Result  qbf.Result
		Witness qbf.Assignment
	}

	for _, tt := range []tc{
		{
			Name:    "tautology holds on every branch",
			Formula: "forall x (x | ~x)",
			Result:  qbf.Satisfiable,
		},
		{
			Name:    "contradiction fails on every branch",
			Formula: "forall x (x & ~x)",
			Result:  qbf.Unsatisfiable,
			Witness: qbf.Assignment{"x": false},
		},
		{
			Name:    "existential witness covers the inner universal",
			Formula: "exists x forall y (x | y)",
			Result:  qbf.Satisfiable,
			Witness: qbf.Assignment{"x": true},
		},
		{
			Name:    "alternating prefix finds a disagreeing y for each x",
			Formula: "forall x exists y (x & ~y) | (~x & y)",
			Result:  qbf.Satisfiable,
		},
		{
			Name:    "single existential variable",
			Formula: "exists x x",
			Result:  qbf.Satisfiable,
			Witness: qbf.Assignment{"x": true},
		},
		{
			Name:    "existential contradiction",
			Formula: "exists x (x & ~x)",
			Result:  qbf.Unsatisfiable,
		},
		{
			Name:    "existential picks true before false",
			Formula: "exists x (x | ~x)",
			Result:  qbf.Satisfiable,
			Witness: qbf.Assignment{"x": true},
		},
		{
			Name:    "existential falls back to false when true fails",
			Formula: "exists x ~x",
			Result:  qbf.Satisfiable,
			Witness: qbf.Assignment{"x": false},
		},
		{
			Name:    "universal counter-example prefers false",
			Formula: "forall x forall y (x & ~x) | (y & ~y)",
			Result:  qbf.Unsatisfiable,
			Witness: qbf.Assignment{"x": false, "y": false},
		},
		{
			Name:    "universal over an unsatisfiable inner existential",
			Formula: "forall x exists y (x | y) & ~x",
			Result:  qbf.Unsatisfiable,
		},
		{
			Name:    "nested witness is the full satisfying leaf",
			Formula: "exists x exists y x & ~y",
			Result:  qbf.Satisfiable,
			Witness: qbf.Assignment{"x": true, "y": false},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			f := parse(t, tt.Formula)
			ev, err := solver.New().Solve(context.Background(), f)
			require.NoError(t, err)
			assert.Equal(t, tt.Result, ev.Result)
			assert.Equal(t, tt.Witness, ev.Witness)
		})
	}
}

func TestSolveCountsMatrixEvaluations(t *testing.T) {
	// k bindings expand into exactly 2^k leaf evaluations of the
	// matrix, with no short-circuiting and no pruning.
	for k := 1; k <= 10; k++ {
		names := make([]string, k)
		var sb strings.Builder
		for i := 0; i < k; i++ {
			names[i] = fmt.Sprintf("v%d", i)
			sb.WriteString("forall " + names[i] + " ")
		}
		sb.WriteString(strings.Join(names, " | "))

		f := parse(t, sb.String())
		ev, err := solver.New(solver.WithoutTrace()).Solve(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, 1<<k, ev.MatrixEvals, "k=%d", k)
		assert.Equal(t, qbf.Unsatisfiable, ev.Result, "all-false branch falsifies the disjunction")
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	f := parse(t, "forall x exists y forall z (x & ~y) | (~x & y) | z")
	s := solver.New()

	first, err := s.Solve(context.Background(), f)
	require.NoError(t, err)
	second, err := s.Solve(context.Background(), f)
	require.NoError(t, err)

	first.Elapsed = 0
	second.Elapsed = 0
	assert.Equal(t, first, second)
}

func TestSolveTrace(t *testing.T) {
	f := parse(t, "forall x (x | ~x)")
	ev, err := solver.New().Solve(context.Background(), f)
	require.NoError(t, err)

	// Two matrix leaves and two branch outcomes, true branch first.
	require.Len(t, ev.Steps, 4)
	assert.Equal(t, qbf.StepMatrix, ev.Steps[0].Kind)
	assert.Equal(t, qbf.Assignment{"x": true}, ev.Steps[0].Assignment)
	assert.Equal(t, qbf.StepBranch, ev.Steps[1].Kind)
	assert.True(t, ev.Steps[1].Value)
	assert.Equal(t, qbf.StepMatrix, ev.Steps[2].Kind)
	assert.Equal(t, qbf.Assignment{"x": false}, ev.Steps[2].Assignment)
	assert.Equal(t, qbf.StepBranch, ev.Steps[3].Kind)
	assert.False(t, ev.Steps[3].Value)
}

func TestSolveWithoutTrace(t *testing.T) {
	f := parse(t, "forall x (x | ~x)")
	ev, err := solver.New(solver.WithoutTrace()).Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, ev.Steps)
	assert.Equal(t, 2, ev.MatrixEvals)
}

type recordingTracer struct {
	steps []qbf.Step
}

func (r *recordingTracer) Trace(step qbf.Step) {
	r.steps = append(r.steps, step)
}

func TestSolveStreamsToTracer(t *testing.T) {
	f := parse(t, "exists x forall y (x | y)")
	tracer := &recordingTracer{}
	ev, err := solver.New(solver.WithTracer(tracer)).Solve(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, ev.Steps, tracer.steps)
}

func TestWriterTracer(t *testing.T) {
	f := parse(t, "forall x (x | ~x)")
	var buf bytes.Buffer
	_, err := solver.New(solver.WithTracer(solver.WriterTracer{W: &buf})).Solve(context.Background(), f)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  matrix(x=true) = true", lines[0])
	assert.Equal(t, "forall x: x=true -> true", lines[1])
}

func TestSolveCancelled(t *testing.T) {
	f := parse(t, "forall x exists y (x | y)")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := solver.New().Solve(ctx, f)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveDefensiveUnboundCheck(t *testing.T) {
	// Hand-built formula bypassing the parser's validation.
	f := &qbf.Formula{
		Bindings: []qbf.Binding{{Quantifier: qbf.Forall, Variable: "x"}},
		Matrix:   &qbf.And{L: &qbf.Var{Name: "x"}, R: &qbf.Var{Name: "y"}},
	}
	_, err := solver.New().Solve(context.Background(), f)
	var unbound *qbf.UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "y", unbound.Name)
}
