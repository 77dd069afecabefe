// Package solver decides quantified boolean formulas by exhaustive
// quantifier expansion. It is the reference engine: slow on purpose,
// deterministic, and fully traceable. The SAT-backed engine in pkg/sat
// is checked against it.
package solver

import (
	"context"
	"time"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

// Solver decides a formula and returns the complete evaluation, or an
// error if the context is cancelled or the formula is malformed.
type Solver interface {
	Solve(ctx context.Context, f *qbf.Formula) (*qbf.Evaluation, error)
}

type solver struct {
	tracer    Tracer
	keepTrace bool
}

// New returns the expansion-based reference solver.
func New(options ...Option) Solver {
	s := &solver{keepTrace: true}
	for _, option := range options {
		option(s)
	}
	return s
}

type Option func(s *solver)

// WithTracer streams each evaluation step to t as it happens, in
// addition to recording it in the result.
func WithTracer(t Tracer) Option {
	return func(s *solver) {
		s.tracer = t
	}
}

// WithoutTrace disables step recording. Matrix evaluations are still
// counted. Useful for deep prefixes, where the trace itself is 2^k.
func WithoutTrace() Option {
	return func(s *solver) {
		s.keepTrace = false
	}
}

func (s *solver) Solve(ctx context.Context, f *qbf.Formula) (*qbf.Evaluation, error) {
	start := time.Now()
	r := &run{solver: s}
	ok, witness, err := r.expand(ctx, f, 0, qbf.Assignment{})
	if err != nil {
		return nil, err
	}
	result := qbf.Unsatisfiable
	if ok {
		result = qbf.Satisfiable
	}
	return &qbf.Evaluation{
		Result:      result,
		Witness:     witness,
		Steps:       r.steps,
		MatrixEvals: r.matrixEvals,
		Elapsed:     time.Since(start),
	}, nil
}

// run accumulates the trace of a single Solve call. Each call owns its
// run exclusively; the solver itself stays stateless.
type run struct {
	solver      *solver
	steps       []qbf.Step
	matrixEvals int
}

func (r *run) record(step qbf.Step) {
	if r.solver.keepTrace {
		r.steps = append(r.steps, step)
	}
	if r.solver.tracer != nil {
		r.solver.tracer.Trace(step)
	}
}

// expand evaluates the formula from binding depth downward under acc.
// It returns the truth value together with the witnessing assignment:
// a satisfying one on true, a falsifying counter-example on false, or
// nil when no single assignment is the evidence.
//
// Branch policy, fixed for reproducible explanations: both quantifiers
// explore value true before value false; an exists keeps the first
// satisfying assignment; a forall that fails on both branches reports
// the value-false counter-example.
func (r *run) expand(ctx context.Context, f *qbf.Formula, depth int, acc qbf.Assignment) (bool, qbf.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}

	if depth == len(f.Bindings) {
		value, err := f.Matrix.Eval(acc)
		if err != nil {
			return false, nil, err
		}
		r.matrixEvals++
		leaf := acc.Copy()
		r.record(qbf.Step{Kind: qbf.StepMatrix, Depth: depth, Assignment: leaf, Outcome: value})
		return value, leaf, nil
	}

	b := f.Bindings[depth]
	branch := func(value bool) (bool, qbf.Assignment, error) {
		next := acc.Copy()
		next[b.Variable] = value
		ok, witness, err := r.expand(ctx, f, depth+1, next)
		if err != nil {
			return false, nil, err
		}
		r.record(qbf.Step{
			Kind:       qbf.StepBranch,
			Depth:      depth,
			Variable:   b.Variable,
			Quantifier: b.Quantifier,
			Value:      value,
			Outcome:    ok,
		})
		return ok, witness, nil
	}

	trueOK, trueWitness, err := branch(true)
	if err != nil {
		return false, nil, err
	}
	falseOK, falseWitness, err := branch(false)
	if err != nil {
		return false, nil, err
	}

	switch b.Quantifier {
	case qbf.Forall:
		if trueOK && falseOK {
			return true, nil, nil
		}
		if !falseOK {
			return false, falseWitness, nil
		}
		return false, trueWitness, nil
	default: // qbf.Exists
		if trueOK {
			if trueWitness == nil {
				w := acc.Copy()
				w[b.Variable] = true
				trueWitness = w
			}
			return true, trueWitness, nil
		}
		if falseOK {
			if falseWitness == nil {
				w := acc.Copy()
				w[b.Variable] = false
				falseWitness = w
			}
			return true, falseWitness, nil
		}
		return false, nil, nil
	}
}
