// Package sat decides quantified boolean formulas with a SAT solver.
// Quantifiers are eliminated by circuit cofactoring: a universal
// binding becomes the AND of its two cofactors, an inner existential
// the OR. Variables of the leading existential block stay free in the
// circuit, so a satisfying model yields a witness for them.
//
// The expansion-based engine in pkg/qbf/solver is the reference
// implementation and test oracle for this one.
package sat

import (
	"context"
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Engine decides formulas via gini. It satisfies the same contract as
// the reference solver but produces no step trace, and its witnesses
// cover only the leading existential block.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Solve(ctx context.Context, f *qbf.Formula) (*qbf.Evaluation, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := logic.NewC()

	// The leading existential block keeps free literals; everything
	// after it is expanded away.
	lead := leadingExistentials(f)
	env := make(map[string]z.Lit, len(f.Bindings))
	for _, b := range f.Bindings[:lead] {
		env[b.Variable] = c.Lit()
	}

	root, err := expand(c, f, lead, env)
	if err != nil {
		return nil, err
	}

	g := gini.New()
	c.ToCnf(g)
	g.Assume(root)

	switch g.Solve() {
	case satisfiable:
		witness := make(qbf.Assignment, lead)
		for _, b := range f.Bindings[:lead] {
			witness[b.Variable] = g.Value(env[b.Variable])
		}
		if lead == 0 {
			witness = nil
		}
		return &qbf.Evaluation{
			Result:  qbf.Satisfiable,
			Witness: witness,
			Elapsed: time.Since(start),
		}, nil
	case unsatisfiable:
		return &qbf.Evaluation{
			Result:  qbf.Unsatisfiable,
			Elapsed: time.Since(start),
		}, nil
	}
	// A ground circuit never leaves gini undecided; reaching here
	// indicates a bug.
	return nil, fmt.Errorf("sat engine: solver returned no verdict")
}

func leadingExistentials(f *qbf.Formula) int {
	for i, b := range f.Bindings {
		if b.Quantifier != qbf.Exists {
			return i
		}
	}
	return len(f.Bindings)
}

// expand eliminates bindings from depth downward, returning the circuit
// literal for the remaining formula under env.
func expand(c *logic.C, f *qbf.Formula, depth int, env map[string]z.Lit) (z.Lit, error) {
	if depth == len(f.Bindings) {
		return lower(c, f.Matrix, env)
	}

	b := f.Bindings[depth]
	cofactor := func(value z.Lit) (z.Lit, error) {
		next := make(map[string]z.Lit, len(env)+1)
		for k, v := range env {
			next[k] = v
		}
		next[b.Variable] = value
		return expand(c, f, depth+1, next)
	}

	t, err := cofactor(c.T)
	if err != nil {
		return z.LitNull, err
	}
	fl, err := cofactor(c.F)
	if err != nil {
		return z.LitNull, err
	}

	if b.Quantifier == qbf.Forall {
		return c.And(t, fl), nil
	}
	return c.Or(t, fl), nil
}

// lower translates the matrix into the circuit under env. Same shape as
// the reference evaluator's case analysis, producing literals instead
// of booleans.
func lower(c *logic.C, n qbf.Node, env map[string]z.Lit) (z.Lit, error) {
	switch t := n.(type) {
	case *qbf.Var:
		m, ok := env[t.Name]
		if !ok {
			return z.LitNull, &qbf.UnboundVariableError{Name: t.Name}
		}
		return m, nil
	case *qbf.Not:
		m, err := lower(c, t.X, env)
		if err != nil {
			return z.LitNull, err
		}
		return m.Not(), nil
	case *qbf.And:
		l, err := lower(c, t.L, env)
		if err != nil {
			return z.LitNull, err
		}
		r, err := lower(c, t.R, env)
		if err != nil {
			return z.LitNull, err
		}
		return c.And(l, r), nil
	case *qbf.Or:
		l, err := lower(c, t.L, env)
		if err != nil {
			return z.LitNull, err
		}
		r, err := lower(c, t.R, env)
		if err != nil {
			return z.LitNull, err
		}
		return c.Or(l, r), nil
	}
	return z.LitNull, fmt.Errorf("sat engine: unsupported matrix node %T", n)
}
