package qbf

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Quantifier is the kind of a prefix binding.
type Quantifier int

const (
	Forall Quantifier = iota
	Exists
)

func (q Quantifier) String() string {
	switch q {
	case Forall:
		return "forall"
	case Exists:
		return "exists"
	}
	return fmt.Sprintf("Quantifier(%d)", int(q))
}

// Binding scopes one variable for the entire matrix. Prefix order is
// semantically significant: outer bindings bind first.
type Binding struct {
	Quantifier Quantifier
	Variable   string
}

func (b Binding) String() string {
	return b.Quantifier.String() + " " + b.Variable
}

// Formula is a quantified boolean formula: an ordered quantifier prefix
// followed by exactly one propositional matrix. Formulas are immutable
// once built.
type Formula struct {
	Bindings []Binding
	Matrix   Node
}

// String re-emits the formula as parseable text. Parsing the result
// yields a structurally identical formula.
func (f *Formula) String() string {
	var sb strings.Builder
	for _, b := range f.Bindings {
		sb.WriteString(b.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(f.Matrix.String())
	return sb.String()
}

// Variables returns the names bound by the prefix, in binding order.
func (f *Formula) Variables() []string {
	names := make([]string, len(f.Bindings))
	for i, b := range f.Bindings {
		names[i] = b.Variable
	}
	return names
}

// Assignment maps variable names to boolean values. It covers exactly
// the variables bound at the point of use; lookups of missing names are
// errors, never implicit defaults.
type Assignment map[string]bool

// Copy returns an independent copy of the assignment. Branches of a
// quantifier expansion each own their copy.
func (a Assignment) Copy() Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// String renders the assignment with names in sorted order, so equal
// assignments always render identically.
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%t", name, a[name])
	}
	return strings.Join(parts, ", ")
}

// Result is the outcome of evaluating a formula.
type Result int

const (
	Unsatisfiable Result = iota
	Satisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

// StepKind discriminates trace steps.
type StepKind int

const (
	// StepMatrix records one evaluation of the matrix under a complete
	// assignment.
	StepMatrix StepKind = iota
	// StepBranch records the outcome of one quantifier branch.
	StepBranch
)

// Step is one event in an evaluation trace.
type Step struct {
	Kind  StepKind
	Depth int
	// Variable, Quantifier and Value are set for StepBranch.
	Variable   string
	Quantifier Quantifier
	Value      bool
	// Assignment is set for StepMatrix.
	Assignment Assignment
	Outcome    bool
}

func (s Step) String() string {
	indent := strings.Repeat("  ", s.Depth)
	switch s.Kind {
	case StepMatrix:
		return fmt.Sprintf("%smatrix(%s) = %t", indent, s.Assignment, s.Outcome)
	case StepBranch:
		return fmt.Sprintf("%s%s %s: %s=%t -> %t", indent, s.Quantifier, s.Variable, s.Variable, s.Value, s.Outcome)
	}
	return fmt.Sprintf("Step(%d)", int(s.Kind))
}

// Evaluation is the complete outcome of deciding a formula. It is the
// only artifact handed back to callers; no partial results exist.
type Evaluation struct {
	Result Result
	// Witness is a satisfying assignment when the formula is
	// satisfiable and a falsifying counter-example when it is not.
	// It is nil when the deciding evidence is not a single assignment
	// (for instance a satisfiable all-universal formula, where every
	// branch holds).
	Witness Assignment
	// Steps is the ordered evaluation trace. Engines that do not
	// explore branches leave it nil.
	Steps []Step
	// MatrixEvals counts leaf evaluations of the matrix: 2^k for a
	// branching evaluation over k bindings.
	MatrixEvals int
	Elapsed     time.Duration
}
