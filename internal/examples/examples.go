// Package examples holds a small library of named formulas with known
// verdicts, used by the CLI and as cross-engine test fixtures.
package examples

import "github.com/qbfkit/qbfkit/pkg/qbf"

type Example struct {
	Name        string
	Description string
	Formula     string
	Expected    qbf.Result
}

var library = []Example{
	{
		Name:        "tautology",
		Description: "every proposition is either true or false",
		Formula:     "forall x (x | ~x)",
		Expected:    qbf.Satisfiable,
	},
	{
		Name:        "contradiction",
		Description: "no proposition is both true and false",
		Formula:     "forall x (x & ~x)",
		Expected:    qbf.Unsatisfiable,
	},
	{
		Name:        "existential",
		Description: "some value of x makes x or y hold for every y",
		Formula:     "exists x forall y (x | y)",
		Expected:    qbf.Satisfiable,
	},
	{
		Name:        "alternation",
		Description: "for every x some y disagrees with it",
		Formula:     "forall x exists y (x & ~y) | (~x & y)",
		Expected:    qbf.Satisfiable,
	},
	{
		Name:        "majority",
		Description: "some pair of values carries a two-out-of-three vote",
		Formula:     "exists a exists b forall c (a & b) | (a & c) | (b & c)",
		Expected:    qbf.Satisfiable,
	},
	{
		Name:        "nested",
		Description: "a deeper alternating prefix over a chained matrix",
		Formula:     "forall p exists q forall r exists s (p | q) & (~r | s) & (q | r | ~s)",
		Expected:    qbf.Satisfiable,
	},
}

// All returns the library in its fixed display order.
func All() []Example {
	out := make([]Example, len(library))
	copy(out, library)
	return out
}

// Find returns the example with the given name.
func Find(name string) (Example, bool) {
	for _, ex := range library {
		if ex.Name == name {
			return ex, true
		}
	}
	return Example{}, false
}
