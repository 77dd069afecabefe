// Package qdimacs writes formulas in QDIMACS, the prenex-CNF input
// format of dedicated QBF solvers such as DepQBF.
//
// The matrix is converted to CNF by pushing negations down to literals
// and distributing disjunctions over conjunctions. No auxiliary
// variables are introduced, so the emitted problem ranges over exactly
// the formula's own variables; the clause set can grow with deeply
// mixed connectives, which is acceptable at the scale this package
// serves.
package qdimacs

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

// Write emits f in QDIMACS on w: the "p cnf" header, one "c name=N"
// comment per variable mapping names to DIMACS indices, quantifier
// lines grouping consecutive bindings of the same kind into "a"/"e"
// blocks in prefix order, then the clauses.
func Write(w io.Writer, f *qbf.Formula) error {
	index := make(map[string]int, len(f.Bindings))
	for i, b := range f.Bindings {
		index[b.Variable] = i + 1
	}

	used := make(map[string]struct{})
	qbf.CollectVars(f.Matrix, used)
	for name := range used {
		if _, ok := index[name]; !ok {
			return fmt.Errorf("qdimacs: variable %q is not bound by the prefix", name)
		}
	}

	cs := clauses(f.Matrix, false)

	var sb strings.Builder
	fmt.Fprintf(&sb, "p cnf %d %d\n", len(f.Bindings), len(cs))
	for _, b := range f.Bindings {
		fmt.Fprintf(&sb, "c %s=%d\n", b.Variable, index[b.Variable])
	}
	writePrefix(&sb, f.Bindings, index)
	for _, clause := range cs {
		lits := make([]string, len(clause))
		for i, l := range clause {
			n := index[l.name]
			if l.neg {
				n = -n
			}
			lits[i] = strconv.Itoa(n)
		}
		sb.WriteString(strings.Join(lits, " "))
		sb.WriteString(" 0\n")
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("could not write QDIMACS output: %w", err)
	}
	return nil
}

func writePrefix(sb *strings.Builder, bindings []qbf.Binding, index map[string]int) {
	for i := 0; i < len(bindings); {
		q := bindings[i].Quantifier
		j := i
		for j < len(bindings) && bindings[j].Quantifier == q {
			j++
		}
		symbol := "a"
		if q == qbf.Exists {
			symbol = "e"
		}
		sb.WriteString(symbol)
		for _, b := range bindings[i:j] {
			fmt.Fprintf(sb, " %d", index[b.Variable])
		}
		sb.WriteString(" 0\n")
		i = j
	}
}

type literal struct {
	name string
	neg  bool
}

type clause []literal

// clauses converts the subtree to CNF. The neg flag pushes a pending
// negation inward (De Morgan) so only literals end up negated.
func clauses(n qbf.Node, neg bool) []clause {
	switch t := n.(type) {
	case *qbf.Var:
		return []clause{{literal{name: t.Name, neg: neg}}}
	case *qbf.Not:
		return clauses(t.X, !neg)
	case *qbf.And:
		if neg {
			return distribute(clauses(t.L, true), clauses(t.R, true))
		}
		return append(clauses(t.L, false), clauses(t.R, false)...)
	case *qbf.Or:
		if neg {
			return append(clauses(t.L, true), clauses(t.R, true)...)
		}
		return distribute(clauses(t.L, false), clauses(t.R, false))
	}
	return nil
}

// distribute applies (A1 & ... & An) | (B1 & ... & Bm) =
// AND over all i,j of (Ai | Bj).
func distribute(a, b []clause) []clause {
	out := make([]clause, 0, len(a)*len(b))
	for _, ca := range a {
		for _, cb := range b {
			merged := make(clause, 0, len(ca)+len(cb))
			merged = append(merged, ca...)
			merged = append(merged, cb...)
			out = append(out, merged)
		}
	}
	return out
}
