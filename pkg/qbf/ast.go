package qbf

import "strings"

// Node is one node of a formula's propositional matrix. The set of
// implementations is closed: Var, Not, And and Or. Consumers switch
// exhaustively over these four types.
type Node interface {
	// Eval computes the node's truth value under a. Both operands of a
	// connective are always evaluated; there is no short-circuiting, so
	// traces over identical inputs are identical.
	Eval(a Assignment) (bool, error)
	String() string

	prec() int
	node()
}

// Operator precedence, used only for minimal re-parenthesization when
// printing.
const (
	precOr = iota
	precAnd
	precNot
	precVar
)

// Var is a leaf referencing a named boolean variable.
type Var struct {
	Name string
}

func (v *Var) Eval(a Assignment) (bool, error) {
	val, ok := a[v.Name]
	if !ok {
		return false, &UnboundVariableError{Name: v.Name}
	}
	return val, nil
}

func (v *Var) String() string { return v.Name }
func (v *Var) prec() int      { return precVar }
func (v *Var) node()          {}

// Not negates its child.
type Not struct {
	X Node
}

func (n *Not) Eval(a Assignment) (bool, error) {
	val, err := n.X.Eval(a)
	if err != nil {
		return false, err
	}
	return !val, nil
}

func (n *Not) String() string {
	var sb strings.Builder
	sb.WriteByte('~')
	writeOperand(&sb, n.X, precNot, false)
	return sb.String()
}

func (n *Not) prec() int { return precNot }
func (n *Not) node()     {}

// And is a strictly binary conjunction. Chained conjunctions parse to
// left-associative trees of And nodes.
type And struct {
	L, R Node
}

func (n *And) Eval(a Assignment) (bool, error) {
	l, err := n.L.Eval(a)
	if err != nil {
		return false, err
	}
	r, err := n.R.Eval(a)
	if err != nil {
		return false, err
	}
	return l && r, nil
}

func (n *And) String() string { return binaryString(n.L, n.R, "&", precAnd) }
func (n *And) prec() int      { return precAnd }
func (n *And) node()          {}

// Or is a strictly binary disjunction.
type Or struct {
	L, R Node
}

func (n *Or) Eval(a Assignment) (bool, error) {
	l, err := n.L.Eval(a)
	if err != nil {
		return false, err
	}
	r, err := n.R.Eval(a)
	if err != nil {
		return false, err
	}
	return l || r, nil
}

func (n *Or) String() string { return binaryString(n.L, n.R, "|", precOr) }
func (n *Or) prec() int      { return precOr }
func (n *Or) node()          {}

func binaryString(l, r Node, op string, prec int) string {
	var sb strings.Builder
	writeOperand(&sb, l, prec, false)
	sb.WriteString(" " + op + " ")
	// A right operand at the same precedence was explicitly grouped in
	// the source; keep the parentheses so the printed text re-parses to
	// the same tree.
	writeOperand(&sb, r, prec, true)
	return sb.String()
}

func writeOperand(sb *strings.Builder, n Node, parent int, strict bool) {
	needParens := n.prec() < parent || (strict && n.prec() == parent)
	if needParens {
		sb.WriteByte('(')
		sb.WriteString(n.String())
		sb.WriteByte(')')
		return
	}
	sb.WriteString(n.String())
}

// CollectVars adds every variable name referenced under n to set.
func CollectVars(n Node, set map[string]struct{}) {
	switch t := n.(type) {
	case *Var:
		set[t.Name] = struct{}{}
	case *Not:
		CollectVars(t.X, set)
	case *And:
		CollectVars(t.L, set)
		CollectVars(t.R, set)
	case *Or:
		CollectVars(t.L, set)
		CollectVars(t.R, set)
	}
}
