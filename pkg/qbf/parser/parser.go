// Package parser turns QBF text into the formula model.
//
// The grammar, precedence high to low:
//
//	primary     := IDENT | "(" expression ")"
//	unary       := "~" unary | primary
//	conjunction := unary ("&" unary)*
//	disjunction := conjunction ("|" conjunction)*
//	expression  := disjunction
//
// A complete formula is zero or more quantifier bindings, each
// "forall IDENT" or "exists IDENT", followed by exactly one expression
// and nothing else. Chained "&" and "|" reduce to left-associative
// binary trees; "~" nests right.
package parser

import (
	"sort"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

// Parse builds the formula for the given text. It returns *qbf.LexError
// on unrecognized characters and *qbf.ParseError on grammar violations,
// including any matrix variable with no binding: formulas never reach
// evaluation with free variables.
func Parse(input string) (*qbf.Formula, error) {
	toks, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, varPos: make(map[string]int)}

	bindings, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}
	matrix, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, &qbf.ParseError{Pos: tok.Pos, Expected: "end of input", Found: tok.describe()}
	}

	f := &qbf.Formula{Bindings: bindings, Matrix: matrix}
	if err := p.validateBound(f); err != nil {
		return nil, err
	}
	return f, nil
}

type parser struct {
	toks []Token
	pos  int
	// varPos remembers the first occurrence of each matrix variable so
	// the post-parse bound check can point at it.
	varPos map[string]int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	tok := p.toks[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) parsePrefix() ([]qbf.Binding, error) {
	var bindings []qbf.Binding
	seen := make(map[string]struct{})
	for {
		tok := p.peek()
		var q qbf.Quantifier
		switch tok.Kind {
		case FORALL:
			q = qbf.Forall
		case EXISTS:
			q = qbf.Exists
		default:
			return bindings, nil
		}
		p.next()
		name := p.next()
		if name.Kind != IDENT {
			return nil, &qbf.ParseError{Pos: name.Pos, Expected: "identifier after " + tok.Kind.String(), Found: name.describe()}
		}
		// Flat QBF: one binding per name, no re-binding or shadowing.
		if _, dup := seen[name.Text]; dup {
			return nil, &qbf.ParseError{Pos: name.Pos, Expected: "unbound variable", Found: "already bound variable " + name.describe()}
		}
		seen[name.Text] = struct{}{}
		bindings = append(bindings, qbf.Binding{Quantifier: q, Variable: name.Text})
	}
}

func (p *parser) parseExpression() (qbf.Node, error) {
	return p.parseDisjunction()
}

func (p *parser) parseDisjunction() (qbf.Node, error) {
	left, err := p.parseConjunction()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == OR {
		p.next()
		right, err := p.parseConjunction()
		if err != nil {
			return nil, err
		}
		left = &qbf.Or{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseConjunction() (qbf.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == AND {
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &qbf.And{L: left, R: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (qbf.Node, error) {
	if p.peek().Kind == NOT {
		p.next()
		child, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &qbf.Not{X: child}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (qbf.Node, error) {
	tok := p.next()
	switch tok.Kind {
	case IDENT:
		if _, ok := p.varPos[tok.Text]; !ok {
			p.varPos[tok.Text] = tok.Pos
		}
		return &qbf.Var{Name: tok.Text}, nil
	case LPAREN:
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		if closing.Kind != RPAREN {
			return nil, &qbf.ParseError{Pos: closing.Pos, Expected: `")"`, Found: closing.describe()}
		}
		return inner, nil
	case FORALL, EXISTS:
		return nil, &qbf.ParseError{Pos: tok.Pos, Expected: "operand", Found: tok.describe() + " (quantifiers form the prefix, not the matrix)"}
	default:
		return nil, &qbf.ParseError{Pos: tok.Pos, Expected: "operand", Found: tok.describe()}
	}
}

// validateBound rejects formulas whose matrix references a variable the
// prefix does not bind. Checked after parsing so the whole prefix and
// matrix exist; errors point at the variable's first occurrence.
func (p *parser) validateBound(f *qbf.Formula) error {
	bound := make(map[string]struct{}, len(f.Bindings))
	for _, b := range f.Bindings {
		bound[b.Variable] = struct{}{}
	}
	used := make(map[string]struct{})
	qbf.CollectVars(f.Matrix, used)

	var unbound []string
	for name := range used {
		if _, ok := bound[name]; !ok {
			unbound = append(unbound, name)
		}
	}
	if len(unbound) == 0 {
		return nil
	}
	// Deterministic choice when several variables are unbound: the one
	// appearing first in the input.
	sort.Slice(unbound, func(i, j int) bool {
		return p.varPos[unbound[i]] < p.varPos[unbound[j]]
	})
	name := unbound[0]
	return &qbf.ParseError{
		Pos:      p.varPos[name],
		Expected: "variable bound by a quantifier",
		Found:    "unbound variable \"" + name + "\"",
	}
}
