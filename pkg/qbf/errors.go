package qbf

import "fmt"

// LexError reports a character outside the recognized symbol set. Pos
// is a zero-based byte offset into the input.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at position %d: unexpected character %q", e.Pos, e.Char)
}

// ParseError reports a grammar violation or an unbound-variable
// violation, with the offset of the offending token.
type ParseError struct {
	Pos      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: expected %s, found %s", e.Pos, e.Expected, e.Found)
}

// UnboundVariableError reports a matrix variable with no binding at
// evaluation time. A validating parser never lets one through; the
// evaluator's check is defensive.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %q has no value bound during evaluation", e.Name)
}
