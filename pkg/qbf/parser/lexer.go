package parser

import (
	"unicode/utf8"

	"github.com/qbfkit/qbfkit/pkg/qbf"
)

// Tokenize converts formula text into a flat token sequence terminated
// by a synthetic EOF token. It fails with *qbf.LexError on the first
// character outside the recognized set.
func Tokenize(input string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '&':
			toks = append(toks, Token{Kind: AND, Text: "&", Pos: i})
			i++
		case c == '|':
			toks = append(toks, Token{Kind: OR, Text: "|", Pos: i})
			i++
		case c == '~':
			toks = append(toks, Token{Kind: NOT, Text: "~", Pos: i})
			i++
		case c == '(':
			toks = append(toks, Token{Kind: LPAREN, Text: "(", Pos: i})
			i++
		case c == ')':
			toks = append(toks, Token{Kind: RPAREN, Text: ")", Pos: i})
			i++
		case isLetter(c):
			start := i
			for i < len(input) && isAlnum(input[i]) {
				i++
			}
			text := input[start:i]
			kind := IDENT
			if kw, ok := keywords[text]; ok {
				kind = kw
			}
			toks = append(toks, Token{Kind: kind, Text: text, Pos: start})
		default:
			// Digits may continue an identifier but not start one.
			r, _ := utf8.DecodeRuneInString(input[i:])
			return nil, &qbf.LexError{Pos: i, Char: r}
		}
	}
	toks = append(toks, Token{Kind: EOF, Pos: len(input)})
	return toks, nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9')
}
