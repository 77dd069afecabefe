package parser

import "fmt"

// Kind is the kind of a lexical token.
type Kind int

const (
	EOF Kind = iota
	IDENT
	AND
	OR
	NOT
	LPAREN
	RPAREN
	FORALL
	EXISTS
)

var kindNames = map[Kind]string{
	EOF:    "end of input",
	IDENT:  "identifier",
	AND:    `"&"`,
	OR:     `"|"`,
	NOT:    `"~"`,
	LPAREN: `"("`,
	RPAREN: `")"`,
	FORALL: `"forall"`,
	EXISTS: `"exists"`,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Pos is the zero-based byte offset of the
// token's first character in the input.
type Token struct {
	Kind Kind
	Text string
	Pos  int
}

// describe renders a token for parse error messages.
func (t Token) describe() string {
	if t.Kind == IDENT {
		return fmt.Sprintf("%q", t.Text)
	}
	return t.Kind.String()
}

var keywords = map[string]Kind{
	"forall": FORALL,
	"exists": EXISTS,
}
