package parser_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/qbfkit/qbfkit/pkg/qbf"
	"github.com/qbfkit/qbfkit/pkg/qbf/parser"
)

var _ = Describe("Tokenize", func() {
	It("should lex operators, parentheses and identifiers", func() {
		toks, err := parser.Tokenize("(x1 & ~y) | z")
		Expect(err).ToNot(HaveOccurred())

		kinds := make([]parser.Kind, len(toks))
		for i, tok := range toks {
			kinds[i] = tok.Kind
		}
		Expect(kinds).To(Equal([]parser.Kind{
			parser.LPAREN, parser.IDENT, parser.AND, parser.NOT, parser.IDENT,
			parser.RPAREN, parser.OR, parser.IDENT, parser.EOF,
		}))
		Expect(toks[1].Text).To(Equal("x1"))
		Expect(toks[7].Text).To(Equal("z"))
	})

	It("should recognize quantifier keywords", func() {
		toks, err := parser.Tokenize("forall x exists y")
		Expect(err).ToNot(HaveOccurred())
		Expect(toks[0].Kind).To(Equal(parser.FORALL))
		Expect(toks[2].Kind).To(Equal(parser.EXISTS))
		Expect(toks[1].Kind).To(Equal(parser.IDENT))
		Expect(toks[3].Kind).To(Equal(parser.IDENT))
	})

	It("should not treat keyword prefixes as keywords", func() {
		toks, err := parser.Tokenize("forallx existsy")
		Expect(err).ToNot(HaveOccurred())
		Expect(toks[0].Kind).To(Equal(parser.IDENT))
		Expect(toks[0].Text).To(Equal("forallx"))
		Expect(toks[1].Kind).To(Equal(parser.IDENT))
	})

	It("should record token positions as byte offsets", func() {
		toks, err := parser.Tokenize("  x &\ty")
		Expect(err).ToNot(HaveOccurred())
		Expect(toks[0].Pos).To(Equal(2))
		Expect(toks[1].Pos).To(Equal(4))
		Expect(toks[2].Pos).To(Equal(6))
	})

	It("should append a synthetic EOF token", func() {
		toks, err := parser.Tokenize("x")
		Expect(err).ToNot(HaveOccurred())
		Expect(toks).To(HaveLen(2))
		Expect(toks[1].Kind).To(Equal(parser.EOF))
		Expect(toks[1].Pos).To(Equal(1))
	})

	It("should fail on an unrecognized character", func() {
		_, err := parser.Tokenize("x ! y")
		Expect(err).To(HaveOccurred())
		lexErr := &qbf.LexError{}
		Expect(errors.As(err, &lexErr)).To(BeTrue())
		Expect(lexErr.Pos).To(Equal(2))
		Expect(lexErr.Char).To(Equal('!'))
	})

	It("should fail on an identifier starting with a digit", func() {
		_, err := parser.Tokenize("forall x 1x")
		lexErr := &qbf.LexError{}
		Expect(errors.As(err, &lexErr)).To(BeTrue())
		Expect(lexErr.Pos).To(Equal(9))
	})

	It("should allow empty input", func() {
		toks, err := parser.Tokenize("")
		Expect(err).ToNot(HaveOccurred())
		Expect(toks).To(HaveLen(1))
		Expect(toks[0].Kind).To(Equal(parser.EOF))
	})
})
