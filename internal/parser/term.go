package parser

import (
	"oxygen/internal/ast"
	"oxygen/internal/token"
)

// parseTerm parses the single term form, an integer literal. The literal's
// verbatim text carries through to the tree untouched.
func (p *Parser) parseTerm() (ast.Term, *TermError) {
	tok, ok := p.Peek(0)
	if !ok {
		return nil, &TermError{Kind: TermErrNoTerm}
	}
	if tok.Kind != token.IntLit {
		got := tok
		return nil, &TermError{Kind: TermErrToken, Err: &TokenError{
			Kind:     TokenErrExpected,
			Expected: token.IntLit,
			Got:      &got,
		}}
	}

	lit, _ := p.consume()
	return &ast.IntegerLiteral{Text: lit.Text, Pos: lit.Pos}, nil
}
