// Package parser turns the token buffer of one file into a syntax tree.
//
// The parser is recursive-descent over a fixed token slice with a cursor
// and bounded non-consuming lookahead (at most three tokens). It fails
// fast: the first structural mismatch aborts the whole parse and no
// partial tree is returned.
package parser

import (
	"oxygen/internal/ast"
	"oxygen/internal/token"
)

// Parser consumes a token buffer left to right.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New returns a parser positioned at the start of tokens.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Peek returns the token at offset from the cursor without consuming it.
// The second result is false past the end of the buffer.
func (p *Parser) Peek(offset int) (token.Token, bool) {
	idx := p.pos + offset
	if idx < 0 || idx >= len(p.tokens) {
		return token.Token{}, false
	}
	return p.tokens[idx], true
}

// consume returns the token under the cursor, if any, and advances by one
// unconditionally. Consuming past the end is safe: the cursor keeps
// moving and every further consume reports no token.
func (p *Parser) consume() (token.Token, bool) {
	tok, ok := p.Peek(0)
	p.pos++
	return tok, ok
}

// at reports whether the token at offset has the given kind.
func (p *Parser) at(offset int, kind token.Kind) bool {
	tok, ok := p.Peek(offset)
	return ok && tok.Kind == kind
}

// expect consumes the next token and checks its kind.
func (p *Parser) expect(kind token.Kind) (token.Token, *TokenError) {
	tok, ok := p.consume()
	if !ok {
		return token.Token{}, &TokenError{Kind: TokenErrExpectedGotNone, Expected: kind}
	}
	if tok.Kind != kind {
		got := tok
		return token.Token{}, &TokenError{Kind: TokenErrExpected, Expected: kind, Got: &got}
	}
	return tok, nil
}

// ParseProgram parses the whole buffer: while tokens remain, parse one
// statement and append it. The returned error, when non-nil, is a
// *StatementError.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}
	for {
		if _, ok := p.Peek(0); !ok {
			break
		}
		stmt, serr := p.parseStatement()
		if serr != nil {
			return nil, serr
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}
