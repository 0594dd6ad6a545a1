package parser

import (
	"oxygen/internal/ast"
	"oxygen/internal/token"
)

// parseStatement dispatches on bounded lookahead. The same dispatch serves
// the top level and function bodies, so declarations may nest.
func (p *Parser) parseStatement() (ast.Statement, *StatementError) {
	if p.at(0, token.KwInt) && p.at(1, token.Ident) && p.at(2, token.LParen) {
		return p.parseFunctionDecl()
	}
	if p.at(0, token.KwReturn) {
		return p.parseReturn()
	}

	// No rule matches. A stray token is an ordinary error, not a crash.
	if tok, ok := p.Peek(0); ok {
		got := tok
		return nil, &StatementError{Kind: StmtErrUnexpectedToken, Got: &got}
	}
	return nil, &StatementError{Kind: StmtErrUnexpectedToken}
}

// parseReturn parses 'return Term ;'.
func (p *Parser) parseReturn() (ast.Statement, *StatementError) {
	kw, terr := p.expect(token.KwReturn)
	if terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}

	term, merr := p.parseTerm()
	if merr != nil {
		return nil, &StatementError{Kind: StmtErrTerm, Err: merr}
	}

	if _, terr = p.expect(token.Semicolon); terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}

	return &ast.ReturnStatement{Term: term, Pos: kw.Pos}, nil
}
