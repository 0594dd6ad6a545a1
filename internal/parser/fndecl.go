package parser

import (
	"oxygen/internal/ast"
	"oxygen/internal/token"
)

// parseFunctionDecl parses 'int NAME ( ) { Statement* }'. The dispatch has
// already matched the first three tokens when it routes here; the expects
// still guard every consume so a direct call on a truncated buffer fails
// with a typed error instead of misparsing.
func (p *Parser) parseFunctionDecl() (ast.Statement, *StatementError) {
	typeTok, terr := p.expect(token.KwInt)
	if terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}
	nameTok, terr := p.expect(token.Ident)
	if terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}
	if _, terr = p.expect(token.LParen); terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}
	if _, terr = p.expect(token.RParen); terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}
	if _, terr = p.expect(token.LBrace); terr != nil {
		return nil, &StatementError{Kind: StmtErrToken, Err: terr}
	}

	var body []ast.Statement
	for {
		tok, ok := p.Peek(0)
		if !ok {
			// The buffer ended before the body's '}'.
			return nil, &StatementError{
				Kind: StmtErrToken,
				Err:  &TokenError{Kind: TokenErrExpectedSomeGotNone},
			}
		}
		if tok.Kind == token.RBrace {
			break
		}
		stmt, serr := p.parseStatement()
		if serr != nil {
			return nil, serr
		}
		body = append(body, stmt)
	}

	if len(body) == 0 || !isReturn(body[len(body)-1]) {
		closing, _ := p.Peek(0) // the '}' the loop stopped on
		return nil, &StatementError{
			Kind:     StmtErrMissingReturn,
			FuncName: nameTok.Text,
			Pos:      closing.Pos,
		}
	}

	// The loop already confirmed the '}' is there.
	p.consume()

	return &ast.FunctionDecl{
		ReturnType: ast.TypeRef{Kind: ast.TypeInt, Pos: typeTok.Pos},
		Name:       nameTok.Text,
		NamePos:    nameTok.Pos,
		Body:       body,
	}, nil
}

func isReturn(s ast.Statement) bool {
	_, ok := s.(*ast.ReturnStatement)
	return ok
}
