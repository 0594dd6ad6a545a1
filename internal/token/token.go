package token

import "fmt"

// Pos is a 1-based line/column position in a source file.
type Pos struct {
	Line   uint32
	Column uint32
}

// IsValid reports whether the position has been set.
func (p Pos) IsValid() bool { return p.Line > 0 && p.Column > 0 }

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Text string
	Pos  Pos
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwInt, KwReturn:
		return true
	default:
		return false
	}
}

// IsSymbol reports whether the token is a punctuation symbol.
func (t Token) IsSymbol() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, Semicolon:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}
