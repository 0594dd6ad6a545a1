package token_test

import (
	"testing"

	"oxygen/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Pos: token.Pos{Line: 1, Column: 1}}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{token.KwInt, token.KwReturn}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.IntLit, token.LParen, token.Semicolon}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsSymbol(t *testing.T) {
	syms := []token.Kind{token.LParen, token.RParen, token.LBrace, token.RBrace, token.Semicolon}
	for _, k := range syms {
		if !tok(k).IsSymbol() {
			t.Fatalf("%v should be symbol", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwInt, token.KwReturn, token.IntLit}
	for _, k := range non {
		if tok(k).IsSymbol() {
			t.Fatalf("%v must NOT be symbol", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwReturn).IsIdent() {
		t.Fatalf("KwReturn must not be ident")
	}
}

func TestKindString_Quoting(t *testing.T) {
	// Symbols and keywords render quoted; value-carrying kinds render as
	// category names.
	cases := map[token.Kind]string{
		token.Invalid:   "invalid",
		token.Ident:     "identifier",
		token.IntLit:    "integer literal",
		token.KwInt:     "'int'",
		token.KwReturn:  "'return'",
		token.LParen:    "'('",
		token.RParen:    "')'",
		token.LBrace:    "'{'",
		token.RBrace:    "'}'",
		token.Semicolon: "';'",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}

func TestPosIsValid(t *testing.T) {
	if (token.Pos{}).IsValid() {
		t.Fatalf("zero Pos must not be valid")
	}
	if !(token.Pos{Line: 1, Column: 1}).IsValid() {
		t.Fatalf("1:1 must be valid")
	}
}
