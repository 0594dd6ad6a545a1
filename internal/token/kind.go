package token

import "fmt"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota

	// Ident represents an identifier token.
	Ident
	// KwInt represents the 'int' type keyword.
	KwInt // int
	// KwReturn represents the 'return' keyword.
	KwReturn // return

	// IntLit represents the integer literal token.
	IntLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Semicolon represents the semicolon token.
	Semicolon // ;
)

// String returns the human-readable name of the kind. Symbol and keyword
// kinds render quoted so they read naturally inside diagnostics
// ("expected ';', got '}'").
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Ident:
		return "identifier"
	case KwInt:
		return "'int'"
	case KwReturn:
		return "'return'"
	case IntLit:
		return "integer literal"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Semicolon:
		return "';'"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}
