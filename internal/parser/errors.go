package parser

import (
	"fmt"

	"oxygen/internal/token"
)

// Parse errors come in three layers that mirror the grammar: token
// expectations at the bottom, term errors above them, statement errors on
// top. Outer layers wrap inner ones without rewriting them, so errors.As
// can reach any layer and its payload survives intact.

// TokenErrorKind enumerates failed token expectations.
type TokenErrorKind uint8

const (
	// TokenErrExpected indicates the consumed token had the wrong kind.
	TokenErrExpected TokenErrorKind = iota + 1
	// TokenErrExpectedGotNone indicates a specific kind was wanted but the
	// buffer ended.
	TokenErrExpectedGotNone
	// TokenErrExpectedSomeGotNone indicates any token was wanted but the
	// buffer ended.
	TokenErrExpectedSomeGotNone
)

// TokenError reports a single failed token expectation. It is the leaf of
// the chain.
type TokenError struct {
	Kind     TokenErrorKind
	Expected token.Kind   // TokenErrExpected, TokenErrExpectedGotNone
	Got      *token.Token // TokenErrExpected
}

func (e *TokenError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case TokenErrExpected:
		if e.Got != nil {
			return fmt.Sprintf("expected %s, got %s at %s", e.Expected, e.Got.Kind, e.Got.Pos)
		}
		return fmt.Sprintf("expected %s", e.Expected)
	case TokenErrExpectedGotNone:
		return fmt.Sprintf("expected %s, got no more tokens", e.Expected)
	case TokenErrExpectedSomeGotNone:
		return "expected a token, got no more tokens"
	default:
		return fmt.Sprintf("token error kind=%d", e.Kind)
	}
}

// TermErrorKind enumerates term parsing failures.
type TermErrorKind uint8

const (
	// TermErrToken wraps a token expectation failure inside a term.
	TermErrToken TermErrorKind = iota + 1
	// TermErrNoTerm indicates the buffer ended where a term was required.
	TermErrNoTerm
)

// TermError reports a failure to parse a term.
type TermError struct {
	Kind TermErrorKind
	Err  error // TermErrToken: the wrapped *TokenError
}

func (e *TermError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case TermErrToken:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "bad term"
	case TermErrNoTerm:
		return "expected a term, got no more tokens"
	default:
		return fmt.Sprintf("term error kind=%d", e.Kind)
	}
}

// Unwrap exposes the wrapped token error to errors.As.
func (e *TermError) Unwrap() error { return e.Err }

// StatementErrorKind enumerates statement parsing failures.
type StatementErrorKind uint8

const (
	// StmtErrToken wraps a token expectation failure.
	StmtErrToken StatementErrorKind = iota + 1
	// StmtErrTerm wraps a term failure inside a return statement.
	StmtErrTerm
	// StmtErrMissingReturn indicates a function body whose last statement
	// is not a return.
	StmtErrMissingReturn
	// StmtErrUnexpectedToken indicates input that starts no statement.
	StmtErrUnexpectedToken
)

// StatementError reports a failure to parse a statement. It is the type
// ParseProgram returns inside its error.
type StatementError struct {
	Kind     StatementErrorKind
	Err      error        // StmtErrToken, StmtErrTerm: the wrapped layer
	Got      *token.Token // StmtErrUnexpectedToken, when a token was present
	FuncName string       // StmtErrMissingReturn
	Pos      token.Pos    // StmtErrMissingReturn: the closing brace
}

func (e *StatementError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case StmtErrToken, StmtErrTerm:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "statement error"
	case StmtErrMissingReturn:
		return fmt.Sprintf("function '%s' does not end with a return statement", e.FuncName)
	case StmtErrUnexpectedToken:
		if e.Got != nil {
			return fmt.Sprintf("unexpected %s at %s", e.Got.Kind, e.Got.Pos)
		}
		return "unexpected end of input"
	default:
		return fmt.Sprintf("statement error kind=%d", e.Kind)
	}
}

// Unwrap exposes the wrapped layer to errors.As.
func (e *StatementError) Unwrap() error { return e.Err }
