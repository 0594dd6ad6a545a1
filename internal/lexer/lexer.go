// Package lexer scans Oxygen source one line at a time. The caller owns
// the position state and the token sink, so a file, a REPL line, or a test
// snippet all drive the same entry point.
package lexer

import (
	"unicode/utf8"

	"oxygen/internal/token"
)

// State carries the scan position across Tokenize calls. Line and Column
// are 1-based and global to the file: the caller feeds lines in order and
// threads the same State through every call.
type State struct {
	Line   uint32
	Column uint32
}

// NewState returns the state for the start of a file.
func NewState() State {
	return State{Line: 1, Column: 1}
}

// Tokenize scans one source line (without its terminator) and appends the
// tokens found to sink. Lexical errors do not stop the scan: the offending
// character is reported and skipped, so the returned slice holds every
// error on the line. After the call the state points at the first column
// of the next line.
func Tokenize(line string, sink *[]token.Token, st *State) []ScanError {
	var errs []ScanError

	i := 0
	for i < len(line) {
		b := line[i]
		switch {
		case b == ' ':
			i++
			st.Column++

		case symbolKind(b) != token.Invalid:
			*sink = append(*sink, token.Token{
				Kind: symbolKind(b),
				Text: line[i : i+1],
				Pos:  token.Pos{Line: st.Line, Column: st.Column},
			})
			i++
			st.Column++

		case isIdentStartByte(b):
			tok, n := scanIdentOrKeyword(line[i:], st)
			*sink = append(*sink, tok)
			i += n

		case isDec(b):
			tok, n := scanNumber(line[i:], st)
			*sink = append(*sink, tok)
			i += n

		default:
			// Anything outside the alphabet, tabs included. One error per
			// rune, one column per rune.
			r, sz := utf8.DecodeRuneInString(line[i:])
			errs = append(errs, ScanError{
				Kind:     ScanErrUnknownChar,
				Char:     r,
				LineText: line,
				Line:     st.Line,
				Column:   st.Column,
			})
			i += sz
			st.Column++
		}
	}

	// Every line ends the same way, error-only and empty lines included.
	st.Line++
	st.Column = 1
	return errs
}

// symbolKind maps single-character symbols to their kinds; token.Invalid
// means b is not a symbol.
func symbolKind(b byte) token.Kind {
	switch b {
	case '(':
		return token.LParen
	case ')':
		return token.RParen
	case '{':
		return token.LBrace
	case '}':
		return token.RBrace
	case ';':
		return token.Semicolon
	default:
		return token.Invalid
	}
}
