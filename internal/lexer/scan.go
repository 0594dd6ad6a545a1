package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"oxygen/internal/token"
)

// scanIdentOrKeyword scans a maximal [A-Za-z0-9_] run starting at rest[0]
// (already known to be an identifier start) and classifies it through
// token.LookupKeyword. Token.Text is the verbatim run. Returns the token
// and the number of bytes consumed.
func scanIdentOrKeyword(rest string, st *State) (token.Token, int) {
	n := 1
	for n < len(rest) && isIdentContinueByte(rest[n]) {
		n++
	}
	text := rest[:n]

	pos := token.Pos{Line: st.Line, Column: st.Column}
	st.Column += columnWidth(n)

	kind := token.Ident
	if k, ok := token.LookupKeyword(text); ok {
		kind = k
	}
	return token.Token{Kind: kind, Text: text, Pos: pos}, n
}

// scanNumber scans a maximal digit run starting at rest[0]. Token.Text is
// the verbatim run, whatever its value.
func scanNumber(rest string, st *State) (token.Token, int) {
	n := 1
	for n < len(rest) && isDec(rest[n]) {
		n++
	}
	text := rest[:n]

	pos := token.Pos{Line: st.Line, Column: st.Column}
	st.Column += columnWidth(n)

	return token.Token{Kind: token.IntLit, Text: text, Pos: pos}, n
}

func columnWidth(n int) uint32 {
	w, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("column overflow: %w", err))
	}
	return w
}

// ASCII classifiers. The language's identifier alphabet is ASCII-only;
// anything else is an unknown character, not an identifier.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}
