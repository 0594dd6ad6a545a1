package lexer

import "fmt"

// ScanErrorKind enumerates the lexical error cases.
type ScanErrorKind uint8

const (
	// ScanErrUnknownChar indicates a character outside the language's
	// alphabet.
	ScanErrUnknownChar ScanErrorKind = iota + 1
)

// ScanError describes one lexical error with enough context to render a
// caret frame on its own: the offending rune, the full line text, and the
// 1-based position where the rune sits.
type ScanError struct {
	Kind     ScanErrorKind
	Char     rune
	LineText string
	Line     uint32
	Column   uint32
}

func (e ScanError) Error() string {
	switch e.Kind {
	case ScanErrUnknownChar:
		return fmt.Sprintf("unknown character %q at %d:%d", e.Char, e.Line, e.Column)
	default:
		return fmt.Sprintf("scan error kind=%d at %d:%d", e.Kind, e.Line, e.Column)
	}
}
