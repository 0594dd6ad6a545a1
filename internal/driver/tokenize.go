package driver

import (
	"oxygen/internal/lexer"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// TokenizeFile scans every line of f through one lexer state, so token
// positions are global to the file. All scan errors are collected; the
// token stream still holds everything scanned around them.
func TokenizeFile(f *source.File) ([]token.Token, []lexer.ScanError) {
	var tokens []token.Token
	var errs []lexer.ScanError

	st := lexer.NewState()
	for _, line := range f.Lines {
		errs = append(errs, lexer.Tokenize(line, &tokens, &st)...)
	}
	return tokens, errs
}
