package driver

import (
	"oxygen/internal/ast"
	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// Result is the front-end output for one file. Program stays nil when
// scanning reported errors or the parse failed.
type Result struct {
	Path    string
	Tokens  []token.Token
	Program *ast.Program
}

// ParseFile tokenizes and parses f. Scan errors are collected across the
// whole file and suppress the parse; otherwise the first parse error
// aborts. The returned Result always carries the token stream.
func ParseFile(f *source.File) (*Result, []lexer.ScanError, error) {
	tokens, scanErrs := TokenizeFile(f)
	res := &Result{Path: f.Path, Tokens: tokens}

	if len(scanErrs) > 0 {
		return res, scanErrs, nil
	}

	prog, err := parser.New(tokens).ParseProgram()
	if err != nil {
		return res, nil, err
	}
	res.Program = prog
	return res, nil, nil
}
