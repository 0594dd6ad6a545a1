package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"oxygen/internal/token"
)

// TokenOutput is the JSON shape of one token.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Line   uint32 `json:"line"`
	Column uint32 `json:"column"`
}

// FormatTokens renders the token stream as a numbered table, one token per
// line.
func FormatTokens(w io.Writer, tokens []token.Token, opts Options) error {
	for i, tok := range tokens {
		kind := fmt.Sprintf("%-15s", tok.Kind)
		fmt.Fprintf(w, "%3d: %s", i+1, paint(kindStyle, opts.Color, kind))

		// Keywords and symbols already spell their lexeme in the kind
		// column.
		if !tok.IsKeyword() && !tok.IsSymbol() {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d", tok.Pos.Line, tok.Pos.Column)
		fmt.Fprintln(w)
	}
	return nil
}

// FormatTokensJSON renders the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	var output []TokenOutput

	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
