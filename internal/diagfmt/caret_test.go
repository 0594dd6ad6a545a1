package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

func TestRenderScanError(t *testing.T) {
	e := lexer.ScanError{
		Kind:     lexer.ScanErrUnknownChar,
		Char:     '⫯',
		LineText: "ret⫯urn 0;",
		Line:     3,
		Column:   4,
	}

	var buf bytes.Buffer
	RenderScanError(&buf, "main.o2", e, Options{})

	want := strings.Join([]string{
		`error: unknown character '⫯'`,
		`  --> main.o2:3:4`,
		`  3 |    ret⫯urn 0;`,
		`    |       ^`,
		``,
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("frame mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderScanError_WideRuneAlignment(t *testing.T) {
	e := lexer.ScanError{
		Kind:     lexer.ScanErrUnknownChar,
		Char:     'x',
		LineText: "世界x",
		Line:     1,
		Column:   3,
	}

	var buf bytes.Buffer
	RenderScanError(&buf, "w.o2", e, Options{})

	// The two wide runes before the caret each cover two cells.
	wantCaretRow := `    |        ^`
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 4 || lines[3] != wantCaretRow {
		t.Errorf("caret row: got %q, want %q", lines[3], wantCaretRow)
	}
}

func TestRenderScanError_Color(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	e := lexer.ScanError{
		Kind:     lexer.ScanErrUnknownChar,
		Char:     '@',
		LineText: "int @",
		Line:     1,
		Column:   5,
	}

	var buf bytes.Buffer
	RenderScanError(&buf, "main.o2", e, Options{Color: true})

	out := buf.String()
	if !strings.Contains(out, "\x1b[31;1merror:\x1b[0m") {
		t.Errorf("expected red-bold error header, got %q", out)
	}
	if !strings.Contains(out, "\x1b[34;1m") {
		t.Errorf("expected blue-bold gutter, got %q", out)
	}
}

func TestRenderParseError_WithPosition(t *testing.T) {
	f := source.FromString("main.o2", "int main() {\n    return 99\n}\n")
	err := &parser.StatementError{
		Kind: parser.StmtErrToken,
		Err: &parser.TokenError{
			Kind:     parser.TokenErrExpected,
			Expected: token.Semicolon,
			Got: &token.Token{
				Kind: token.RBrace,
				Text: "}",
				Pos:  token.Pos{Line: 3, Column: 1},
			},
		},
	}

	var buf bytes.Buffer
	RenderParseError(&buf, f, err, Options{})

	want := strings.Join([]string{
		`error: expected ';', got '}' at 3:1`,
		`  --> main.o2:3:1`,
		`  3 |    }`,
		`    |    ^`,
		``,
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("frame mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderParseError_MissingReturn(t *testing.T) {
	f := source.FromString("main.o2", "int main() {\n}\n")
	err := &parser.StatementError{
		Kind:     parser.StmtErrMissingReturn,
		FuncName: "main",
		Pos:      token.Pos{Line: 2, Column: 1},
	}

	var buf bytes.Buffer
	RenderParseError(&buf, f, err, Options{})

	out := buf.String()
	if !strings.Contains(out, "error: function 'main' does not end with a return statement") {
		t.Errorf("missing header, got %q", out)
	}
	if !strings.Contains(out, "--> main.o2:2:1") {
		t.Errorf("missing locus, got %q", out)
	}
}

func TestRenderParseError_NoPosition(t *testing.T) {
	f := source.FromString("main.o2", "int main() {\n")
	err := &parser.StatementError{
		Kind: parser.StmtErrTerm,
		Err:  &parser.TermError{Kind: parser.TermErrNoTerm},
	}

	var buf bytes.Buffer
	RenderParseError(&buf, f, err, Options{})

	want := "error: expected a term, got no more tokens\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderParseError_LineOutOfRange(t *testing.T) {
	f := source.FromString("main.o2", "int main() {\n")
	err := &parser.StatementError{
		Kind:     parser.StmtErrMissingReturn,
		FuncName: "main",
		Pos:      token.Pos{Line: 9, Column: 1},
	}

	var buf bytes.Buffer
	RenderParseError(&buf, f, err, Options{})

	out := buf.String()
	if strings.Contains(out, "-->") {
		t.Errorf("expected bare message when the line is unavailable, got %q", out)
	}
	if !strings.Contains(out, "does not end with a return statement") {
		t.Errorf("missing message, got %q", out)
	}
}

func TestCaretPad(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		column uint32
		want   int
	}{
		{"first column", "return", 1, 0},
		{"ascii prefix", "return 0;", 8, 7},
		{"wide runes count double", "世界x", 3, 4},
		{"past end of line", "ab", 5, 4},
		{"empty line", "", 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := caretPad(tt.line, tt.column)
			if len(got) != tt.want {
				t.Errorf("caretPad(%q, %d) = %d cells, want %d", tt.line, tt.column, len(got), tt.want)
			}
			if strings.Trim(got, " ") != "" {
				t.Errorf("caretPad returned non-space characters: %q", got)
			}
		})
	}
}
