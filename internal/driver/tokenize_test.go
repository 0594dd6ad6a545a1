package driver_test

import (
	"testing"

	"oxygen/internal/driver"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

func TestTokenizeFile(t *testing.T) {
	f := source.FromString("main.o2", "int main() {\n    return 99;\n}\n")

	tokens, errs := driver.TokenizeFile(f)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(tokens) != 9 {
		t.Fatalf("expected 9 tokens, got %d", len(tokens))
	}

	first := tokens[0]
	if first.Kind != token.KwInt || first.Pos.Line != 1 || first.Pos.Column != 1 {
		t.Errorf("first token: got %s", first)
	}
	last := tokens[8]
	if last.Kind != token.RBrace || last.Pos.Line != 3 || last.Pos.Column != 1 {
		t.Errorf("last token: got %s", last)
	}
}

func TestTokenizeFile_ErrorsSpanLines(t *testing.T) {
	f := source.FromString("bad.o2", "int @main() {\n    return 9#9;\n}\n")

	tokens, errs := driver.TokenizeFile(f)
	if len(errs) != 2 {
		t.Fatalf("expected 2 scan errors, got %d: %v", len(errs), errs)
	}

	if errs[0].Char != '@' || errs[0].Line != 1 || errs[0].Column != 5 {
		t.Errorf("first error: got %v", errs[0])
	}
	if errs[1].Char != '#' || errs[1].Line != 2 || errs[1].Column != 13 {
		t.Errorf("second error: got %v", errs[1])
	}

	// Scanning continues around the bad characters.
	if len(tokens) == 0 {
		t.Fatal("expected tokens despite scan errors")
	}
}

func TestTokenizeFile_Empty(t *testing.T) {
	f := source.FromString("empty.o2", "")

	tokens, errs := driver.TokenizeFile(f)
	if len(tokens) != 0 || len(errs) != 0 {
		t.Fatalf("expected nothing for empty file, got %d tokens, %d errors", len(tokens), len(errs))
	}
}
