package diagfmt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"oxygen/internal/lexer"
	"oxygen/internal/parser"
	"oxygen/internal/source"
	"oxygen/internal/token"
)

// RenderScanError writes a caret frame for one lexical error. The error
// carries its own line text, so only the path is needed for the locus.
func RenderScanError(w io.Writer, path string, e lexer.ScanError, opts Options) {
	writeFrame(w, path, scanMessage(e), e.LineText, e.Line, e.Column, opts)
}

func scanMessage(e lexer.ScanError) string {
	switch e.Kind {
	case lexer.ScanErrUnknownChar:
		return fmt.Sprintf("unknown character %q", e.Char)
	default:
		return e.Error()
	}
}

// RenderParseError writes a parse error. When the error carries a position
// and f holds that line, the full caret frame is printed; otherwise a bare
// one-line message.
func RenderParseError(w io.Writer, f *source.File, err error, opts Options) {
	if pos, ok := parseErrorPos(err); ok && f != nil {
		if lineText, found := f.Line(pos.Line); found {
			writeFrame(w, f.Path, err.Error(), lineText, pos.Line, pos.Column, opts)
			return
		}
	}
	fmt.Fprintf(w, "%s %s\n",
		paint(errorStyle, opts.Color, "error:"),
		paint(messageStyle, opts.Color, err.Error()))
}

// parseErrorPos digs the most specific position out of the layered parse
// errors. Errors that end at exhausted input have no position.
func parseErrorPos(err error) (token.Pos, bool) {
	var serr *parser.StatementError
	if errors.As(err, &serr) {
		switch serr.Kind {
		case parser.StmtErrMissingReturn:
			return serr.Pos, true
		case parser.StmtErrUnexpectedToken:
			if serr.Got != nil {
				return serr.Got.Pos, true
			}
			return token.Pos{}, false
		}
	}
	var terr *parser.TokenError
	if errors.As(err, &terr) && terr.Kind == parser.TokenErrExpected && terr.Got != nil {
		return terr.Got.Pos, true
	}
	return token.Pos{}, false
}

// writeFrame prints the shared caret frame:
//
//	error: unknown character '⫯'
//	  --> main.o2:3:4
//	  3 |    ret⫯urn 0;
//	    |       ^
func writeFrame(w io.Writer, path, msg, lineText string, line, column uint32, opts Options) {
	fmt.Fprintf(w, "%s %s\n",
		paint(errorStyle, opts.Color, "error:"),
		paint(messageStyle, opts.Color, msg))
	fmt.Fprintf(w, "  %s %s:%d:%d\n", paint(gutterStyle, opts.Color, "-->"), path, line, column)

	num := strconv.FormatUint(uint64(line), 10)
	fmt.Fprintf(w, "  %s    %s\n", paint(gutterStyle, opts.Color, num+" |"), lineText)

	blank := strings.Repeat(" ", len(num))
	fmt.Fprintf(w, "  %s    %s%s\n",
		paint(gutterStyle, opts.Color, blank+" |"),
		caretPad(lineText, column),
		paint(errorStyle, opts.Color, "^"))
}

// caretPad measures the on-screen width of the first column-1 runes of the
// line, so the caret lands under the right cell even after wide runes.
func caretPad(lineText string, column uint32) string {
	if column <= 1 {
		return ""
	}
	remaining := int(column) - 1
	width := 0
	for _, r := range lineText {
		if remaining == 0 {
			break
		}
		width += runewidth.RuneWidth(r)
		remaining--
	}
	// Positions past the end of the line land one cell per column.
	width += remaining
	return strings.Repeat(" ", width)
}
