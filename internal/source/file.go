// Package source loads Oxygen source files and exposes them line by line.
// Content is normalized on load: a UTF-8 BOM is dropped and CRLF becomes
// LF, so token positions stay stable across platforms.
package source

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"fortio.org/safecast"
)

// File is a single source file split into lines, terminators stripped.
type File struct {
	Path  string
	Lines []string
}

// Load reads and normalizes the file at path.
func Load(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return &File{Path: path, Lines: splitLines(string(content))}, nil
}

// FromString builds a File from in-memory text (stdin, tests). The same
// normalization as Load applies.
func FromString(path, text string) *File {
	b := []byte(text)
	b, _ = removeBOM(b)
	b, _ = normalizeCRLF(b)
	return &File{Path: path, Lines: splitLines(string(b))}
}

// Line returns the 1-based line n without its terminator.
func (f *File) Line(n uint32) (string, bool) {
	if n == 0 {
		return "", false
	}
	total, err := safecast.Conv[uint32](len(f.Lines))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	if n > total {
		return "", false
	}
	return f.Lines[n-1], true
}

// NumLines returns how many lines the file has.
func (f *File) NumLines() int { return len(f.Lines) }

// splitLines splits normalized content into lines. A trailing newline
// terminates the last line instead of opening a phantom empty one.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the new slice and whether anything was replaced.
func normalizeCRLF(content []byte) ([]byte, bool) {
	// Fast path: no \r at all.
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}
