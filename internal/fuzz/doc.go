// Package fuzztests houses Go fuzz harnesses that exercise the front end
// (source -> lexer -> parser) on arbitrary inputs. The goal is to smoke
// test robustness: no panics, no broken position or error-layer
// invariants, whatever the bytes.
package fuzztests
