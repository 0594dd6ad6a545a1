// Package token defines the lexical vocabulary of the Oxygen language.
// Invariants:
//   - Token.Text is the verbatim source lexeme for every kind, including
//     single-character symbols and keywords.
//   - Positions are 1-based; the zero Pos means "no position".
//   - The zero Kind is Invalid and is never produced by the lexer.
//   - Keywords are case-sensitive; only lowercase spellings are recognized.
package token
