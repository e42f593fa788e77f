// Package token defines the lexical tokens of the bracketed S-expression format.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Offset/Len address exactly Text within the source buffer.
//   - Brackets are always single-byte tokens and never merge with neighbours.
//   - Whitespace is a real token kind; the parser drops it.
package token
