package lexer

import (
	"unicode"

	"snoot/internal/token"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func isBracket(b byte) bool {
	_, _, ok := token.BracketOf(b)
	return ok
}
