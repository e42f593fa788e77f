package lexer

import (
	"strings"

	"snoot/internal/token"
)

func (lx *Lexer) scanWhitespace(m Mark) token.Token {
	for !lx.cursor.EOF() {
		r, _ := lx.cursor.PeekRune()
		if !isSpace(r) {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, m)
}

func (lx *Lexer) scanBracket(m Mark) token.Token {
	b, open, _ := token.BracketOf(lx.cursor.Peek())
	lx.cursor.Bump()
	kind := token.ListClose
	if open {
		kind = token.ListOpen
	}
	tok := lx.emit(kind, m)
	tok.Bracket = b
	return tok
}

// scanAtom consumes a maximal run of atom characters, then cuts it at the
// first splitter: a splitter at position 0 becomes the whole token (longest
// such splitter wins), otherwise the run ends where the earliest splitter starts.
func (lx *Lexer) scanAtom(m Mark) (token.Token, *TokenError) {
	rest := lx.cursor.Rest()
	n := atomRunLen(rest, lx.opts.QuotedStrings)
	if n == 0 {
		lx.cursor.Bump()
		return token.Token{}, &TokenError{Kind: ErrNoMatch, Span: lx.cursor.SpanFrom(m)}
	}
	n = splitAtom(rest[:n], lx.opts.Splitters)
	lx.cursor.Advance(uint32(n)) // n <= len(rest)
	return lx.emit(token.Atom, m), nil
}

// scanString consumes "..." with backslash escaping the next rune.
// Newlines are allowed inside; running into EOF is an error.
func (lx *Lexer) scanString(m Mark) (token.Token, *TokenError) {
	lx.cursor.Bump() // открывающая кавычка
	for {
		if lx.cursor.EOF() {
			return token.Token{}, &TokenError{Kind: ErrUnclosedString, Span: lx.cursor.SpanFrom(m)}
		}
		switch lx.cursor.Bump() {
		case '\\':
			lx.cursor.Bump()
		case '"':
			return lx.emit(token.String, m), nil
		}
	}
}

func atomRunLen(s string, quoted bool) int {
	for i, r := range s {
		if isSpace(r) || (r < 0x80 && isBracket(byte(r))) || (quoted && r == '"') {
			return i
		}
	}
	return len(s)
}

func splitAtom(atom string, splitters []string) int {
	longest := 0
	for _, sp := range splitters {
		if sp != "" && strings.HasPrefix(atom, sp) && len(sp) > longest {
			longest = len(sp)
		}
	}
	if longest > 0 {
		return longest
	}
	cut := len(atom)
	for _, sp := range splitters {
		if sp == "" {
			continue
		}
		if idx := strings.Index(atom, sp); idx > 0 && idx < cut {
			cut = idx
		}
	}
	return cut
}
