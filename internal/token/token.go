package token

import "fmt"

// Token represents a single source token with its position.
// Bracket is meaningful only for ListOpen and ListClose.
type Token struct {
	Kind    Kind
	Bracket Bracket
	Line    uint32 // 1-based
	Col     uint32 // 1-based, in runes
	Offset  uint32 // absolute byte offset
	Len     uint32 // length in bytes
	Text    string
}

// End returns the byte offset just past the token.
func (t Token) End() uint32 { return t.Offset + t.Len }

// IsBracket reports whether the token opens or closes a list.
func (t Token) IsBracket() bool {
	return t.Kind == ListOpen || t.Kind == ListClose
}

// IsTrivia reports whether the parser ignores the token.
func (t Token) IsTrivia() bool { return t.Kind == Whitespace }

func (t Token) String() string {
	if t.IsBracket() {
		return fmt.Sprintf("%s(%s) %q at %d:%d", t.Kind, t.Bracket, t.Text, t.Line, t.Col)
	}
	return fmt.Sprintf("%s %q at %d:%d", t.Kind, t.Text, t.Line, t.Col)
}
