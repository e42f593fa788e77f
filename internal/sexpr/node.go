package sexpr

import (
	"snoot/internal/source"
	"snoot/internal/token"
)

// Kind discriminates node variants without a type switch.
type Kind uint8

const (
	KindList Kind = iota
	KindTerminal
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "List"
	case KindTerminal:
		return "Terminal"
	case KindString:
		return "String"
	}
	return "Unknown"
}

// Node is one element of a parsed forest.
type Node interface {
	Kind() Kind
	Span() source.Span
	// FirstToken and LastToken are the tokens bounding the node in the source.
	FirstToken() token.Token
	LastToken() token.Token
}

// List is a bracketed sequence. Loc always equals the merge of Open and Close.
// For an unclosed list Close is synthetic: the last token of the last child,
// or Open itself when the list is empty.
type List struct {
	Bracket  token.Bracket
	Open     token.Token
	Close    token.Token
	Children []Node
	Loc      source.Span
	// Unclosed is set when input ended before a closing bracket.
	Unclosed bool
}

// Terminal is a bare atom.
type Terminal struct {
	Token token.Token
	Loc   source.Span
}

// String is a quoted run, delimiters included.
type String struct {
	Token token.Token
	Loc   source.Span
}

// NewList builds a list over file, computing its span from open and close.
func NewList(file *source.File, bracket token.Bracket, open, closeTok token.Token, children []Node) *List {
	return &List{
		Bracket:  bracket,
		Open:     open,
		Close:    closeTok,
		Children: children,
		Loc:      source.Merge(source.FromToken(open, file), source.FromToken(closeTok, file)),
	}
}

func NewTerminal(file *source.File, tok token.Token) *Terminal {
	return &Terminal{Token: tok, Loc: source.FromToken(tok, file)}
}

func NewString(file *source.File, tok token.Token) *String {
	return &String{Token: tok, Loc: source.FromToken(tok, file)}
}

func (l *List) Kind() Kind { return KindList }
func (l *List) Span() source.Span { return l.Loc }
func (l *List) FirstToken() token.Token { return l.Open }
func (l *List) LastToken() token.Token { return l.Close }
func (t *Terminal) Kind() Kind { return KindTerminal }
func (t *Terminal) Span() source.Span { return t.Loc }
func (t *Terminal) FirstToken() token.Token { return t.Token }
func (t *Terminal) LastToken() token.Token { return t.Token }
func (s *String) Kind() Kind { return KindString }
func (s *String) Span() source.Span { return s.Loc }
func (s *String) FirstToken() token.Token { return s.Token }
func (s *String) LastToken() token.Token { return s.Token }

// Value returns the string contents without the surrounding quotes.
func (s *String) Value() string {
	text := s.Token.Text
	if len(text) >= 2 {
		return text[1 : len(text)-1]
	}
	return ""
}
