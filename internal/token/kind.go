package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// ListOpen is one of ( [ {.
	ListOpen
	// ListClose is one of ) ] }.
	ListClose
	// Whitespace is a maximal run of whitespace characters.
	Whitespace
	// Atom is a maximal run of non-whitespace, non-bracket characters,
	// possibly cut short by a splitter.
	Atom
	// String is a double-quoted run. Produced only when quoted strings are enabled.
	String
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case ListOpen:
		return "ListOpen"
	case ListClose:
		return "ListClose"
	case Whitespace:
		return "Whitespace"
	case Atom:
		return "Atom"
	case String:
		return "String"
	}
	return "Unknown"
}

// Bracket is the kind of a list delimiter pair.
type Bracket uint8

const (
	// Paren is ( ).
	Paren Bracket = iota
	// Square is [ ].
	Square
	// Brace is { }.
	Brace
)

// Open returns the opening delimiter byte.
func (b Bracket) Open() byte {
	switch b {
	case Square:
		return '['
	case Brace:
		return '{'
	}
	return '('
}

// Close returns the closing delimiter byte.
func (b Bracket) Close() byte {
	switch b {
	case Square:
		return ']'
	case Brace:
		return '}'
	}
	return ')'
}

func (b Bracket) String() string {
	switch b {
	case Paren:
		return "Paren"
	case Square:
		return "Bracket"
	case Brace:
		return "Brace"
	}
	return "Unknown"
}

// BracketOf classifies a delimiter byte. ok is false for any other byte.
func BracketOf(c byte) (b Bracket, open, ok bool) {
	switch c {
	case '(':
		return Paren, true, true
	case '[':
		return Square, true, true
	case '{':
		return Brace, true, true
	case ')':
		return Paren, false, true
	case ']':
		return Square, false, true
	case '}':
		return Brace, false, true
	}
	return 0, false, false
}
