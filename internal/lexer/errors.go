package lexer

import (
	"fmt"

	"snoot/internal/source"
)

// ErrorKind classifies a tokenization failure.
type ErrorKind uint8

const (
	// ErrNoMatch: no lexical class accepted the input at the cursor.
	ErrNoMatch ErrorKind = iota + 1
	// ErrUnclosedString: input ended inside a quoted string.
	ErrUnclosedString
)

// TokenError terminates a token stream. Span covers the offending text.
type TokenError struct {
	Kind ErrorKind
	Span source.Span
}

// Message returns the human-facing description without position.
func (e *TokenError) Message() string {
	switch e.Kind {
	case ErrUnclosedString:
		return "unclosed string literal"
	default:
		return "unrecognized input"
	}
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message(), e.Span.Lines.Start, e.Span.Columns.Start)
}
