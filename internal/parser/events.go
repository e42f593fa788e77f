package parser

import (
	"errors"
	"fmt"

	"snoot/internal/diag"
	"snoot/internal/lexer"
	"snoot/internal/source"
	"snoot/internal/token"
)

// Event is a parse-level finding. Every event converts to an error-level
// diagnostic.
type Event interface {
	Span() source.Span
	Diagnostic() diag.Diagnostic
}

// TokenizationError wraps the error that terminated the token stream.
type TokenizationError struct {
	Err error
}

// UnclosedList covers a list that input ended inside of.
type UnclosedList struct {
	Loc source.Span
}

// ExtraClosing covers a closing bracket with no list left to close.
type ExtraClosing struct {
	Loc source.Span
}

// WrongClosing records a list closed by the wrong kind of bracket.
type WrongClosing struct {
	Opening  source.Span
	Closing  source.Span
	Expected token.Bracket
	Actual   token.Bracket
}

func (e TokenizationError) Span() source.Span {
	var te *lexer.TokenError
	if errors.As(e.Err, &te) {
		return te.Span
	}
	return source.Empty()
}

func (e UnclosedList) Span() source.Span { return e.Loc }
func (e ExtraClosing) Span() source.Span { return e.Loc }

// Span covers the opening bracket through the wrong closer.
func (e WrongClosing) Span() source.Span {
	return source.Merge(e.Opening, e.Closing)
}

func (e TokenizationError) Diagnostic() diag.Diagnostic {
	var te *lexer.TokenError
	if !errors.As(e.Err, &te) {
		return diag.NewError(diag.LexNoMatch, source.Empty(), e.Err.Error())
	}
	code := diag.LexNoMatch
	if te.Kind == lexer.ErrUnclosedString {
		code = diag.LexUnclosedString
	}
	return diag.NewError(code, te.Span, te.Message())
}

func (e UnclosedList) Diagnostic() diag.Diagnostic {
	return diag.NewError(diag.SynUnclosedList, e.Loc, "unclosed list")
}

func (e ExtraClosing) Diagnostic() diag.Diagnostic {
	return diag.NewError(diag.SynExtraClosing, e.Loc, "extra list closing")
}

func (e WrongClosing) Diagnostic() diag.Diagnostic {
	msg := fmt.Sprintf("expected `%c` but found `%c`", e.Expected.Close(), e.Actual.Close())
	return diag.NewError(diag.SynWrongClosing, e.Span(), msg).
		WithAnnotation(e.Opening, fmt.Sprintf("list opened with `%c`", e.Expected.Open())).
		WithAnnotation(e.Closing, fmt.Sprintf("closed with `%c`", e.Actual.Close()))
}
