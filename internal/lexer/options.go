package lexer

import (
	"snoot/internal/diag"
)

// Options configures tokenization.
type Options struct {
	// Splitters are literal strings carved out of atoms as standalone atoms,
	// e.g. ":" turns "a:b" into "a", ":", "b".
	Splitters []string
	// QuotedStrings enables String tokens for "..." runs with backslash escapes.
	// Off by default: a quote is then an ordinary atom character.
	QuotedStrings bool
	// Reporter может быть nil, тогда ошибки только возвращаются из Next.
	// Under parser.Parse leave it nil: the parser reports the same error
	// through its own Reporter.
	Reporter diag.Reporter
}

func (lx *Lexer) report(err *TokenError) {
	if lx.opts.Reporter == nil {
		return
	}
	code := diag.LexNoMatch
	if err.Kind == ErrUnclosedString {
		code = diag.LexUnclosedString
	}
	lx.opts.Reporter.Report(code, diag.SevError, err.Span, err.Message(), nil)
}
