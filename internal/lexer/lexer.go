package lexer

import (
	"iter"

	"snoot/internal/source"
	"snoot/internal/token"
)

// Lexer turns a file into tokens lazily. It is forward-only: to start over,
// create a new Lexer over the same file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	done   bool // после ошибки поток завершён
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next token. At the end of input it returns an EOF token,
// and keeps doing so. A tokenization failure is returned as *TokenError once;
// every later call yields EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.done || lx.cursor.EOF() {
		return lx.eof(), nil
	}

	start := lx.cursor.Mark()
	r, _ := lx.cursor.PeekRune()
	ch := lx.cursor.Peek()

	var (
		tok token.Token
		err *TokenError
	)
	switch {
	case isSpace(r):
		tok = lx.scanWhitespace(start)
	case isBracket(ch):
		tok = lx.scanBracket(start)
	case ch == '"' && lx.opts.QuotedStrings:
		tok, err = lx.scanString(start)
	default:
		tok, err = lx.scanAtom(start)
	}

	if err != nil {
		lx.done = true
		lx.report(err)
		return token.Token{Kind: token.Invalid}, err
	}
	return tok, nil
}

// All adapts the lexer to a range-over-func sequence. Iteration stops after
// the first error.
func (lx *Lexer) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			tok, err := lx.Next()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Kind == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize collects every token of file, excluding EOF. On failure it
// returns the tokens read so far together with the *TokenError.
func Tokenize(file *source.File, opts Options) ([]token.Token, error) {
	lx := New(file, opts)
	var tokens []token.Token
	for tok, err := range lx.All() {
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func (lx *Lexer) eof() token.Token {
	return token.Token{
		Kind:   token.EOF,
		Line:   lx.cursor.Line,
		Col:    lx.cursor.Col,
		Offset: lx.cursor.Off,
	}
}

// emit builds a token from mark to the current cursor position.
func (lx *Lexer) emit(kind token.Kind, m Mark) token.Token {
	return token.Token{
		Kind:   kind,
		Line:   m.Line,
		Col:    m.Col,
		Offset: m.Off,
		Len:    lx.cursor.Off - m.Off,
		Text:   lx.file.Content[m.Off:lx.cursor.Off],
	}
}
