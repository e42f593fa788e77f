// Package snoot reads bracketed S-expressions tolerantly: unbalanced input
// still yields a tree, plus one diagnostic per bracket problem.
//
//	res := snoot.SimpleParse("(define (f x) {x)", nil, "demo.sexp")
//	for _, d := range res.Bag.Items() {
//		fmt.Print(snoot.Render(d))
//	}
package snoot

import (
	"io"

	"snoot/internal/diag"
	"snoot/internal/diagfmt"
	"snoot/internal/lexer"
	"snoot/internal/parser"
	"snoot/internal/sexpr"
	"snoot/internal/source"
	"snoot/internal/token"
)

type (
	Node       = sexpr.Node
	List       = sexpr.List
	Terminal   = sexpr.Terminal
	String     = sexpr.String
	Span       = source.Span
	File       = source.File
	Token      = token.Token
	Diagnostic = diag.Diagnostic
	Bag        = diag.Bag
	Event      = parser.Event
	Kind       = sexpr.Kind
	Bracket    = token.Bracket
	TokenKind  = token.Kind
	Severity   = diag.Severity
	Code       = diag.Code
)

// Node kinds.
const (
	KindList     = sexpr.KindList
	KindTerminal = sexpr.KindTerminal
	KindString   = sexpr.KindString
)

// List delimiters.
const (
	Paren  = token.Paren
	Square = token.Square
	Brace  = token.Brace
)

const (
	SevInfo    = diag.SevInfo
	SevWarning = diag.SevWarning
	SevError   = diag.SevError
	SevCustom  = diag.SevCustom
)

// Diagnostic codes produced by the reader.
const (
	LexNoMatch        = diag.LexNoMatch
	LexUnclosedString = diag.LexUnclosedString
	SynUnclosedList   = diag.SynUnclosedList
	SynExtraClosing   = diag.SynExtraClosing
	SynWrongClosing   = diag.SynWrongClosing
)

// Options configures Tokenize and Parse.
type Options struct {
	// Splitters are strings carved out of atoms as atoms of their own.
	Splitters []string
	// QuotedStrings turns "..." into a single String token.
	QuotedStrings bool
	// MaxDiagnostics limits the result bag; 0 keeps everything.
	MaxDiagnostics int
}

// Result is the outcome of Parse.
type Result struct {
	File   *File
	Roots  []Node
	Events []Event
	Bag    *Bag
}

// NewFile wraps text as a source file. name may be empty.
func NewFile(name, text string) *File {
	return source.NewFile(name, text)
}

// Tokenize lexes text. On failure it returns the tokens read so far and the
// tokenizer error.
func Tokenize(text string, opts Options) ([]Token, error) {
	return lexer.Tokenize(source.NewFile("", text), lexer.Options{
		Splitters:     opts.Splitters,
		QuotedStrings: opts.QuotedStrings,
	})
}

// Parse reads file into a forest. It never fails; problems are events in
// the result, each with a diagnostic in Bag.
func Parse(file *File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{
		Splitters:     opts.Splitters,
		QuotedStrings: opts.QuotedStrings,
	})
	res := parser.Parse(file, lx, parser.Options{MaxErrors: opts.MaxDiagnostics})
	return Result{File: file, Roots: res.Roots, Events: res.Events, Bag: res.Bag}
}

// SimpleParse parses text with the given splitters. fileName only labels
// diagnostics and may be empty.
func SimpleParse(text string, splitters []string, fileName string) Result {
	return Parse(source.NewFile(fileName, text), Options{Splitters: splitters})
}

// Render formats one diagnostic as plain text.
func Render(d Diagnostic) string {
	return diagfmt.Render(d)
}

// Merge returns the smallest span covering a and b. It panics when the spans
// belong to different files.
func Merge(a, b Span) Span {
	return source.Merge(a, b)
}

// MergeAll folds Merge over spans; no spans give the empty span.
func MergeAll(spans ...Span) Span {
	return source.MergeAll(spans...)
}

// JSON writes the diagnostics of bag as an array of editor-style entries
// with zero-based ranges.
func JSON(w io.Writer, bag *Bag) error {
	return diagfmt.JSON(w, bag, diagfmt.JSONOpts{})
}
