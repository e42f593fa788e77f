package parser

import (
	"snoot/internal/diag"
	"snoot/internal/lexer"
	"snoot/internal/sexpr"
	"snoot/internal/source"
	"snoot/internal/token"
)

// TokenStream is anything that yields tokens until EOF or an error.
// *lexer.Lexer implements it.
type TokenStream interface {
	Next() (token.Token, error)
}

type Options struct {
	// FileName overrides the file path shown in diagnostics.
	FileName string
	// MaxErrors limits the diagnostics kept in the bag; 0 means no limit.
	// Events are never limited.
	MaxErrors int
	// Reporter, if set, additionally receives every diagnostic.
	Reporter diag.Reporter
}

type Result struct {
	Roots  []sexpr.Node
	Events []Event
	Bag    *diag.Bag
}

// Parse consumes tokens left to right and returns the recovered forest with
// one error-level diagnostic per event. It never fails.
func Parse(file *source.File, tokens TokenStream, opts Options) Result {
	stack := NewScopeStack(file)
	var events []Event

loop:
	for {
		tok, err := tokens.Next()
		if err != nil {
			events = append(events, TokenizationError{Err: err})
			break
		}
		switch tok.Kind {
		case token.EOF:
			break loop
		case token.ListOpen:
			stack.Open(tok)
		case token.ListClose:
			stack.Close(&tok, &events)
		case token.Atom:
			stack.Attach(sexpr.NewTerminal(file, tok))
		case token.String:
			stack.Attach(sexpr.NewString(file, tok))
		default:
			// пробелы и прочее в дерево не попадают
		}
	}
	roots := stack.End(&events)

	return Result{
		Roots:  roots,
		Events: events,
		Bag:    collect(events, opts),
	}
}

// ParseString tokenizes text with the given splitters and parses it.
// fileName may be empty.
func ParseString(text string, splitters []string, fileName string) Result {
	file := source.NewFile(fileName, text)
	return Parse(file, lexer.New(file, lexer.Options{Splitters: splitters}), Options{})
}

func collect(events []Event, opts Options) *diag.Bag {
	bag := diag.NewBag(opts.MaxErrors)
	for _, ev := range events {
		d := ev.Diagnostic()
		if opts.FileName != "" {
			d = d.WithFile(opts.FileName)
		}
		if opts.Reporter != nil {
			opts.Reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Annotations)
		}
		bag.Add(d)
	}
	return bag
}
