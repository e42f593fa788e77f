package driver

import (
	"context"
	"fmt"

	"snoot/internal/diag"
	"snoot/internal/lexer"
	"snoot/internal/parser"
	"snoot/internal/sexpr"
	"snoot/internal/source"
	"snoot/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Roots   []sexpr.Node
	Events  []parser.Event
	Bag     *diag.Bag
}

// Parse loads path and parses it into a forest. Parse errors are reported in
// Bag; only a failed load returns an error.
func Parse(ctx context.Context, path string, opts Options) (*ParseResult, error) {
	fs := source.NewFileSet()
	file, err := load(ctx, fs, path, opts.Timer)
	if err != nil {
		return nil, err
	}
	res := parseFile(ctx, file, opts)
	res.FileSet = fs
	return res, nil
}

// parseFile lexes and parses an already loaded file.
func parseFile(ctx context.Context, file *source.File, opts Options) *ParseResult {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "parse")
	idx := opts.Timer.Begin("parse")

	// токенные ошибки приходят событием парсера, лексеру репортёр не нужен
	res := parser.Parse(file, lexer.New(file, opts.lexerOptions()), parser.Options{
		MaxErrors: opts.MaxDiagnostics,
		Reporter:  diag.NewDedupReporter(traceReporter{ctx: ctx}),
	})
	for _, ev := range res.Events {
		if te, ok := ev.(parser.TokenizationError); ok {
			trace.Error(ctx, "lex", te.Err)
		}
	}
	applyRender(res.Bag, opts)

	nodes := sexpr.Count(res.Roots)
	opts.Timer.End(idx, fmt.Sprintf("%d nodes, %d events", nodes, len(res.Events)))
	span.WithExtra("nodes", fmt.Sprint(nodes)).
		WithExtra("events", fmt.Sprint(len(res.Events))).
		End(file.Path)

	return &ParseResult{
		File:   file,
		Roots:  res.Roots,
		Events: res.Events,
		Bag:    res.Bag,
	}
}
