package driver

import (
	"context"
	"errors"
	"fmt"

	"snoot/internal/diag"
	"snoot/internal/lexer"
	"snoot/internal/observ"
	"snoot/internal/source"
	"snoot/internal/token"
	"snoot/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it completely. A tokenization failure is
// not an error of Tokenize: it ends the token list and lands in Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := load(ctx, fs, path, opts.Timer)
	if err != nil {
		return nil, err
	}

	ctx, span := trace.Start(ctx, trace.ScopePhase, "lex")
	idx := opts.Timer.Begin("lex")

	bag := diag.NewBag(opts.MaxDiagnostics)
	lxOpts := opts.lexerOptions()
	lxOpts.Reporter = diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	tokens, err := lexer.Tokenize(file, lxOpts)

	var te *lexer.TokenError
	if err != nil && !errors.As(err, &te) {
		// чужая ошибка: всё же покажем её пользователю
		bag.Add(diag.NewError(diag.LexNoMatch, source.Empty(), err.Error()).WithFile(file.Path))
	}
	if err != nil {
		trace.Error(ctx, "lex", err)
	}
	applyRender(bag, opts)

	note := fmt.Sprintf("%d tokens", len(tokens))
	opts.Timer.End(idx, note)
	span.WithExtra("tokens", fmt.Sprint(len(tokens))).End("")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}

// load reads path into fs under a "load" span and timer phase.
func load(ctx context.Context, fs *source.FileSet, path string, timer *observ.Timer) (*source.File, error) {
	ctx, span := trace.Start(ctx, trace.ScopePhase, "load")
	defer span.End(path)
	idx := timer.Begin("load")
	defer timer.End(idx, path)

	id, err := fs.Load(path)
	if err != nil {
		trace.Error(ctx, "load", err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return fs.Get(id), nil
}

// applyRender copies the run's rendering preferences onto every diagnostic.
func applyRender(bag *diag.Bag, opts Options) {
	bag.Update(func(d *diag.Diagnostic) {
		d.Padding = max(opts.Padding, 0)
		if opts.MinGap > 0 {
			d.MinGap = opts.MinGap
		}
	})
}
