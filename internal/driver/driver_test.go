package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snoot/internal/diag"
	"snoot/internal/observ"
	"snoot/internal/token"
	"snoot/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestTokenize(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.sexp", "(a b:c)")
	opts := DefaultOptions()
	opts.Splitters = []string{":"}
	opts.Timer = observ.NewTimer()

	res, err := Tokenize(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []token.Kind
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{
		token.ListOpen, token.Atom, token.Whitespace,
		token.Atom, token.Atom, token.Atom, token.ListClose,
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("token kinds (-want +got):\n%s", diff)
	}
	if !res.Bag.IsEmpty() {
		t.Fatalf("unexpected diagnostics: %v", codes(res.Bag))
	}
	if got := opts.Timer.Len(); got != 2 {
		t.Errorf("timer phases = %d, want 2 (load, lex)", got)
	}
}

func TestTokenizeUnclosedString(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.sexp", `(say "hi`)
	opts := DefaultOptions()
	opts.QuotedStrings = true

	res, err := Tokenize(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]diag.Code{diag.LexUnclosedString}, codes(res.Bag)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	if len(res.Tokens) != 3 {
		t.Errorf("got %d tokens before the error, want 3", len(res.Tokens))
	}
}

func TestParse(t *testing.T) {
	path := writeFile(t, t.TempDir(), "p.sexp", "(a (b)\n")
	opts := DefaultOptions()
	opts.Padding = 5
	opts.MinGap = 3

	res, err := Parse(context.Background(), path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(res.Roots))
	}
	if diff := cmp.Diff([]diag.Code{diag.SynUnclosedList}, codes(res.Bag)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	d := res.Bag.Items()[0]
	if d.Padding != 5 || d.MinGap != 3 {
		t.Errorf("render options not applied: padding %d, min gap %d", d.Padding, d.MinGap)
	}
}

func TestParseTracesDiagnostics(t *testing.T) {
	path := writeFile(t, t.TempDir(), "t.sexp", "(a\n) )")
	var buf bytes.Buffer
	tr, err := trace.New(trace.Config{Level: trace.LevelDetail, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ctx := trace.WithTracer(context.Background(), tr)

	res, err := Parse(ctx, path, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]diag.Code{diag.SynExtraClosing}, codes(res.Bag)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	out := buf.String()
	if n := strings.Count(out, diag.SynExtraClosing.ID()); n != 1 {
		t.Fatalf("%s traced %d times:\n%s", diag.SynExtraClosing.ID(), n, out)
	}
	if !strings.Contains(out, "extra list closing") {
		t.Fatalf("message missing from trace:\n%s", out)
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(context.Background(), filepath.Join(t.TempDir(), "nope.sexp"), DefaultOptions())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want ErrNotExist", err)
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) OnEvent(ev Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *recordingSink) count(stage Stage, status Status) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, ev := range s.events {
		if ev.Stage == stage && ev.Status == status {
			n++
		}
	}
	return n
}

func TestDiagnoseDir(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.sexp", "(define x 1)\n")
	bad := writeFile(t, dir, "sub/b.snoot", "(x [y)\n")
	writeFile(t, dir, "notes.txt", "(")
	writeFile(t, dir, ".hidden/c.sexp", "(")

	sink := &recordingSink{}
	opts := DefaultOptions()
	opts.Jobs = 2
	opts.Progress = sink
	opts.Timer = observ.NewTimer()

	res, err := DiagnoseDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, f := range res.Files {
		paths = append(paths, f.Path)
	}
	if diff := cmp.Diff([]string{good, bad}, paths); diff != "" {
		t.Fatalf("files (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]diag.Code{diag.SynWrongClosing}, codes(res.Bag)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
	if !res.HasErrors() {
		t.Error("HasErrors = false")
	}
	if res.Files[0].Bag.Len() != 0 {
		t.Errorf("clean file has %d diagnostics", res.Files[0].Bag.Len())
	}
	if got := sink.count(StageParse, StatusDone); got != 2 {
		t.Errorf("parse done events = %d, want 2", got)
	}
	if got := sink.count(StageDiagnose, StatusDone); got != 1 {
		t.Errorf("diagnose done events = %d, want 1", got)
	}
	if got := opts.Timer.Len(); got != 3 {
		t.Errorf("timer phases = %d, want 3 (walk, load, parse)", got)
	}
}

func TestDiagnoseSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "one.txt", ")")
	res, err := Diagnose(context.Background(), path, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]diag.Code{diag.SynExtraClosing}, codes(res.Bag)); diff != "" {
		t.Fatalf("codes (-want +got):\n%s", diff)
	}
}

func TestDiagnoseMissingPath(t *testing.T) {
	if _, err := Diagnose(context.Background(), filepath.Join(t.TempDir(), "gone"), DefaultOptions()); err == nil {
		t.Fatal("expected error")
	}
}

func TestDiagnoseDirCancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sexp", "()")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := DiagnoseDir(ctx, dir, DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestDiagnoseDirMaxDiagnostics(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.sexp", ") ) )")
	writeFile(t, dir, "b.sexp", ") )")
	opts := DefaultOptions()
	opts.MaxDiagnostics = 2

	res, err := DiagnoseDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() != 2 {
		t.Fatalf("merged bag len = %d, want 2", res.Bag.Len())
	}
}
