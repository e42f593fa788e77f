package snoot_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"snoot"
	"snoot/internal/diag"
)

func TestSimpleParseRecovers(t *testing.T) {
	res := snoot.SimpleParse("(a b { c d)", nil, "demo.sexp")
	if len(res.Roots) != 1 {
		t.Fatalf("roots = %d, want 1", len(res.Roots))
	}
	if res.Bag.Len() == 0 || !res.Bag.HasErrors() {
		t.Fatal("expected an error diagnostic")
	}
	out := snoot.Render(res.Bag.Items()[0])
	if !strings.HasPrefix(out, "error: ") || !strings.Contains(out, " --> demo.sexp:") {
		t.Fatalf("unexpected render:\n%s", out)
	}
}

func TestSimpleParseSplitters(t *testing.T) {
	res := snoot.SimpleParse("(a:b)", []string{":"}, "")
	list, ok := res.Roots[0].(*snoot.List)
	if !ok {
		t.Fatalf("root is %T, want *List", res.Roots[0])
	}
	if len(list.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(list.Children))
	}
	if !res.Bag.IsEmpty() {
		t.Fatalf("unexpected diagnostics")
	}
}

func TestTokenizeAndParseOptions(t *testing.T) {
	toks, err := snoot.Tokenize(`("a b")`, snoot.Options{QuotedStrings: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 3 {
		t.Fatalf("tokens = %d, want 3", len(toks))
	}

	res := snoot.Parse(snoot.NewFile("x.sexp", ") ) )"), snoot.Options{MaxDiagnostics: 2})
	if len(res.Events) != 3 || res.Bag.Len() != 2 {
		t.Fatalf("events %d, bag %d; want 3 and 2", len(res.Events), res.Bag.Len())
	}
	if res.Bag.Items()[0].Code != diag.SynExtraClosing {
		t.Fatalf("code = %v", res.Bag.Items()[0].Code)
	}
}

func TestPublicKindsAndSpans(t *testing.T) {
	res := snoot.SimpleParse("(define [x] {y})", nil, "")
	if !res.Bag.IsEmpty() || len(res.Roots) != 1 {
		t.Fatalf("roots %d, diagnostics %d", len(res.Roots), res.Bag.Len())
	}
	root := res.Roots[0]
	if root.Kind() != snoot.KindList {
		t.Fatalf("root kind = %v", root.Kind())
	}
	children := root.(*snoot.List).Children

	var got []string
	for _, child := range children {
		switch child.Kind() {
		case snoot.KindTerminal:
			got = append(got, "atom "+child.Span().Text())
		case snoot.KindList:
			switch child.(*snoot.List).Bracket {
			case snoot.Paren:
				got = append(got, "paren")
			case snoot.Square:
				got = append(got, "square")
			case snoot.Brace:
				got = append(got, "brace")
			}
		case snoot.KindString:
			got = append(got, "string")
		}
	}
	if want := "atom define,square,brace"; strings.Join(got, ",") != want {
		t.Fatalf("children = %q, want %q", strings.Join(got, ","), want)
	}

	if text := snoot.Merge(children[2].Span(), children[1].Span()).Text(); text != "[x] {y}" {
		t.Fatalf("Merge text = %q", text)
	}
	spans := make([]snoot.Span, 0, len(children))
	for _, child := range children {
		spans = append(spans, child.Span())
	}
	if text := snoot.MergeAll(spans...).Text(); text != "define [x] {y}" {
		t.Fatalf("MergeAll text = %q", text)
	}
	if !snoot.MergeAll().IsEmpty() {
		t.Fatal("MergeAll() should be empty")
	}
}

func TestPublicSeverityAndJSON(t *testing.T) {
	res := snoot.SimpleParse("(a", nil, "")
	items := res.Bag.Items()
	if len(items) != 1 || items[0].Severity != snoot.SevError || items[0].Code != snoot.SynUnclosedList {
		t.Fatalf("unexpected diagnostics: %+v", items)
	}

	var buf bytes.Buffer
	if err := snoot.JSON(&buf, res.Bag); err != nil {
		t.Fatal(err)
	}
	var out []struct {
		Severity int    `json:"severity"`
		Message  string `json:"message"`
		Source   string `json:"source"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].Severity != 0 || out[0].Message != "unclosed list" || out[0].Source != "implicit lint" {
		t.Fatalf("json = %s", buf.String())
	}
}
