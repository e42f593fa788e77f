package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snoot/internal/diag"
	"snoot/internal/parser"
	"snoot/internal/source"
)

func TestJSONShape(t *testing.T) {
	res := parser.ParseString("(a\n  b", nil, "in.sexp")

	var buf bytes.Buffer
	if err := JSON(&buf, res.Bag, JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var got []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	want := []map[string]any{{
		"severity": float64(0),
		"message":  "unclosed list",
		"source":   "implicit lint",
		"range": map[string]any{
			"start": map[string]any{"line": float64(0), "character": float64(0)},
			"end":   map[string]any{"line": float64(1), "character": float64(3)},
		},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONSeverityCodes(t *testing.T) {
	f := source.NewFile("", "abc")
	sp := source.SpanAt(f, 0, 1)
	bag := diag.NewBag(0)
	bag.Append(
		diag.NewError(diag.UnknownCode, sp, "e"),
		diag.New(diag.SevWarning, diag.UnknownCode, sp, "w"),
		diag.NewInfo(sp, "i"),
		diag.NewInfo(sp, "c").WithCustom("x"),
	)

	var sev []int
	for _, d := range BuildJSON(bag, JSONOpts{}) {
		sev = append(sev, d.Severity)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, sev); diff != "" {
		t.Fatalf("severities (-want +got):\n%s", diff)
	}
	if n := len(BuildJSON(bag, JSONOpts{Max: 2})); n != 2 {
		t.Fatalf("Max=2 produced %d entries", n)
	}
}

func TestJSONEmptyBagIsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(0), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("got %q", got)
	}
}
