package sexpr

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"snoot/internal/source"
	"snoot/internal/token"
)

func TestWalkPreOrder(t *testing.T) {
	// (a [b] c)
	f := source.NewFile("", "(a [b] c)")
	tok := func(kind token.Kind, off uint32, text string) token.Token {
		tk := token.Token{Kind: kind, Line: 1, Col: off + 1, Offset: off, Len: uint32(len(text)), Text: text}
		if b, _, ok := token.BracketOf(text[0]); ok && len(text) == 1 {
			tk.Bracket = b
		}
		return tk
	}
	inner := NewList(f, token.Square, tok(token.ListOpen, 3, "["), tok(token.ListClose, 5, "]"),
		[]Node{NewTerminal(f, tok(token.Atom, 4, "b"))})
	root := NewList(f, token.Paren, tok(token.ListOpen, 0, "("), tok(token.ListClose, 8, ")"),
		[]Node{NewTerminal(f, tok(token.Atom, 1, "a")), inner, NewTerminal(f, tok(token.Atom, 7, "c"))})

	var got []string
	var depths []int
	Walk([]Node{root}, func(n Node, depth int) bool {
		got = append(got, Text(n))
		depths = append(depths, depth)
		return true
	})
	if diff := cmp.Diff([]string{"(a [b] c)", "a", "[b]", "b", "c"}, got); diff != "" {
		t.Fatalf("walk order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 2, 1}, depths); diff != "" {
		t.Fatalf("depths (-want +got):\n%s", diff)
	}

	var pruned []string
	Walk([]Node{root}, func(n Node, _ int) bool {
		pruned = append(pruned, Text(n))
		return n.Kind() != KindList || n == Node(root)
	})
	if diff := cmp.Diff([]string{"(a [b] c)", "a", "[b]", "c"}, pruned); diff != "" {
		t.Fatalf("pruned walk (-want +got):\n%s", diff)
	}

	if Count([]Node{root}) != 5 {
		t.Fatalf("Count = %d", Count([]Node{root}))
	}
	if root.FirstToken().Text != "(" || root.LastToken().Text != ")" {
		t.Fatalf("bounding tokens %q %q", root.FirstToken().Text, root.LastToken().Text)
	}
}

func TestStringValue(t *testing.T) {
	f := source.NewFile("", `"hi"`)
	s := NewString(f, token.Token{Kind: token.String, Line: 1, Col: 1, Len: 4, Text: `"hi"`})
	if s.Value() != "hi" || s.Kind() != KindString || Text(s) != `"hi"` {
		t.Fatalf("Value=%q Kind=%v Text=%q", s.Value(), s.Kind(), Text(s))
	}
}
