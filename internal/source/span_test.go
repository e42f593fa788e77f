package source

import (
	"strings"
	"testing"

	"snoot/internal/token"
)

func atom(f *File, off, length uint32) token.Token {
	pos := f.Position(off)
	return token.Token{
		Kind:   token.Atom,
		Line:   pos.Line,
		Col:    pos.Col,
		Offset: off,
		Len:    length,
		Text:   f.Content[off : off+length],
	}
}

func TestFromTokenLineWindow(t *testing.T) {
	f := NewFile("", "abc\n123\nxyz")
	tests := []struct {
		name   string
		off    uint32
		length uint32
		window string
		line   uint32
	}{
		{name: "first line", off: 1, length: 2, window: "abc", line: 1},
		{name: "middle line", off: 5, length: 1, window: "123", line: 2},
		{name: "last line", off: 9, length: 2, window: "xyz", line: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := FromToken(atom(f, tt.off, tt.length), f)
			if got := sp.LineText(); got != tt.window {
				t.Errorf("LineText() = %q, want %q", got, tt.window)
			}
			if sp.Lines.Start != tt.line || sp.Lines.End != tt.line {
				t.Errorf("Lines = %+v, want %d..%d", sp.Lines, tt.line, tt.line)
			}
			if sp.Bytes.Start < sp.Window.Start || sp.Bytes.End > sp.Window.End {
				t.Errorf("bytes %+v escape window %+v", sp.Bytes, sp.Window)
			}
		})
	}
}

func TestFromTokenColumnsCountRunes(t *testing.T) {
	f := NewFile("", "(片仮名 x)")
	sp := FromToken(atom(f, 1, 9), f)
	if sp.Text() != "片仮名" {
		t.Fatalf("Text() = %q", sp.Text())
	}
	if sp.Columns.Start != 2 || sp.Columns.End != 5 {
		t.Fatalf("Columns = %+v, want 2..5", sp.Columns)
	}
	x := FromToken(atom(f, 11, 1), f)
	if x.Columns.Start != 6 {
		t.Fatalf("x column = %d, want 6", x.Columns.Start)
	}
}

func TestFromTokenMultiline(t *testing.T) {
	f := NewFile("", "a \"b\nc\" d")
	tok := token.Token{Kind: token.String, Line: 1, Col: 3, Offset: 2, Len: 5, Text: f.Content[2:7]}
	sp := FromToken(tok, f)
	if sp.Lines.Start != 1 || sp.Lines.End != 2 {
		t.Fatalf("Lines = %+v, want 1..2", sp.Lines)
	}
	if sp.Columns.End != 3 {
		t.Fatalf("Columns.End = %d, want 3", sp.Columns.End)
	}
	if sp.LineText() != f.Content {
		t.Fatalf("LineText() = %q", sp.LineText())
	}
}

func TestSpanAtMatchesFromToken(t *testing.T) {
	f := NewFile("x.sexp", "(define x\n  (片 y))\n")
	for _, r := range []struct{ off, length uint32 }{{0, 1}, {1, 6}, {12, 1}, {13, 3}, {17, 1}} {
		want := FromToken(atom(f, r.off, r.length), f)
		got := SpanAt(f, r.off, r.off+r.length)
		if got != want {
			t.Errorf("SpanAt(%d,%d) = %+v, want %+v", r.off, r.off+r.length, got, want)
		}
	}
}

func TestMergeCommutativeAndWindow(t *testing.T) {
	f := NewFile("", "abc\n123\nxyz")
	a := FromToken(atom(f, 0, 3), f)
	b := FromToken(atom(f, 8, 3), f)

	ab := Merge(a, b)
	ba := Merge(b, a)
	if ab != ba {
		t.Fatalf("Merge not commutative: %+v vs %+v", ab, ba)
	}
	if ab.Text() != "abc\n123\nxyz" {
		t.Fatalf("Text() = %q", ab.Text())
	}
	if ab.LineText() != "abc\n123\nxyz" {
		t.Fatalf("LineText() = %q", ab.LineText())
	}
	if ab.Lines != (StartEnd{Start: 1, End: 3}) {
		t.Fatalf("Lines = %+v", ab.Lines)
	}
	if ab.Columns != (StartEnd{Start: 1, End: 4}) {
		t.Fatalf("Columns = %+v", ab.Columns)
	}
}

func TestMergeNested(t *testing.T) {
	f := NewFile("", "(a (b) c)")
	outer := SpanAt(f, 0, 9)
	inner := SpanAt(f, 3, 6)
	got := Merge(outer, inner)
	if got != outer {
		t.Fatalf("Merge(outer, inner) = %+v, want %+v", got, outer)
	}
	if Merge(inner, outer) != outer {
		t.Fatalf("Merge(inner, outer) != outer")
	}
}

func TestMergeAssociative(t *testing.T) {
	f := NewFile("", "one two\nthree four")
	s1 := SpanAt(f, 0, 3)
	s2 := SpanAt(f, 4, 7)
	s3 := SpanAt(f, 14, 18)
	left := Merge(Merge(s1, s2), s3)
	right := Merge(s1, Merge(s2, s3))
	if left != right {
		t.Fatalf("not associative: %+v vs %+v", left, right)
	}
	if all := MergeAll(s1, s2, s3); all != left {
		t.Fatalf("MergeAll = %+v, want %+v", all, left)
	}
}

func TestMergeAllEmpty(t *testing.T) {
	sp := MergeAll()
	if !sp.IsEmpty() {
		t.Fatalf("MergeAll() = %+v, want empty", sp)
	}
	if sp.Text() != "" || sp.LineText() != "" {
		t.Fatalf("empty span text = %q / %q", sp.Text(), sp.LineText())
	}
}

func TestMergeDifferentFilesPanics(t *testing.T) {
	a := SpanAt(NewFile("a", "x"), 0, 1)
	b := SpanAt(NewFile("b", "x"), 0, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when merging spans of different files")
		}
	}()
	Merge(a, b)
}

func TestSpanCompare(t *testing.T) {
	f := NewFile("", "abcdef")
	if SpanAt(f, 0, 2).Compare(SpanAt(f, 1, 2)) >= 0 {
		t.Error("earlier start must sort first")
	}
	if SpanAt(f, 1, 2).Compare(SpanAt(f, 1, 4)) >= 0 {
		t.Error("shorter span with equal start must sort first")
	}
	if SpanAt(f, 2, 3).Compare(SpanAt(f, 2, 3)) != 0 {
		t.Error("equal spans must compare equal")
	}
}

func TestSpanString(t *testing.T) {
	f := NewFile("prog.sexp", "(a\n b)")
	if got := SpanAt(f, 0, 6).String(); got != "prog.sexp:1:1-2:4" {
		t.Fatalf("String() = %q", got)
	}
	anon := NewFile("", "(a)")
	if got := SpanAt(anon, 1, 2).String(); got != "1:2-1:3" {
		t.Fatalf("String() = %q", got)
	}
}

func TestLineWindowMatchesScan(t *testing.T) {
	scan := func(content string, start, end uint32) StartEnd {
		ws := strings.LastIndexByte(content[:start], '\n') + 1
		we := len(content)
		if idx := strings.IndexByte(content[end:], '\n'); idx >= 0 {
			we = int(end) + idx
		}
		return StartEnd{Start: uint32(ws), End: uint32(we)}
	}
	inputs := []string{"", "abc", "\n", "a\n\nb\n", "(x y)\n  (z)\n\n", "\n\nend"}
	for _, in := range inputs {
		f := NewFile("", in)
		n := uint32(len(in))
		for start := uint32(0); start <= n; start++ {
			for end := start; end <= n; end++ {
				if got, want := lineWindow(f, start, end), scan(in, start, end); got != want {
					t.Fatalf("lineWindow(%q, %d, %d) = %+v, want %+v", in, start, end, got, want)
				}
			}
		}
	}
	if got := lineWindow(nil, 0, 0); got != (StartEnd{}) {
		t.Fatalf("nil file window = %+v", got)
	}
}
