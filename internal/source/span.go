package source

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"

	"snoot/internal/token"
)

// Span is a view into a File: the byte range it covers, the whole-line window
// around that range, and the human-facing line/column ranges.
// A Span never copies text; Text and LineText slice File.Content on demand.
type Span struct {
	File    *File
	Bytes   StartEnd // [Start, End) in bytes
	Window  StartEnd // enclosing whole lines, Bytes ⊆ Window
	Lines   StartEnd // 1-based, both ends inclusive
	Columns StartEnd // 1-based, in runes, End exclusive
}

// Empty returns the span used for an empty fold: no file, all zeros.
func Empty() Span {
	return Span{}
}

// FromToken builds a span covering exactly tok. Line and column information is
// taken from the token; only the line window is computed by scanning.
func FromToken(tok token.Token, f *File) Span {
	end := tok.Offset + tok.Len
	sp := Span{
		File:  f,
		Bytes: StartEnd{Start: tok.Offset, End: end},
		Lines: StartEnd{Start: tok.Line, End: tok.Line},
		Columns: StartEnd{
			Start: tok.Col,
			End:   tok.Col + runeCount(tok.Text),
		},
	}
	if nl := strings.Count(tok.Text, "\n"); nl > 0 {
		// строковые токены могут переносить строки
		sp.Lines.End = tok.Line + mustU32(nl)
		tail := tok.Text[strings.LastIndexByte(tok.Text, '\n')+1:]
		sp.Columns.End = runeCount(tail) + 1
	}
	sp.Window = lineWindow(f, sp.Bytes.Start, sp.Bytes.End)
	return sp
}

// SpanAt builds a span for an arbitrary byte range of f, resolving lines and
// columns through the file's line index.
func SpanAt(f *File, start, end uint32) Span {
	if end < start {
		start, end = end, start
	}
	s := f.position(start)
	e := f.position(end)
	return Span{
		File:    f,
		Bytes:   StartEnd{Start: start, End: end},
		Window:  lineWindow(f, start, end),
		Lines:   StartEnd{Start: s.Line, End: e.Line},
		Columns: StartEnd{Start: s.Col, End: e.Col},
	}
}

// Merge returns the bounding span of a and b. The arguments may come in any
// order. The line window is recomputed over the union so that every line
// between two distant spans is part of the result.
//
// Merging spans over different files is a programming error and panics.
func Merge(a, b Span) Span {
	if a.File != b.File {
		panic(fmt.Errorf("source: cannot merge spans of %q and %q", a.File.name(), b.File.name()))
	}
	first, last := a, a
	if b.Bytes.Start < a.Bytes.Start {
		first = b
	}
	if b.Bytes.End > a.Bytes.End {
		last = b
	}
	out := Span{
		File:    a.File,
		Bytes:   StartEnd{Start: first.Bytes.Start, End: last.Bytes.End},
		Lines:   StartEnd{Start: first.Lines.Start, End: last.Lines.End},
		Columns: StartEnd{Start: first.Columns.Start, End: last.Columns.End},
	}
	out.Window = lineWindow(a.File, out.Bytes.Start, out.Bytes.End)
	return out
}

// MergeAll folds Merge over spans. With no spans it returns Empty().
func MergeAll(spans ...Span) Span {
	if len(spans) == 0 {
		return Empty()
	}
	out := spans[0]
	for _, sp := range spans[1:] {
		out = Merge(out, sp)
	}
	return out
}

// IsEmpty reports whether the span is the zero span produced by Empty.
func (s Span) IsEmpty() bool {
	return s.File == nil && s.Bytes == (StartEnd{})
}

// Len returns the number of bytes covered.
func (s Span) Len() uint32 {
	return s.Bytes.End - s.Bytes.Start
}

// Text returns the covered source text.
func (s Span) Text() string {
	return s.File.content()[s.Bytes.Start:s.Bytes.End]
}

// LineText returns every whole line touched by the span, without the final newline.
func (s Span) LineText() string {
	return s.File.content()[s.Window.Start:s.Window.End]
}

// FileName returns the path of the underlying file, or "" when it has none.
func (s Span) FileName() string {
	return s.File.name()
}

// Compare orders spans by start offset, then end offset.
func (s Span) Compare(other Span) int {
	switch {
	case s.Bytes.Start < other.Bytes.Start:
		return -1
	case s.Bytes.Start > other.Bytes.Start:
		return 1
	case s.Bytes.End < other.Bytes.End:
		return -1
	case s.Bytes.End > other.Bytes.End:
		return 1
	}
	return 0
}

func (s Span) String() string {
	pos := fmt.Sprintf("%d:%d-%d:%d", s.Lines.Start, s.Columns.Start, s.Lines.End, s.Columns.End)
	if name := s.FileName(); name != "" {
		return name + ":" + pos
	}
	return pos
}

// lineWindow widens [start, end) to whole lines: back to the byte after the
// previous '\n' (or 0) and forward to the next '\n' (or len).
// Both ends come from a binary search over LineIdx, so the cost does not
// depend on line length.
func lineWindow(f *File, start, end uint32) StartEnd {
	var idx []uint32
	if f != nil {
		idx = f.LineIdx
	}
	var ws uint32
	if i := sort.Search(len(idx), func(i int) bool { return idx[i] >= start }); i > 0 {
		ws = idx[i-1] + 1
	}
	we := mustU32(len(f.content()))
	if j := sort.Search(len(idx), func(i int) bool { return idx[i] >= end }); j < len(idx) {
		we = idx[j]
	}
	return StartEnd{Start: ws, End: we}
}

func runeCount(s string) uint32 {
	return mustU32(utf8.RuneCountInString(s))
}

func mustU32(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return v
}
