package diagfmt

import (
	"fmt"
	"strings"

	"snoot/internal/diag"
	"snoot/internal/source"
)

// Render formats d as plain text:
//
//	error: unclosed list
//	 --> file.sexp:3:1
//	3 | (define x
//	4 |   (foo
//
// The body prints every line of the primary span's line window. When MinGap is
// set, runs of at least MinGap lines that are further than Padding lines from
// the primary span and every annotation collapse into one "skipped" marker.
// Render is pure: the same diagnostic always yields the same text.
func Render(d diag.Diagnostic) string {
	var b strings.Builder
	render(&b, d, d.FileName(), nil)
	return b.String()
}

// render writes d to b under the given display name. paint, if non-nil,
// decorates the severity label.
func render(b *strings.Builder, d diag.Diagnostic, name string, paint func(diag.Severity, string) string) {
	label := d.Label()
	if paint != nil {
		label = paint(d.Severity, label)
	}
	fmt.Fprintf(b, "%s: %s\n", label, d.Message)

	sp := d.Primary
	if sp.IsEmpty() {
		// без позиции: только имя файла, тела нет
		if name != "" {
			fmt.Fprintf(b, " --> %s\n", name)
		}
		return
	}
	if name != "" {
		fmt.Fprintf(b, " --> %s:%d:%d\n", name, sp.Lines.Start, sp.Columns.Start)
	} else {
		fmt.Fprintf(b, " --> %d:%d\n", sp.Lines.Start, sp.Columns.Start)
	}

	lines := splitLines(sp.LineText())
	// ширина с запасом: номер последней строки плюс число строк
	width := digits(int(sp.Lines.End) + len(lines))

	skip := skippable(d, len(lines))
	for i := 0; i < len(lines); {
		n := int(sp.Lines.Start) + i
		if skip[i] {
			j := i
			for j < len(lines) && skip[j] {
				j++
			}
			fmt.Fprintf(b, "%*s | skipped <%d> through <%d>\n", width, "~", n, n+j-i-1)
			i = j
			continue
		}
		fmt.Fprintf(b, "%*d | %s\n", width, n, lines[i])
		i++
	}
}

// skippable marks body lines hidden by compression. A line is a candidate
// when its distance to the nearest span exceeds Padding; only candidate runs
// of at least MinGap lines are hidden.
func skippable(d diag.Diagnostic, count int) []bool {
	out := make([]bool, count)
	if d.MinGap <= 0 || count == 0 {
		return out
	}

	spans := make([]source.Span, 0, 1+len(d.Annotations))
	spans = append(spans, d.Primary)
	for _, a := range d.Annotations {
		spans = append(spans, a.Span)
	}

	first := int(d.Primary.Lines.Start)
	candidate := make([]bool, count)
	for i := range count {
		candidate[i] = lineDistance(first+i, spans) > d.Padding
	}

	for i := 0; i < count; {
		if !candidate[i] {
			i++
			continue
		}
		j := i
		for j < count && candidate[j] {
			j++
		}
		if j-i >= d.MinGap {
			for k := i; k < j; k++ {
				out[k] = true
			}
		}
		i = j
	}
	return out
}

func lineDistance(line int, spans []source.Span) int {
	best := -1
	for _, sp := range spans {
		dist := min(abs(line-int(sp.Lines.Start)), abs(line-int(sp.Lines.End)))
		if best < 0 || dist < best {
			best = dist
		}
	}
	return best
}

// splitLines splits text into lines: no trailing empty line, "\r" stripped,
// empty text has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func digits(n int) int {
	d := 1
	for n >= 10 {
		d++
		n /= 10
	}
	return d
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
