package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"snoot/internal/diag"
	"snoot/internal/source"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow, color.Bold)
	infoColor   = color.New(color.FgCyan, color.Bold)
	customColor = color.New(color.FgMagenta, color.Bold)
	noteColor   = color.New(color.FgBlue)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Каждая диагностика печатается как Render, с путём согласно PathMode,
// опционально с цветом и заметками аннотаций. Между диагностиками пустая строка.
func Pretty(w io.Writer, bag *diag.Bag, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	var paint func(diag.Severity, string) string
	if opts.Color {
		paint = paintLabel
	}

	var b strings.Builder
	for i, d := range bag.Items() {
		if opts.Padding > 0 {
			d.Padding = opts.Padding
		}
		if opts.MinGap > 0 {
			d.MinGap = opts.MinGap
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		render(&b, d, displayName(d.FileName(), opts), paint)
		if opts.ShowNotes {
			writeNotes(&b, d, opts.Color)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeNotes(b *strings.Builder, d diag.Diagnostic, colored bool) {
	for _, a := range d.Annotations {
		if a.Msg == "" {
			continue
		}
		prefix := "note"
		if colored {
			prefix = sprint(noteColor, prefix)
		}
		fmt.Fprintf(b, "  = %s: %d:%d: %s\n", prefix, a.Span.Lines.Start, a.Span.Columns.Start, a.Msg)
	}
}

func paintLabel(sev diag.Severity, label string) string {
	switch sev {
	case diag.SevError:
		return sprint(errorColor, label)
	case diag.SevWarning:
		return sprint(warnColor, label)
	case diag.SevInfo:
		return sprint(infoColor, label)
	default:
		return sprint(customColor, label)
	}
}

// sprint colours s even when stdout is not a terminal: the caller already
// decided colour is wanted.
func sprint(c *color.Color, s string) string {
	c.EnableColor()
	return c.Sprint(s)
}

func displayName(name string, opts PrettyOpts) string {
	if opts.PathMode == PathModeAsIs {
		return name
	}
	return source.FormatPath(name, opts.PathMode.String(), opts.BaseDir)
}
