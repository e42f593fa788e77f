package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type shortDiagnostic struct {
	Label   string
	Code    string
	Path    string
	Line    uint32
	Column  uint32
	Message string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation: "<label> <code> <path>:<line>:<col> <message>". Entries are
// sorted deterministically; notes of annotations follow as "note" lines when
// includeNotes is set.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]shortDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], includeNotes)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		return false
	})

	var b strings.Builder
	for i, d := range rendered {
		loc := fmt.Sprintf("%d:%d", d.Line, d.Column)
		if d.Path != "" {
			loc = d.Path + ":" + loc
		}
		fmt.Fprintf(&b, "%s %s %s %s", d.Label, d.Code, loc, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []shortDiagnostic, d *Diagnostic, includeNotes bool) []shortDiagnostic {
	path := normalizePath(d.FileName())
	out = append(out, shortDiagnostic{
		Label:   d.Label(),
		Code:    d.Code.ID(),
		Path:    path,
		Line:    d.Primary.Lines.Start,
		Column:  d.Primary.Columns.Start,
		Message: sanitizeMessage(d.Message),
	})

	if includeNotes {
		for _, a := range d.Annotations {
			if a.Msg == "" {
				continue
			}
			out = append(out, shortDiagnostic{
				Label:   "note",
				Code:    d.Code.ID(),
				Path:    path,
				Line:    a.Span.Lines.Start,
				Column:  a.Span.Columns.Start,
				Message: sanitizeMessage(a.Msg),
			})
		}
	}
	return out
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
