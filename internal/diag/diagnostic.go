package diag

import (
	"snoot/internal/source"
)

// DefaultPadding is the number of context lines kept around every span when
// a diagnostic body is compressed.
const DefaultPadding = 2

// Annotation is a secondary span with an optional note.
type Annotation struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	// Tag labels SevCustom diagnostics; ignored otherwise.
	Tag         string
	Code        Code
	Message     string
	Primary     source.Span
	Annotations []Annotation
	// Padding lines around the primary span and annotations survive compression.
	Padding int
	// MinGap is the shortest run of far-away lines worth replacing with a
	// "skipped" marker. 0 disables compression.
	MinGap int
	// File overrides the span's file name in rendered output.
	File string
}

// FileName returns the name shown for the diagnostic: the explicit File if
// set, else the path of the primary span's file.
func (d Diagnostic) FileName() string {
	if d.File != "" {
		return d.File
	}
	return d.Primary.FileName()
}

// Label is the header word: severity name or custom tag.
func (d Diagnostic) Label() string {
	return d.Severity.Label(d.Tag)
}
