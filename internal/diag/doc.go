// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Info, Warning, Error, or Custom with a free-form Tag.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short.
//   - Primary span – the source.Span pointing to the issue.
//   - Annotations – secondary spans, optionally with a note.
//   - Padding and MinGap – how the renderer compresses long bodies.
//
// Spans keep a pointer to their source.File, so a Diagnostic is self-contained:
// the renderer needs nothing else to print the offending lines.
//
// # Emitting diagnostics
//
// Phases use a diag.Reporter to decouple emission from storage. Builders
// (ReportError, ReportWarning, ReportInfo) allow chaining WithAnnotation before
// Emit. BagReporter aggregates diagnostics into a Bag, which supports sorting,
// deduplication, filtering and severity queries.
//
// Package diag does no rendering; see internal/diagfmt.
package diag
