package driver

import (
	"context"
	"fmt"

	"snoot/internal/diag"
	"snoot/internal/source"
	"snoot/internal/trace"
)

// traceReporter turns every reported diagnostic into a file-scope trace
// point, so --trace=detail shows problems in the order the parser met them.
type traceReporter struct {
	ctx context.Context
}

func (r traceReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, _ []diag.Annotation) {
	trace.Point(r.ctx, trace.ScopeFile, code.ID(), fmt.Sprintf("%s %s: %s", sev, primary, msg))
}
