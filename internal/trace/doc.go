// Package trace records begin/end/point events for the reader pipeline: the
// command, each file, and the lex/parse/render phases inside a file.
//
// # Usage
//
//	snoot diag --trace=detail --trace-format=ndjson ./docs
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: only error points
//   - LevelPhase: command and phase boundaries
//   - LevelDetail: plus per-file spans
//   - LevelDebug: everything
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePhase, "parse")
//	defer span.End("")
package trace
