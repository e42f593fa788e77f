package driver

import (
	"runtime"
	"strings"

	"snoot/internal/diag"
	"snoot/internal/lexer"
	"snoot/internal/observ"
)

// DefaultExtensions are the file suffixes DiagnoseDir picks up when
// Options.Extensions is empty.
var DefaultExtensions = []string{".sexp", ".snoot"}

// Options configures a driver run.
type Options struct {
	Splitters      []string
	QuotedStrings  bool
	MaxDiagnostics int // 0 = без ограничения
	Padding        int // lines of context kept around spans
	MinGap         int
	Extensions     []string
	Jobs           int // <=0 means GOMAXPROCS
	Cache          *DiskCache
	Progress       ProgressSink
	Timer          *observ.Timer
}

// DefaultOptions returns options with the standard padding and extensions.
// The zero Options value renders with no padding.
func DefaultOptions() Options {
	return Options{
		Padding:    diag.DefaultPadding,
		Extensions: DefaultExtensions,
	}
}

func (o *Options) lexerOptions() lexer.Options {
	return lexer.Options{
		Splitters:     o.Splitters,
		QuotedStrings: o.QuotedStrings,
	}
}

func (o *Options) jobs(n int) int {
	jobs := o.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return max(1, min(jobs, n))
}

func (o *Options) matches(path string) bool {
	exts := o.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	for _, ext := range exts {
		if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

func (o *Options) emit(ev Event) {
	if o.Progress != nil {
		o.Progress.OnEvent(ev)
	}
}
