package diagfmt

import (
	"encoding/json"
	"io"

	"snoot/internal/diag"
	"snoot/internal/source"
)

// DiagnosticSource is the fixed "source" field of exported diagnostics.
const DiagnosticSource = "implicit lint"

// PositionJSON is a zero-based editor position.
type PositionJSON struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

type RangeJSON struct {
	Start PositionJSON `json:"start"`
	End   PositionJSON `json:"end"`
}

// DiagnosticJSON представляет диагностику в формате редакторов:
// severity 0 - error, 1 - warn, 2 - info, 3 - custom.
type DiagnosticJSON struct {
	Severity int       `json:"severity"`
	Message  string    `json:"message"`
	Source   string    `json:"source"`
	Range    RangeJSON `json:"range"`
}

func severityCode(sev diag.Severity) int {
	switch sev {
	case diag.SevError:
		return 0
	case diag.SevWarning:
		return 1
	case diag.SevInfo:
		return 2
	}
	return 3
}

func zeroBased(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return n - 1
}

func makeRange(sp source.Span) RangeJSON {
	return RangeJSON{
		Start: PositionJSON{Line: zeroBased(sp.Lines.Start), Character: zeroBased(sp.Columns.Start)},
		End:   PositionJSON{Line: zeroBased(sp.Lines.End), Character: zeroBased(sp.Columns.End)},
	}
}

// BuildJSON формирует структуру JSON-вывода без сериализации.
func BuildJSON(bag *diag.Bag, opts JSONOpts) []DiagnosticJSON {
	if bag == nil {
		return []DiagnosticJSON{}
	}
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := make([]DiagnosticJSON, 0, maxItems)
	for i := range maxItems {
		d := items[i]
		out = append(out, DiagnosticJSON{
			Severity: severityCode(d.Severity),
			Message:  d.Message,
			Source:   DiagnosticSource,
			Range:    makeRange(d.Primary),
		})
	}
	return out
}

// JSON пишет диагностики как JSON-массив.
func JSON(w io.Writer, bag *diag.Bag, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildJSON(bag, opts))
}
