package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevInfo is for informational diagnostics.
	SevInfo Severity = iota
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
	// SevCustom carries a caller-defined level; its label lives in Diagnostic.Tag.
	SevCustom
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warn"
	case SevError:
		return "error"
	case SevCustom:
		return "custom"
	}
	return "unknown"
}

// Label returns the header word for a diagnostic of this severity: the tag
// for custom diagnostics, String() otherwise.
func (s Severity) Label(tag string) string {
	if s == SevCustom {
		return tag
	}
	return s.String()
}
