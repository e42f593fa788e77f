package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps short or relative paths, shortens long absolute ones.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
	// PathModeAsIs prints the name stored in the diagnostic untouched.
	PathModeAsIs
)

func (m PathMode) String() string {
	switch m {
	case PathModeAuto:
		return "auto"
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	}
	return "as-is"
}

// ParsePathMode maps a config/flag value to a PathMode.
func ParsePathMode(s string) (PathMode, bool) {
	switch s {
	case "", "auto":
		return PathModeAuto, true
	case "absolute":
		return PathModeAbsolute, true
	case "relative":
		return PathModeRelative, true
	case "basename":
		return PathModeBasename, true
	case "as-is":
		return PathModeAsIs, true
	}
	return PathModeAuto, false
}

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	PathMode PathMode
	BaseDir  string // для PathModeRelative; пусто - рабочая директория
	// ShowNotes prints annotation notes under each body.
	ShowNotes bool
	// Padding and MinGap override the per-diagnostic values when positive.
	Padding int
	MinGap  int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int // обрезка вывода, не Bag
}
