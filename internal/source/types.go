package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	// FileDecodedUTF16 marks content transcoded from UTF-16 on load.
	FileDecodedUTF16
)

// File is the shared read-only buffer every Span and token.Token slices into.
// Content is never modified after the file is created.
type File struct {
	ID      FileID
	Path    string // "" when the text has no file name
	Content string
	LineIdx []uint32 // offsets of '\n' bytes
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in runes
}

// StartEnd is a half-open [Start, End) pair. For line numbers both ends are inclusive.
type StartEnd struct {
	Start uint32
	End   uint32
}
