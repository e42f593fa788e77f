package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"snoot/internal/diag"
	"snoot/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// Digest keys cache entries.
type Digest [32]byte

// DiskCache хранит диагностики файлов на диске, ключ: содержимое файла
// плюс настройки лексера. Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the diagnostics of one file. Spans are kept as byte
// ranges and rebuilt against the freshly loaded file.
type DiskPayload struct {
	Schema      uint16             `msgpack:"schema"`
	Path        string             `msgpack:"path"`
	ContentHash Digest             `msgpack:"content_hash"`
	Diagnostics []CachedDiagnostic `msgpack:"diags"`
}

// CachedDiagnostic is a diagnostic without file pointers.
type CachedDiagnostic struct {
	Severity    uint8              `msgpack:"sev"`
	Tag         string             `msgpack:"tag,omitempty"`
	Code        uint16             `msgpack:"code"`
	Message     string             `msgpack:"msg"`
	HasSpan     bool               `msgpack:"has_span"`
	Start       uint32             `msgpack:"start"`
	End         uint32             `msgpack:"end"`
	Annotations []CachedAnnotation `msgpack:"notes,omitempty"`
}

// CachedAnnotation is an annotation as a byte range.
type CachedAnnotation struct {
	Start uint32 `msgpack:"start"`
	End   uint32 `msgpack:"end"`
	Msg   string `msgpack:"msg"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// KeyFor derives the cache key of a file under the given lexer settings and
// diagnostic limit.
func KeyFor(file *source.File, opts Options) Digest {
	h := sha256.New()
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], diskCacheSchemaVersion)
	_, _ = h.Write(buf[:])
	_, _ = h.Write(file.Hash[:])
	if opts.QuotedStrings {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	var limit [8]byte
	binary.LittleEndian.PutUint64(limit[:], uint64(max(opts.MaxDiagnostics, 0))) // #nosec G115 -- non-negative
	_, _ = h.Write(limit[:])
	for _, s := range opts.Splitters {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// Для удобства читаемости/очистки отдельный подкаталог "diags".
	return filepath.Join(c.dir, "diags", hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	renamed := false
	defer func() {
		if renamed {
			return
		}
		_ = f.Close()
		if rmErr := os.Remove(f.Name()); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove temp file: %w", rmErr)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err := os.Rename(f.Name(), p); err != nil {
		return err
	}
	renamed = true
	return nil
}

// Get reads and deserializes a payload from the disk cache. A payload of
// another schema version counts as a miss.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	dir := filepath.Join(c.dir, "diags")
	// тривиально: переименуем каталог и удалим
	old := dir + ".old-" + time.Now().Format("20060102150405.000000000")
	if err := os.Rename(dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// toDiskPayload flattens diagnostics of file into byte ranges.
func toDiskPayload(file *source.File, diags []diag.Diagnostic) *DiskPayload {
	payload := &DiskPayload{
		Schema:      diskCacheSchemaVersion,
		Path:        file.Path,
		ContentHash: file.Hash,
		Diagnostics: make([]CachedDiagnostic, 0, len(diags)),
	}
	for _, d := range diags {
		cd := CachedDiagnostic{
			Severity: uint8(d.Severity),
			Tag:      d.Tag,
			Code:     uint16(d.Code),
			Message:  d.Message,
			HasSpan:  !d.Primary.IsEmpty(),
			Start:    d.Primary.Bytes.Start,
			End:      d.Primary.Bytes.End,
		}
		for _, a := range d.Annotations {
			cd.Annotations = append(cd.Annotations, CachedAnnotation{
				Start: a.Span.Bytes.Start,
				End:   a.Span.Bytes.End,
				Msg:   a.Msg,
			})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

// fromDiskPayload rebuilds diagnostics against file. It returns false when
// the payload does not belong to file's content.
func fromDiskPayload(payload *DiskPayload, file *source.File) ([]diag.Diagnostic, bool) {
	if payload == nil || payload.Schema != diskCacheSchemaVersion || payload.ContentHash != file.Hash {
		return nil, false
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return nil, false
	}
	out := make([]diag.Diagnostic, 0, len(payload.Diagnostics))
	for _, cd := range payload.Diagnostics {
		if cd.Start > size || cd.End > size {
			return nil, false
		}
		primary := source.Empty()
		if cd.HasSpan {
			primary = source.SpanAt(file, cd.Start, cd.End)
		}
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code), primary, cd.Message)
		d.Tag = cd.Tag
		for _, a := range cd.Annotations {
			if a.Start > size || a.End > size {
				return nil, false
			}
			d = d.WithAnnotation(source.SpanAt(file, a.Start, a.End), a.Msg)
		}
		out = append(out, d)
	}
	return out, true
}
