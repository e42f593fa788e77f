package diag

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Bag accumulates diagnostics for one run. A non-positive limit means no limit.
type Bag struct {
	items []Diagnostic
	max   int
}

func NewBag(limit int) *Bag {
	return &Bag{
		items: make([]Diagnostic, 0, min(max(limit, 0), 64)),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Append adds every diagnostic in order, stopping silently at the limit.
func (b *Bag) Append(ds ...Diagnostic) {
	for _, d := range ds {
		if !b.Add(d) {
			return
		}
	}
}

func (b *Bag) Cap() int {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика уровня Error
func (b *Bag) HasErrors() bool {
	return b.has(func(d *Diagnostic) bool { return d.Severity == SevError })
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика уровня Warning
func (b *Bag) HasWarnings() bool {
	return b.has(func(d *Diagnostic) bool { return d.Severity == SevWarning })
}

func (b *Bag) HasInfo() bool {
	return b.has(func(d *Diagnostic) bool { return d.Severity == SevInfo })
}

// HasAnyCustom reports whether any diagnostic has a custom severity.
func (b *Bag) HasAnyCustom() bool {
	return b.has(func(d *Diagnostic) bool { return d.Severity == SevCustom })
}

// HasCustom reports whether a custom diagnostic with exactly this tag exists.
func (b *Bag) HasCustom(tag string) bool {
	return b.has(func(d *Diagnostic) bool { return d.Severity == SevCustom && d.Tag == tag })
}

func (b *Bag) has(pred func(*Diagnostic) bool) bool {
	for i := range b.items {
		if pred(&b.items[i]) {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

func (b *Bag) IsEmpty() bool {
	return len(b.items) == 0
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if b.max > 0 && newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// SetFile sets the displayed file name on every diagnostic.
func (b *Bag) SetFile(name string) {
	for i := range b.items {
		b.items[i].File = name
	}
}

// Update applies fn to every diagnostic in place.
func (b *Bag) Update(fn func(*Diagnostic)) {
	for i := range b.items {
		fn(&b.items[i])
	}
}

// Filter keeps only the diagnostics for which keep returns true.
func (b *Bag) Filter(keep func(Diagnostic) bool) {
	out := b.items[:0]
	for _, d := range b.items {
		if keep(d) {
			out = append(out, d)
		}
	}
	b.items = out
}

// Sort сортирует диагностики по: file, primary span, severity, code
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		// сначала по файлу
		if fi, fj := di.FileName(), dj.FileName(); fi != fj {
			return fi < fj
		}
		if c := di.Primary.Compare(dj.Primary); c != 0 {
			return c < 0
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Code < dj.Code
	})
}

// простая дедупликация (по Code+Primary+Message)
func (b *Bag) Dedup() {
	seen := make(map[string]bool)
	newitems := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s:%s", d.Code.ID(), d.Primary.String(), d.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		newitems = append(newitems, d)
	}
	b.items = newitems
}

// ErrDiagnostics is matched by errors returned from Err and ErrIfErrors.
var ErrDiagnostics = errors.New("diagnostics reported")

// Err returns nil for an empty bag, otherwise an error listing every
// diagnostic on its own line.
func (b *Bag) Err() error {
	if b.IsEmpty() {
		return nil
	}
	return b.errorf()
}

// ErrIfErrors is like Err but only fails when an error-level diagnostic exists.
func (b *Bag) ErrIfErrors() error {
	if !b.HasErrors() {
		return nil
	}
	return b.errorf()
}

func (b *Bag) errorf() error {
	lines := FormatShortDiagnostics(b.items, false)
	return fmt.Errorf("%w:\n%s", ErrDiagnostics, strings.TrimRight(lines, "\n"))
}
