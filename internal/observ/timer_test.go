package observ

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func steppingTimer(step time.Duration) *Timer {
	t := NewTimer()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	var tick time.Duration
	t.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		tick += step
		return base.Add(tick)
	}
	return t
}

func TestTimerReport(t *testing.T) {
	tm := steppingTimer(2 * time.Millisecond)
	lex := tm.Begin("lex")
	tm.End(lex, "12 tokens")
	parse := tm.Begin("parse")
	tm.End(parse, "")
	tm.End(parse, "again") // ignored

	want := Report{
		TotalMS: 4,
		Phases: []PhaseReport{
			{Name: "lex", DurationMS: 2, Note: "12 tokens"},
			{Name: "parse", DurationMS: 2},
		},
	}
	if diff := cmp.Diff(want, tm.Report()); diff != "" {
		t.Fatalf("Report mismatch (-want +got):\n%s", diff)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := steppingTimer(time.Millisecond)
	tm.Record("load", 3*time.Millisecond, "2 files")
	got := tm.Summary()
	for _, want := range []string{"timings:\n", "load", "3.00 ms", "// 2 files", "total"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestTimerConcurrent(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.End(tm.Begin("file"), "")
		}()
	}
	wg.Wait()
	if tm.Len() != 16 {
		t.Fatalf("Len = %d, want 16", tm.Len())
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin("x"), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer reported %v", r)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Fatalf("empty timer report = %+v", r)
	}
}
