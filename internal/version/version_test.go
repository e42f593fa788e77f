package version

import (
	"testing"

	"github.com/fatih/color"
)

func override(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestBanner(t *testing.T) {
	tests := []struct {
		name            string
		version, commit string
		date            string
		want            string
	}{
		{"default fields", "0.1.0-dev", "", "", "snoot 0.1.0-dev\n"},
		{"with commit", "1.2.3", "abc123", "", "snoot 1.2.3\ncommit: abc123\n"},
		{"full", "1.2.3", "abc123", "2024-01-15T10:30:00Z", "snoot 1.2.3\ncommit: abc123\nbuilt:  2024-01-15T10:30:00Z\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			override(t, tt.version, tt.commit, tt.date)
			if got := Banner(false); got != tt.want {
				t.Fatalf("Banner = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColoredKeepsText(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	override(t, "2.0.1-rc.1", "", "")
	if got := Colored(); got != "2.0.1-rc.1" {
		t.Fatalf("Colored without colour = %q", got)
	}

	override(t, "nightly", "", "")
	if got := Colored(); got != "nightly" {
		t.Fatalf("Colored for non-semver = %q", got)
	}
}

func TestColoredPaints(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = prev })

	override(t, "1.2.3", "", "")
	if got := Colored(); got == "1.2.3" {
		t.Fatal("expected escape sequences with colour enabled")
	}
}
