package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[lexer]
splitters = [":", "::"]
quoted_strings = true

[render]
min_gap = 3
path_mode = "basename"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Lexer = LexerConfig{Splitters: []string{":", "::"}, QuotedStrings: true}
	want.Render.MinGap = 3
	want.Render.PathMode = "basename"
	want.Path = path
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[render]
padding = 1
colour = "always"

[output]
format = "json"
`)
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("err = %v, want ErrUnknownKey", err)
	}
	for _, key := range []string{"render.colour", "output"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %q", err, key)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"default is valid", func(*Config) {}, ""},
		{"negative padding", func(c *Config) { c.Render.Padding = -1 }, "render.padding"},
		{"negative min gap", func(c *Config) { c.Render.MinGap = -2 }, "render.min_gap"},
		{"bad path mode", func(c *Config) { c.Render.PathMode = "short" }, "render.path_mode"},
		{"negative max", func(c *Config) { c.Diag.Max = -5 }, "diag.max"},
		{"extension without dot", func(c *Config) { c.Diag.Extensions = []string{"sexp"} }, "diag.extensions"},
		{"empty splitter", func(c *Config) { c.Lexer.Splitters = []string{""} }, "empty splitter"},
		{"bracket splitter", func(c *Config) { c.Lexer.Splitters = []string{"a("} }, "bracket or whitespace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalid) || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want ErrInvalid mentioning %q", err, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" {
		t.Fatalf("expected defaults, got config from %s", cfg.Path)
	}

	path := writeConfig(t, root, "[diag]\nmax = 7\n")
	cfg, err = Resolve("", nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != path || cfg.Diag.Max != 7 {
		t.Fatalf("Resolve found %q max=%d", cfg.Path, cfg.Diag.Max)
	}

	other := writeConfig(t, t.TempDir(), "[diag]\nmax = 9\n")
	cfg, err = Resolve(other, nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Diag.Max != 9 {
		t.Fatalf("explicit config ignored: max=%d", cfg.Diag.Max)
	}

	dir, ok, err := FindProjectRoot(nested)
	if err != nil || !ok || dir != root {
		t.Fatalf("FindProjectRoot = %q, %v, %v", dir, ok, err)
	}
}
