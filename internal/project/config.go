// Package project loads snoot.toml, the per-project reader settings.
package project

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// LexerConfig is the [lexer] section.
type LexerConfig struct {
	Splitters     []string `toml:"splitters"`
	QuotedStrings bool     `toml:"quoted_strings"`
}

// RenderConfig is the [render] section.
type RenderConfig struct {
	Padding  int    `toml:"padding"`
	MinGap   int    `toml:"min_gap"`
	PathMode string `toml:"path_mode"`
}

// DiagConfig is the [diag] section.
type DiagConfig struct {
	Max        int      `toml:"max"`
	Extensions []string `toml:"extensions"`
}

// Config is the whole snoot.toml.
type Config struct {
	Lexer  LexerConfig  `toml:"lexer"`
	Render RenderConfig `toml:"render"`
	Diag   DiagConfig   `toml:"diag"`

	// Path is the file the config was loaded from; empty for Default.
	Path string `toml:"-"`
}

var (
	// ErrUnknownKey reports keys snoot.toml does not define.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalid wraps every Validate failure.
	ErrInvalid = errors.New("invalid config")
)

var pathModes = []string{"auto", "absolute", "relative", "basename"}

// Default returns the settings used without a snoot.toml.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Padding:  2,
			PathMode: "auto",
		},
		Diag: DiagConfig{
			Max:        100,
			Extensions: []string{".sexp", ".snoot"},
		},
	}
}

// Load parses path on top of Default. Keys missing from the file keep their
// defaults; keys the file has but Config lacks are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the config for a run: explicit wins, then the nearest
// snoot.toml above startDir, then Default.
func Resolve(explicit, startDir string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges. All problems are reported together.
func (c Config) Validate() error {
	var errs []error
	if c.Render.Padding < 0 {
		errs = append(errs, fmt.Errorf("render.padding must be >= 0, got %d", c.Render.Padding))
	}
	if c.Render.MinGap < 0 {
		errs = append(errs, fmt.Errorf("render.min_gap must be >= 0, got %d", c.Render.MinGap))
	}
	if !validPathMode(c.Render.PathMode) {
		errs = append(errs, fmt.Errorf("render.path_mode must be one of %s, got %q",
			strings.Join(pathModes, "|"), c.Render.PathMode))
	}
	if c.Diag.Max < 0 {
		errs = append(errs, fmt.Errorf("diag.max must be >= 0, got %d", c.Diag.Max))
	}
	for _, ext := range c.Diag.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Errorf("diag.extensions: %q must look like \".ext\"", ext))
		}
	}
	for _, s := range c.Lexer.Splitters {
		if s == "" {
			errs = append(errs, errors.New("lexer.splitters: empty splitter"))
			continue
		}
		// такой сплиттер никогда не окажется внутри атома
		if strings.ContainsAny(s, "()[]{}") || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
			errs = append(errs, fmt.Errorf("lexer.splitters: %q contains a bracket or whitespace", s))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

func validPathMode(mode string) bool {
	for _, m := range pathModes {
		if m == mode {
			return true
		}
	}
	return false
}
