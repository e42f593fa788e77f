package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"snoot/internal/diagfmt"
	"snoot/internal/driver"
	"snoot/internal/observ"
	"snoot/internal/project"
)

// runSettings merges snoot.toml with command-line flags. Flags win, but only
// when the user actually set them.
type runSettings struct {
	config  project.Config
	driver  driver.Options
	pretty  diagfmt.PrettyOpts
	timings bool
}

func loadSettings(cmd *cobra.Command, target string) (runSettings, error) {
	root := cmd.Root().PersistentFlags()

	configPath, err := root.GetString("config")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	startDir := target
	if st, err := os.Stat(target); err == nil && !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, err := project.Resolve(configPath, startDir)
	if err != nil {
		return runSettings{}, err
	}

	if root.Changed("max-diagnostics") {
		if cfg.Diag.Max, err = root.GetInt("max-diagnostics"); err != nil {
			return runSettings{}, err
		}
	}
	flags := cmd.Flags()
	if flags.Lookup("split") != nil && flags.Changed("split") {
		if cfg.Lexer.Splitters, err = flags.GetStringArray("split"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Lookup("quoted") != nil && flags.Changed("quoted") {
		if cfg.Lexer.QuotedStrings, err = flags.GetBool("quoted"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Lookup("padding") != nil && flags.Changed("padding") {
		if cfg.Render.Padding, err = flags.GetInt("padding"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Lookup("min-gap") != nil && flags.Changed("min-gap") {
		if cfg.Render.MinGap, err = flags.GetInt("min-gap"); err != nil {
			return runSettings{}, err
		}
	}
	if flags.Lookup("path-mode") != nil && flags.Changed("path-mode") {
		if cfg.Render.PathMode, err = flags.GetString("path-mode"); err != nil {
			return runSettings{}, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return runSettings{}, err
	}

	timings, err := root.GetBool("timings")
	if err != nil {
		return runSettings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := driver.DefaultOptions()
	opts.Splitters = cfg.Lexer.Splitters
	opts.QuotedStrings = cfg.Lexer.QuotedStrings
	opts.MaxDiagnostics = cfg.Diag.Max
	opts.Padding = cfg.Render.Padding
	opts.MinGap = cfg.Render.MinGap
	opts.Extensions = cfg.Diag.Extensions
	if timings {
		opts.Timer = observ.NewTimer()
	}

	mode, _ := diagfmt.ParsePathMode(cfg.Render.PathMode) // проверено в Validate
	return runSettings{
		config:  cfg,
		driver:  opts,
		pretty:  diagfmt.PrettyOpts{PathMode: mode},
		timings: timings,
	}, nil
}

// useColor resolves --color for output going to f.
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(f), nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
}
