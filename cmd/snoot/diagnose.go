package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"snoot/internal/diag"
	"snoot/internal/diagfmt"
	"snoot/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] FILE|DIR",
	Short: "Report bracket errors in a file or a directory tree",
	Long: `diag parses every input file and renders one diagnostic per bracket problem.
The exit status is 1 when any error was reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Int("jobs", 0, "max parallel files (0 = GOMAXPROCS)")
	diagCmd.Flags().Bool("disk-cache", false, "reuse diagnostics of unchanged files from the on-disk cache")
	diagCmd.Flags().Bool("drop-cache", false, "clear the on-disk cache before running")
	diagCmd.Flags().String("ui", "off", "progress UI (auto|on|off)")
	diagCmd.Flags().Lookup("ui").NoOptDefVal = "on"
	diagCmd.Flags().Int("padding", 2, "context lines kept around each span")
	diagCmd.Flags().Int("min-gap", 0, "hide runs of at least N far-away lines (0 = show all)")
	diagCmd.Flags().Bool("with-notes", false, "print annotation notes")
	diagCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	addLexerFlags(diagCmd)
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "short":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return err
	}

	cleanup, err := instrument(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	settings, err := loadSettings(cmd, target)
	if err != nil {
		return err
	}
	opts := settings.driver
	opts.Jobs = jobs

	if err := setupDiskCache(cmd, &opts); err != nil {
		return err
	}

	var result *driver.DiagnoseResult
	if shouldUseTUI(mode) {
		result, err = runDiagnoseWithUI(cmd.Context(), "snoot diag "+target, target, opts)
	} else {
		result, err = driver.Diagnose(cmd.Context(), target, opts)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if settings.timings {
			driver.AppendTimings(result.Bag, "diag", target, opts.Timer)
		}
		err = diagfmt.JSON(out, result.Bag, diagfmt.JSONOpts{})
	case "short":
		if text := diag.FormatShortDiagnostics(result.Bag.Items(), withNotes); text != "" {
			_, err = fmt.Fprintln(out, text)
		}
		printTimings(cmd, settings)
	default:
		colored, cerr := useColor(cmd, os.Stdout)
		if cerr != nil {
			return cerr
		}
		pretty := settings.pretty
		pretty.Color = colored
		pretty.ShowNotes = withNotes
		err = diagfmt.Pretty(out, result.Bag, pretty)
		if err == nil && !result.Bag.IsEmpty() {
			_, err = fmt.Fprintln(cmd.ErrOrStderr(), summaryLine(result))
		}
		printTimings(cmd, settings)
	}
	if err != nil {
		return err
	}

	if result.HasErrors() {
		return errDiagnosticsFound
	}
	return nil
}

func setupDiskCache(cmd *cobra.Command, opts *driver.Options) error {
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	dropCache, err := cmd.Flags().GetBool("drop-cache")
	if err != nil {
		return fmt.Errorf("failed to get drop-cache flag: %w", err)
	}
	if !useCache && !dropCache {
		return nil
	}
	cache, err := driver.OpenDiskCache("snoot")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if dropCache {
		if err := cache.DropAll(); err != nil {
			return fmt.Errorf("failed to drop disk cache: %w", err)
		}
	}
	if useCache {
		opts.Cache = cache
	}
	return nil
}

// summaryLine counts diagnostics per severity: "2 errors, 1 info in 3 files".
func summaryLine(result *driver.DiagnoseResult) string {
	counts := map[diag.Severity]int{}
	for _, d := range result.Bag.Items() {
		counts[d.Severity]++
	}
	var parts []string
	for _, sev := range []diag.Severity{diag.SevError, diag.SevWarning, diag.SevInfo, diag.SevCustom} {
		n := counts[sev]
		if n == 0 {
			continue
		}
		word := sev.String()
		if n > 1 && sev == diag.SevError {
			word += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", n, word))
	}
	cached := 0
	for _, f := range result.Files {
		if f.Cached {
			cached++
		}
	}
	line := fmt.Sprintf("%s in %d file(s)", strings.Join(parts, ", "), len(result.Files))
	if cached > 0 {
		line += fmt.Sprintf(", %d from cache", cached)
	}
	return line
}
