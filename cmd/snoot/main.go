package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"snoot/internal/version"
)

// errDiagnosticsFound makes the process exit with status 1 without printing
// anything beyond the diagnostics themselves.
var errDiagnosticsFound = errors.New("diagnostics reported errors")

var rootCmd = &cobra.Command{
	Use:           "snoot",
	Short:         "Tolerant S-expression reader and diagnostic renderer",
	Long:          `snoot tokenizes and parses bracketed S-expressions, recovers from unbalanced brackets and renders the resulting diagnostics`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// main registers subcommands and persistent flags, then executes the root
// command. Any error exits with status 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to keep (0 = all)")
	rootCmd.PersistentFlags().String("config", "", "path to snoot.toml (default: nearest one above the input)")
	rootCmd.PersistentFlags().String("trace", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "text", "trace output format (text|ndjson)")
	rootCmd.PersistentFlags().String("trace-output", "-", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("cpuprofile", "", "write a CPU profile to this file")
	rootCmd.PersistentFlags().String("memprofile", "", "write a heap profile to this file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime execution trace to this file")

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errDiagnosticsFound) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
