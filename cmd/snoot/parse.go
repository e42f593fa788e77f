package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snoot/internal/diagfmt"
	"snoot/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] FILE",
	Short: "Parse an S-expression file and print the recovered tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
	addLexerFlags(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cleanup, err := instrument(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	settings, err := loadSettings(cmd, filePath)
	if err != nil {
		return err
	}

	result, err := driver.Parse(cmd.Context(), filePath, settings.driver)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if !result.Bag.IsEmpty() {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		opts := settings.pretty
		opts.Color = colored
		result.Bag.Sort()
		if err := diagfmt.Pretty(os.Stderr, result.Bag, opts); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		err = diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Roots)
	default:
		err = diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Roots, result.File.FormatPath("auto", ""))
	}
	if err != nil {
		return err
	}
	printTimings(cmd, settings)
	return nil
}
