package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"snoot/internal/diagfmt"
	"snoot/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] FILE",
	Short: "Tokenize an S-expression file",
	Long:  `Tokenize prints every token of a file with its position and length`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	addLexerFlags(tokenizeCmd)
}

// addLexerFlags registers the flags overriding the [lexer] config section.
func addLexerFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("split", nil, "split atoms on this string (repeatable)")
	cmd.Flags().Bool("quoted", false, `lex "..." as string tokens`)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
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

	result, err := driver.Tokenize(cmd.Context(), filePath, settings.driver)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if !result.Bag.IsEmpty() {
		colored, err := useColor(cmd, os.Stderr)
		if err != nil {
			return err
		}
		opts := settings.pretty
		opts.Color = colored
		if err := diagfmt.Pretty(os.Stderr, result.Bag, opts); err != nil {
			return err
		}
	}

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens)
	}
	if err != nil {
		return err
	}
	printTimings(cmd, settings)
	return nil
}
