package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"

	"snoot/internal/token"
)

// tokenTextWidth aligns the position column in pretty token dumps.
const tokenTextWidth = 24

type TokenOutput struct {
	Kind    string `json:"kind"`
	Bracket string `json:"bracket,omitempty"`
	Text    string `json:"text,omitempty"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
	Offset  uint32 `json:"offset"`
	Len     uint32 `json:"len"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		text := strconv.Quote(tok.Text)
		if runewidth.StringWidth(text) > tokenTextWidth {
			text = runewidth.Truncate(text, tokenTextWidth, "…")
		}
		if _, err := fmt.Fprintf(w, "%3d: %-10s %s at %d:%d (+%d, len %d)\n",
			i+1, tok.Kind.String(),
			runewidth.FillRight(text, tokenTextWidth),
			tok.Line, tok.Col, tok.Offset, tok.Len); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Line,
			Col:    tok.Col,
			Offset: tok.Offset,
			Len:    tok.Len,
		}
		if tok.IsBracket() {
			out.Bracket = tok.Bracket.String()
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
