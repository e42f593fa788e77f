package fuzztests

import (
	"strings"
	"testing"

	"snoot/internal/lexer"
	"snoot/internal/source"
)

// FuzzLexerCoversInput checks that token texts concatenate back to the input,
// or to a prefix of it when tokenization fails.
func FuzzLexerCoversInput(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, quoted bool) {
		text := string(clamp(input))
		file := source.NewFile("fuzz.sexp", text)

		toks, err := lexer.Tokenize(file, lexer.Options{
			Splitters:     []string{":", "::"},
			QuotedStrings: quoted,
		})

		var b strings.Builder
		var prevEnd uint32
		for i, tok := range toks {
			if tok.Offset != prevEnd {
				t.Fatalf("token %d starts at %d, previous ended at %d", i, tok.Offset, prevEnd)
			}
			if tok.Len == 0 {
				t.Fatalf("token %d is empty", i)
			}
			prevEnd = tok.End()
			b.WriteString(tok.Text)
		}
		got := b.String()
		if err == nil && got != text {
			t.Fatalf("tokens cover %q, input is %q", got, text)
		}
		if err != nil && !strings.HasPrefix(text, got) {
			t.Fatalf("tokens %q are not a prefix of %q", got, text)
		}
		if err != nil && !quoted {
			t.Fatalf("unquoted lexing failed: %v", err)
		}
	})
}
