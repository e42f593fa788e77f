package fuzztests

import (
	"context"
	"strings"
	"testing"
	"time"

	"snoot/internal/lexer"
	"snoot/internal/parser"
	"snoot/internal/source"
	"snoot/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserInvariants(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte, quoted bool) {
		file := source.NewFile("fuzz.sexp", string(clamp(input)))
		lx := lexer.New(file, lexer.Options{QuotedStrings: quoted})

		res := parser.Parse(file, lx, parser.Options{})
		if err := testkit.CheckTreeInvariants(res.Roots, file); err != nil {
			t.Fatalf("invariant broken: %v\ninput: %q", err, truncateForLog(input, 200))
		}
		if res.Bag.Len() != len(res.Events) {
			t.Fatalf("bag has %d diagnostics for %d events", res.Bag.Len(), len(res.Events))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addSeeds(f)
	f.Add([]byte(strings.Repeat("(", 200)), false)
	f.Add([]byte(strings.Repeat(")", 200)), false)
	f.Add([]byte(strings.Repeat("([{", 200)), true)

	f.Fuzz(func(t *testing.T, input []byte, quoted bool) {
		input = clamp(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			file := source.NewFile("fuzz.sexp", string(input))
			lx := lexer.New(file, lexer.Options{QuotedStrings: quoted})
			_ = parser.Parse(file, lx, parser.Options{MaxErrors: 128})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
