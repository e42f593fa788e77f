package fuzztests

import "testing"

const (
	maxFuzzInput = 1 << 16 // 64 KiB
)

var seeds = []string{
	"",
	"()",
	"(a b c)",
	"(a b { c d)",
	"{ a )",
	"(x [y)",
	"(a (b",
	") ] }",
	"(define (f x)\n  [g x]\n  {h (i)})",
	"(片仮名 [x] y)",
	`(say "hi \"you\"" x)`,
	`("unclosed`,
	"a:b::c",
	"\t\r\n  (  )  ",
	"\xff\xfe(\x00)",
}

func addSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s), false)
		f.Add([]byte(s), true)
	}
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
