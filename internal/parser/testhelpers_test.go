package parser

import (
	"fmt"
	"strings"

	"snoot/internal/diag"
	"snoot/internal/sexpr"
)

// shape prints a forest compactly: lists as brackets around their children,
// a trailing "!" on lists closed by end of input.
func shape(nodes []sexpr.Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		switch n := n.(type) {
		case *sexpr.List:
			s := string(n.Bracket.Open()) + shape(n.Children)
			if n.Unclosed {
				s += "!"
			} else {
				s += string(n.Bracket.Close())
			}
			parts[i] = s
		case *sexpr.Terminal:
			parts[i] = n.Token.Text
		case *sexpr.String:
			parts[i] = n.Token.Text
		}
	}
	return strings.Join(parts, " ")
}

func eventsSummary(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		name := fmt.Sprintf("%T", ev)
		name = name[strings.LastIndexByte(name, '.')+1:]
		out[i] = fmt.Sprintf("%s %q", name, ev.Span().Text())
	}
	return out
}

func diagnosticsSummary(bag *diag.Bag) []string {
	if bag == nil {
		return nil
	}
	out := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message))
	}
	return out
}
