// Package testkit checks structural invariants of parsed forests. Tests and
// fuzz harnesses share it.
package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"snoot/internal/sexpr"
	"snoot/internal/source"
	"snoot/internal/token"
)

// CheckTreeInvariants runs the span invariants on a parsed forest:
// 1) every node span lies within the file content
// 2) every child span lies within its parent span
// 3) siblings are ordered and do not overlap
// 4) leaf text equals its token text and is never empty
// 5) a closed list starts with its opening bracket and ends with a closing one
func CheckTreeInvariants(roots []sexpr.Node, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	return checkSiblings(roots, nil, sf, size)
}

func checkSiblings(nodes []sexpr.Node, parent sexpr.Node, sf *source.File, size uint32) error {
	var prevEnd uint32
	for i, n := range nodes {
		sp := n.Span()
		if sp.File != sf {
			return fmt.Errorf("node %d: span points to another file", i)
		}
		if sp.Bytes.End > size || sp.Bytes.Start > sp.Bytes.End {
			return fmt.Errorf("node %d: bad span %v (content %d bytes)", i, sp.Bytes, size)
		}
		if i > 0 && sp.Bytes.Start < prevEnd {
			return fmt.Errorf("node %d: overlaps previous sibling (%d < %d)", i, sp.Bytes.Start, prevEnd)
		}
		prevEnd = sp.Bytes.End
		if parent != nil {
			ps := parent.Span()
			if sp.Bytes.Start < ps.Bytes.Start || sp.Bytes.End > ps.Bytes.End {
				return fmt.Errorf("node %d: span %v escapes parent %v", i, sp.Bytes, ps.Bytes)
			}
		}
		if err := checkNode(n, sf, size); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n sexpr.Node, sf *source.File, size uint32) error {
	switch n := n.(type) {
	case *sexpr.Terminal:
		return checkLeaf(n.Token, n.Loc, token.Atom)
	case *sexpr.String:
		return checkLeaf(n.Token, n.Loc, token.String)
	case *sexpr.List:
		if n.Open.Kind != token.ListOpen {
			return fmt.Errorf("list at %v: opener is %v", n.Loc, n.Open.Kind)
		}
		if !strings.HasPrefix(n.Loc.Text(), n.Open.Text) {
			return fmt.Errorf("list at %v: span does not start at the opener", n.Loc)
		}
		if !n.Unclosed && n.Close.Kind != token.ListClose {
			return fmt.Errorf("closed list at %v ends with %v", n.Loc, n.Close.Kind)
		}
		return checkSiblings(n.Children, n, sf, size)
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

func checkLeaf(tok token.Token, loc source.Span, kind token.Kind) error {
	if tok.Kind != kind {
		return fmt.Errorf("leaf at %v: token kind %v, want %v", loc, tok.Kind, kind)
	}
	if tok.Text == "" {
		return fmt.Errorf("leaf at %v: empty text", loc)
	}
	if got := loc.Text(); got != tok.Text {
		return fmt.Errorf("leaf at %v: span text %q != token text %q", loc, got, tok.Text)
	}
	return nil
}
