package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"snoot/internal/sexpr"
	"snoot/internal/source"
)

type TreeNodeOutput struct {
	Type     string           `json:"type"`
	Bracket  string           `json:"bracket,omitempty"`
	Text     string           `json:"text,omitempty"`
	Span     string           `json:"span"`
	Start    uint32           `json:"start_byte"`
	End      uint32           `json:"end_byte"`
	Unclosed bool             `json:"unclosed,omitempty"`
	Children []TreeNodeOutput `json:"children,omitempty"`
}

// FormatTreePretty печатает лес узлов в виде дерева с ветками ├─ / └─.
// header печатается первой строкой, если не пустой.
func FormatTreePretty(w io.Writer, roots []sexpr.Node, header string) error {
	if header != "" {
		if _, err := fmt.Fprintf(w, "%s (%d roots)\n", header, len(roots)); err != nil {
			return err
		}
	}
	for i, n := range roots {
		if err := formatNodePretty(w, n, "", i == len(roots)-1); err != nil {
			return err
		}
	}
	return nil
}

func formatNodePretty(w io.Writer, n sexpr.Node, prefix string, isLast bool) error {
	branch, childPrefix := "├─ ", prefix+"│  "
	if isLast {
		branch, childPrefix = "└─ ", prefix+"   "
	}
	if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(n)); err != nil {
		return err
	}
	kids := sexpr.Children(n)
	for i, c := range kids {
		if err := formatNodePretty(w, c, childPrefix, i == len(kids)-1); err != nil {
			return err
		}
	}
	return nil
}

func nodeLabel(n sexpr.Node) string {
	switch n := n.(type) {
	case *sexpr.List:
		label := fmt.Sprintf("List %s (span: %s)", n.Bracket, formatSpan(n.Loc))
		if n.Unclosed {
			label += " unclosed"
		}
		return label
	case *sexpr.Terminal:
		return fmt.Sprintf("Terminal %s (span: %s)", strconv.Quote(n.Token.Text), formatSpan(n.Loc))
	case *sexpr.String:
		return fmt.Sprintf("String %s (span: %s)", n.Token.Text, formatSpan(n.Loc))
	}
	return "<nil>"
}

func formatSpan(span source.Span) string {
	return fmt.Sprintf("%d:%d-%d:%d", span.Lines.Start, span.Columns.Start, span.Lines.End, span.Columns.End)
}

// FormatTreeJSON выводит лес узлов в JSON формате.
func FormatTreeJSON(w io.Writer, roots []sexpr.Node) error {
	output := make([]TreeNodeOutput, 0, len(roots))
	for _, n := range roots {
		output = append(output, treeNodeJSON(n))
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func treeNodeJSON(n sexpr.Node) TreeNodeOutput {
	sp := n.Span()
	out := TreeNodeOutput{
		Type:  n.Kind().String(),
		Span:  formatSpan(sp),
		Start: sp.Bytes.Start,
		End:   sp.Bytes.End,
	}
	switch n := n.(type) {
	case *sexpr.List:
		out.Bracket = n.Bracket.String()
		out.Unclosed = n.Unclosed
		for _, c := range n.Children {
			out.Children = append(out.Children, treeNodeJSON(c))
		}
	case *sexpr.Terminal:
		out.Text = n.Token.Text
	case *sexpr.String:
		out.Text = n.Token.Text
	}
	return out
}
