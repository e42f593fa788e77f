package sexpr

// Children returns the children of a list, nil for leaves.
func Children(n Node) []Node {
	if l, ok := n.(*List); ok {
		return l.Children
	}
	return nil
}

// Text returns the exact source text the node was parsed from.
func Text(n Node) string {
	return n.Span().Text()
}

// Walk visits nodes in pre-order. Returning false from fn skips the node's
// children; siblings are still visited.
func Walk(nodes []Node, fn func(n Node, depth int) bool) {
	type item struct {
		n     Node
		depth int
	}
	// явный стек вместо рекурсии
	stack := make([]item, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		stack = append(stack, item{nodes[i], 0})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(top.n, top.depth) {
			continue
		}
		kids := Children(top.n)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, item{kids[i], top.depth + 1})
		}
	}
}

// Count returns the number of nodes in the forest, lists included.
func Count(nodes []Node) int {
	n := 0
	Walk(nodes, func(Node, int) bool {
		n++
		return true
	})
	return n
}
