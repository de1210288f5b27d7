package lshw

import "iter"

// Walk yields every node reachable from root by following children arrays,
// including root itself. Non-map values are skipped, never an error, so a
// malformed subtree degrades to whatever nodes were readable.
//
// The traversal is stack-based, so sibling order is not preserved. Callers
// must not rely on any particular visit order.
func Walk(root any) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		n, ok := asNode(root)
		if !ok {
			return
		}
		stack := []Node{n}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			kids, ok := n["children"].([]any)
			if !ok {
				continue
			}
			for _, kid := range kids {
				if child, ok := asNode(kid); ok {
					stack = append(stack, child)
				}
			}
		}
	}
}
