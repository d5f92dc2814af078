package tree

// propagateDepth recomputes the cached depth of every node in the subtrees
// rooted at nodes. Each start node takes its depth from its current parent.
// It must be called with the structure lock held.
//
// Returns the number of nodes visited.
func propagateDepth[T any](nodes ...*Node[T]) int {
	stack := make([]*Node[T], 0, len(nodes))
	for _, n := range nodes {
		if n.parent == nil {
			n.depth = 0
		} else {
			n.depth = n.parent.depth + 1
		}
		stack = append(stack, n)
	}
	visited := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		visited++
		for _, ch := range n.children {
			ch.depth = n.depth + 1
			stack = append(stack, ch)
		}
	}
	return visited
}
