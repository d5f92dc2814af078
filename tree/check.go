package tree

import "fmt"

// Check verifies the structural invariants of the subtree rooted at node:
// every child links back to the node listing it, and every cached depth
// equals the depth of the parent plus 1 (0 for roots).
// It returns an error describing the first violation found.
//
// Check holds the structure lock for the whole traversal and thus sees a
// consistent snapshot.
func Check[T any](node *Node[T]) error {
	if node == nil {
		return nil
	}
	structure.RLock()
	defer structure.RUnlock()
	if node.parent == nil {
		if node.depth != 0 {
			return fmt.Errorf("root %v has depth %d", node.value, node.depth)
		}
	} else {
		if node.parent.children.indexOf(node) < 0 {
			return fmt.Errorf("node %v not listed as a child of its parent %v", node.value, node.parent.value)
		}
		if node.depth != node.parent.depth+1 {
			return fmt.Errorf("node %v has depth %d, parent has %d", node.value, node.depth, node.parent.depth)
		}
	}
	seen := map[*Node[T]]bool{node: true}
	stack := []*Node[T]{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for i, ch := range n.children {
			if ch == nil {
				return fmt.Errorf("node %v has nil child at position %d", n.value, i)
			}
			if seen[ch] {
				return fmt.Errorf("node %v is reachable more than once", ch.value)
			}
			seen[ch] = true
			if ch.parent != n {
				return fmt.Errorf("child %v of %v links to a different parent", ch.value, n.value)
			}
			if ch.depth != n.depth+1 {
				return fmt.Errorf("node %v has depth %d, parent %v has %d", ch.value, ch.depth, n.value, n.depth)
			}
			stack = append(stack, ch)
		}
	}
	return nil
}
