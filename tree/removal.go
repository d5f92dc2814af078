package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// RemoveNode splices node out of its tree.
//
// If node has a parent, the children of node are promoted: they become children
// of node's former parent, appended after its existing children in their
// previous order. node itself is left without parent and children.
//
// If node is a root, there is no parent to promote to. The children of node
// are cut loose and become roots of their own. Clients which did not keep a
// reference to them will lose them.
func RemoveNode[T any](node *Node[T]) {
	if node == nil {
		return
	}
	structure.Lock()
	defer structure.Unlock()
	moved := node.children
	node.children = nil
	p := node.parent
	if p == nil {
		for _, ch := range moved {
			ch.parent = nil
		}
		propagateDepth(moved...)
		tracer().Debugf("removed root %v, orphaned %d children", node.value, len(moved))
		return
	}
	for _, ch := range moved {
		ch.parent = p
	}
	var found bool
	p.children, found = p.children.remove(node)
	assertThat(found, "node %v not listed as a child of its parent", node.value)
	p.children = append(p.children, moved...)
	node.parent = nil
	node.depth = 0
	n := propagateDepth(moved...)
	tracer().Debugf("removed node %v, promoted %d children, %d depths updated", node.value, len(moved), n)
}

// RemoveSubtree detaches node, together with all of its descendents, from its
// parent. node becomes the root of an independent tree with depth 0; the
// structure below node is unchanged. If node has no parent, RemoveSubtree
// does nothing.
func RemoveSubtree[T any](node *Node[T]) {
	if node == nil {
		return
	}
	structure.Lock()
	defer structure.Unlock()
	p := node.parent
	if p == nil {
		return
	}
	var found bool
	p.children, found = p.children.remove(node)
	assertThat(found, "node %v not listed as a child of its parent", node.value)
	node.parent = nil
	n := propagateDepth(node)
	tracer().Debugf("detached subtree at %v, %d depths updated", node.value, n)
}
