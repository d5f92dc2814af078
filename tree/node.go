package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each node carries a value of type parameter T.
Nodes maintain a slice of children, which is the owning relation of the tree.
The parent link is for upward navigation only; the garbage collector will
reclaim a node as soon as it is neither listed as a child nor referenced by a client.

Nodes may move between trees, therefore a single lock guards the structure of
all trees: parent links, children slices and depths.
*/
var structure sync.RWMutex

// Node is the base type our tree is built of.
type Node[T any] struct {
	value    T                // immutable payload
	parent   *Node[T]         // parent node of this node, nil for roots
	children childrenSlice[T] // ordered children of this node
	depth    int              // distance to root, kept in sync by relationship functions
}

// NewNode creates a new isolated tree node with a given value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

func (node *Node[T]) String() string {
	if node == nil {
		return "(Node nil)"
	}
	structure.RLock()
	defer structure.RUnlock()
	return fmt.Sprintf("(Node #ch=%d d=%d %v)", len(node.children), node.depth, node.value)
}

// Value returns the value of a node.
func (node *Node[T]) Value() T {
	if node == nil {
		var zero T
		return zero
	}
	return node.value
}

// PrintableValue renders the value of a node as text. If T implements
// fmt.Stringer, its String method is used.
func (node *Node[T]) PrintableValue() string {
	if node == nil {
		return ""
	}
	if s, ok := any(node.value).(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%v", node.value)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	structure.RLock()
	defer structure.RUnlock()
	return node.parent
}

// Depth returns the distance of node to the root of its tree.
// Roots have depth 0.
func (node *Node[T]) Depth() int {
	if node == nil {
		return 0
	}
	structure.RLock()
	defer structure.RUnlock()
	return node.depth
}

// IsRoot is true if node has no parent.
func (node *Node[T]) IsRoot() bool {
	return node.Parent() == nil
}

// IsLeaf is true if node has no children.
func (node *Node[T]) IsLeaf() bool {
	return node.ChildCount() == 0
}

// Root returns the root of the tree node belongs to.
func (node *Node[T]) Root() *Node[T] {
	if node == nil {
		return nil
	}
	structure.RLock()
	defer structure.RUnlock()
	return node.root()
}

func (node *Node[T]) root() *Node[T] {
	r := node
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	structure.RLock()
	defer structure.RUnlock()
	return len(node.children)
}

// Child returns the n-th child of a node, counting from 0 in insertion order.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if node == nil {
		return nil, false
	}
	structure.RLock()
	defer structure.RUnlock()
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
// The slice is a copy; modifying it does not change the tree.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil {
		return nil
	}
	structure.RLock()
	defer structure.RUnlock()
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of node, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	if node == nil || ch == nil {
		return -1
	}
	structure.RLock()
	defer structure.RUnlock()
	return node.children.indexOf(ch)
}

// --- Slices of children ----------------------------------------------------

// childrenSlice is the owning relation of the tree. Its methods expect the
// caller to hold the structure lock.
type childrenSlice[T any] []*Node[T]

func (chs childrenSlice[T]) child(n int) *Node[T] {
	if n < 0 || n >= len(chs) {
		return nil
	}
	return chs[n]
}

func (chs childrenSlice[T]) indexOf(node *Node[T]) int {
	for i, ch := range chs {
		if ch == node {
			return i
		}
	}
	return -1
}

func (chs childrenSlice[T]) asSlice() []*Node[T] {
	children := make([]*Node[T], len(chs))
	copy(children, chs)
	return children
}

// insertAt inserts child at position i, shifting later children.
// Positions outside of the slice append child at the end.
func (chs childrenSlice[T]) insertAt(i int, child *Node[T]) childrenSlice[T] {
	if i < 0 || i >= len(chs) {
		return append(chs, child)
	}
	chs = append(chs, nil)   // make room for one child
	copy(chs[i+1:], chs[i:]) // shift i+1..n
	chs[i] = child
	return chs
}

// remove deletes node from the slice, keeping the order of the remaining
// children. The vacated slot at the end is cleared to release the reference.
func (chs childrenSlice[T]) remove(node *Node[T]) (childrenSlice[T], bool) {
	i := chs.indexOf(node)
	if i < 0 {
		return chs, false
	}
	copy(chs[i:], chs[i+1:])
	chs[len(chs)-1] = nil
	return chs[:len(chs)-1], true
}
