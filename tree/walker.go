package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is thrown if a walker step is defunct.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is thrown if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// ErrNoMoreFiltersAccepted is thrown if a client already called Promise(), but tried to
// re-use a walker with another filter.
var ErrNoMoreFiltersAccepted = errors.New("in promise mode; will not accept new filters; use a new walker")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the last error occured.
// These are accessed through a Promise-object:
//
//    w := NewWalker(node)
//    futureResult := w.FindNodesAndDoSomething(...).Promise()
//    nodes, err := futureResult()
//
// Every step of a walker returns a new walker for the resulting selection,
// leaving its receiver unchanged. Selections contain every node at most once,
// in the order the nodes have been found.
//
// Walkers do not hold the structure lock while calling predicates or actions.
// Actions are therefore free to modify the tree, but will see the changes
// only for nodes not yet visited.
type Walker[T any] struct {
	selection []*Node[T]
	lasterror error
	promising bool // client has called Promise()
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T any](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{selection: []*Node[T]{initial}}
}

// Promise is the synchronisation point of a chain of walker steps.
// Clients call the Promise (which is of function type) to receive a slice
// of nodes and the last error which occured.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	w.promising = true // will block calls to establish new filters
	selection, lasterror := w.selection, w.lasterror
	return func() ([]*Node[T], error) {
		return selection, lasterror
	}
}

// collector gathers the selection of a walker step.
type collector[T any] struct {
	seen      map[*Node[T]]struct{}
	nodes     []*Node[T]
	lasterror error
}

func (w *Walker[T]) newCollector() *collector[T] {
	return &collector[T]{
		seen:      make(map[*Node[T]]struct{}, len(w.selection)),
		lasterror: w.lasterror,
	}
}

func (c *collector[T]) push(node *Node[T]) {
	if node == nil {
		return
	}
	if _, ok := c.seen[node]; ok {
		return
	}
	c.seen[node] = struct{}{}
	c.nodes = append(c.nodes, node)
}

func (c *collector[T]) fail(err error) {
	if err != nil {
		c.lasterror = err // throw away all errors but the last one
	}
}

func (c *collector[T]) walker() *Walker[T] {
	return &Walker[T]{selection: c.nodes, lasterror: c.lasterror}
}

// accepts checks if w may be extended by another step.
func (w *Walker[T]) accepts(isNil bool) (*Walker[T], bool) {
	if w.promising {
		tracer().Errorf("%v", ErrNoMoreFiltersAccepted)
		return &Walker[T]{lasterror: ErrNoMoreFiltersAccepted}, false
	}
	if isNil {
		return &Walker[T]{selection: w.selection, lasterror: ErrInvalidFilter}, false
	}
	return nil, true
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T any] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T any]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T any]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// NodeHasDepth is a predicate to match nodes at a given depth.
func NodeHasDepth[T any](depth int) Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.Depth() == depth {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent returns the parent node.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(false); !ok {
		return nw
	}
	c := w.newCollector()
	for _, node := range w.selection {
		c.push(node.Parent()) // roots will not produce a result
	}
	return c.walker()
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(predicate == nil); !ok {
		return nw
	}
	c := w.newCollector()
	for _, node := range w.selection {
		anc := node.Parent()
		for anc != nil {
			matchedNode, err := predicate(anc, node)
			if err != nil {
				c.fail(err)
				break
			}
			if matchedNode != nil {
				c.push(matchedNode)
				break
			}
			anc = anc.Parent()
		}
	}
	return c.walker()
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node. Descendents are visited
// breadth first. If the predicate returns an error for a node, the
// branch below this node is not searched.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(predicate == nil); !ok {
		return nw
	}
	c := w.newCollector()
	for _, node := range w.selection {
		queue := node.Children()
		for len(queue) > 0 {
			d := queue[0]
			queue = queue[1:]
			matchedNode, err := predicate(d, node)
			tracer().Debugf("Predicate for node %s returned: %v, err=%v", d, matchedNode, err)
			if err != nil {
				c.fail(err) // do not descend further
				continue
			}
			c.push(matchedNode)
			queue = append(queue, d.Children()...)
		}
	}
	return c.walker()
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(f == nil); !ok {
		return nw
	}
	c := w.newCollector()
	for _, node := range w.selection {
		n, err := f(node, node)
		if err != nil {
			c.fail(err)
			continue
		}
		c.push(n)
	}
	return c.walker()
}

// ad-hoc container
type visit[T any] struct {
	node     *Node[T]
	parent   *Node[T]
	position int
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will be put into the selection of the next walker, if
// no error occured.
type Action[T any] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses a tree starting at (and including) the selected nodes.
// The traversal is breadth first and guarantees that parents are always
// processed before their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(action == nil); !ok {
		return nw
	}
	c := w.newCollector()
	var queue []visit[T]
	for _, node := range w.selection {
		p, pos := parentAndPosition(node)
		queue = append(queue, visit[T]{node, p, pos})
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		result, err := action(v.node, v.parent, v.position)
		tracer().Debugf("Action for node %s returned: %v, err=%v", v.node, result, err)
		if err != nil {
			c.fail(err) // do not descend further
			continue
		}
		c.push(result)
		for i, ch := range v.node.Children() {
			queue = append(queue, visit[T]{ch, v.node, i})
		}
	}
	return c.walker()
}

// BottomUp traverses a tree starting at (and including) all the current nodes.
// Usually clients will select all of the tree's leafs before calling BottomUp().
// The traversal guarantees that parents are not processed before
// all of their children. Parents with children outside of the traversal
// will not be processed.
//
// If the action function returns an error for a node,
// the parent is processed regardless.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if nw, ok := w.accepts(action == nil); !ok {
		return nw
	}
	c := w.newCollector()
	childrenDone := make(map[*Node[T]]int)
	processed := make(map[*Node[T]]bool)
	queue := make([]*Node[T], len(w.selection))
	copy(queue, w.selection)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if processed[node] {
			continue
		}
		if cnt := node.ChildCount(); cnt > 0 && childrenDone[node] < cnt {
			continue // drop this node until last child processed
		}
		processed[node] = true
		parent, position := parentAndPosition(node)
		result, err := action(node, parent, position)
		if err != nil {
			c.fail(err)
		} else {
			c.push(result)
		}
		if parent != nil {
			childrenDone[parent]++ // signal that one more child is done
			queue = append(queue, parent)
		}
	}
	return c.walker()
}

// parentAndPosition returns the parent of node and the position of node within
// the children of its parent. For roots the position is 0.
func parentAndPosition[T any](node *Node[T]) (*Node[T], int) {
	structure.RLock()
	defer structure.RUnlock()
	if node.parent == nil {
		return nil, 0
	}
	return node.parent, node.parent.children.indexOf(node)
}
