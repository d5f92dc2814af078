package tree

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWalkerEmpty(t *testing.T) {
	var root *Node[int]
	nodes, err := NewWalker(root).AllDescendents().Promise()()
	if err != ErrEmptyTree || nodes != nil {
		t.Errorf("expected walker on empty tree to return ErrEmptyTree, is %v", err)
	}
}

func TestWalkerParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	parents, err := NewWalker(nodes[7]).Parent().Promise()()
	if err != nil {
		t.Fatal(err)
	}
	expectSelection(t, parents, 4)
	root, _ := NewWalker(nodes[1]).Parent().Promise()()
	if len(root) != 0 {
		t.Errorf("expected root to have no parent, selection is %v", root)
	}
}

func TestWalkerAncestor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	isThree := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Value() == 3 {
			return test, nil
		}
		return nil, nil
	}
	anc, err := NewWalker(nodes[7]).AncestorWith(isThree).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	expectSelection(t, anc, 3)
	anc, _ = NewWalker(nodes[9]).AncestorWith(isThree).Promise()()
	if len(anc) != 0 {
		t.Errorf("expected node 9 to have no ancestor 3, found %v", anc)
	}
}

func TestWalkerDescendents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	all, err := NewWalker(nodes[1]).AllDescendents().Promise()()
	if err != nil {
		t.Fatal(err)
	}
	expectSelection(t, all, 2, 3, 8, 9, 4, 5, 6, 7)
	leafs, _ := NewWalker(nodes[1]).DescendentsWith(NodeIsLeaf[int]()).Promise()()
	expectSelection(t, leafs, 8, 9, 5, 6, 7)
	deep, _ := NewWalker(nodes[1]).DescendentsWith(NodeHasDepth[int](3)).Promise()()
	expectSelection(t, deep, 5, 6, 7)
}

func TestWalkerChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	// parents of all leafs, without duplicates
	parents, err := NewWalker(nodes[1]).DescendentsWith(NodeIsLeaf[int]()).Parent().Promise()()
	if err != nil {
		t.Fatal(err)
	}
	expectSelection(t, parents, 2, 4)
	odd := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Value()%2 == 1 {
			return test, nil
		}
		return nil, nil
	}
	odds, _ := NewWalker(nodes[1]).AllDescendents().Filter(odd).Promise()()
	expectSelection(t, odds, 3, 9, 5, 7)
}

func TestWalkerTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	var visited []int
	action := func(n *Node[int], parent *Node[int], position int) (*Node[int], error) {
		visited = append(visited, n.Value())
		if parent != nil {
			if ch, _ := parent.Child(position); ch != n {
				return nil, fmt.Errorf("node %d not at position %d of its parent", n.Value(), position)
			}
		}
		return n, nil
	}
	result, err := NewWalker(nodes[1]).TopDown(action).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if fmt.Sprint(visited) != "[1 2 3 8 9 4 5 6 7]" {
		t.Errorf("expected breadth first order, is %v", visited)
	}
	if len(result) != 9 {
		t.Errorf("expected 9 nodes in result, have %d", len(result))
	}
}

func TestWalkerTopDownError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	errStop := errors.New("stop")
	action := func(n *Node[int], parent *Node[int], position int) (*Node[int], error) {
		if n.Value() == 3 {
			return nil, errStop
		}
		return n, nil
	}
	result, err := NewWalker(nodes[1]).TopDown(action).Promise()()
	if err != errStop {
		t.Errorf("expected error from action to be reported, is %v", err)
	}
	expectSelection(t, result, 1, 2, 8, 9)
}

func TestWalkerBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltree.tree")
	defer teardown()
	//
	nodes := canonicalTree(t)
	count := make(map[*Node[int]]int) // size of subtree
	action := func(n *Node[int], parent *Node[int], position int) (*Node[int], error) {
		size := 1
		for _, ch := range n.Children() {
			if _, ok := count[ch]; !ok {
				return nil, fmt.Errorf("node %d processed before child %d", n.Value(), ch.Value())
			}
			size += count[ch]
		}
		count[n] = size
		return n, nil
	}
	result, err := NewWalker(nodes[1]).DescendentsWith(NodeIsLeaf[int]()).BottomUp(action).Promise()()
	if err != nil {
		t.Fatal(err)
	}
	if len(result) != 9 || result[len(result)-1] != nodes[1] {
		t.Errorf("expected all 9 nodes, ending with the root, have %v", result)
	}
	if count[nodes[1]] != 9 || count[nodes[4]] != 4 {
		t.Errorf("expected subtree sizes 9 and 4, are %d and %d", count[nodes[1]], count[nodes[4]])
	}
}

func TestWalkerInvalid(t *testing.T) {
	nodes := canonicalTree(t)
	_, err := NewWalker(nodes[1]).Filter(nil).Promise()()
	if err != ErrInvalidFilter {
		t.Errorf("expected nil filter to be reported as ErrInvalidFilter, is %v", err)
	}
	w := NewWalker(nodes[1])
	w.Promise()
	_, err = w.AllDescendents().Promise()()
	if err != ErrNoMoreFiltersAccepted {
		t.Errorf("expected re-use of promised walker to fail, error is %v", err)
	}
}

func expectSelection(t *testing.T, selection []*Node[int], values ...int) {
	t.Helper()
	got := make([]int, len(selection))
	for i, n := range selection {
		got[i] = n.Value()
	}
	if fmt.Sprint(got) != fmt.Sprint(values) {
		t.Errorf("expected selection %v, is %v", values, got)
	}
}
