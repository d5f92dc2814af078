package tree_test

import (
	"fmt"

	"github.com/npillmayer/reltree/tree"
)

func Example() {
	n := make([]*tree.Node[int], 10)
	for i := 1; i <= 9; i++ {
		n[i] = tree.NewNode(i)
	}
	_ = tree.SetMultipleRelationships(n[1], n[2], n[3])
	_ = tree.SetRelationship(n[3], n[4])
	_ = tree.SetMultipleRelationships(n[4], n[5], n[6], n[7])
	_ = tree.SetMultipleRelationships(n[2], n[8], n[9])

	node7 := n[1].Children()[1].Children()[0].Children()[2]
	fmt.Printf("node7 value scanned from the origin node: %s\n", node7.PrintableValue())
	fmt.Printf("depth of node 7: %d\n", node7.Depth())
	// Output:
	// node7 value scanned from the origin node: 7
	// depth of node 7: 3
}

func ExampleSetMultipleRelationships() {
	parent, a, b := tree.NewNode("parent"), tree.NewNode("a"), tree.NewNode("b")
	other := tree.NewNode("other")
	_ = tree.SetRelationship(other, b)

	err := tree.SetMultipleRelationships(parent, a, b)
	fmt.Println(err)
	fmt.Println(parent.ChildCount(), a.IsRoot())
	// Output:
	// node at index 1: node is already the child of another node
	// 0 true
}

func ExampleRemoveNode() {
	p, n, c1, c2 := tree.NewNode("P"), tree.NewNode("N"), tree.NewNode("C1"), tree.NewNode("C2")
	_ = tree.SetRelationship(p, n)
	_ = tree.SetMultipleRelationships(n, c1, c2)

	tree.RemoveNode(n)
	for _, ch := range p.Children() {
		fmt.Println(ch.PrintableValue(), ch.Depth())
	}
	// Output:
	// C1 1
	// C2 1
}
