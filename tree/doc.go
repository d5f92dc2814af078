/*
Package tree implements a mutable, generic tree with managed relationships.

Nodes carry an immutable value of type parameter T. Every node knows its
parent, an ordered list of children, and its depth, i.e. the distance to
the root of the tree it currently belongs to. Clients never manipulate these
fields directly; all structural changes are performed by a small set of
relationship functions:

   SetRelationship(parent, child)              // attach a single child
   SetMultipleRelationships(parent, ch1, ch2…) // attach a batch, all or nothing
   InsertRelationship(parent, i, child)        // attach at position i
   RemoveNode(node)                            // splice out a single node
   RemoveSubtree(node)                         // detach a node with all of its descendents

A node may be the child of at most one parent. Attaching a node which
already has a parent is rejected with an error wrapping ErrAlreadyAttached,
and the tree is left untouched. Batch attachments are validated completely
before any mutation starts.

Depth is cached within each node. Every mutating function re-computes the
depth of exactly the region of the tree it changed before it returns, so
clients will never observe a stale depth.

RemoveNode promotes the children of a removed node to its former parent.
If the removed node is a root, there is nobody to promote to: its children
are cut loose and become roots of their own. Clients have to keep a reference
to them beforehand if they are interested in these orphans.

Walkers

For navigating and searching trees we support a small set of chainable
operations, similar in concept to JQuery:

   Parent()                     // find parent for all selected nodes
   AncestorWith(predicate)      // find ancestor with a given predicate
   DescendentsWith(predicate)   // find descendents with a given predicate
   TopDown(action)              // traverse all nodes top down (breadth first)
   BottomUp(action)             // traverse nodes bottom up
   Filter(userfunc)             // apply a user-provided filter function

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reltree.tree'.
func tracer() tracing.Trace {
	return tracing.Select("reltree.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("reltree.tree: "+msg, msgargs...)
		panic(msg)
	}
}
