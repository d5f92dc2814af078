package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// SetRelationship attaches child as the last child of parent.
//
// child must not have a parent. If it has one, SetRelationship returns an
// *AttachError wrapping ErrAlreadyAttached and leaves both nodes unchanged.
// Attaching the root of parent's own tree is rejected with ErrCycle.
func SetRelationship[T any](parent, child *Node[T]) error {
	return InsertRelationship(parent, -1, child)
}

// InsertRelationship attaches child to parent at position i, shifting children
// at later positions. A position outside of the range of existing children
// appends child at the end. Error conditions are the same as for SetRelationship.
func InsertRelationship[T any](parent *Node[T], i int, child *Node[T]) error {
	structure.Lock()
	defer structure.Unlock()
	if err := validateCandidates(parent, []*Node[T]{child}); err != nil {
		tracer().Infof("rejected attachment: %v", err)
		return err
	}
	child.parent = parent
	parent.children = parent.children.insertAt(i, child)
	n := propagateDepth(child)
	tracer().Debugf("attached child %v to %v, %d depths updated", child.value, parent.value, n)
	return nil
}

// SetMultipleRelationships attaches a batch of children to parent, appending
// them in input order.
//
// The operation is all-or-nothing: every candidate is checked before anything
// is mutated. If one or more candidates already have a parent, the returned
// *AttachError lists the positions of all of them within children, and neither
// parent nor any of the candidates is modified. A node which appears more than
// once in children is reported at its repeated positions.
func SetMultipleRelationships[T any](parent *Node[T], children ...*Node[T]) error {
	structure.Lock()
	defer structure.Unlock()
	if err := validateCandidates(parent, children); err != nil {
		tracer().Infof("rejected batch attachment: %v", err)
		return err
	}
	if len(children) == 0 {
		return nil
	}
	for _, ch := range children {
		ch.parent = parent
	}
	parent.children = append(parent.children, children...)
	n := propagateDepth(children...)
	tracer().Debugf("attached %d children to %v, %d depths updated", len(children), parent.value, n)
	return nil
}

// validateCandidates checks the preconditions for attaching children to parent.
// It must be called with the structure lock held and does not mutate anything.
func validateCandidates[T any](parent *Node[T], children []*Node[T]) error {
	if parent == nil {
		return &AttachError{Err: ErrNilNode}
	}
	var nils, attached, cyclic []int
	root := parent.root()
	seen := make(map[*Node[T]]struct{}, len(children))
	for i, ch := range children {
		if ch == nil {
			nils = append(nils, i)
			continue
		}
		if _, dup := seen[ch]; dup || ch.parent != nil {
			attached = append(attached, i)
			continue
		}
		seen[ch] = struct{}{}
		// a parentless ancestor of parent can only be the root of parent's tree
		if ch == root {
			cyclic = append(cyclic, i)
		}
	}
	switch {
	case len(nils) > 0:
		return &AttachError{Positions: nils, Err: ErrNilNode}
	case len(attached) > 0:
		return &AttachError{Positions: attached, Err: ErrAlreadyAttached}
	case len(cyclic) > 0:
		return &AttachError{Positions: cyclic, Err: ErrCycle}
	}
	return nil
}
