package tree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAlreadyAttached is returned if a node to attach already has a parent.
var ErrAlreadyAttached = errors.New("node is already the child of another node")

// ErrCycle is returned if an attachment would make a node its own ancestor.
var ErrCycle = errors.New("attachment would create a cycle")

// ErrNilNode is returned if a relationship function is called with a nil node.
var ErrNilNode = errors.New("cannot attach nil node")

// AttachError is returned by attachment functions if one or more candidate
// nodes cannot be attached. Positions holds the index of every offending
// candidate within the input, Err is the cause (ErrAlreadyAttached, ErrCycle or
// ErrNilNode).
//
// Whenever an AttachError is returned, the tree has not been modified.
type AttachError struct {
	Positions []int
	Err       error
}

func (e *AttachError) Error() string {
	if len(e.Positions) == 0 {
		return e.Err.Error()
	}
	msgs := make([]string, len(e.Positions))
	for i, pos := range e.Positions {
		msgs[i] = fmt.Sprintf("node at index %d: %s", pos, e.Err.Error())
	}
	return strings.Join(msgs, ", ")
}

func (e *AttachError) Unwrap() error {
	return e.Err
}
