/*
Package treedbg implements helpers to debug trees.

Print renders a tree as indented text, ToGraphViz writes a diagram in
GraphViz (DOT) format. Both show the printable value and the cached depth
of every node.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treedbg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'reltree.treedbg'.
func tracer() tracing.Trace {
	return tracing.Select("reltree.treedbg")
}
