/*
Package seltree implements a read-only document tree for markup content,
backed by a flat arena of nodes.

A Document owns all nodes of a parsed markup (HTML/XML-like) tree in a
single append-only slice. All structural relationships—parent, previous
and next sibling, children—are stored as indices into that slice, never
as owning references. Clients navigate the tree through lightweight
Node cursors, which pair a reference to the document with an index and
are copyable at negligible cost.

	doc, err := seltree.Parse(strings.NewReader(input))
	if err != nil { … }
	body, _ := doc.Nth(4)
	for _, n := range body.Find(pred.Name("a")).Nodes() {
		fmt.Println(n.Text())
	}

Documents are immutable after construction. Any number of cursors may
read the same document concurrently; there are no writers and hence no
locks.

Sub-package pred provides ready-made predicates (tag name, attribute,
class, logical combinators), sub-package css compiles CSS selectors
into predicates, and sub-package seldbg pretty-prints subtrees.

Status

Early draft—API may change frequently. Please stay patient.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seltree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'seltree.dom'.
func tracer() tracing.Trace {
	return tracing.Select("seltree.dom")
}
