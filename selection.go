package seltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"
)

// Selection is an ordered set of nodes of one document, held as sorted,
// duplicate-free arena indices. Since the arena is appended to in
// document order, ascending index order is document order.
//
// Selections are values: every refinement operation returns a new
// selection and leaves the receiver untouched.
type Selection struct {
	doc     *Document
	indices []int // sorted ascending, no duplicates
}

// NewSelection creates a selection over the given document. The indices
// are sorted and deduplicated; out-of-range indices are the caller's
// contract violation and are not filtered here.
func NewSelection(doc *Document, indices ...int) Selection {
	set := make([]int, len(indices))
	copy(set, indices)
	sort.Ints(set)
	set = dedup(set)
	return Selection{doc: doc, indices: set}
}

func dedup(sorted []int) []int {
	if len(sorted) < 2 {
		return sorted
	}
	out := sorted[:1]
	for _, i := range sorted[1:] {
		if i != out[len(out)-1] {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of nodes in the selection.
func (sel Selection) Len() int {
	return len(sel.indices)
}

// IsEmpty reports whether the selection contains no nodes.
func (sel Selection) IsEmpty() bool {
	return len(sel.indices) == 0
}

// First returns the selection's first node in document order.
func (sel Selection) First() (Node, bool) {
	if len(sel.indices) == 0 {
		return Node{}, false
	}
	return sel.doc.node(sel.indices[0]), true
}

// Nodes returns the selection's nodes as a slice, in document order.
func (sel Selection) Nodes() []Node {
	nodes := make([]Node, len(sel.indices))
	for i, index := range sel.indices {
		nodes[i] = sel.doc.node(index)
	}
	return nodes
}

// Iter calls visit for every node of the selection in document order,
// stopping early if visit returns false.
func (sel Selection) Iter(visit func(Node) bool) {
	for _, index := range sel.indices {
		if !visit(sel.doc.node(index)) {
			return
		}
	}
}

// Find returns the proper descendants of the selection's nodes matching
// the given predicate. The member nodes themselves are not candidates.
func (sel Selection) Find(p Predicate) Selection {
	set := newIndexSet()
	for _, index := range sel.indices {
		sel.doc.eachDescendant(index, func(desc int) {
			if p.Matches(sel.doc.node(desc)) {
				set.add(desc)
			}
		})
	}
	tracer().Debugf("find: %d descendant(s) match below %d member(s)", len(set.seen), len(sel.indices))
	return Selection{doc: sel.doc, indices: set.sorted()}
}

// eachDescendant visits the proper descendants of index, depth-first in
// pre-order. Child links are trusted to be acyclic.
func (doc *Document) eachDescendant(index int, visit func(int)) {
	if elem, ok := doc.nodes[index].Data.(Element); ok {
		for _, ch := range elem.Children {
			visit(ch)
			doc.eachDescendant(ch, visit)
		}
	}
}

// Filter returns the nodes of the selection itself that match the given
// predicate.
func (sel Selection) Filter(p Predicate) Selection {
	// a subset of the receiver's indices is still sorted and unique
	var indices []int
	for _, index := range sel.indices {
		if p.Matches(sel.doc.node(index)) {
			indices = append(indices, index)
		}
	}
	tracer().Debugf("filter: %d of %d member(s) match", len(indices), len(sel.indices))
	return Selection{doc: sel.doc, indices: indices}
}

// Parent returns the set of parents of the selection's nodes.
func (sel Selection) Parent() Selection {
	return sel.mapLink(func(raw Raw) *int { return raw.Parent })
}

// Prev returns the set of immediately preceding siblings.
func (sel Selection) Prev() Selection {
	return sel.mapLink(func(raw Raw) *int { return raw.Prev })
}

// Next returns the set of immediately following siblings.
func (sel Selection) Next() Selection {
	return sel.mapLink(func(raw Raw) *int { return raw.Next })
}

func (sel Selection) mapLink(link func(Raw) *int) Selection {
	set := newIndexSet()
	for _, index := range sel.indices {
		if l := link(sel.doc.nodes[index]); l != nil {
			set.add(*l)
		}
	}
	return Selection{doc: sel.doc, indices: set.sorted()}
}

// Parents returns all ancestors of the selection's nodes.
func (sel Selection) Parents() Selection {
	set := newIndexSet()
	for _, index := range sel.indices {
		parent := sel.doc.nodes[index].Parent
		for parent != nil {
			set.add(*parent)
			parent = sel.doc.nodes[*parent].Parent
		}
	}
	return Selection{doc: sel.doc, indices: set.sorted()}
}

// Children returns all immediate children of the selection's nodes.
func (sel Selection) Children() Selection {
	set := newIndexSet()
	for _, index := range sel.indices {
		if elem, ok := sel.doc.nodes[index].Data.(Element); ok {
			for _, ch := range elem.Children {
				set.add(ch)
			}
		}
	}
	return Selection{doc: sel.doc, indices: set.sorted()}
}

func (sel Selection) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, index := range sel.indices {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sel.doc.node(index).String())
	}
	sb.WriteString("}")
	return sb.String()
}

// --- Index sets ------------------------------------------------------------

// indexSet collects arena indices, ignoring duplicates.
type indexSet struct {
	seen map[int]struct{}
}

func newIndexSet() *indexSet {
	return &indexSet{seen: make(map[int]struct{})}
}

func (set *indexSet) add(index int) {
	set.seen[index] = struct{}{}
}

func (set *indexSet) sorted() []int {
	if len(set.seen) == 0 {
		return nil
	}
	indices := make([]int, 0, len(set.seen))
	for index := range set.seen {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}
