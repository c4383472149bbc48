package seltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Raw is the arena-stored representation of one tree node: its content
// payload plus the structural links connecting it to its neighbours.
// Links that may be absent are pointers; nil means "at a structural
// boundary" (a root node has no parent, a first child has no previous
// sibling), never an error.
//
// Raw records are immutable once the document is built.
type Raw struct {
	Index  int  // this node's own position in the arena
	Parent *int // arena index of the parent, nil for a root-level node
	Prev   *int // arena index of the previous sibling, nil for the first
	Next   *int // arena index of the next sibling, nil for the last
	Data   Data // content payload
}

// Node is a cursor into a Document: a (document, index) pair. Nodes are
// small values, copyable at negligible cost, and never own node data—
// they borrow the document they were created from and stay valid as
// long as the document lives.
//
// All accessors are pure reads. Absence (no parent, no such attribute,
// wrong node kind) is reported through an ok-flag, never through an
// error. Nodes compare equal iff they reference the same slot of the
// same document.
type Node struct {
	doc   *Document
	index int
}

// Index returns the cursor's own arena position.
func (n Node) Index() int {
	return n.index
}

// Document returns the document this cursor is bound to.
func (n Node) Document() *Document {
	return n.doc
}

// Data returns the node's content payload.
func (n Node) Data() Data {
	return n.doc.nodes[n.index].Data
}

// Name returns the tag name if the node is an Element. Text and comment
// nodes simply have no name; this is not an error.
func (n Node) Name() (string, bool) {
	if elem, ok := n.Data().(Element); ok {
		return elem.Name, true
	}
	return "", false
}

// Attr looks up an attribute by exact key match. It reports false for
// non-element nodes and for missing keys. Case normalization is the
// business of whoever built the arena, not of this accessor.
func (n Node) Attr(key string) (string, bool) {
	if elem, ok := n.Data().(Element); ok {
		value, ok := elem.Attributes[key]
		return value, ok
	}
	return "", false
}

// Parent returns the structural parent, if any.
func (n Node) Parent() (Node, bool) {
	return n.resolve(n.doc.nodes[n.index].Parent)
}

// Prev returns the immediately preceding sibling, if any.
func (n Node) Prev() (Node, bool) {
	return n.resolve(n.doc.nodes[n.index].Prev)
}

// Next returns the immediately following sibling, if any.
func (n Node) Next() (Node, bool) {
	return n.resolve(n.doc.nodes[n.index].Next)
}

func (n Node) resolve(link *int) (Node, bool) {
	if link == nil {
		return Node{}, false
	}
	return n.doc.node(*link), true
}

// Text collects the text content of the subtree rooted at this node:
// a depth-first, pre-order concatenation of all Text payloads. Element
// nodes contribute the text of their children in child order, comment
// nodes contribute nothing.
//
// Text assumes the child links of the arena to be acyclic; this is an
// invariant of document construction and not re-checked here.
func (n Node) Text() string {
	var sb strings.Builder
	n.doc.collectText(n.index, &sb)
	return sb.String()
}

func (doc *Document) collectText(index int, sb *strings.Builder) {
	switch d := doc.nodes[index].Data.(type) {
	case Text:
		sb.WriteString(string(d))
	case Element:
		for _, ch := range d.Children {
			doc.collectText(ch, sb)
		}
	case Comment:
		// comments are invisible to text collection
	}
}

// Find searches the proper descendants of this node for nodes matching
// the given predicate. It seeds a singleton selection with this node's
// index and delegates to Selection.Find.
func (n Node) Find(p Predicate) Selection {
	return NewSelection(n.doc, n.index).Find(p)
}

// Is evaluates the predicate against this node. It is a pure
// pass-through: no selection is built, no additional filtering happens.
func (n Node) Is(p Predicate) bool {
	return p.Matches(n)
}

// AsText returns the payload if this very node is a Text node. It does
// not recurse; use Text for recursive collection.
func (n Node) AsText() (string, bool) {
	if text, ok := n.Data().(Text); ok {
		return string(text), true
	}
	return "", false
}

// AsComment returns the payload if this node is a Comment node.
func (n Node) AsComment() (string, bool) {
	if comment, ok := n.Data().(Comment); ok {
		return string(comment), true
	}
	return "", false
}

// HTMLNode returns the source parse-tree node this arena slot was built
// from, or nil if the document did not retain source nodes (see option
// KeepSourceNodes). Package css relies on this for selector matching.
func (n Node) HTMLNode() *html.Node {
	if n.doc.source == nil {
		return nil
	}
	return n.doc.source[n.index]
}

func (n Node) String() string {
	switch d := n.Data().(type) {
	case Text:
		return fmt.Sprintf("(#%d text %q)", n.index, string(d))
	case Comment:
		return fmt.Sprintf("(#%d comment %q)", n.index, string(d))
	case Element:
		return fmt.Sprintf("(#%d <%s> #ch=%d)", n.index, d.Name, len(d.Children))
	}
	return fmt.Sprintf("(#%d ?)", n.index)
}
