package seltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Document is the arena holding all nodes of one markup tree: an
// append-only, densely indexed sequence of Raw records. Arena indices
// are stable for the lifetime of the document; no node is ever
// relocated or removed after construction.
//
// A document is built once—by Parse or FromHTMLNode—and read-only
// afterwards. Sharing a document between concurrent readers is safe
// without synchronization.
type Document struct {
	nodes  []Raw
	source []*html.Node // parallel to nodes; non-nil only with KeepSourceNodes
}

// Len returns the number of nodes in the arena.
func (doc *Document) Len() int {
	return len(doc.nodes)
}

// Nth returns a cursor for the node at the given arena index. It
// reports false for out-of-range indices. Indices obtained from
// structural links of the same document are always in range.
func (doc *Document) Nth(index int) (Node, bool) {
	if index < 0 || index >= len(doc.nodes) {
		return Node{}, false
	}
	return doc.node(index), true
}

// node resolves an index without bounds checking. Structural links are
// trusted to be valid, an invariant of document construction.
func (doc *Document) node(index int) Node {
	return Node{doc: doc, index: index}
}

// Raw returns the arena record at the given index. The record is a
// copy; the arena itself stays immutable.
func (doc *Document) Raw(index int) (Raw, bool) {
	if index < 0 || index >= len(doc.nodes) {
		return Raw{}, false
	}
	return doc.nodes[index], true
}

// Find searches the whole document, in arena order, for nodes matching
// the given predicate.
func (doc *Document) Find(p Predicate) Selection {
	var indices []int
	for i := range doc.nodes {
		if p.Matches(doc.node(i)) {
			indices = append(indices, i)
		}
	}
	return Selection{doc: doc, indices: indices}
}

// --- Construction ----------------------------------------------------------

// Option configures document construction. Use it like this:
//
//	doc, err := seltree.Parse(r, seltree.KeepSourceNodes(true))
type Option func(*builder)

// KeepSourceNodes makes the builder retain, for every arena slot, the
// source parse-tree node it was built from (see Node.HTMLNode). Package
// css needs this for CSS-selector matching. Off by default.
func KeepSourceNodes(keep bool) Option {
	return func(b *builder) {
		b.keepSource = keep
	}
}

// Parse reads markup from r and builds a document arena from it. The
// input is parsed with the HTML5 parsing algorithm of golang.org/x/net/html,
// which will complete partial markup (html, head and body elements are
// synthesized if missing).
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("seltree: cannot parse markup: %w", err)
	}
	return FromHTMLNode(root, opts...), nil
}

// FromHTMLNode builds a document arena from an already parsed HTML
// tree. Element, text and comment nodes become arena records, appended
// in document (pre-)order, so arena index order coincides with document
// order. Document and doctype nodes are skipped, with their children
// lifted to root level.
//
// root may be any node of a parse tree; the arena covers the subtree
// below (and including) it.
func FromHTMLNode(root *html.Node, opts ...Option) *Document {
	b := &builder{doc: &Document{}}
	for _, option := range opts {
		option(b)
	}
	b.level(topLevel(root), nil)
	tracer().Debugf("built document arena with %d nodes", b.doc.Len())
	return b.doc
}

type builder struct {
	doc        *Document
	keepSource bool
}

// topLevel returns the nodes forming the root level of the arena.
// Container nodes without markup substance (DocumentNode, DoctypeNode)
// are not materialized; their material children take their place.
func topLevel(root *html.Node) []*html.Node {
	if material(root) {
		return []*html.Node{root}
	}
	var level []*html.Node
	for h := root.FirstChild; h != nil; h = h.NextSibling {
		if material(h) {
			level = append(level, h)
		} else {
			level = append(level, topLevel(h)...)
		}
	}
	return level
}

func material(h *html.Node) bool {
	switch h.Type {
	case html.ElementNode, html.TextNode, html.CommentNode:
		return true
	}
	return false
}

// level appends arena records for a list of sibling nodes, linking them
// to their common parent and to each other, and recursing into element
// children. It returns the arena indices of the appended siblings.
func (b *builder) level(siblings []*html.Node, parent *int) []int {
	indices := make([]int, 0, len(siblings))
	prev := -1
	for _, h := range siblings {
		if !material(h) {
			continue
		}
		index := len(b.doc.nodes)
		raw := Raw{Index: index, Parent: parent}
		if prev >= 0 {
			raw.Prev = ref(prev)
			b.doc.nodes[prev].Next = ref(index)
		}
		b.doc.nodes = append(b.doc.nodes, raw)
		if b.keepSource {
			b.doc.source = append(b.doc.source, h)
		}
		switch h.Type {
		case html.TextNode:
			b.doc.nodes[index].Data = Text(h.Data)
		case html.CommentNode:
			b.doc.nodes[index].Data = Comment(h.Data)
		case html.ElementNode:
			attrs := make(map[string]string, len(h.Attr))
			for _, a := range h.Attr {
				attrs[a.Key] = a.Val
			}
			children := b.level(childrenOf(h), ref(index))
			b.doc.nodes[index].Data = Element{
				Name:       h.Data,
				Attributes: attrs,
				Children:   children,
			}
		}
		indices = append(indices, index)
		prev = index
	}
	return indices
}

func childrenOf(h *html.Node) []*html.Node {
	var children []*html.Node
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, ch)
	}
	return children
}

// ref copies i onto the heap and returns a pointer to the copy. Stored
// links must not alias builder-local variables.
func ref(i int) *int {
	return &i
}
