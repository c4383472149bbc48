package seltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Data is the content payload of one arena node. It is a closed sum over
// the three kinds of content a markup tree stores: Text, Element and
// Comment. Clients switch on the concrete type:
//
//	switch d := node.Data().(type) {
//	case seltree.Text:    …
//	case seltree.Element: …
//	case seltree.Comment: …
//	}
//
// Only Element nodes carry attributes and children; Text and Comment
// nodes are always leaves.
type Data interface {
	isData()
}

// Text is literal character content.
type Text string

// Comment is literal comment content.
type Comment string

// Element is a markup element: a tag name, a set of attributes, and an
// ordered sequence of children given as arena indices.
type Element struct {
	Name       string            // tag name, e.g. "div"
	Attributes map[string]string // attribute keys are unique
	Children   []int             // arena indices of children, in document order
}

func (Text) isData()    {}
func (Comment) isData() {}
func (Element) isData() {}
