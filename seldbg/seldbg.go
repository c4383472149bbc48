/*
Package seldbg implements helpers to debug a document tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package seldbg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seltree"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'seltree.dbg'.
func tracer() tracing.Trace {
	return tracing.Select("seltree.dbg")
}

// Dump renders the subtree below (and including) a node as an indented
// tree diagram, one line per node. Element nodes become branches, text
// and comment nodes become leaves. Intended for test logs and debugging
// sessions.
func Dump(n seltree.Node) string {
	tracer().Debugf("dumping subtree below %v", n)
	p := tp.New()
	dump(p, n)
	return p.String()
}

func dump(p tp.Tree, n seltree.Node) {
	elem, ok := n.Data().(seltree.Element)
	if !ok {
		p.AddNode(label(n))
		return
	}
	branch := p.AddBranch(label(n))
	doc := n.Document()
	for _, ch := range elem.Children {
		if child, ok := doc.Nth(ch); ok {
			dump(branch, child)
		}
	}
}

func label(n seltree.Node) string {
	switch d := n.Data().(type) {
	case seltree.Text:
		return fmt.Sprintf("%q", string(d))
	case seltree.Comment:
		return fmt.Sprintf("<!--%s-->", string(d))
	case seltree.Element:
		if len(d.Attributes) == 0 {
			return fmt.Sprintf("<%s>", d.Name)
		}
		keys := make([]string, 0, len(d.Attributes))
		for key := range d.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		var sb strings.Builder
		sb.WriteString("<" + d.Name)
		for _, key := range keys {
			fmt.Fprintf(&sb, " %s=%q", key, d.Attributes[key])
		}
		sb.WriteString(">")
		return sb.String()
	}
	return "?"
}
