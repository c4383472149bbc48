/*
Package css turns CSS selectors into node predicates.

Selector compilation and matching is done by the cascadia library,
which operates on golang.org/x/net/html parse trees. A selector
predicate therefore only matches nodes of documents built with
seltree.KeepSourceNodes(true); for all other documents it matches
nothing.

	doc, _ := seltree.Parse(r, seltree.KeepSourceNodes(true))
	notes := doc.Find(css.MustSelector("p.note"))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seltree"
)

// tracer traces with key 'seltree.css'.
func tracer() tracing.Trace {
	return tracing.Select("seltree.css")
}

// Selector compiles a CSS selector into a predicate.
func Selector(selector string) (seltree.Predicate, error) {
	compiled, err := cascadia.Compile(selector)
	if err != nil {
		tracer().Errorf("cannot compile selector %q: %v", selector, err)
		return nil, fmt.Errorf("css: cannot compile selector %q: %w", selector, err)
	}
	tracer().Debugf("compiled CSS selector %q", selector)
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		h := n.HTMLNode()
		return h != nil && compiled.Match(h)
	}), nil
}

// MustSelector is like Selector but panics on compile errors. Intended
// for selectors known at compile time.
func MustSelector(selector string) seltree.Predicate {
	p, err := Selector(selector)
	if err != nil {
		panic(err)
	}
	return p
}
