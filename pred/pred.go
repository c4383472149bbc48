/*
Package pred provides ready-made predicates for node matching: tag
names, attributes, classes, node kinds, and logical combinators.

All predicates implement seltree.Predicate and may be mixed freely
with ad-hoc seltree.PredicateFunc closures:

	links := node.Find(pred.And(pred.Name("a"), pred.HasAttr("href")))

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pred

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/seltree"
)

// tracer traces with key 'seltree.pred'.
func tracer() tracing.Trace {
	return tracing.Select("seltree.pred")
}

// Name matches element nodes with the given tag name.
func Name(name string) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		tag, ok := n.Name()
		return ok && tag == name
	})
}

// Attr matches element nodes carrying an attribute key with exactly the
// given value.
func Attr(key, value string) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		v, ok := n.Attr(key)
		return ok && v == value
	})
}

// HasAttr matches element nodes carrying an attribute key, regardless
// of its value.
func HasAttr(key string) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		_, ok := n.Attr(key)
		return ok
	})
}

// ID matches element nodes with the given id attribute.
func ID(id string) seltree.Predicate {
	return Attr("id", id)
}

// Class matches element nodes whose class attribute contains the given
// class as a whitespace-separated word.
func Class(class string) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		classes, ok := n.Attr("class")
		if !ok {
			return false
		}
		for _, c := range strings.Fields(classes) {
			if c == class {
				tracer().Debugf("class %q matches word of %q", class, classes)
				return true
			}
		}
		return false
	})
}

// IsElement matches element nodes.
var IsElement seltree.Predicate = seltree.PredicateFunc(func(n seltree.Node) bool {
	_, ok := n.Name()
	return ok
})

// IsText matches text nodes.
var IsText seltree.Predicate = seltree.PredicateFunc(func(n seltree.Node) bool {
	_, ok := n.AsText()
	return ok
})

// IsComment matches comment nodes.
var IsComment seltree.Predicate = seltree.PredicateFunc(func(n seltree.Node) bool {
	_, ok := n.AsComment()
	return ok
})

// Not inverts a predicate.
func Not(p seltree.Predicate) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		return !p.Matches(n)
	})
}

// And matches nodes matching every given predicate. With no arguments
// it matches everything.
func And(ps ...seltree.Predicate) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		for _, p := range ps {
			if !p.Matches(n) {
				return false
			}
		}
		return true
	})
}

// Or matches nodes matching at least one of the given predicates. With
// no arguments it matches nothing.
func Or(ps ...seltree.Predicate) seltree.Predicate {
	return seltree.PredicateFunc(func(n seltree.Node) bool {
		for _, p := range ps {
			if p.Matches(n) {
				return true
			}
		}
		return false
	})
}
