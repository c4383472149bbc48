package seltree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Predicate is a boolean test evaluated against a single node. The
// document core treats predicates as opaque: Matches must be free of
// side effects and must not retain the node beyond the call.
//
// Ready-made predicates for tag names, attributes and logical
// composition live in sub-package pred; CSS-selector-backed predicates
// in sub-package css. Ad-hoc predicates are most easily written as a
// PredicateFunc closure.
type Predicate interface {
	Matches(Node) bool
}

// PredicateFunc adapts an ordinary function to the Predicate interface.
type PredicateFunc func(Node) bool

// Matches calls f(n).
func (f PredicateFunc) Matches(n Node) bool {
	return f(n)
}

// Any matches every node.
var Any Predicate = PredicateFunc(func(Node) bool {
	return true
})
