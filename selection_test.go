package seltree_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seltree"
	"github.com/npillmayer/seltree/pred"
	"github.com/stretchr/testify/require"
)

const listMarkup = `<html><head></head><body>` +
	`<ul id="menu"><li>one</li><li class="sel">two</li><li>three</li></ul>` +
	`</body></html>`

func parseList(t *testing.T) *seltree.Document {
	doc, err := seltree.Parse(strings.NewReader(listMarkup))
	require.NoError(t, err, "cannot parse list markup")
	return doc
}

func TestSelectionSeed(t *testing.T) {
	doc := parseList(t)
	sel := seltree.NewSelection(doc, 3, 1, 3, 2)
	require.Equal(t, 3, sel.Len(), "expected seed indices to be deduplicated")
	first, ok := sel.First()
	require.True(t, ok)
	require.Equal(t, 1, first.Index(), "expected selection to be in document order")
}

func TestSelectionFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seltree.dom")
	defer teardown()
	//
	doc := parseList(t)
	items := doc.Find(pred.Name("ul")).Find(pred.Name("li"))
	require.Equal(t, 3, items.Len(), "expected 3 list items")
	texts := make([]string, 0, 3)
	items.Iter(func(n seltree.Node) bool {
		texts = append(texts, n.Text())
		return true
	})
	require.Equal(t, []string{"one", "two", "three"}, texts, "expected items in document order")
}

func TestSelectionFindExcludesMembers(t *testing.T) {
	doc := parseList(t)
	uls := doc.Find(pred.Name("ul"))
	// an <ul> is not a descendant of itself
	require.True(t, uls.Find(pred.Name("ul")).IsEmpty())
}

func TestSelectionFilter(t *testing.T) {
	doc := parseList(t)
	items := doc.Find(pred.Name("li"))
	selected := items.Filter(pred.Class("sel"))
	require.Equal(t, 1, selected.Len())
	n, _ := selected.First()
	require.Equal(t, "two", n.Text())
}

func TestSelectionParentAndParents(t *testing.T) {
	doc := parseList(t)
	items := doc.Find(pred.Name("li"))
	parents := items.Parent()
	require.Equal(t, 1, parents.Len(), "expected all items to share one parent")
	ul, _ := parents.First()
	name, _ := ul.Name()
	require.Equal(t, "ul", name)
	// ancestors: ul, body, html
	require.Equal(t, 3, items.Parents().Len())
}

func TestSelectionSiblings(t *testing.T) {
	doc := parseList(t)
	selected := doc.Find(pred.Class("sel"))
	prev, ok := selected.Prev().First()
	require.True(t, ok)
	require.Equal(t, "one", prev.Text())
	next, ok := selected.Next().First()
	require.True(t, ok)
	require.Equal(t, "three", next.Text())
}

func TestSelectionChildren(t *testing.T) {
	doc := parseList(t)
	children := doc.Find(pred.Name("ul")).Children()
	require.Equal(t, 3, children.Len())
	children.Iter(func(n seltree.Node) bool {
		name, ok := n.Name()
		require.True(t, ok)
		require.Equal(t, "li", name)
		return true
	})
}

func TestSelectionIterStopsEarly(t *testing.T) {
	doc := parseList(t)
	items := doc.Find(pred.Name("li"))
	visited := 0
	items.Iter(func(seltree.Node) bool {
		visited++
		return false
	})
	require.Equal(t, 1, visited, "expected iteration to stop after the first node")
}

func TestSelectionEmpty(t *testing.T) {
	doc := parseList(t)
	none := doc.Find(pred.Name("table"))
	require.True(t, none.IsEmpty())
	_, ok := none.First()
	require.False(t, ok)
	require.True(t, none.Find(seltree.Any).IsEmpty())
}
