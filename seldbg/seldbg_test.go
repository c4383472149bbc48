package seldbg_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/seltree"
	"github.com/npillmayer/seltree/seldbg"
)

func TestDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "seltree.dbg")
	defer teardown()
	//
	markup := `<html><head></head><body><p class="note">a<!--x--></p></body></html>`
	doc, err := seltree.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("cannot parse test markup: %v", err)
	}
	root, _ := doc.Nth(0)
	dump := seldbg.Dump(root)
	t.Logf("document =\n%s", dump)
	for _, want := range []string{`<p class="note">`, `"a"`, "<!--x-->", "<body>"} {
		if !strings.Contains(dump, want) {
			t.Errorf("expected dump to contain %s, doesn't", want)
		}
	}
}

func TestDumpLeaf(t *testing.T) {
	doc, err := seltree.Parse(strings.NewReader(`<html><head></head><body>solo</body></html>`))
	if err != nil {
		t.Fatalf("cannot parse test markup: %v", err)
	}
	body, _ := doc.Nth(2)
	text, ok := body.Find(seltree.Any).First()
	if !ok {
		t.Fatal("cannot find text node")
	}
	dump := seldbg.Dump(text)
	if !strings.Contains(dump, `"solo"`) {
		t.Errorf("expected leaf dump to contain the text, is %q", dump)
	}
}
