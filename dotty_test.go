package arbor

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := intTree(t)
	tree.Insert(5, 3, 8, 1)
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Fatalf("DOT output must open a digraph, got %q", out[:20])
	}
	for _, label := range []string{"“5”", "“3”", "“8”", "“1”"} {
		if !strings.Contains(out, label) {
			t.Fatalf("DOT output misses node label %s", label)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "}") {
		t.Fatalf("DOT output must close the digraph")
	}
}
