package arbor

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewRejectsMissingComparator(t *testing.T) {
	_, err := New(Config[int]{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewNormalizesIdentity(t *testing.T) {
	tree, err := New(Config[int]{Less: func(a, b int) bool { return a < b }})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	if tree.Config().Identity == nil {
		t.Fatalf("expected identity to be set in normalized config")
	}
}

func TestInsertScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := intTree(t)
	if tree.Insert(5, 3, 8, 1, 4) != tree {
		t.Fatalf("Insert must return the receiver for chaining")
	}
	checkSequence(t, tree, Inorder, []int{1, 3, 4, 5, 8})
	checkSequence(t, tree, Preorder, []int{5, 3, 1, 4, 8})
	checkSequence(t, tree, Postorder, []int{1, 4, 3, 8, 5})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestInsertIsSequential(t *testing.T) {
	// 4 must land below the 3 inserted earlier in the same call.
	tree := intTree(t)
	tree.Insert(5, 3, 4)
	n := tree.Root().Left()
	if n == nil || n.Data() != 3 {
		t.Fatalf("expected 3 below the root")
	}
	if n.Right() == nil || n.Right().Data() != 4 {
		t.Fatalf("expected 4 in the right slot of 3")
	}
}

func TestInsertDistinctPointerIdentity(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, err := New(Config[*int]{
		Less: func(a, b *int) bool { return *a < *b },
	})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	five, three := 5, 3
	tree.InsertDistinct(&five, &five, &three)
	if got := countNodes(tree); got != 2 {
		t.Fatalf("expected 2 nodes after identity dedup, got %d", got)
	}
	if tree.Root().Data() != &five || tree.Root().Left().Data() != &three {
		t.Fatalf("unexpected tree content after identity dedup")
	}
}

func TestInsertDistinctUsesIdentityNotOrdering(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// Two distinct pointers to equal values are distinct items.
	tree, err := New(Config[*int]{
		Less: func(a, b *int) bool { return *a < *b },
	})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	a, b := 5, 5
	tree.InsertDistinct(&a, &b)
	if got := countNodes(tree); got != 2 {
		t.Fatalf("value-equal but non-identical items must both insert, got %d nodes", got)
	}
}

func TestInsertDistinctStopsAtMatch(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	// With a custom identity on values, a duplicate is dropped at the
	// first match along the descent path.
	tree, err := New(Config[int]{
		Less:     func(a, b int) bool { return a < b },
		Identity: func(a, b int) bool { return a == b },
	})
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	tree.InsertDistinct(5, 5, 3)
	if got := countNodes(tree); got != 2 {
		t.Fatalf("expected 2 nodes, got %d", got)
	}
}

func TestDepth(t *testing.T) {
	tree := intTree(t)
	if tree.Depth() != -1 {
		t.Fatalf("empty tree must have depth -1, has %d", tree.Depth())
	}
	tree.Insert(5)
	if tree.Depth() != 0 {
		t.Fatalf("single-node tree must have depth 0, has %d", tree.Depth())
	}
	tree.Insert(3, 8, 1)
	if tree.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", tree.Depth())
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := intTree(t)
	tree.Insert(5, 3, 8)
	tree.Root().Left().level = 7 // simulate a stale cached level
	if err := tree.Check(); !errors.Is(err, ErrInvariantViolation) {
		t.Fatalf("expected ErrInvariantViolation, got %v", err)
	}
}

func TestEmptyTreeIsWellBehaved(t *testing.T) {
	tree := intTree(t)
	if !tree.IsEmpty() || tree.Root() != nil {
		t.Fatalf("fresh tree must be empty")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("empty tree must pass Check, got %v", err)
	}
	if got := countNodes(tree); got != 0 {
		t.Fatalf("empty tree must traverse no nodes, visited %d", got)
	}
}

func countNodes[T any](tree *Tree[T]) int {
	cnt := 0
	_ = tree.Each(Preorder, func(*Node[T]) error {
		cnt++
		return nil
	})
	return cnt
}

func checkSequence[T comparable](t *testing.T, tree *Tree[T], order Order, want []T) {
	t.Helper()
	var got []T
	for v := range tree.Range(order) {
		got = append(got, v)
	}
	if len(got) != len(want) {
		t.Fatalf("%s: expected %v, got %v", order, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: expected %v, got %v", order, want, got)
		}
	}
}
