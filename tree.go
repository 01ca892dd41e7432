package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is a binary tree ordered by a caller-supplied comparator.
//
// Insertion is classic unbalanced binary-search-tree descent; the tree never
// rebalances and never deletes nodes. A tree created by New with no items
// inserted yet is empty and behaves like a tree with no nodes.
type Tree[T any] struct {
	cfg  Config[T]
	root *Node[T]
}

// New creates an empty tree with validated configuration.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[T]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Root returns the tree's root node, or nil for an empty tree.
func (t *Tree[T]) Root() *Node[T] {
	if t == nil {
		return nil
	}
	return t.root
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Insert inserts items in call order, descending from the root with the
// configured comparator: Less(item, node data) routes left, otherwise
// right. The first empty slot reached becomes the new leaf's attachment
// point. Later items may land relative to nodes created by earlier items
// of the same call.
//
// Insert returns the receiver, so that calls can be chained.
func (t *Tree[T]) Insert(items ...T) *Tree[T] {
	for _, item := range items {
		t.insertOne(item, false)
	}
	return t
}

// InsertDistinct inserts items like Insert, but compares each item against
// every visited node's payload using the configured Identity function. On
// the first identity match along the descent path the item is discarded
// and descent stops.
//
// InsertDistinct returns the receiver, so that calls can be chained.
func (t *Tree[T]) InsertDistinct(items ...T) *Tree[T] {
	for _, item := range items {
		t.insertOne(item, true)
	}
	return t
}

func (t *Tree[U]) insertOne(item U, distinct bool) {
	if t.root == nil {
		t.root = NewNode(item)
		return
	}
	cur := t.root
	for {
		if distinct && t.cfg.Identity(item, cur.data) {
			T().Debugf("dropping duplicate item at level %d", cur.level)
			return
		}
		if t.cfg.Less(item, cur.data) {
			if cur.left == nil {
				cur.left = cur.attach(item)
				return
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = cur.attach(item)
				return
			}
			cur = cur.right
		}
	}
}

// Depth returns the maximum leaf level of the tree.
//
// An empty tree has depth -1, a single-node tree has depth 0.
func (t *Tree[T]) Depth() int {
	if t.IsEmpty() {
		return -1
	}
	depth := 0
	err := t.Each(Preorder, func(n *Node[T]) error {
		if n.IsLeaf() && n.level > depth {
			depth = n.level
		}
		return nil
	})
	assert(err == nil, "depth traversal may not fail")
	return depth
}
