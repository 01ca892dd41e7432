package arbor

import "iter"

// Order selects the node visiting order of a traversal.
//
// The zero value is Preorder, which is also the default order wherever a
// traversal does not care about sequencing.
type Order int

const (
	// Preorder visits a node before its left and right subtrees.
	Preorder Order = iota
	// Inorder visits the left subtree, the node, then the right subtree.
	// On a comparator-ordered tree this yields ascending payload order.
	Inorder
	// Postorder visits both subtrees before the node.
	Postorder
	// Descending visits the right subtree, the node, then the left
	// subtree; the mirror of Inorder.
	Descending
)

// Ascending is the ascending payload order; on a comparator-ordered tree
// it is behaviorally identical to Inorder.
const Ascending = Inorder

func (o Order) String() string {
	switch o {
	case Preorder:
		return "Preorder"
	case Inorder:
		return "Inorder"
	case Postorder:
		return "Postorder"
	case Descending:
		return "Descending"
	}
	return "Preorder"
}

// Each visits every node of the subtree below and including n, once, in
// the given order.
//
// Iteration stops at the first callback error and returns that error to
// the caller. Each of a nil node is a no-op.
func (n *Node[T]) Each(order Order, f func(*Node[T]) error) error {
	if n == nil || f == nil {
		return nil
	}
	var err error
	walk(n, order, func(node *Node[T]) bool {
		err = f(node)
		return err == nil
	})
	return err
}

// Each visits every node of the tree, once, in the given order.
//
// Iteration stops at the first callback error and returns that error to
// the caller.
func (t *Tree[T]) Each(order Order, f func(*Node[T]) error) error {
	if t == nil {
		return nil
	}
	return t.root.Each(order, f)
}

// RangeNodes returns an iterator over the subtree's nodes in the given
// order. Every call produces a fresh, single-pass sequence.
func (n *Node[T]) RangeNodes(order Order) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if n == nil {
			return
		}
		walk(n, order, yield)
	}
}

// Range returns an iterator over the subtree's payload values in the
// given order. Every call produces a fresh, single-pass sequence.
func (n *Node[T]) Range(order Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := range n.RangeNodes(order) {
			if !yield(node.data) {
				return
			}
		}
	}
}

// RangeNodes returns an iterator over the tree's nodes in the given order.
// Every call produces a fresh, single-pass sequence.
func (t *Tree[T]) RangeNodes(order Order) iter.Seq[*Node[T]] {
	if t == nil {
		return func(yield func(*Node[T]) bool) {}
	}
	return t.root.RangeNodes(order)
}

// Range returns an iterator over the tree's payload values in the given
// order. Every call produces a fresh, single-pass sequence.
func (t *Tree[T]) Range(order Order) iter.Seq[T] {
	if t == nil {
		return func(yield func(T) bool) {}
	}
	return t.root.Range(order)
}

// walk recursively visits the subtree below and including n. It reports
// false as soon as visit aborts, which unwinds the whole traversal.
//
// Auxiliary space is O(h) on the call stack, h being the subtree height.
func walk[T any](n *Node[T], order Order, visit func(*Node[T]) bool) bool {
	if n == nil {
		return true
	}
	switch order {
	case Inorder:
		return walk(n.left, order, visit) && visit(n) && walk(n.right, order, visit)
	case Postorder:
		return walk(n.left, order, visit) && walk(n.right, order, visit) && visit(n)
	case Descending:
		return walk(n.right, order, visit) && visit(n) && walk(n.left, order, visit)
	}
	return visit(n) && walk(n.left, order, visit) && walk(n.right, order, visit)
}
