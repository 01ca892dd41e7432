package arbor

// Similar reports whether two trees have the same shape. Payload values
// are ignored entirely; two empty trees are similar.
func (t *Tree[T]) Similar(other *Tree[T]) bool {
	return SimilarNodes(t.Root(), other.Root())
}

// MirrorSimilar reports whether the tree's shape is the left-right mirror
// of the other tree's shape.
func (t *Tree[T]) MirrorSimilar(other *Tree[T]) bool {
	return MirrorSimilarNodes(t.Root(), other.Root())
}

// SimilarAndMirrorSimilar reports whether the trees are both similar and
// mirror-similar. This holds for shapes which are themselves left-right
// symmetric, e.g. single-node trees.
func (t *Tree[T]) SimilarAndMirrorSimilar(other *Tree[T]) bool {
	return t.Similar(other) && t.MirrorSimilar(other)
}

// SimilarNodes reports whether the subtrees below and including a and b
// have the same shape. Nil subtrees are similar to each other.
func SimilarNodes[S, T any](a *Node[S], b *Node[T]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return SimilarNodes(a.left, b.left) && SimilarNodes(a.right, b.right)
}

// MirrorSimilarNodes reports whether the subtree below and including a is
// shaped like the left-right mirror of the subtree below and including b.
func MirrorSimilarNodes[S, T any](a *Node[S], b *Node[T]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return MirrorSimilarNodes(a.left, b.right) && MirrorSimilarNodes(a.right, b.left)
}
