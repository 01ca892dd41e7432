package arbor

// StrictBinary reports whether every node of the tree has either zero or
// exactly two children.
//
// An empty tree is vacuously strict.
func (t *Tree[T]) StrictBinary() bool {
	strict := true
	for n := range t.RangeNodes(Preorder) {
		if (n.left == nil) != (n.right == nil) {
			strict = false
			break
		}
	}
	return strict
}

// Complete reports whether every level L of the tree is fully populated
// with 2^L nodes and all leaves share the same level.
//
// An empty tree is vacuously complete; a single-node tree is complete.
// Complete implies AlmostComplete, not conversely.
func (t *Tree[T]) Complete() bool {
	if t.IsEmpty() {
		return true
	}
	population := make(map[int]int)
	deepest := 0
	uniform := true
	leafLevel := -1
	for n := range t.RangeNodes(Preorder) {
		population[n.level]++
		if n.level > deepest {
			deepest = n.level
		}
		if n.IsLeaf() {
			if leafLevel < 0 {
				leafLevel = n.level
			} else if n.level != leafLevel {
				uniform = false
			}
		}
	}
	if !uniform {
		return false
	}
	for level := 0; level <= deepest; level++ {
		if population[level] != 1<<level {
			return false
		}
	}
	return true
}

// AlmostComplete reports whether the tree is heap-shaped: every level
// except the last is fully populated and the last level is filled
// left-to-right without gaps.
//
// An empty tree is vacuously almost-complete. Complete trees are always
// almost-complete.
func (t *Tree[T]) AlmostComplete() bool {
	if t.IsEmpty() {
		return true
	}
	// Level-order scan; after the first empty slot no further node may
	// appear.
	queue := []*Node[T]{t.root}
	sawGap := false
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			sawGap = true
			continue
		}
		if sawGap {
			return false
		}
		queue = append(queue, n.left, n.right)
	}
	return true
}
