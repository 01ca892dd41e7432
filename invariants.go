package arbor

import "fmt"

// ErrInvariantViolation signals a corrupted tree structure detected by Check.
const ErrInvariantViolation = TreeError("tree invariant violated")

// Check validates structural tree invariants.
//
// This checker is intentionally strict and should be used in tests while
// the implementation is evolving. It verifies that the root has no father,
// that every child points back to its father, and that cached levels are
// consistent with the father chain.
func (t *Tree[T]) Check() error {
	if t == nil || t.root == nil {
		return nil
	}
	if t.root.father != nil {
		return fmt.Errorf("%w: root node has a father", ErrInvariantViolation)
	}
	if t.root.level != 0 {
		return fmt.Errorf("%w: root level is %d, must be 0", ErrInvariantViolation, t.root.level)
	}
	return checkNode(t.root)
}

func checkNode[T any](n *Node[T]) error {
	for _, child := range []*Node[T]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.father != n {
			return fmt.Errorf("%w: child does not point back to its father", ErrInvariantViolation)
		}
		if child.level != n.level+1 {
			return fmt.Errorf("%w: child level %d below father level %d",
				ErrInvariantViolation, child.level, n.level)
		}
		if err := checkNode(child); err != nil {
			return err
		}
	}
	return nil
}
