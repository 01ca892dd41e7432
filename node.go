package arbor

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/arbor/stack"
)

// Node is a binary tree node holding a payload of type T.
//
// A node owns its left and right children and keeps a non-owning
// back-reference to its father node. The payload is set at construction and
// immutable thereafter. Child slots are write-once: attaching a child to an
// occupied slot fails with ErrSlotOccupied.
type Node[T any] struct {
	data   T
	father *Node[T]
	left   *Node[T]
	right  *Node[T]
	level  int
}

// NewNode creates a detached root node holding data.
//
// The node has level 0 and no father; it becomes an inner node as soon as
// children are attached with InsertLeft/InsertRight.
func NewNode[T any](data T) *Node[T] {
	return &Node[T]{data: data}
}

// Data returns the node's payload.
func (n *Node[T]) Data() T {
	return n.data
}

// Father returns the node's father node, or nil for a root.
func (n *Node[T]) Father() *Node[T] {
	return n.father
}

// Left returns the left child, or nil for an empty slot.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child, or nil for an empty slot.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Level returns the edge count from this node up to the tree's root.
//
// The level is cached at attach time and never recomputed.
func (n *Node[T]) Level() int {
	return n.level
}

// IsRoot reports whether the node has no father.
func (n *Node[T]) IsRoot() bool {
	return n.father == nil
}

// IsLeaf reports whether both child slots are empty.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// IsLeft reports whether the node sits in its father's left slot.
func (n *Node[T]) IsLeft() bool {
	return n.father != nil && n.father.left == n
}

// IsRight reports whether the node sits in its father's right slot.
func (n *Node[T]) IsRight() bool {
	return n.father != nil && n.father.right == n
}

// Root walks the father chain and returns the tree's root node.
func (n *Node[T]) Root() *Node[T] {
	cur := n
	for cur.father != nil {
		cur = cur.father
	}
	return cur
}

// Brother returns the sibling in the opposite slot of the node's father,
// or nil if the node is a root or the sibling slot is empty.
func (n *Node[T]) Brother() *Node[T] {
	if n.father == nil {
		return nil
	}
	if n.father.left == n {
		return n.father.right
	}
	return n.father.left
}

// InsertLeft attaches a new node holding data to the left slot.
//
// It returns the receiver, so that insertions can be chained. If the slot
// already holds a node, ErrSlotOccupied is returned and the tree topology
// is left unchanged.
func (n *Node[T]) InsertLeft(data T) (*Node[T], error) {
	if n.left != nil {
		return n, ErrSlotOccupied
	}
	n.left = n.attach(data)
	return n, nil
}

// InsertRight attaches a new node holding data to the right slot.
//
// It returns the receiver, so that insertions can be chained. If the slot
// already holds a node, ErrSlotOccupied is returned and the tree topology
// is left unchanged.
func (n *Node[T]) InsertRight(data T) (*Node[T], error) {
	if n.right != nil {
		return n, ErrSlotOccupied
	}
	n.right = n.attach(data)
	return n, nil
}

// attach allocates a child node below n. Father and level are assigned
// here, exactly once.
func (n *Node[T]) attach(data T) *Node[T] {
	return &Node[T]{
		data:   data,
		father: n,
		level:  n.level + 1,
	}
}

// Ancestor reports whether candidate lies on the father chain above n.
//
// A node is not its own ancestor. The walk takes O(h) steps, with h the
// height of n above the root.
func (n *Node[T]) Ancestor(candidate *Node[T]) bool {
	if candidate == nil {
		return false
	}
	for cur := n.father; cur != nil; cur = cur.father {
		if cur == candidate {
			return true
		}
	}
	return false
}

// Descendant reports whether candidate lies in the subtree below n.
//
// The search uses an explicit stack instead of recursion, so that deep or
// degenerate trees do not grow the call stack.
func (n *Node[T]) Descendant(candidate *Node[T]) bool {
	if candidate == nil || candidate == n {
		return false
	}
	pending := stack.New[*Node[T]]()
	if n.left != nil {
		pending.Push(n.left)
	}
	if n.right != nil {
		pending.Push(n.right)
	}
	for !pending.IsEmpty() {
		cur, ok := pending.Pop()
		assert(ok, "node stack unexpectedly empty during descendant search")
		if cur == candidate {
			return true
		}
		if cur.left != nil {
			pending.Push(cur.left)
		}
		if cur.right != nil {
			pending.Push(cur.right)
		}
	}
	return false
}
