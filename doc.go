/*
Package arbor implements a generic binary tree with explicit parent/child
links, comparator-driven insertion, multi-order traversal, structural
classification and shape comparison.

Trees are built from nodes which carry an immutable payload, a non-owning
back-reference to their father node and owning references to a left and a
right child. Child slots are write-once: there is no rotation, replacement
or deletion, so a tree's topology grows append-only. Every node caches its
level (the edge count up to the root), assigned exactly once when the node
is attached.

A tree is created from a configuration holding the ordering comparator:

	cfg := arbor.Config[int]{Less: func(a, b int) bool { return a < b }}
	t, err := arbor.New(cfg)
	t.Insert(5, 3, 8, 1, 4)

Traversal comes in two flavors: an eager visitor walk

	err := t.Each(arbor.Inorder, func(n *arbor.Node[int]) error { … })

and a lazy, restartable-per-call sequence

	for v := range t.Range(arbor.Inorder) { … }

Trees are not safe for concurrent mutation. Read-only operations may run
concurrently with each other, but never concurrently with an insertion.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arbor

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the arbor module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrSlotOccupied signals an insertion into a child slot which already
// holds a node. Slots are write-once; callers are expected to check slot
// emptiness beforehand.
const ErrSlotOccupied = TreeError("child slot already occupied")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid configuration: comparator is required")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
