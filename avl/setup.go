// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree[K any] struct {
	root  *Node[K]
	count int
	alloc allocator[K]
}

// New - create an initially empty tree
func New[K any]() *Tree[K] {
	return &Tree[K]{}
}

// NewWithLimit - create an initially empty tree that will refuse to
// hold more than limit nodes, zero means no limit
func NewWithLimit[K any](limit int) *Tree[K] {
	if limit < 0 {
		limit = 0
	}
	return &Tree[K]{
		alloc: allocator[K]{limit: limit},
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[K]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of items currently in the tree
func (tree *Tree[K]) Count() int {
	return tree.count
}

// Height - height of the whole tree, zero if empty
func (tree *Tree[K]) Height() int {
	return height(tree.root)
}

// Root - return the root node of the tree
//
// nodes are only valid until the next Insert, Remove or Clear
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Limit - the maximum number of nodes, zero if unlimited
func (tree *Tree[K]) Limit() int {
	return tree.alloc.limit
}

// Stats - node allocation counts
func (tree *Tree[K]) Stats() Stats {
	return tree.alloc.stats()
}

// Clear - release every node, the items are left untouched
func (tree *Tree[K]) Clear() {
	tree.alloc.freeTree(tree.root)
	tree.root = nil
	tree.count = 0
}
