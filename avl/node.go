// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// index into the child array
type direction int

const (
	left  direction = 0
	right direction = 1
)

func (d direction) opposite() direction {
	return 1 - d
}

// Node - a node in the tree
type Node[K any] struct {
	item   Item[K]     // the caller's item
	child  [2]*Node[K] // left and right sub-trees
	height int         // height of sub-tree rooted here, leaf is 1
}

// Item - the item held by a node
func (p *Node[K]) Item() Item[K] {
	return p.item
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[K]) Height() int {
	return height(p)
}

// Left - the left sub-tree, nil if none
func (p *Node[K]) Left() *Node[K] {
	return p.child[left]
}

// Right - the right sub-tree, nil if none
func (p *Node[K]) Right() *Node[K] {
	return p.child[right]
}

// an absent sub-tree has zero height
func height[K any](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return p.height
}

// height(right) - height(left)
func balance[K any](p *Node[K]) int {
	if nil == p {
		return 0
	}
	return height(p.child[right]) - height(p.child[left])
}

// height derived from the children
func (p *Node[K]) calcHeight() int {
	return 1 + max(height(p.child[left]), height(p.child[right]))
}

func isUnbalanced[K any](p *Node[K]) bool {
	b := balance(p)
	return b < -1 || b > 1
}
