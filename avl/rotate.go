// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// restore the balance of a node whose children differ in height by two
//
// returns the new root of the sub-tree
func rebalance[K any](p *Node[K]) *Node[K] {
	switch b := balance(p); {
	case b < -1: // left heavy
		if balance(p.child[left]) > 0 {
			// double LR rotation
			return rotateTwice(p, right)
		}
		// single LL rotation
		return rotateOnce(p, right)

	case b > 1: // right heavy
		if balance(p.child[right]) < 0 {
			// double RL rotation
			return rotateTwice(p, left)
		}
		// single RR rotation
		return rotateOnce(p, left)
	}
	return p
}

// rotate in direction dir: the child on the other side is promoted and
// p becomes its dir side child, taking over the promoted node's inner
// sub-tree
func rotateOnce[K any](p *Node[K], dir direction) *Node[K] {
	other := dir.opposite()
	p1 := p.child[other]

	p.child[other] = p1.child[dir]
	p1.child[dir] = p

	p.height = p.calcHeight()
	p1.height = p1.calcHeight()
	return p1
}

// the heavy child is first rotated away from dir, which brings its inner
// grandchild up, then p is rotated in direction dir
//
//	     p                  p                p2
//	    / \                / \              /  \
//	   p1  D              p2  D            p1   p
//	  /  \       ==>     /  \      ==>    / \  / \
//	 A    p2            p1   C           A  B C   D
//	     /  \          /  \
//	    B    C        A    B
func rotateTwice[K any](p *Node[K], dir direction) *Node[K] {
	other := dir.opposite()
	p.child[other] = rotateOnce(p.child[other], other)
	return rotateOnce(p, dir)
}
