// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Stats - node allocation counts for a tree
type Stats struct {
	Total int `json:"total"`  // nodes ever created
	Free  int `json:"free"`   // released nodes waiting for reuse
	InUse int `json:"in_use"` // nodes linked into the tree
}

// per tree node allocator, reuses released nodes
//
// the free list is chained through the right child link
type allocator[K any] struct {
	pool  *Node[K] // linked list of reclaimed nodes
	limit int      // maximum nodes in use, zero for no limit
	total int      // total nodes created
	free  int      // number of nodes in the pool
}

// allocate a leaf node, fails without side effects if the limit is reached
func (a *allocator[K]) newNode(item Item[K]) (*Node[K], error) {
	if 0 != a.limit && a.total-a.free >= a.limit {
		return nil, fault.ErrNodeLimitReached
	}
	if nil == a.pool {
		if 0 != a.free {
			fault.Panicf("node pool corrupt: free: %d", a.free)
		}
		a.total += 1
		return &Node[K]{
			item:   item,
			height: 1,
		}, nil
	}
	p := a.pool
	a.pool = p.child[right]
	p.child[right] = nil // ensure freelist pointer is cleared
	p.item = item
	p.height = 1
	a.free -= 1
	return p, nil
}

// reclaim a node that is no longer linked into the tree
func (a *allocator[K]) freeNode(p *Node[K]) {
	p.item = nil
	p.height = 0
	p.child[left] = nil
	p.child[right] = a.pool // use as free list pointer
	a.pool = p
	a.free += 1
}

// release a whole sub-tree, children before parent
func (a *allocator[K]) freeTree(p *Node[K]) {
	if nil == p {
		return
	}
	a.freeTree(p.child[left])
	a.freeTree(p.child[right])
	a.freeNode(p)
}

func (a *allocator[K]) stats() Stats {
	return Stats{
		Total: a.total,
		Free:  a.free,
		InUse: a.total - a.free,
	}
}
