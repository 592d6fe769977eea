// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes the item with a specific key from the tree
//
// returns the removed item or nil if the key was not present
func (tree *Tree[K]) Remove(key K) Item[K] {
	root, removed := remove(tree.root, key, &tree.alloc)
	tree.root = root
	if nil != removed {
		tree.count -= 1
	}
	return removed
}

// internal remove routine
//
// returns: new sub-tree root, removed item
func remove[K any](p *Node[K], key K, a *allocator[K]) (*Node[K], Item[K]) {
	if nil == p { // key not in tree
		return nil, nil
	}

	removed := Item[K](nil)
	switch r := p.item.Compare(key); {
	case r < Equal: // p.key < key
		p.child[right], removed = remove(p.child[right], key, a)
	case r > Equal: // p.key > key
		p.child[left], removed = remove(p.child[left], key, a)
	default: // found: delete p
		removed = p.item
		pl := p.child[left]
		pr := p.child[right]
		switch {
		case nil == pr:
			a.freeNode(p)
			return pl, removed
		case nil == pl:
			a.freeNode(p)
			return pr, removed
		}

		// two children: the in-order successor donates its item
		// and is then removed from the right sub-tree
		s := pr
		for nil != s.child[left] {
			s = s.child[left]
		}
		p.item = s.item
		p.child[right], _ = remove(pr, s.item.Key(), a)
	}

	if nil == removed {
		return p, nil
	}
	if isUnbalanced(p) {
		return rebalance(p), removed
	}
	p.height = p.calcHeight()
	return p, removed
}
