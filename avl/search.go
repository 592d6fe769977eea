// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Search - find the item with a specific key, nil if not present
func (tree *Tree[K]) Search(key K) Item[K] {
	return search(tree.root, key)
}

func search[K any](p *Node[K], key K) Item[K] {
	for nil != p {
		switch r := p.item.Compare(key); {
		case r < Equal: // p.key < key
			p = p.child[right]
		case r > Equal: // p.key > key
			p = p.child[left]
		default:
			return p.item
		}
	}
	return nil
}
