// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/avltree/fault"
)

// Insert - add an item to the tree
//
// returns the item already in the tree if one has an equal key, in
// which case the tree is unchanged and the new item is not stored;
// returns nil when the item was added. An error is only returned if
// a node could not be allocated and the tree is then also unchanged.
func (tree *Tree[K]) Insert(item Item[K]) (Item[K], error) {
	if isNil(item) {
		return nil, fault.ErrNilItem
	}
	root, existing, _, err := insert(tree.root, item, &tree.alloc)
	if nil != err {
		return nil, err
	}
	tree.root = root
	if nil == existing {
		tree.count += 1
	}
	return existing, nil
}

// true for a nil interface or an interface holding a nil pointer
func isNil[K any](item Item[K]) bool {
	if nil == item {
		return true
	}
	v := reflect.ValueOf(item)
	return reflect.Ptr == v.Kind() && v.IsNil()
}

// internal routine for insert
//
// returns: new sub-tree root, existing item, height changed, error
func insert[K any](p *Node[K], item Item[K], a *allocator[K]) (*Node[K], Item[K], bool, error) {
	if nil == p { // insert new node
		n, err := a.newNode(item)
		if nil != err {
			return nil, nil, false, err
		}
		return n, nil, true, nil
	}

	dir := left
	switch r := p.item.Compare(item.Key()); {
	case r < Equal: // p.key < key
		dir = right
	case r == Equal:
		return p, p.item, false, nil
	}

	oldHeight := p.height
	child, existing, h, err := insert(p.child[dir], item, a)
	if nil != err || nil != existing {
		return p, existing, false, err
	}
	p.child[dir] = child
	if !h {
		return p, nil, false, nil
	}

	// branch has grown
	if isUnbalanced(p) {
		p = rebalance(p)
	} else {
		p.height = p.calcHeight()
	}
	return p, nil, p.height != oldHeight, nil
}
