// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify order, cached heights, balance and item count
//
// returns nil for a consistent tree, otherwise an error describing
// the first violation found
func (tree *Tree[K]) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: nodes: %d  count: %d", fault.ErrCountMismatch, n, tree.count)
	}
	return nil
}

// internal: consistency checker, lower and upper are the nearest
// ancestors the sub-tree must lie between (nil if unbounded)
//
// returns: number of nodes, computed height, error
func check[K any](p *Node[K], lower Item[K], upper Item[K]) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil == p.item {
		return 0, 0, fault.ErrNilItem
	}
	key := p.item.Key()
	if nil != lower && p.item.Compare(lower.Key()) <= Equal {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, key, lower.Key())
	}
	if nil != upper && p.item.Compare(upper.Key()) >= Equal {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, key, upper.Key())
	}

	nl, hl, err := check(p.child[left], lower, p.item)
	if nil != err {
		return 0, 0, err
	}
	nr, hr, err := check(p.child[right], p.item, upper)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(hl, hr)
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, key, p.height, h)
	}
	if b := hr - hl; b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("%w: key: %v  balance: %+d", fault.ErrUnbalancedNode, key, b)
	}
	return 1 + nl + nr, h, nil
}
