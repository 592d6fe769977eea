// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"fmt"
)

// Ordering - result of comparing the key of an item to another key
type Ordering int

// possible values of Ordering
const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = +1
)

// Item - a key item must implement these to be stored in a tree
//
// The key must not change while the item is in a tree.
type Item[K any] interface {
	Key() K             // the ordering key
	Compare(K) Ordering // own key compared to the argument
}

// Keyed - an ordered key with some caller data attached
type Keyed[K cmp.Ordered, D any] struct {
	key  K
	data D
}

// NewKeyed - create an item for a key and its data
func NewKeyed[K cmp.Ordered, D any](key K, data D) *Keyed[K, D] {
	return &Keyed[K, D]{
		key:  key,
		data: data,
	}
}

// Key - read the key part
func (k *Keyed[K, D]) Key() K {
	return k.key
}

// Data - read the data part
func (k *Keyed[K, D]) Data() D {
	return k.data
}

// Compare - three way comparison of own key against another key
func (k *Keyed[K, D]) Compare(key K) Ordering {
	return Ordering(cmp.Compare(k.key, key))
}

// String - the key as text
func (k *Keyed[K, D]) String() string {
	return fmt.Sprintf("%v", k.key)
}
