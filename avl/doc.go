// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree where every node caches the
// height of its sub-tree
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node refers to exactly one caller owned item.  The tree never
// copies or modifies an item and an insert of a key that is already
// present is rejected, the existing item being returned to the
// caller.
//
// All structural routines take the root of a sub-tree and return the
// (possibly different) root so that the parent can relink its child
// slot.  Rebalancing is done on the way back up from the point of
// change using single or double rotations selected from the balance
// factor, height(right) - height(left), of the node and its heavy
// child.
package avl
