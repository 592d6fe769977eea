// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - build trees from key lists and inspect them
//
// e.g. dump a tree after inserting some keys then removing one:
//
//   avl-cli dump --keys=16838,5758,10113,17515 --remove=5758
//
// check and search commands print JSON:
//
//   avl-cli --limit=100 check --scenario=small.lua
//   avl-cli search --keys=1,2,3 2 7
package main
