// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Scenario - the keys to apply to a tree
type Scenario struct {
	Name       string  `gluamapper:"name" json:"name"`
	Insert     []int64 `gluamapper:"insert" json:"insert"`
	Remove     []int64 `gluamapper:"remove" json:"remove"`
	Search     []int64 `gluamapper:"search" json:"search"`
	DumpStages bool    `gluamapper:"dump_stages" json:"dump_stages"`
}

// the reference data: nineteen values then two removals
var referenceKeys = []int64{
	16838,
	5758,
	10113,
	17515,
	31051,
	5627,
	23010,
	7419,
	16212,
	4086,
	2749,
	12767,
	9084,
	12060,
	32225,
	17543,
	25089,
	21183,
	25137,
}

// Reference - the default scenario used when nothing is configured
func Reference() *Scenario {
	insert := make([]int64, len(referenceKeys))
	copy(insert, referenceKeys)
	search := make([]int64, len(referenceKeys))
	copy(search, referenceKeys)
	return &Scenario{
		Name:       "reference",
		Insert:     insert,
		Remove:     []int64{5758, 9084},
		Search:     search,
		DumpStages: true,
	}
}

// ParseKeys - convert a comma separated list of integers
//
// blank entries are skipped, so an empty string gives an empty list
func ParseKeys(s string) ([]int64, error) {
	keys := make([]int64, 0, strings.Count(s, ",")+1)
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if "" == field {
			continue
		}
		k, err := strconv.ParseInt(field, 10, 64)
		if nil != err {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, field)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// HeightBound - an upper bound on the height of an AVL tree of n nodes
//
// a single leaf has height one; the bound equals the height at the
// minimal AVL sizes 1, 2, 4, 7, 12, 20, ...
func HeightBound(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Floor(1.4405*math.Log2(float64(n+2)) - 0.3277))
}
