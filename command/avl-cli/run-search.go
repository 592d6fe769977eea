// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

type foundItem struct {
	Key  int64  `json:"key"`
	Data string `json:"data"`
}

type searchResult struct {
	Count   int         `json:"count"`
	Height  int         `json:"height"`
	Found   []foundItem `json:"found"`
	Missing []int64     `json:"missing"`
}

func runSearch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return fault.ErrUnexpectedArguments
	}
	keys, err := scenario.ParseKeys(strings.Join(c.Args(), ","))
	if nil != err {
		return err
	}

	s, err := getScenario(c, m)
	if nil != err {
		return err
	}
	s.DumpStages = false
	s.Remove = nil
	s.Search = nil

	tree := avl.NewWithLimit[int64](m.limit)
	if _, err := scenario.Run(tree, s, nil, m.log); nil != err {
		return err
	}

	result := searchResult{
		Count:   tree.Count(),
		Height:  tree.Height(),
		Found:   make([]foundItem, 0, len(keys)),
		Missing: make([]int64, 0, len(keys)),
	}
	for _, key := range keys {
		item := tree.Search(key)
		if nil == item {
			result.Missing = append(result.Missing, key)
			continue
		}
		f := foundItem{Key: item.Key()}
		if k, ok := item.(*avl.Keyed[int64, string]); ok {
			f.Data = k.Data()
		}
		result.Found = append(result.Found, f)
	}

	return printJson(m.w, result)
}
