// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/scenario"
)

func runDump(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := getScenario(c, m)
	if nil != err {
		return err
	}
	s.DumpStages = true
	s.Search = nil

	tree := avl.NewWithLimit[int64](m.limit)
	_, err = scenario.Run(tree, s, scenario.NewWriterReporter(m.w), m.log)
	return err
}
