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

type checkResult struct {
	Report *scenario.Report `json:"report"`
	Valid  bool             `json:"valid"`
	Unique bool             `json:"unique"`
	Error  string           `json:"error,omitempty"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	s, err := getScenario(c, m)
	if nil != err {
		return err
	}
	s.DumpStages = false

	tree := avl.NewWithLimit[int64](m.limit)
	report, err := scenario.Run(tree, s, nil, m.log)

	result := checkResult{
		Report: report,
		Valid:  nil == err,
		Unique: nil != report && nil == report.Unique(),
	}
	if nil != err {
		result.Error = err.Error()
	}

	if e := printJson(m.w, result); nil != e {
		return e
	}
	return err
}
