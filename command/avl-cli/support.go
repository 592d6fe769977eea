// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/scenario"
)

// build the scenario for a command from its flags
//
// a scenario file is read first then any key lists on the command
// line replace the corresponding parts, with neither the reference
// scenario is used
func getScenario(c *cli.Context, m *metadata) (*scenario.Scenario, error) {

	s := scenario.Reference()

	if fileName := c.String("scenario"); "" != fileName {
		if m.verbose {
			fmt.Fprintf(m.e, "reading scenario: %q\n", fileName)
		}
		loaded, err := scenario.Load(fileName)
		if nil != err {
			return nil, err
		}
		s = loaded
	}

	if keys := c.String("keys"); "" != keys {
		insert, err := scenario.ParseKeys(keys)
		if nil != err {
			return nil, err
		}
		s.Name = "keys"
		s.Insert = insert
		s.Search = insert
		s.Remove = nil
	}

	if keys := c.String("remove"); "" != keys {
		remove, err := scenario.ParseKeys(keys)
		if nil != err {
			return nil, err
		}
		s.Remove = remove
	}

	if m.verbose {
		fmt.Fprintf(m.e, "scenario: %q  insert: %d  remove: %d\n", s.Name, len(s.Insert), len(s.Remove))
	}
	return s, nil
}
