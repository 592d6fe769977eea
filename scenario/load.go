// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"github.com/bitmark-inc/avltree/configuration"
)

// Load - read a scenario from a Lua file that returns a table of the
// form: { name = "...", insert = {...}, remove = {...}, search = {...}, dump_stages = true }
func Load(fileName string) (*Scenario, error) {
	s := &Scenario{
		Name: fileName,
	}
	if err := configuration.ParseConfigurationFile(fileName, s); nil != err {
		return nil, err
	}
	return s, nil
}
