// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

func TestReferenceData(t *testing.T) {
	s := scenario.Reference()
	assert.Equal(t, "reference", s.Name)
	assert.Equal(t, 19, len(s.Insert))
	assert.Equal(t, int64(16838), s.Insert[0])
	assert.Equal(t, int64(25137), s.Insert[18])
	assert.Equal(t, []int64{5758, 9084}, s.Remove)
	assert.Equal(t, s.Insert, s.Search)
	assert.True(t, s.DumpStages)

	// each call is independent
	s.Insert[0] = 1
	assert.Equal(t, int64(16838), scenario.Reference().Insert[0])
}

func TestParseKeys(t *testing.T) {
	keys, err := scenario.ParseKeys("16838, 5758,,-3 ,0")
	require.NoError(t, err)
	assert.Equal(t, []int64{16838, 5758, -3, 0}, keys)

	keys, err = scenario.ParseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	for _, bad := range []string{"x", "1,2,three", "1.5", "99999999999999999999"} {
		_, err := scenario.ParseKeys(bad)
		assert.ErrorIs(t, err, fault.ErrInvalidKey, bad)
		assert.True(t, fault.IsErrInvalid(err), bad)
	}
}

func TestHeightBound(t *testing.T) {
	// the fewest nodes that can reach each height
	minimal := []int{1, 2, 4, 7, 12, 20, 33}
	for i, n := range minimal {
		assert.Equal(t, i+1, scenario.HeightBound(n), "nodes: %d", n)
	}
	assert.Equal(t, 0, scenario.HeightBound(0))
	assert.Equal(t, 5, scenario.HeightBound(19))
	assert.LessOrEqual(t, scenario.HeightBound(19), 6)
}

func TestLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "small.lua")
	err := os.WriteFile(fileName, []byte(`
return {
  name = "small",
  insert = { 5, 3, 8, 1 },
  remove = { 3 },
  search = { 1, 3 },
  dump_stages = true,
}
`), 0o600)
	require.NoError(t, err)

	s, err := scenario.Load(fileName)
	require.NoError(t, err)
	assert.Equal(t, "small", s.Name)
	assert.Equal(t, []int64{5, 3, 8, 1}, s.Insert)
	assert.Equal(t, []int64{3}, s.Remove)
	assert.Equal(t, []int64{1, 3}, s.Search)
	assert.True(t, s.DumpStages)
}

func TestLoadDefaultName(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "unnamed.lua")
	require.NoError(t, os.WriteFile(fileName, []byte(`return { insert = { 1 } }`), 0o600))

	s, err := scenario.Load(fileName)
	require.NoError(t, err)
	assert.Equal(t, fileName, s.Name)
	assert.False(t, s.DumpStages)
}

func TestLoadMissing(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.lua"))
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
}
