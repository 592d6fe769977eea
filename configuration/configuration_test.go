// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
)

type limitsType struct {
	Nodes int `gluamapper:"nodes"`
}

type testConfiguration struct {
	Name   string     `gluamapper:"name"`
	Keys   []int64    `gluamapper:"keys"`
	Dump   bool       `gluamapper:"dump"`
	Limits limitsType `gluamapper:"limits"`
	Source string     `gluamapper:"source"`
}

func writeFile(t *testing.T, name string, content string) string {
	fileName := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fileName, []byte(content), 0600)
	require.NoError(t, err)
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	fileName := writeFile(t, "test.conf", `
local keys = {}
for i = 1, 5 do
  keys[i] = i * 10
end

return {
  name = "sample",
  keys = keys,
  dump = true,
  limits = { nodes = 42 },
  source = arg[0],
}
`)
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)

	assert.Equal(t, "sample", config.Name)
	assert.Equal(t, []int64{10, 20, 30, 40, 50}, config.Keys)
	assert.True(t, config.Dump)
	assert.Equal(t, 42, config.Limits.Nodes)
	assert.Equal(t, fileName, config.Source)
}

func TestParseKeepsDefaults(t *testing.T) {
	fileName := writeFile(t, "partial.conf", `return { name = "partial" }`)
	config := testConfiguration{
		Keys:   []int64{1, 2},
		Limits: limitsType{Nodes: 7},
	}
	err := configuration.ParseConfigurationFile(fileName, &config)
	require.NoError(t, err)
	assert.Equal(t, "partial", config.Name)
	assert.Equal(t, []int64{1, 2}, config.Keys)
	assert.Equal(t, 7, config.Limits.Nodes)
}

func TestParseInvalidTarget(t *testing.T) {
	fileName := writeFile(t, "test.conf", `return {}`)

	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, config)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile(fileName, (*testConfiguration)(nil))
	assert.Equal(t, fault.ErrInvalidStructPointer, err)
}

func TestParseMissingFile(t *testing.T) {
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "none.conf"), &config)
	assert.Equal(t, fault.ErrNotFoundConfigFile, err)
	assert.True(t, fault.IsErrNotFound(err))
}

func TestParseNoTable(t *testing.T) {
	fileName := writeFile(t, "none.conf", `local x = 1`)
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Equal(t, fault.ErrMissingConfiguration, err)
}

func TestParseLuaError(t *testing.T) {
	fileName := writeFile(t, "bad.conf", `return {`)
	config := testConfiguration{}
	err := configuration.ParseConfigurationFile(fileName, &config)
	assert.Error(t, err)
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "log"))
	assert.Equal(t, "/var/log", configuration.EnsureAbsolute("/data", "/var/log"))
	assert.Equal(t, "/data/log", configuration.EnsureAbsolute("/data", "./log/"))
}

func TestDataDirectory(t *testing.T) {
	directory := t.TempDir()
	fileName := filepath.Join(directory, "test.conf")

	d, err := configuration.DataDirectory(fileName, ".")
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(directory), filepath.Clean(d))

	require.NoError(t, os.Mkdir(filepath.Join(directory, "sub"), 0700))
	d, err = configuration.DataDirectory(fileName, "sub")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(directory, "sub"), d)

	_, err = configuration.DataDirectory(fileName, "")
	assert.Equal(t, fault.ErrInvalidDataDirectory, err)

	_, err = configuration.DataDirectory(fileName, "missing")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(directory, "file"), []byte{}, 0600))
	_, err = configuration.DataDirectory(fileName, "file")
	assert.Equal(t, fault.ErrNotDirectory, err)
}

func TestPlainFileName(t *testing.T) {
	assert.NoError(t, configuration.PlainFileName("avl-dump.log"))
	assert.Equal(t, fault.ErrNotPlainFileName, configuration.PlainFileName("log/avl-dump.log"))
}
