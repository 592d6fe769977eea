// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

const testingDirName = "testing"

// Test main entrypoint
func TestMain(m *testing.M) {
	os.RemoveAll(testingDirName)
	if err := os.Mkdir(testingDirName, 0o700); nil != err {
		os.Exit(1)
	}

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		os.Exit(1)
	}
	logInitialised = true

	result := m.Run()

	logger.Finalise()
	os.RemoveAll(testingDirName)
	os.Exit(result)
}

func run(t *testing.T, arguments ...string) (string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avl-cli"}, arguments...))
	return w.String(), err
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "--keys", "5,3,8", "3", "9,8")
	require.NoError(t, err)

	result := searchResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 2, result.Height)
	assert.Equal(t, []foundItem{{Key: 3, Data: "3"}, {Key: 8, Data: "8"}}, result.Found)
	assert.Equal(t, []int64{9}, result.Missing)
}

func TestSearchReference(t *testing.T) {
	out, err := run(t, "search", "5758", "1")
	require.NoError(t, err)

	result := searchResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 19, result.Count)
	assert.Equal(t, []foundItem{{Key: 5758, Data: "5758"}}, result.Found)
	assert.Equal(t, []int64{1}, result.Missing)
}

func TestSearchWithoutKeys(t *testing.T) {
	_, err := run(t, "search", "--keys", "1,2")
	assert.Equal(t, fault.ErrUnexpectedArguments, err)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "--remove", "5758,9084")
	require.NoError(t, err)

	result := checkResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.True(t, result.Unique)
	assert.Empty(t, result.Error)
	require.NotNil(t, result.Report)
	assert.Equal(t, 17, result.Report.Count)
	assert.LessOrEqual(t, result.Report.Height, result.Report.HeightBound)
	assert.Equal(t, []int64{5758, 9084}, result.Report.Removed)
}

func TestCheckDuplicates(t *testing.T) {
	out, err := run(t, "check", "--keys", "1,2,1")
	require.NoError(t, err)

	result := checkResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.Valid)
	assert.False(t, result.Unique)
	assert.Equal(t, []int64{1}, result.Report.Rejected)
}

func TestCheckLimit(t *testing.T) {
	out, err := run(t, "--limit", "2", "check", "--keys", "1,2,3")
	assert.Equal(t, fault.ErrNodeLimitReached, err)

	result := checkResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, fault.ErrNodeLimitReached.Error(), result.Error)
	assert.Equal(t, []int64{1, 2}, result.Report.Inserted)
}

func TestCheckScenarioFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "small.lua")
	require.NoError(t, os.WriteFile(fileName, []byte(`return { name = "small", insert = { 4, 2, 6 }, remove = { 2 } }`), 0o600))

	out, err := run(t, "check", "--scenario", fileName)
	require.NoError(t, err)

	result := checkResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "small", result.Report.Name)
	assert.Equal(t, 2, result.Report.Count)
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "--keys", "2,1,3", "--remove", "2")
	require.NoError(t, err)

	expected := "--- insert (7 lines)\n" +
		"           **NULL**\n" +
		"      3:1\n" +
		"           **NULL**\n" +
		" 2:2\n" +
		"           **NULL**\n" +
		"      1:1\n" +
		"           **NULL**\n" +
		"--- remove 2 (5 lines)\n" +
		"      **NULL**\n" +
		" 3:2\n" +
		"           **NULL**\n" +
		"      1:1\n" +
		"           **NULL**\n"
	assert.Equal(t, expected, out)
}

func TestInvalidArguments(t *testing.T) {
	_, err := run(t, "check", "--keys", "1,x")
	assert.ErrorIs(t, err, fault.ErrInvalidKey)

	_, err = run(t, "--limit", "-1", "check")
	assert.Equal(t, fault.ErrInvalidNodeLimit, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version, strings.TrimSpace(out))
}
