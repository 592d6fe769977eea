// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avltree/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// DataDirectory - resolve the data directory named in a configuration
// file, "." being the directory holding the configuration file
//
// the directory must already exist
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	base, _ := filepath.Split(configurationFileName)

	switch dataDirectory {
	case "", "~":
		return "", fault.ErrInvalidDataDirectory
	case ".":
		dataDirectory = base
	}
	dataDirectory = EnsureAbsolute(base, dataDirectory)

	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrNotDirectory
	}
	return dataDirectory, nil
}

// PlainFileName - fail if a name contains any directory part
func PlainFileName(name string) error {
	switch filepath.Dir(name) {
	case "", ".":
		return nil
	default:
		return fault.ErrNotPlainFileName
	}
}
