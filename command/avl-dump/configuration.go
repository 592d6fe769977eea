// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-dump.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// a fresh map each time as the parser writes into it
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	NodeLimit     int                  `gluamapper:"node_limit" json:"node_limit"`
	Scenario      *scenario.Scenario   `gluamapper:"scenario" json:"scenario"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// configuration used when no file is given: the reference scenario
// logging to the current directory
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: ".",
		Scenario:      scenario.Reference(),
		Logging: logger.Configuration{
			Directory: ".",
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
		return nil, err
	}

	// no scenario table: use the reference scenario
	if nil == options.Scenario {
		options.Scenario = scenario.Reference()
	}

	if options.NodeLimit < 0 {
		return nil, fault.ErrInvalidNodeLimit
	}

	// ensure absolute data directory, this directory must exist
	// i.e. must be created prior to running
	options.DataDirectory, err = configuration.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}

	// the log file must be a simple file name, the directory is
	// relative to the data directory and is created if necessary
	if err := configuration.PlainFileName(options.Logging.File); nil != err {
		return nil, err
	}
	options.Logging.Directory = configuration.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0o700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}
