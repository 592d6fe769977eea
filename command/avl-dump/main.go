// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [key[,key...]...]", program)
	}

	verbose := len(options["verbose"]) > 0
	quiet := len(options["quiet"]) > 0

	theConfiguration, err := setup(options, arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %+v", theConfiguration)

	if err = run(program, theConfiguration, verbose, quiet, os.Stdout, os.Stderr, log); nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}
}

// read the configuration and apply any keys from the command line
func setup(options map[string][]string, arguments []string) (*Configuration, error) {

	theConfiguration := (*Configuration)(nil)
	switch n := len(options["config-file"]); n {
	case 0:
		theConfiguration = defaultConfiguration()
	case 1:
		configurationFile := options["config-file"][0]
		c, err := getConfiguration(configurationFile)
		if nil != err {
			return nil, fmt.Errorf("failed to read configuration from: %q  error: %w", configurationFile, err)
		}
		theConfiguration = c
	default:
		return nil, fmt.Errorf("only one config-file option is allowed, %d were detected: %w", n, fault.ErrUnexpectedArguments)
	}

	// keys on the command line replace the configured insert list
	if len(arguments) > 0 {
		keys, err := scenario.ParseKeys(strings.Join(arguments, ","))
		if nil != err {
			return nil, err
		}
		theConfiguration.Scenario.Name = "arguments"
		theConfiguration.Scenario.Insert = keys
		theConfiguration.Scenario.Search = keys
	}
	return theConfiguration, nil
}

// run the scenario printing the stages to w unless quiet, then the
// summary or the whole report as JSON if verbose
func run(program string, theConfiguration *Configuration, verbose bool, quiet bool, w io.Writer, e io.Writer, log *logger.L) error {

	reporter := scenario.Reporter(nil)
	if !quiet {
		reporter = scenario.NewWriterReporter(w)
	}

	s := theConfiguration.Scenario
	tree := avl.NewWithLimit[int64](theConfiguration.NodeLimit)
	report, err := scenario.Run(tree, s, reporter, logger.New("scenario"))
	if nil != err {
		fault.Criticalf("scenario: %q  error: %s", s.Name, err)
		return fmt.Errorf("scenario: %q  failed with error: %w", s.Name, err)
	}

	if verbose {
		b, err := json.MarshalIndent(report, "", "  ")
		fault.PanicIfError("report encoding", err)
		fmt.Fprintf(w, "%s\n", b)
	} else {
		fmt.Fprintf(w, "scenario: %q  count: %d  height: %d  bound: %d  nodes: %d/%d\n",
			report.Name, report.Count, report.Height, report.HeightBound,
			report.Nodes.InUse, report.Nodes.Total)
	}

	if err := report.Unique(); nil != err {
		log.Warnf("%s", err)
		fmt.Fprintf(e, "%s: warning: %s\n", program, err)
	}
	return nil
}
