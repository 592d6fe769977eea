// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type metadata struct {
	limit   int
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// logging is started once per process
var logInitialised = false

func main() {

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if logInitialised {
		logger.Finalise()
	}
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build AVL trees from key lists and inspect them"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	scenarioFlag := cli.StringFlag{
		Name:  "scenario, s",
		Value: "",
		Usage: " Lua scenario `FILE` supplying the keys",
	}
	keysFlag := cli.StringFlag{
		Name:  "keys, k",
		Value: "",
		Usage: "+comma separated keys to insert `KEYS`",
	}
	removeFlag := cli.StringFlag{
		Name:  "remove, r",
		Value: "",
		Usage: " comma separated keys to remove after inserting `KEYS`",
	}

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum nodes in the tree, zero for no limit `COUNT`",
		},
		cli.StringFlag{
			Name:  "log-directory, d",
			Value: os.TempDir(),
			Usage: " directory for the log file `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "dump",
			Usage:     "print the tree after the inserts and after each remove",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     []cli.Flag{scenarioFlag, keysFlag, removeFlag},
			Action:    runDump,
		},
		{
			Name:      "check",
			Usage:     "run the keys against a tree and report its shape as JSON",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags:     []cli.Flag{scenarioFlag, keysFlag, removeFlag},
			Action:    runCheck,
		},
		{
			Name:      "search",
			Usage:     "search a tree for one or more keys",
			ArgsUsage: "KEY...\n   (* = required, + = select one)",
			Flags:     []cli.Flag{scenarioFlag, keysFlag},
			Action:    runSearch,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		limit := c.GlobalInt("limit")
		if limit < 0 {
			return fault.ErrInvalidNodeLimit
		}

		if !logInitialised {
			directory := c.GlobalString("log-directory")
			if verbose {
				fmt.Fprintf(e, "log directory: %q\n", directory)
			}
			level := "critical"
			if verbose {
				level = "info"
			}
			logging := logger.Configuration{
				Directory: directory,
				File:      "avl-cli.log",
				Size:      1048576,
				Count:     10,
				Console:   false,
				Levels: map[string]string{
					logger.DefaultTag: level,
				},
			}
			if err := logger.Initialise(logging); nil != err {
				return err
			}
			logInitialised = true
		}

		c.App.Metadata["config"] = &metadata{
			limit:   limit,
			verbose: verbose,
			log:     logger.New("scenario"),
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
