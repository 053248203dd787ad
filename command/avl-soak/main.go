// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/soak"
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
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--version] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}
	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	if len(options["verbose"]) > 0 {
		masterConfiguration.Logging.Console = true
	}

	// the log directory must exist before the logger starts
	if err := os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: cannot create log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	soakOptions := masterConfiguration.soakOptions()
	if 0 == soakOptions.Seed {
		soakOptions.Seed = time.Now().UnixNano()
	}

	start := time.Now()
	result, err := soak.Run(logger.New("soak"), soak.NewTree, soakOptions)
	if nil != err {
		fault.Failure("soak", err)
		exitwithstatus.Message("%s: soak failed with seed: %d  error: %s", program, soakOptions.Seed, err)
	}

	log.Infof("completed in: %s", time.Since(start))
	report(os.Stdout, soakOptions.Seed, result, len(options["verbose"]) > 0)
}

// print the totals, and with verbose the ascending tree
func report(w io.Writer, seed int64, result *soak.Result, verbose bool) {
	fmt.Fprintf(w, "seed: %d  rounds: %d  inserts: %d  deletes: %d  checks: %d  max height: %d\n",
		seed,
		result.Rounds,
		result.Inserts,
		result.Deletes,
		result.Checks,
		result.MaxHeight,
	)
	if verbose && nil != result.Ascending {
		fmt.Fprintf(w, "ascending tree of %d items:\n", result.Ascending.Count())
		result.Ascending.Print(w, true)
	}
}
