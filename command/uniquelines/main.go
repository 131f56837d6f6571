// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquelines/fault"
	"github.com/bitmark-inc/uniquelines/unique"
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
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
		{Long: "method", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'm'},
		{Long: "sorted", HasArg: getoptions.NO_ARGUMENT, Short: 's'},
		{Long: "print-tree", HasArg: getoptions.NO_ARGUMENT, Short: 'p'},
		{Long: "json", HasArg: getoptions.NO_ARGUMENT, Short: 'j'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseDefinitions(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: define: %q error: %s", program, options["define"], err)
	}

	// read options and parse the configuration file
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if n := len(options["method"]); n > 0 {
		theConfiguration.Method = options["method"][n-1]
		if !unique.ValidMethod(theConfiguration.Method) {
			exitwithstatus.Message("%s: method: %q error: %s", program, theConfiguration.Method, fault.ErrInvalidMethod)
		}
	}
	if len(options["sorted"]) > 0 {
		theConfiguration.Sorted = true
	}
	if len(options["print-tree"]) > 0 {
		theConfiguration.PrintTree = true
	}
	if len(options["json"]) > 0 {
		theConfiguration.JSON = true
	}
	if len(options["quiet"]) > 0 {
		theConfiguration.Logging.Console = false
		theConfiguration.Logging.Levels = map[string]string{logger.DefaultTag: "critical"}
	} else if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
		theConfiguration.Logging.Levels = map[string]string{logger.DefaultTag: "info"}
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
	log.Debugf("theConfiguration: %v", theConfiguration)

	if !processCommand(program, arguments, theConfiguration) {
		exitwithstatus.Exit(1)
	}
}
