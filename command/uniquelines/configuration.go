// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/uniquelines/configuration"
	"github.com/bitmark-inc/uniquelines/fault"
	"github.com/bitmark-inc/uniquelines/unique"
	"github.com/bitmark-inc/uniquelines/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "uniquelines.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings read from the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Method        string               `gluamapper:"method" json:"method"`
	Sorted        bool                 `gluamapper:"sorted" json:"sorted"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	JSON          bool                 `gluamapper:"json" json:"json"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// built in settings for running without a configuration file
func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Method:        unique.MethodAVL,
		Sorted:        false,
		PrintTree:     false,
		JSON:          false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with logging in the
// temporary directory
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	options := defaultConfiguration()

	if "" == configurationFileName {
		options.DataDirectory = os.TempDir()
		options.Logging.Directory = options.DataDirectory
		return options, nil
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	options.Method = strings.ToLower(options.Method)
	if !unique.ValidMethod(options.Method) {
		return nil, fault.ErrInvalidMethod
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fault.ErrNotADirectory
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fault.ErrNotADirectory
	}

	// the log file must be a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fault.ErrNotAPlainFileName
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// parse --define=KEY=VALUE items into Lua globals
func parseDefinitions(definitions []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range definitions {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == strings.TrimSpace(s[0]) {
			return nil, fault.ErrInvalidDefinition
		}
		variables[strings.TrimSpace(s[0])] = s[1]
	}
	return variables, nil
}
