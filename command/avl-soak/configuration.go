// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/soak"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-soak.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRounds        = 10
	defaultItems         = 1000
	defaultCheckInterval = 1
	defaultDuplicates    = 100
	defaultAbsent        = 100
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"soak":            "info",
		logger.DefaultTag: "critical",
	}
)

// SoakType - run parameters
type SoakType struct {
	Rounds        int   `gluamapper:"rounds" json:"rounds"`
	Items         int   `gluamapper:"items" json:"items"`
	Seed          int64 `gluamapper:"seed" json:"seed"`
	CheckInterval int   `gluamapper:"check_interval" json:"check_interval"`
	Duplicates    int   `gluamapper:"duplicates" json:"duplicates"`
	Absent        int   `gluamapper:"absent" json:"absent"`
}

// Configuration - everything read from the Lua file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Soak          SoakType             `gluamapper:"soak" json:"soak"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// fresh copy, the decoder writes into this map
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Soak: SoakType{
			Rounds:        defaultRounds,
			Items:         defaultItems,
			Seed:          0, // zero: take from the clock
			CheckInterval: defaultCheckInterval,
			Duplicates:    defaultDuplicates,
			Absent:        defaultAbsent,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if "" == options.DataDirectory || "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
	}

	if err := options.soakOptions().Validate(); nil != err {
		return nil, err
	}

	return options, nil
}

// convert to the runner's options
func (c *Configuration) soakOptions() soak.Options {
	return soak.Options{
		Rounds:        c.Soak.Rounds,
		Items:         c.Soak.Items,
		Seed:          c.Soak.Seed,
		CheckInterval: c.Soak.CheckInterval,
		Duplicates:    c.Soak.Duplicates,
		Absent:        c.Soak.Absent,
	}
}
