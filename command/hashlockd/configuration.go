// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/chain"
	"github.com/bitmark-inc/hashlockd/configuration"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/util"
	"github.com/bitmark-inc/hashlockd/validators"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory = "data"
	defaultBitmarkDatabase  = chain.Bitmark + ".leveldb"
	defaultTestingDatabase  = chain.Testing + ".leveldb"
	defaultLocalDatabase    = chain.Local + ".leveldb"

	defaultLogDirectory = "log"
	defaultLogFile      = "hashlockd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// path expanded or calculated defaults
var (
	defaultLogLevels = map[string]string{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// LockType - node policy for hash locks and secret proofs
type LockType struct {
	MaximumDuration  uint64   `gluamapper:"maximum_duration" json:"maximum_duration"`
	MinimumProofSize int      `gluamapper:"minimum_proof_size" json:"minimum_proof_size"`
	MaximumProofSize int      `gluamapper:"maximum_proof_size" json:"maximum_proof_size"`
	Algorithms       []string `gluamapper:"algorithms" json:"algorithms"`
}

// Configuration - the daemon configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Lock          LockType             `gluamapper:"lock" json:"lock"`
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

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		Chain:         chain.Bitmark,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultBitmarkDatabase,
		},

		Lock: LockType{
			MaximumDuration:  validators.DefaultMaximumDuration,
			MinimumProofSize: validators.DefaultMinimumProofSize,
			MaximumProofSize: validators.DefaultMaximumProofSize,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// if any test mode and the database file was not specified
	// switch to appropriate default.  Abort if then chain name is
	// not recognised.
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("Chain: %q is not supported", options.Chain)
	}

	// if database was not changed from default
	if options.Database.Name == defaultBitmarkDatabase {
		switch options.Chain {
		case chain.Bitmark:
			// already correct default
		case chain.Testing:
			options.Database.Name = defaultTestingDatabase
		case chain.Local:
			options.Database.Name = defaultLocalDatabase
		default:
			return nil, fmt.Errorf("Chain: %s no default database setting", options.Chain)
		}
	}

	if _, err := options.Lock.policy(); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if err := util.EnsureDirectory(options.DataDirectory); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	err = util.MakeDirectories(0700, options.Database.Directory, options.Logging.Directory)
	if nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// convert the configured limits to a validation policy
//
// an empty algorithm list enables every algorithm
func (lock LockType) policy() (validators.Policy, error) {
	policy := validators.Policy{
		MaximumDuration:  lock.MaximumDuration,
		MinimumProofSize: lock.MinimumProofSize,
		MaximumProofSize: lock.MaximumProofSize,
	}

	if 0 == lock.MaximumDuration {
		return policy, fmt.Errorf("Lock: maximum_duration must be positive")
	}
	if lock.MinimumProofSize < 0 || lock.MinimumProofSize > lock.MaximumProofSize {
		return policy, fmt.Errorf("Lock: proof size range: %d..%d is invalid", lock.MinimumProofSize, lock.MaximumProofSize)
	}

	if 0 == len(lock.Algorithms) {
		policy.Algorithms = lockhash.All()
		return policy, nil
	}

	for _, name := range lock.Algorithms {
		a, err := lockhash.FromString(name)
		if nil != err {
			return policy, fmt.Errorf("Lock: algorithm: %q  error: %s", name, err)
		}
		policy.Algorithms = append(policy.Algorithms, a)
	}
	return policy, nil
}
