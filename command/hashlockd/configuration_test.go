// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/validators"
)

func TestGetConfigurationDefaults(t *testing.T) {
	name := writeConfiguration(t, `
local M = {}
M.data_directory = "."
M.chain = "Testing"
return M
`)
	dir := filepath.Dir(name)

	options, err := getConfiguration(name)
	assert.Nil(t, err)

	assert.Equal(t, "testing", options.Chain)
	assert.Equal(t, filepath.Join(dir, "data", "testing.leveldb"), options.Database.Name)
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory)
	assert.Equal(t, "hashlockd.log", options.Logging.File)
	assert.Equal(t, "", options.PidFile)

	policy, err := options.Lock.policy()
	assert.Nil(t, err)
	assert.Equal(t, validators.DefaultPolicy(), policy)
}

func TestGetConfigurationLock(t *testing.T) {
	name := writeConfiguration(t, `
return {
    data_directory = ".",
    chain = "local",
    pidfile = "hashlockd.pid",
    lock = {
        maximum_duration = 100,
        minimum_proof_size = 20,
        maximum_proof_size = 200,
        algorithms = { "sha3", "hash256" },
    },
}
`)
	dir := filepath.Dir(name)

	options, err := getConfiguration(name)
	assert.Nil(t, err)
	assert.Equal(t, filepath.Join(dir, "hashlockd.pid"), options.PidFile)
	assert.Equal(t, filepath.Join(dir, "data", "local.leveldb"), options.Database.Name)

	policy, err := options.Lock.policy()
	assert.Nil(t, err)
	assert.Equal(t, uint64(100), policy.MaximumDuration)
	assert.Equal(t, 20, policy.MinimumProofSize)
	assert.Equal(t, 200, policy.MaximumProofSize)
	assert.Equal(t, []lockhash.Algorithm{lockhash.Sha3, lockhash.Hash256}, policy.Algorithms)
}

func TestGetConfigurationErrors(t *testing.T) {
	items := []string{
		`return { data_directory = ".", chain = "nowhere" }`,
		`return { chain = "testing" }`,
		`return { data_directory = ".", lock = { algorithms = { "md5" } } }`,
		`return { data_directory = ".", lock = { minimum_proof_size = 50, maximum_proof_size = 10 } }`,
		`return { data_directory = ".", lock = { maximum_duration = 0 } }`,
		`return { data_directory = ".", database = { name = "sub/db.leveldb" } }`,
		`return { data_directory = "/no/such/directory" }`,
	}
	for i, text := range items {
		_, err := getConfiguration(writeConfiguration(t, text))
		assert.NotNil(t, err, "item: %d", i)
	}
}
