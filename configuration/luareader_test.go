// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/configuration"
	"github.com/bitmark-inc/hashlockd/fault"
)

type lockType struct {
	MaximumDuration uint64   `gluamapper:"maximum_duration"`
	Algorithms      []string `gluamapper:"algorithms"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Lock          lockType          `gluamapper:"lock"`
	Levels        map[string]string `gluamapper:"levels"`
	Untouched     string            `gluamapper:"untouched"`
}

func writeFile(t *testing.T, text string) string {
	name := filepath.Join(t.TempDir(), "test.conf")
	err := os.WriteFile(name, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write config error: %s", err)
	}
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := writeFile(t, `
local M = {}
M.data_directory = "."
M.chain = "testing"
M.lock = {
    maximum_duration = 100 * 3,
    algorithms = { "sha3", "hash160" },
}
M.levels = {
    main = "info",
    DEFAULT = "error",
}
return M
`)

	config := &testConfiguration{
		Chain:     "bitmark",
		Untouched: "default",
	}
	err := configuration.ParseConfigurationFile(name, config)
	assert.Nil(t, err)

	assert.Equal(t, ".", config.DataDirectory)
	assert.Equal(t, "testing", config.Chain)
	assert.Equal(t, uint64(300), config.Lock.MaximumDuration)
	assert.Equal(t, []string{"sha3", "hash160"}, config.Lock.Algorithms)
	assert.Equal(t, "info", config.Levels["main"])
	assert.Equal(t, "error", config.Levels["DEFAULT"])
	assert.Equal(t, "default", config.Untouched)
}

func TestParseConfigurationFileArg(t *testing.T) {
	name := writeFile(t, `return { data_directory = arg[0] }`)

	config := &testConfiguration{}
	err := configuration.ParseConfigurationFile(name, config)
	assert.Nil(t, err)
	assert.Equal(t, name, config.DataDirectory)
}

func TestParseConfigurationFileErrors(t *testing.T) {
	name := writeFile(t, `return 42`)

	err := configuration.ParseConfigurationFile(name, &testConfiguration{})
	assert.Equal(t, fault.ErrInvalidConfiguration, err)

	err = configuration.ParseConfigurationFile(name, testConfiguration{})
	assert.Equal(t, fault.ErrInvalidStructPointer, err)

	err = configuration.ParseConfigurationFile(writeFile(t, `return {`), &testConfiguration{})
	assert.NotNil(t, err)

	err = configuration.ParseConfigurationFile(filepath.Join(t.TempDir(), "missing.conf"), &testConfiguration{})
	assert.NotNil(t, err)
}
