// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/chain"
	"github.com/bitmark-inc/vaultd/configuration"
	"github.com/bitmark-inc/vaultd/fault"
)

const fullConfiguration = `
local M = {}

M.data_directory = "."
M.chain = "Testing"
M.allow_insolvent_slash = true

M.database = {
    directory = "db",
}

M.logging = {
    size = 2048,
    count = 3,
    levels = {
        DEFAULT = "info",
        vaultstore = "debug",
    }
}

return M
`

const minimalConfiguration = `
return {
    data_directory = arg[0]:match("(.*/)"),
}
`

func writeConfiguration(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "vaultd-configuration")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	fileName := filepath.Join(dir, "vault.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName, func() {
		_ = os.RemoveAll(dir)
	}
}

func TestFullConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, fullConfiguration)
	defer cleanup()

	dir, _ := filepath.Split(fileName)

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	assert.Equal(t, chain.Testing, options.Chain, "chain not lower cased")
	assert.True(t, options.IsTesting(), "testing chain not test")
	assert.True(t, options.AllowInsolventSlash, "allow insolvent slash not set")
	assert.Equal(t, filepath.Join(dir, "db"), options.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "db", "testing.leveldb"), options.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "wrong log directory")
	assert.Equal(t, 2048, options.Logging.Size, "wrong log size")
	assert.Equal(t, 3, options.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", options.Logging.Levels["vaultstore"], "wrong log level")

	info, err := os.Stat(options.Database.Directory)
	assert.Nil(t, err, "database directory not created")
	assert.True(t, info.IsDir(), "database directory is not a directory")
}

func TestMinimalConfiguration(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, minimalConfiguration)
	defer cleanup()

	options, err := configuration.GetConfiguration(fileName)
	if !assert.Nil(t, err, "get configuration") {
		return
	}

	assert.Equal(t, chain.Vault, options.Chain, "wrong default chain")
	assert.False(t, options.IsTesting(), "live chain is test")
	assert.False(t, options.AllowInsolventSlash, "insolvent slash allowed by default")
	assert.Equal(t, "vault.leveldb", filepath.Base(options.Database.Name), "wrong default database")
	assert.Equal(t, "vaultd.log", options.Logging.File, "wrong default log file")
}

func TestInvalidChain(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = ".", chain = "bitcoin" }`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.Equal(t, fault.ErrInvalidChain, err, "wrong error")
}

func TestMissingDataDirectory(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { chain = "local" }`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "empty data directory accepted")
}

func TestDatabaseNameMustBePlain(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return { data_directory = ".", database = { name = "x/y.leveldb" } }`)
	defer cleanup()

	_, err := configuration.GetConfiguration(fileName)
	assert.NotNil(t, err, "path accepted as database name")
}

func TestNotATable(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return 42`)
	defer cleanup()

	var options configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &options)
	assert.Equal(t, fault.ErrConfigurationNotTable, err, "wrong error")
}

func TestNotAStructPointer(t *testing.T) {
	var options configuration.Configuration
	err := configuration.ParseConfigurationFile("unused.conf", options)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "wrong error")
}

func TestLuaError(t *testing.T) {
	fileName, cleanup := writeConfiguration(t, `return {`)
	defer cleanup()

	var options configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, &options)
	assert.NotNil(t, err, "syntax error accepted")
}
