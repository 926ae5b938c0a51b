// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/storage"
)

// test database file
const (
	databaseFileName = "pool-testing.leveldb"
)

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
}

// configure for testing
func setup(t *testing.T) {
	fixtures.SetupTestLogger()
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
	fixtures.TeardownTestLogger()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")
}

func TestTransactionBeforeInitialise(t *testing.T) {
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "transaction without database")
}

func TestReadOnlyMissingDatabase(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	removeFiles()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	assert.NotNil(t, err, "read only open of missing database")
	removeFiles()
}

func TestReadOnlyRefusesTransaction(t *testing.T) {
	setup(t)
	storage.Finalise()

	err := storage.Initialise(databaseFileName, storage.ReadOnly)
	if !assert.Nil(t, err, "read only open") {
		teardown(t)
		return
	}
	defer teardown(t)

	assert.True(t, storage.IsReadOnly(), "not read only")
	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsReadOnly, err, "transaction on read only database")
}

func TestRefuseDowngrade(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()
	removeFiles()
	defer removeFiles()

	db, err := leveldb.OpenFile(databaseFileName, nil)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	version := make([]byte, 4)
	binary.BigEndian.PutUint32(version, 0x7fffffff)
	_ = db.Put([]byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}, version, nil)
	_ = db.Close()

	err = storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.NotNil(t, err, "newer database was accepted")

	// a failed open must leave storage closed
	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrDatabaseIsNotSet, err, "failed open left database set")
}
