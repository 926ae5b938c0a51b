// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/storage/mocks"
)

func setupTestTransaction(t *testing.T) (Transaction, *mocks.MockAccess, *PoolHandle, *gomock.Controller) {
	ctl := gomock.NewController(t)
	access := mocks.NewMockAccess(ctl)

	handle := &PoolHandle{
		prefix:     'T',
		limit:      []byte{'U'},
		dataAccess: access,
	}
	return newTransaction(access), access, handle, ctl
}

func TestTransactionBegin(t *testing.T) {
	tx, access, _, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	gomock.InOrder(
		access.EXPECT().Begin().Return(nil).Times(1),
		access.EXPECT().Begin().Return(fault.ErrTransactionAlreadyOpen).Times(1),
	)

	err := tx.Begin()
	assert.Nil(t, err, "first Begin")

	err = tx.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyOpen, err, "second Begin")
}

func TestTransactionPrefixesKeys(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tx, access, handle, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	n := make([]byte, 8)
	binary.BigEndian.PutUint64(n, 42)

	access.EXPECT().Put([]byte("Tkey"), []byte("value")).Times(1)
	access.EXPECT().Put([]byte("Tcount"), n).Times(1)
	access.EXPECT().Delete([]byte("Told")).Times(1)
	access.EXPECT().Get([]byte("Tcount")).Return(n, nil).Times(1)
	access.EXPECT().Has([]byte("Tkey")).Return(true, nil).Times(1)

	tx.Put(handle, []byte("key"), []byte("value"))
	tx.PutN(handle, []byte("count"), 42)
	tx.Delete(handle, []byte("old"))

	count, found := tx.GetN(handle, []byte("count"))
	assert.True(t, found, "count not found")
	assert.Equal(t, uint64(42), count, "wrong count")
	assert.True(t, tx.Has(handle, []byte("key")), "key not found")
}

func TestTransactionCommitAndAbort(t *testing.T) {
	tx, access, _, ctl := setupTestTransaction(t)
	defer ctl.Finish()

	access.EXPECT().Commit().Return(nil).Times(1)
	access.EXPECT().Abort().Times(1)

	assert.Nil(t, tx.Commit(), "commit")
	tx.Abort()
}
