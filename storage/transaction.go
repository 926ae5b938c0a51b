// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - atomic group of pool writes
//
// reads through the transaction see its own pending writes, a key
// with a pending Delete reads as absent
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

// TransactionImpl - a transaction over a single batched database
type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

// Begin - open the transaction
func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

// Put - queue a key/value pair
func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// PutN - queue a key/uint64 pair
func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	handle.putN(key, value)
}

// Delete - queue removal of a key
func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read a value including pending writes
func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

// GetN - read a uint64 including pending writes
func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

// Has - check a key including pending writes
func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

// Commit - write all pending changes atomically
func (t *TransactionImpl) Commit() error {
	return t.access.Commit()
}

// Abort - discard all pending changes
func (t *TransactionImpl) Abort() {
	t.access.Abort()
}
