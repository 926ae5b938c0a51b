// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/vault"
)

// byte sizes for various fields
const (
	OwnerSize       = 32 // ed25519 public key of the vault owner
	SharesTotalSize = 8  // little endian
	TokenTotalSize  = 8  // little endian
)

// offsets of the fields
const (
	ownerOffset       = 0
	sharesTotalOffset = ownerOffset + OwnerSize
	tokenTotalOffset  = sharesTotalOffset + SharesTotalSize

	// to set size of record array
	TotalSize = tokenTotalOffset + TokenTotalSize
)

// PackedRecord - the stored form of a vault
type PackedRecord [TotalSize]byte

// Record - the unpacked vault state
type Record struct {
	Owner       [OwnerSize]byte `json:"-"`
	SharesTotal uint64          `json:"sharesTotal,string"`
	TokenTotal  uint64          `json:"tokenTotal,string"`
}

// New - an empty vault belonging to owner
func New(owner *account.Account) (*Record, error) {
	if OwnerSize != len(owner.PublicKeyBytes()) {
		return nil, fault.ErrInvalidKeyLength
	}
	record := &Record{}
	copy(record.Owner[:], owner.PublicKeyBytes())
	return record, nil
}

// Unpack - decode a stored vault
func Unpack(buffer []byte) (*Record, error) {
	if TotalSize != len(buffer) {
		return nil, fault.ErrRecordLength
	}

	record := &Record{}
	copy(record.Owner[:], buffer[ownerOffset:sharesTotalOffset])
	record.SharesTotal = binary.LittleEndian.Uint64(buffer[sharesTotalOffset:tokenTotalOffset])
	record.TokenTotal = binary.LittleEndian.Uint64(buffer[tokenTotalOffset:])

	return record, nil
}

// Pack - encode a vault for storage
func (record *Record) Pack() PackedRecord {
	buffer := PackedRecord{}

	copy(buffer[ownerOffset:], record.Owner[:])
	binary.LittleEndian.PutUint64(buffer[sharesTotalOffset:], record.SharesTotal)
	binary.LittleEndian.PutUint64(buffer[tokenTotalOffset:], record.TokenTotal)

	return buffer
}

// OwnerAccount - the owner as an account on the given network
func (record *Record) OwnerAccount(test bool) *account.Account {
	owner, _ := account.NewAccount(record.Owner[:], test)
	return owner
}

// Ledger - the counters as a ledger value
func (record *Record) Ledger() vault.Ledger {
	return vault.New(record.SharesTotal, record.TokenTotal)
}

// SetLedger - write back the counters of a ledger
func (record *Record) SetLedger(ledger vault.Ledger) {
	record.SharesTotal = ledger.SharesTotal
	record.TokenTotal = ledger.TokenTotal
}
