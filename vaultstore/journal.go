// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vaultstore

import (
	"encoding/binary"

	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/vault"
)

// Operation - the kind of change recorded in the journal
type Operation byte

// recorded operations
const (
	OpCreate   Operation = 0x00
	OpDeposit  Operation = 0x01
	OpWithdraw Operation = 0x02
	OpReward   Operation = 0x03
	OpSlash    Operation = 0x04
)

var operationNames = map[Operation]string{
	OpCreate:   "create",
	OpDeposit:  "deposit",
	OpWithdraw: "withdraw",
	OpReward:   "reward",
	OpSlash:    "slash",
}

// String - name of the operation
func (op Operation) String() string {
	if name, ok := operationNames[op]; ok {
		return name
	}
	return "unknown"
}

// MarshalText - operation name for JSON
func (op Operation) MarshalText() ([]byte, error) {
	if _, ok := operationNames[op]; !ok {
		return nil, fault.ErrUnknownOperation
	}
	return []byte(op.String()), nil
}

// byte sizes of the journal fields, all integers big endian
const (
	operationSize = 1
	amountSize    = 8
	resultSize    = 8
	sharesSize    = 8
	tokensSize    = 8

	entrySize = operationSize + amountSize + resultSize + sharesSize + tokensSize
)

// Entry - one applied operation
type Entry struct {
	Sequence  uint64       `json:"sequence,string"`
	Operation Operation    `json:"operation"`
	Amount    uint64       `json:"amount,string"`
	Result    uint64       `json:"result,string"`
	Ledger    vault.Ledger `json:"ledger"`
}

// Pack - stored form of an entry, the sequence is part of the key
func (entry *Entry) Pack() []byte {
	buffer := make([]byte, entrySize)
	buffer[0] = byte(entry.Operation)
	n := operationSize
	binary.BigEndian.PutUint64(buffer[n:], entry.Amount)
	n += amountSize
	binary.BigEndian.PutUint64(buffer[n:], entry.Result)
	n += resultSize
	binary.BigEndian.PutUint64(buffer[n:], entry.Ledger.SharesTotal)
	n += sharesSize
	binary.BigEndian.PutUint64(buffer[n:], entry.Ledger.TokenTotal)
	return buffer
}

// UnpackEntry - decode a stored entry
func UnpackEntry(sequence uint64, buffer []byte) (*Entry, error) {
	if entrySize != len(buffer) {
		return nil, fault.ErrJournalEntryLength
	}

	op := Operation(buffer[0])
	if _, ok := operationNames[op]; !ok {
		return nil, fault.ErrUnknownOperation
	}

	n := operationSize
	amount := binary.BigEndian.Uint64(buffer[n:])
	n += amountSize
	result := binary.BigEndian.Uint64(buffer[n:])
	n += resultSize
	shares := binary.BigEndian.Uint64(buffer[n:])
	n += sharesSize
	tokens := binary.BigEndian.Uint64(buffer[n:])

	return &Entry{
		Sequence:  sequence,
		Operation: op,
		Amount:    amount,
		Result:    result,
		Ledger:    vault.New(shares, tokens),
	}, nil
}

// journal key: vault ++ sequence
func journalKey(vaultKey []byte, sequence uint64) []byte {
	key := make([]byte, len(vaultKey)+8)
	copy(key, vaultKey)
	binary.BigEndian.PutUint64(key[len(vaultKey):], sequence)
	return key
}
