// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/fixtures"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vault"
	"github.com/bitmark-inc/vaultd/vaultrecord"
	"github.com/bitmark-inc/vaultd/vaultstore"
)

func TestDecodeRecord(t *testing.T) {
	owner, _ := account.NewAccount(fixtures.OwnerPublicKey, true)
	record, _ := vaultrecord.New(owner)
	record.SetLedger(vault.New(100, 150))
	packed := record.Pack()

	e := storage.Element{
		Key:   fixtures.VaultPublicKey1,
		Value: packed[:],
	}
	text, err := decodeElement("V", e, true)
	assert.Nil(t, err, "decode record")
	assert.True(t, strings.Contains(text, `"owner":"`+owner.String()+`"`), "owner missing: %s", text)
	assert.True(t, strings.Contains(text, `"sharesTotal":"100"`), "shares missing: %s", text)
	assert.True(t, strings.Contains(text, `"tokenTotal":"150"`), "tokens missing: %s", text)
}

func TestDecodeJournal(t *testing.T) {
	entry := vaultstore.Entry{
		Operation: vaultstore.OpWithdraw,
		Amount:    50,
		Result:    69,
		Ledger:    vault.New(80, 111),
	}

	key := make([]byte, len(fixtures.VaultPublicKey1)+8)
	copy(key, fixtures.VaultPublicKey1)
	binary.BigEndian.PutUint64(key[len(fixtures.VaultPublicKey1):], 4)

	e := storage.Element{
		Key:   key,
		Value: entry.Pack(),
	}
	text, err := decodeElement("J", e, false)
	assert.Nil(t, err, "decode journal")
	assert.True(t, strings.Contains(text, `"sequence":"4"`), "sequence missing: %s", text)
	assert.True(t, strings.Contains(text, `"operation":"withdraw"`), "operation missing: %s", text)
	assert.True(t, strings.Contains(text, `"result":"69"`), "result missing: %s", text)
}

func TestDecodeCount(t *testing.T) {
	e := storage.Element{
		Key:   fixtures.VaultPublicKey2,
		Value: []byte{0, 0, 0, 0, 0, 0, 0, 6},
	}
	text, err := decodeElement("N", e, false)
	assert.Nil(t, err, "decode count")
	assert.True(t, strings.Contains(text, `"next":"6"`), "next missing: %s", text)
}

func TestDecodeErrors(t *testing.T) {
	_, err := decodeElement("V", storage.Element{Key: fixtures.VaultPublicKey1, Value: []byte{1, 2}}, false)
	assert.Equal(t, fault.ErrRecordLength, err, "short record")

	_, err = decodeElement("V", storage.Element{Key: []byte{1}, Value: nil}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")

	_, err = decodeElement("N", storage.Element{Key: fixtures.VaultPublicKey1, Value: []byte{1}}, false)
	assert.Equal(t, fault.ErrRecordLength, err, "short count")

	_, err = decodeElement("J", storage.Element{Key: []byte{1, 2, 3}, Value: nil}, false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short journal key")

	_, err = decodeElement("Z", storage.Element{}, false)
	assert.NotNil(t, err, "unknown tag")
}

func TestPoolForTag(t *testing.T) {
	assert.Nil(t, poolForTag("?"), "unknown tag")
}
