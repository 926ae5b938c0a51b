// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vaultrecord"
	"github.com/bitmark-inc/vaultd/vaultstore"
)

type decodedRecord struct {
	Vault *account.Account `json:"vault"`
	Owner *account.Account `json:"owner"`
	*vaultrecord.Record
}

type decodedEntry struct {
	Vault *account.Account `json:"vault"`
	*vaultstore.Entry
}

type decodedCount struct {
	Vault *account.Account `json:"vault"`
	Next  uint64           `json:"next,string"`
}

// render one pool element as JSON
func decodeElement(tag string, e storage.Element, testnet bool) (string, error) {

	var item interface{}

	switch tag {

	case "V":
		vault, err := account.NewAccount(e.Key, testnet)
		if nil != err {
			return "", err
		}
		record, err := vaultrecord.Unpack(e.Value)
		if nil != err {
			return "", err
		}
		item = decodedRecord{
			Vault:  vault,
			Owner:  record.OwnerAccount(testnet),
			Record: record,
		}

	case "N":
		vault, err := account.NewAccount(e.Key, testnet)
		if nil != err {
			return "", err
		}
		if 8 != len(e.Value) {
			return "", fault.ErrRecordLength
		}
		item = decodedCount{
			Vault: vault,
			Next:  binary.BigEndian.Uint64(e.Value),
		}

	case "J":
		n := len(e.Key) - 8
		if n <= 0 {
			return "", fault.ErrInvalidKeyLength
		}
		vault, err := account.NewAccount(e.Key[:n], testnet)
		if nil != err {
			return "", err
		}
		entry, err := vaultstore.UnpackEntry(binary.BigEndian.Uint64(e.Key[n:]), e.Value)
		if nil != err {
			return "", err
		}
		item = decodedEntry{
			Vault: vault,
			Entry: entry,
		}

	default:
		return "", fmt.Errorf("no decoder for tag: %q", tag)
	}

	b, err := json.Marshal(item)
	if nil != err {
		return "", err
	}
	return string(b), nil
}
