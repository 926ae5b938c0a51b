// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/rand"
	"encoding/hex"

	"golang.org/x/crypto/ed25519"
)

// KeyPair - a fresh identity and its private key
type KeyPair struct {
	Account    *Account
	PrivateKey ed25519.PrivateKey
}

// RawKeyPair - text version of the keys
type RawKeyPair struct {
	Account    string `json:"account"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// NewKeyPair - generate a new identity from secure random data
func NewKeyPair(test bool) (*KeyPair, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	account, err := NewAccount(publicKey, test)
	if nil != err {
		return nil, err
	}
	return &KeyPair{
		Account:    account,
		PrivateKey: privateKey,
	}, nil
}

// Raw - printable form of the key pair
func (keyPair *KeyPair) Raw() *RawKeyPair {
	return &RawKeyPair{
		Account:    keyPair.Account.String(),
		PublicKey:  hex.EncodeToString(keyPair.Account.PublicKeyBytes()),
		PrivateKey: hex.EncodeToString(keyPair.PrivateKey),
	}
}
