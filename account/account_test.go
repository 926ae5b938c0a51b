// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

type accountTest struct {
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

// valid accounts
var testAccount = []accountTest{
	{
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

type invalid struct {
	str string
	err error
}

// invalid accounts
var testInvalidAccountFromBase58 = []invalid{
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"WjbRFkA9dhmMKnKTuufZ1sVD4E4H1NRnsmwjMKNHHRSCvDm5bXPV", fault.ErrInvalidKeyType},    // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.ErrNotPublicKey},        // private key
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.ErrNotPublicKey},         // truncated
	{"nF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj", fault.ErrNotPublicKey},         // truncated
	{"", fault.ErrCannotDecodeAccount},
}

func TestValid(t *testing.T) {
	for index, test := range testAccount {
		testnet := 0x00
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4 | 0x01 | testnet)}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.AccountFromBytes(buffer)
		if !assert.Nil(t, err, "%d: create account from bytes", index) {
			continue
		}

		assert.Equal(t, buffer, acc.Bytes(), "%d: wrong bytes", index)
		assert.Equal(t, test.zero, acc.IsZero(), "%d: wrong zero status", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: wrong base58", index)
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: wrong network", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: wrong key type", index)
		assert.Equal(t, test.publicKey, acc.PublicKeyBytes(), "%d: wrong public key", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: wrong base58", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: JSON round trip", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %q", index, test.str)
	}
}

func TestInvalidBytes(t *testing.T) {
	key := decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")

	_, err := account.AccountFromBytes(nil)
	assert.Equal(t, fault.ErrNotPublicKey, err, "empty buffer")

	_, err = account.AccountFromBytes(append([]byte{0x10}, key...))
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key variant")

	_, err = account.AccountFromBytes(append([]byte{0x01}, key...))
	assert.Equal(t, fault.ErrInvalidKeyType, err, "nothing algorithm")

	_, err = account.AccountFromBytes(append([]byte{0x11}, key[:31]...))
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")
}

func TestAccountForNetwork(t *testing.T) {
	live := testAccount[0].base58Account
	test := testAccount[1].base58Account

	acc, err := account.AccountForNetwork(live, false)
	assert.Nil(t, err, "live account on live network")
	assert.False(t, acc.IsTesting(), "live account marked as test")

	_, err = account.AccountForNetwork(live, true)
	assert.Equal(t, fault.ErrWrongNetworkForAccount, err, "live account on test network")

	_, err = account.AccountForNetwork(test, false)
	assert.Equal(t, fault.ErrWrongNetworkForAccount, err, "test account on live network")
}

func TestNewKeyPair(t *testing.T) {
	keyPair, err := account.NewKeyPair(true)
	if !assert.Nil(t, err, "generate") {
		return
	}
	assert.True(t, keyPair.Account.IsTesting(), "not a test account")
	assert.Equal(t, 32, len(keyPair.Account.PublicKeyBytes()), "wrong public key size")
	assert.True(t, bytes.Equal(keyPair.PrivateKey[32:], keyPair.Account.PublicKeyBytes()), "private key does not hold the public key")

	raw := keyPair.Raw()
	decoded, err := account.AccountFromBase58(raw.Account)
	assert.Nil(t, err, "decode generated account")
	assert.Equal(t, keyPair.Account, decoded, "generated account does not round trip")
	assert.Equal(t, 64, len(raw.PublicKey), "wrong hex public key length")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}
