// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - the networks a vault database can belong to
package chain

// names of all chains
const (
	Vault   = "vault"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Vault, Testing, Local:
		return true
	default:
		return false
	}
}

// IsTesting - true if accounts on the chain carry the test bit
func IsTesting(name string) bool {
	return Vault != name
}
