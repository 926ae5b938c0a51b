// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strconv"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
)

var (
	ErrRequiredAmount     = fault.InvalidError("amount is required")
	ErrRequiredConfigFile = fault.InvalidError("config file is required")
	ErrRequiredOwner      = fault.InvalidError("owner is required")
	ErrRequiredVault      = fault.InvalidError("vault is required")
)

// config is required
func checkConfigFile(file string) (string, error) {
	if "" == file {
		return "", ErrRequiredConfigFile
	}

	file = os.ExpandEnv(file)
	return file, nil
}

// vault account must exist on the configured network
func checkVault(vault string, testnet bool) (*account.Account, error) {
	if "" == vault {
		return nil, ErrRequiredVault
	}
	return account.AccountForNetwork(vault, testnet)
}

func checkOwner(owner string, testnet bool) (*account.Account, error) {
	if "" == owner {
		return nil, ErrRequiredOwner
	}
	return account.AccountForNetwork(owner, testnet)
}

// zero is passed through, the ledger decides whether it is acceptable
func checkAmount(amount string) (uint64, error) {
	if "" == amount {
		return 0, ErrRequiredAmount
	}
	n, err := strconv.ParseUint(amount, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidAmount
	}
	return n, nil
}
