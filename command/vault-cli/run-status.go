// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/vault"
	"github.com/bitmark-inc/vaultd/vaultstore"
)

type statusReply struct {
	Vault   string            `json:"vault"`
	Owner   *account.Account  `json:"owner"`
	Ledger  vault.Ledger      `json:"ledger"`
	Solvent bool              `json:"solvent"`
	Last    *vaultstore.Entry `json:"last"`
}

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vaultAccount, err := checkVault(c.String("vault"), m.testnet)
	if nil != err {
		return err
	}

	record, err := m.store.Get(vaultAccount)
	if nil != err {
		return err
	}

	last, err := m.store.LastEntry(vaultAccount)
	if nil != err {
		return err
	}

	ledger := record.Ledger()
	reply := statusReply{
		Vault:   vaultAccount.String(),
		Owner:   record.OwnerAccount(m.testnet),
		Ledger:  ledger,
		Solvent: ledger.IsSolvent(),
		Last:    last,
	}
	return printJson(m.w, reply)
}
