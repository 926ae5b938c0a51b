// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/account"
	"github.com/bitmark-inc/vaultd/fault"
	"github.com/bitmark-inc/vaultd/vaultstore"
)

type operationReply struct {
	Vault     string               `json:"vault"`
	Operation vaultstore.Operation `json:"operation"`
	*vaultstore.Result
}

// one action for each of the ledger operations
func runLedgerOperation(op vaultstore.Operation) cli.ActionFunc {
	return func(c *cli.Context) error {

		m := c.App.Metadata["config"].(*metadata)

		vault, err := checkVault(c.String("vault"), m.testnet)
		if nil != err {
			return err
		}

		amount, err := checkAmount(c.String("amount"))
		if nil != err {
			return err
		}

		if m.verbose {
			fmt.Fprintf(m.e, "vault: %s\n", vault)
			fmt.Fprintf(m.e, "%s: %d\n", op, amount)
		}

		var apply func(*account.Account, uint64) (*vaultstore.Result, error)
		switch op {
		case vaultstore.OpDeposit:
			apply = m.store.Deposit
		case vaultstore.OpWithdraw:
			apply = m.store.Withdraw
		case vaultstore.OpReward:
			apply = m.store.Reward
		case vaultstore.OpSlash:
			apply = m.store.Slash
		default:
			return fault.ErrUnknownOperation
		}

		result, err := apply(vault, amount)
		if nil != err {
			return err
		}

		reply := operationReply{
			Vault:     vault.String(),
			Operation: op,
			Result:    result,
		}
		return printJson(m.w, reply)
	}
}
