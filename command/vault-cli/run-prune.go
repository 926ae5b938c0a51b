// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"
)

type pruneReply struct {
	Vault   string `json:"vault"`
	Before  uint64 `json:"before,string"`
	Removed int    `json:"removed"`
}

func runPrune(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vault, err := checkVault(c.String("vault"), m.testnet)
	if nil != err {
		return err
	}

	before, err := strconv.ParseUint(c.String("before"), 10, 64)
	if nil != err {
		return fmt.Errorf("invalid before: %q", c.String("before"))
	}

	if m.verbose {
		fmt.Fprintf(m.e, "vault: %s\n", vault)
		fmt.Fprintf(m.e, "before: %d\n", before)
	}

	removed, err := m.store.Prune(vault, before)
	if nil != err {
		return err
	}

	reply := pruneReply{
		Vault:   vault.String(),
		Before:  before,
		Removed: removed,
	}
	return printJson(m.w, reply)
}
