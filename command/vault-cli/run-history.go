// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/vaultstore"
)

type historyReply struct {
	Vault   string              `json:"vault"`
	Entries []*vaultstore.Entry `json:"entries"`
	Next    uint64              `json:"next,string"`
}

func runHistory(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vault, err := checkVault(c.String("vault"), m.testnet)
	if nil != err {
		return err
	}

	start, err := strconv.ParseUint(c.String("start"), 10, 64)
	if nil != err {
		return fmt.Errorf("invalid start: %q", c.String("start"))
	}

	count := c.Int("count")

	if m.verbose {
		fmt.Fprintf(m.e, "vault: %s\n", vault)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	entries, err := m.store.History(vault, start, count)
	if nil != err {
		return err
	}

	next := start
	if n := len(entries); n > 0 {
		next = entries[n-1].Sequence + 1
	}

	reply := historyReply{
		Vault:   vault.String(),
		Entries: entries,
		Next:    next,
	}
	return printJson(m.w, reply)
}
