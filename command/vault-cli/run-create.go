// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	vault, err := checkVault(c.String("vault"), m.testnet)
	if nil != err {
		return err
	}

	owner, err := checkOwner(c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "vault: %s\n", vault)
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	result, err := m.store.Create(vault, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, result)
}
