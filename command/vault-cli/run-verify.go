// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/vaultd/verify"
)

func runVerify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	options := verify.Options{
		Iterations: c.Int("iterations"),
		Seed:       c.Int64("seed"),
	}

	reports := verify.RunAll(verify.SolvencyRules(), options)

	failed := 0
	for _, report := range reports {
		if !report.Passed() {
			failed += 1
		}
		if m.verbose {
			fmt.Fprintf(m.e, "%s\n", report)
		}
	}

	if err := printJson(m.w, reports); nil != err {
		return err
	}

	if 0 != failed {
		return fmt.Errorf("%d of %d rules failed", failed, len(reports))
	}
	return nil
}
