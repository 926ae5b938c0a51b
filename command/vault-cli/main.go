// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/vaultd/configuration"
	"github.com/bitmark-inc/vaultd/storage"
	"github.com/bitmark-inc/vaultd/vaultstore"
)

type metadata struct {
	file    string
	config  *configuration.Configuration
	store   *vaultstore.Store
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "vault-cli"
	app.Usage = "proportional share vault ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config, c",
			Value: "vault.conf",
			Usage: " configuration `FILE`",
		},
	}

	vaultFlag := cli.StringFlag{
		Name:  "vault, V",
		Value: "",
		Usage: "*vault `ACCOUNT`",
	}
	amountFlag := cli.StringFlag{
		Name:  "amount, a",
		Value: "",
		Usage: "*`AMOUNT` of tokens or shares",
	}

	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate an account key pair for a vault or owner",
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create an empty vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				vaultFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*owner `ACCOUNT`",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "deposit",
			Usage:     "deposit tokens and mint shares",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{vaultFlag, amountFlag},
			Action:    runLedgerOperation(vaultstore.OpDeposit),
		},
		{
			Name:      "withdraw",
			Usage:     "burn shares and release tokens",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{vaultFlag, amountFlag},
			Action:    runLedgerOperation(vaultstore.OpWithdraw),
		},
		{
			Name:      "reward",
			Usage:     "add tokens without minting shares",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{vaultFlag, amountFlag},
			Action:    runLedgerOperation(vaultstore.OpReward),
		},
		{
			Name:      "slash",
			Usage:     "remove tokens without burning shares",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{vaultFlag, amountFlag},
			Action:    runLedgerOperation(vaultstore.OpSlash),
		},
		{
			Name:      "status",
			Usage:     "display the totals of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{vaultFlag},
			Action:    runStatus,
		},
		{
			Name:      "history",
			Usage:     "list journal entries of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				vaultFlag,
				cli.StringFlag{
					Name:  "start, s",
					Value: "0",
					Usage: " first `SEQUENCE` to list",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum `COUNT` of entries",
				},
			},
			Action: runHistory,
		},
		{
			Name:      "prune",
			Usage:     "remove old journal entries of a vault",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				vaultFlag,
				cli.StringFlag{
					Name:  "before, b",
					Value: "",
					Usage: "*remove entries below `SEQUENCE`",
				},
			},
			Action: runPrune,
		},
		{
			Name:  "verify",
			Usage: "check the solvency rules against random ledgers",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "iterations, i",
					Value: 10000,
					Usage: " `COUNT` of executions per rule",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 1,
					Usage: " random `SEED`",
				},
			},
			Action: runVerify,
		},
		{
			Name:  "version",
			Usage: "display vault-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// to suppress reading config file if certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "verify":
			c.App.Metadata["config"] = &metadata{
				verbose: verbose,
				e:       e,
				w:       w,
			}
			return nil
		}

		file, err := checkConfigFile(c.GlobalString("config"))
		if nil != err {
			return err
		}

		if verbose {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		config, err := configuration.GetConfiguration(file)
		if nil != err {
			return err
		}

		m := &metadata{
			file:    file,
			config:  config,
			testnet: config.IsTesting(),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		c.App.Metadata["config"] = m

		// generate only needs the network
		if "generate" == command {
			return nil
		}

		if err = logger.Initialise(config.Logging); nil != err {
			return err
		}

		readOnly := storage.ReadWrite
		if "status" == command || "history" == command {
			readOnly = storage.ReadOnly
		}
		if verbose {
			fmt.Fprintf(e, "database: %s  read only: %t\n", config.Database.Name, readOnly)
		}

		if err = storage.Initialise(config.Database.Name, readOnly); nil != err {
			logger.Finalise()
			return err
		}

		m.store = vaultstore.New(
			logger.New("vaultstore"),
			vaultstore.DefaultPools(),
			storage.NewDBTransaction,
			vaultstore.Options{
				Testing:             config.IsTesting(),
				AllowInsolventSlash: config.AllowInsolventSlash,
			},
		)
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok && nil != m.store {
			storage.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
