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

	"github.com/bitmark-inc/hashlockd/chain"
)

type metadata struct {
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "hashlock-cli"
	app.Usage = "build and inspect hash lock transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Bitmark,
			Usage: " accounts belong to `NETWORK` [bitmark|testing|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "lock",
			Usage:     "build a hash lock transaction",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*account funding the lock `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "recipient, r",
					Value: "",
					Usage: "*account paid by a valid proof `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "asset, a",
					Value: 0,
					Usage: "*asset identifier `ID`",
				},
				cli.Uint64Flag{
					Name:  "quantity, q",
					Value: 0,
					Usage: "*amount to lock `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "duration, d",
					Value: 0,
					Usage: "*lock lifetime in blocks `BLOCKS`",
				},
				cli.StringFlag{
					Name:  "algorithm, g",
					Value: "sha3",
					Usage: " hash algorithm `NAME` [sha3|keccak|hash160|hash256]",
				},
				cli.StringFlag{
					Name:  "preimage, p",
					Value: "",
					Usage: "+pre-image to hash for the secret `STRING`",
				},
				cli.StringFlag{
					Name:  "secret, s",
					Value: "",
					Usage: "+already hashed secret `HEX`",
				},
				cli.StringFlag{
					Name:  "signature",
					Value: "",
					Usage: " opaque signature `HEX`",
				},
			},
			Action: runLock,
		},
		{
			Name:      "proof",
			Usage:     "build a secret proof transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "signer, s",
					Value: "",
					Usage: "*account submitting the proof `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "algorithm, g",
					Value: "sha3",
					Usage: " hash algorithm `NAME` [sha3|keccak|hash160|hash256]",
				},
				cli.StringFlag{
					Name:  "preimage, p",
					Value: "",
					Usage: "*pre-image revealed by the proof `STRING`",
				},
				cli.StringFlag{
					Name:  "signature",
					Value: "",
					Usage: " opaque signature `HEX`",
				},
			},
			Action: runProof,
		},
		{
			Name:      "hash",
			Usage:     "compute the secret of a pre-image",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "algorithm, g",
					Value: "sha3",
					Usage: " hash algorithm `NAME` [sha3|keccak|hash160|hash256]",
				},
				cli.StringFlag{
					Name:  "preimage, p",
					Value: "",
					Usage: "*pre-image `STRING`",
				},
			},
			Action: runHash,
		},
		{
			Name:      "decode",
			Usage:     "decode a packed transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "transaction, t",
					Value: "",
					Usage: "*packed transaction `HEX`",
				},
			},
			Action: runDecode,
		},
	}

	app.Before = func(c *cli.Context) error {

		testnet, err := chain.IsTesting(c.GlobalString("network"))
		if nil != err {
			return err
		}

		app.Metadata = map[string]interface{}{
			"config": &metadata{
				testnet: testnet,
				verbose: c.GlobalBool("verbose"),
				e:       app.ErrWriter,
				w:       app.Writer,
			},
		}
		return nil
	}

	return app
}
