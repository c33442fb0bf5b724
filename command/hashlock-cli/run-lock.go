// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashlockd/builders"
)

func runLock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount("owner", c.String("owner"), m.testnet)
	if nil != err {
		return err
	}
	recipient, err := checkAccount("recipient", c.String("recipient"), m.testnet)
	if nil != err {
		return err
	}

	quantity := c.Uint64("quantity")
	if 0 == quantity {
		return fmt.Errorf("quantity must be positive")
	}
	duration := c.Uint64("duration")
	if 0 == duration {
		return fmt.Errorf("duration must be positive")
	}

	algorithm, err := checkAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}
	secret, err := checkSecret(algorithm, c.String("preimage"), c.String("secret"))
	if nil != err {
		return err
	}
	signature, err := checkHex("signature", c.String("signature"))
	if nil != err {
		return err
	}

	tx, err := builders.NewHashLockBuilder(owner).
		SetRecipient(recipient).
		SetMosaic(c.Uint64("asset"), quantity).
		SetDuration(duration).
		SetAlgorithm(algorithm).
		SetHash(secret).
		SetSignature(signature).
		Build()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "lock: %#v\n", tx)
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}

	return printJson(m.w, packedResult{
		Type:      "HashLock",
		Id:        packed.MakeLink().String(),
		Algorithm: algorithm.String(),
		Secret:    secret,
		Packed:    fmt.Sprintf("%x", packed),
	})
}
