// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	text := c.String("transaction")
	if "" == text {
		return fmt.Errorf("transaction is required")
	}
	b, err := checkHex("transaction", text)
	if nil != err {
		return err
	}

	packed := transactionrecord.Packed(b)
	tx, n, err := packed.Unpack(m.testnet)
	if nil != err {
		return err
	}
	if n != len(packed) {
		return fmt.Errorf("transaction has %d trailing bytes", len(packed)-n)
	}

	name, _ := transactionrecord.RecordName(tx)
	return printJson(m.w, struct {
		Type        string                        `json:"type"`
		Id          transactionrecord.Link        `json:"id"`
		Transaction transactionrecord.Transaction `json:"transaction"`
	}{
		Type:        name,
		Id:          packed.MakeLink(),
		Transaction: tx,
	})
}
