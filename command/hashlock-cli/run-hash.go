// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashlockd/lockhash"
)

func runHash(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	algorithm, err := checkAlgorithm(c.String("algorithm"))
	if nil != err {
		return err
	}

	preimage := c.String("preimage")
	if "" == preimage {
		return fmt.Errorf("preimage is required")
	}

	secret, err := lockhash.Hash(algorithm, []byte(preimage))
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Algorithm lockhash.Algorithm `json:"algorithm"`
		Width     int                `json:"width"`
		Secret    lockhash.Hash512   `json:"secret"`
	}{
		Algorithm: algorithm,
		Width:     algorithm.Width(),
		Secret:    secret,
	})
}
