// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/hashlockd/builders"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

func runProof(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	signer, err := checkAccount("signer", c.String("signer"), m.testnet)
	if nil != err {
		return err
	}

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

	signature, err := checkHex("signature", c.String("signature"))
	if nil != err {
		return err
	}

	tx, err := builders.NewSecretProofBuilder(signer).
		SetHashAlgorithm(algorithm).
		SetSecret(secret).
		SetProof([]byte(preimage)).
		SetSignature(signature).
		Build()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "proof: %#v\n", tx)
	}

	packed, err := tx.Pack()
	if nil != err {
		return err
	}

	return printJson(m.w, packedResult{
		Type:      "SecretProof",
		Id:        packed.MakeLink().String(),
		Algorithm: algorithm.String(),
		Secret:    secret,
		Packed:    fmt.Sprintf("%x", packed),
	})
}
