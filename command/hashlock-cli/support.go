// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

// output of the transaction building commands
type packedResult struct {
	Type      string           `json:"type"`
	Id        string           `json:"id"`
	Algorithm string           `json:"algorithm"`
	Secret    lockhash.Hash512 `json:"secret"`
	Packed    string           `json:"packed"`
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkAccount(name string, s string, testnet bool) (*account.Account, error) {
	if "" == s {
		return nil, fmt.Errorf("%s account is required", name)
	}
	a, err := account.FromBase58(s)
	if nil != err {
		return nil, fmt.Errorf("%s account: %q  error: %s", name, s, err)
	}
	if a.IsTesting() != testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	return a, nil
}

func checkAlgorithm(s string) (lockhash.Algorithm, error) {
	return lockhash.FromString(s)
}

func checkHex(name string, s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if nil != err {
		return nil, fmt.Errorf("%s: %q is not hex: %s", name, s, err)
	}
	return b, nil
}

// secret from either a pre-image or its hex digest
func checkSecret(algorithm lockhash.Algorithm, preimage string, secret string) (lockhash.Hash512, error) {
	switch {
	case "" != preimage && "" != secret:
		return lockhash.Hash512{}, fmt.Errorf("only one of preimage or secret can be given")
	case "" != preimage:
		return lockhash.Hash(algorithm, []byte(preimage))
	case "" != secret:
		var h lockhash.Hash512
		err := h.UnmarshalText([]byte(strings.TrimPrefix(secret, "0x")))
		if nil != err {
			return h, err
		}
		if !h.IsPaddedFor(algorithm) {
			return h, fault.ErrInvalidSecretPadding
		}
		return h, nil
	default:
		return lockhash.Hash512{}, fmt.Errorf("preimage or secret is required")
	}
}
