// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the networks a node can follow
package chain

import (
	"github.com/bitmark-inc/hashlockd/fault"
)

// names of all chains
const (
	Bitmark = "bitmark"
	Testing = "testing"
	Local   = "local"
)

// chain name to whether its accounts carry the test flag
var testnet = map[string]bool{
	Bitmark: false,
	Testing: true,
	Local:   true,
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := testnet[name]
	return ok
}

// IsTesting - whether accounts on the chain must carry the test flag
func IsTesting(name string) (bool, error) {
	test, ok := testnet[name]
	if !ok {
		return false, fault.ErrInvalidChain
	}
	return test, nil
}
