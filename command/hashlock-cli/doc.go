// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// hashlock-cli - build and inspect hash lock transactions
//
// Build a lock of 100 units of asset 1 that expires after 50 blocks:
//
//	hashlock-cli -n testing lock -o OWNER -r RECIPIENT -a 1 -q 100 -d 50 -p 'my pre-image'
//
// Build the matching proof:
//
//	hashlock-cli -n testing proof -s SIGNER -p 'my pre-image'
//
// Decode a packed transaction:
//
//	hashlock-cli -n testing decode -t HEX
package main
