// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package builders - assemble lock transactions from typed setters
//
//	tx, err := builders.NewHashLockBuilder(owner).
//	    SetMosaic(assetId, amount).
//	    SetDuration(100).
//	    SetHash(secret).
//	    SetRecipient(recipient).
//	    Build()
//
// setters only record values, Build checks that every required
// field was set and Pack returns the wire form
package builders
