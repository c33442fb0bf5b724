// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - apply blocks of packed transactions to the lock
// cache and balance ledger
//
// every transaction passes through the same steps:
//
//	unpack -> publish notifications -> validate (fail fast) -> observe
//
// validation reads the block's deltas so that a transaction sees the
// effects of the ones before it in the same block.  After the last
// transaction, locks expiring at the block height are refunded to
// their owners and both deltas are committed together with the
// optional persistent store.
//
// ApplyBlock re-validates a received block: any failure discards the
// whole block.  BuildBlock assembles a block from candidates: failing
// candidates are dropped and the rest committed.  Precheck runs the
// admission checks for independent transactions concurrently against
// one committed snapshot without changing anything.
package processor
