// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transactionrecord - packed wire form of lock transactions
//
// every record is a Varint64 tag followed by its fields in struct
// order with the signature last; variable length fields carry a
// Varint64 length prefix
//
//	HashLock:    tag owner recipient assetId amount duration algorithm secret signature
//	SecretProof: tag signer algorithm secret proof signature
//
// secrets are packed with exactly the width of their algorithm
package transactionrecord
