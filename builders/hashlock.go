// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package builders

import (
	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

// HashLockBuilder - builds a HashLock for one owner
type HashLockBuilder struct {
	owner     *account.Account
	recipient *account.Account
	assetId   uint64
	amount    uint64
	duration  uint64
	algorithm lockhash.Algorithm
	secret    lockhash.Hash512
	signature transactionrecord.Signature

	hasMosaic bool
	hasHash   bool
}

// NewHashLockBuilder - start a lock paid by owner, sha3 unless changed
func NewHashLockBuilder(owner *account.Account) *HashLockBuilder {
	return &HashLockBuilder{
		owner:     owner,
		algorithm: lockhash.Sha3,
	}
}

// SetMosaic - the locked asset and amount
func (b *HashLockBuilder) SetMosaic(assetId uint64, amount uint64) *HashLockBuilder {
	b.assetId = assetId
	b.amount = amount
	b.hasMosaic = true
	return b
}

// SetDuration - blocks until the lock expires
func (b *HashLockBuilder) SetDuration(duration uint64) *HashLockBuilder {
	b.duration = duration
	return b
}

// SetHash - the secret guarding the lock
func (b *HashLockBuilder) SetHash(secret lockhash.Hash512) *HashLockBuilder {
	b.secret = secret
	b.hasHash = true
	return b
}

// SetAlgorithm - digest used for the secret
func (b *HashLockBuilder) SetAlgorithm(algorithm lockhash.Algorithm) *HashLockBuilder {
	b.algorithm = algorithm
	return b
}

// SetRecipient - account credited when the lock is proved
func (b *HashLockBuilder) SetRecipient(recipient *account.Account) *HashLockBuilder {
	b.recipient = recipient
	return b
}

// SetSignature - opaque signature bytes
func (b *HashLockBuilder) SetSignature(signature []byte) *HashLockBuilder {
	b.signature = append(transactionrecord.Signature{}, signature...)
	return b
}

// Build - the transaction, or an error for a missing field
func (b *HashLockBuilder) Build() (*transactionrecord.HashLock, error) {
	if nil == b.owner || nil == b.recipient || !b.hasMosaic || !b.hasHash {
		return nil, fault.ErrMissingBuilderField
	}
	if !b.algorithm.IsValid() {
		return nil, fault.ErrInvalidHashAlgorithm
	}
	return &transactionrecord.HashLock{
		Owner:     b.owner,
		Recipient: b.recipient,
		AssetId:   b.assetId,
		Amount:    b.amount,
		Duration:  b.duration,
		Algorithm: b.algorithm,
		Secret:    b.secret,
		Signature: b.signature,
	}, nil
}

// Pack - build then pack
func (b *HashLockBuilder) Pack() (transactionrecord.Packed, error) {
	tx, err := b.Build()
	if nil != err {
		return nil, err
	}
	return tx.Pack()
}
