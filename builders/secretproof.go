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

// SecretProofBuilder - builds a SecretProof for one signer
type SecretProofBuilder struct {
	signer    *account.Account
	algorithm lockhash.Algorithm
	secret    lockhash.Hash512
	proof     transactionrecord.Proof
	signature transactionrecord.Signature

	hasSecret bool
	hasProof  bool
}

// NewSecretProofBuilder - start a proof by signer, sha3 unless changed
func NewSecretProofBuilder(signer *account.Account) *SecretProofBuilder {
	return &SecretProofBuilder{
		signer:    signer,
		algorithm: lockhash.Sha3,
	}
}

// SetHashAlgorithm - algorithm of the lock being opened
func (b *SecretProofBuilder) SetHashAlgorithm(algorithm lockhash.Algorithm) *SecretProofBuilder {
	b.algorithm = algorithm
	return b
}

// SetSecret - identifies the lock
func (b *SecretProofBuilder) SetSecret(secret lockhash.Hash512) *SecretProofBuilder {
	b.secret = secret
	b.hasSecret = true
	return b
}

// SetProof - the pre-image
func (b *SecretProofBuilder) SetProof(proof []byte) *SecretProofBuilder {
	b.proof = append(transactionrecord.Proof{}, proof...)
	b.hasProof = true
	return b
}

// SetSignature - opaque signature bytes
func (b *SecretProofBuilder) SetSignature(signature []byte) *SecretProofBuilder {
	b.signature = append(transactionrecord.Signature{}, signature...)
	return b
}

// Build - the transaction, or an error for a missing field
func (b *SecretProofBuilder) Build() (*transactionrecord.SecretProof, error) {
	if nil == b.signer || !b.hasSecret || !b.hasProof {
		return nil, fault.ErrMissingBuilderField
	}
	if !b.algorithm.IsValid() {
		return nil, fault.ErrInvalidHashAlgorithm
	}
	return &transactionrecord.SecretProof{
		Signer:    b.signer,
		Algorithm: b.algorithm,
		Secret:    b.secret,
		Proof:     b.proof,
		Signature: b.signature,
	}, nil
}

// Pack - build then pack
func (b *SecretProofBuilder) Pack() (transactionrecord.Packed, error) {
	tx, err := b.Build()
	if nil != err {
		return nil, err
	}
	return tx.Pack()
}
