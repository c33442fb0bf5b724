// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/util"
)

// Pack - HashLock
//
// amount and duration are not checked here, zero values are rejected
// during validation with a result code
func (lock *HashLock) Pack() (Packed, error) {
	if len(lock.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if nil == lock.Owner || nil == lock.Recipient {
		return nil, fault.ErrInvalidOwnerOrRecipient
	}
	err := checkSecret(lock.Algorithm, lock.Secret)
	if nil != err {
		return nil, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(HashLockTag))
	message = appendAccount(message, lock.Owner)
	message = appendAccount(message, lock.Recipient)
	message = appendUint64(message, lock.AssetId)
	message = appendUint64(message, lock.Amount)
	message = appendUint64(message, lock.Duration)
	message = appendUint64(message, uint64(lock.Algorithm))
	message = appendSecret(message, lock.Algorithm, lock.Secret)

	// Signature Last
	return appendBytes(message, lock.Signature), nil
}

// Pack - SecretProof
func (proof *SecretProof) Pack() (Packed, error) {
	if len(proof.Signature) > maxSignatureLength {
		return nil, fault.ErrSignatureTooLong
	}
	if len(proof.Proof) > maxProofLength {
		return nil, fault.ErrProofTooLong
	}
	if nil == proof.Signer {
		return nil, fault.ErrInvalidOwnerOrRecipient
	}
	err := checkSecret(proof.Algorithm, proof.Secret)
	if nil != err {
		return nil, err
	}

	// concatenate bytes
	message := util.ToVarint64(uint64(SecretProofTag))
	message = appendAccount(message, proof.Signer)
	message = appendUint64(message, uint64(proof.Algorithm))
	message = appendSecret(message, proof.Algorithm, proof.Secret)
	message = appendBytes(message, proof.Proof)

	// Signature Last
	return appendBytes(message, proof.Signature), nil
}

func checkSecret(algorithm lockhash.Algorithm, secret lockhash.Hash512) error {
	if !algorithm.IsValid() {
		return fault.ErrInvalidHashAlgorithm
	}
	if !secret.IsPaddedFor(algorithm) {
		return fault.ErrInvalidSecretPadding
	}
	return nil
}

// append a single field to a buffer
func appendBytes(buffer Packed, data []byte) Packed {
	l := util.ToVarint64(uint64(len(data)))
	buffer = append(buffer, l...)
	return append(buffer, data...)
}

// append an address to a buffer
func appendAccount(buffer Packed, address *account.Account) Packed {
	return appendBytes(buffer, address.Bytes())
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	valueBytes := util.ToVarint64(value)
	return append(buffer, valueBytes...)
}

// append only the significant bytes of a secret
func appendSecret(buffer Packed, algorithm lockhash.Algorithm, secret lockhash.Hash512) Packed {
	return appendBytes(buffer, secret[:algorithm.Width()])
}
