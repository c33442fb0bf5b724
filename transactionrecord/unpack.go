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

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	switch tx := result.(type) {
//	case *transactionrecord.HashLock:
func (record Packed) Unpack(testnet bool) (t Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			e = fault.ErrNotTransactionPack
		}
	}()

	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}

unpack_switch:
	switch TagType(recordType) {

	case HashLockTag:

		// owner and recipient public keys
		owner, ownerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += ownerLength

		recipient, recipientLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += recipientLength

		// asset, amount and duration
		assetId, assetIdLength := util.FromVarint64(record[n:])
		if 0 == assetIdLength {
			break unpack_switch
		}
		n += assetIdLength

		amount, amountLength := util.FromVarint64(record[n:])
		if 0 == amountLength {
			break unpack_switch
		}
		n += amountLength

		duration, durationLength := util.FromVarint64(record[n:])
		if 0 == durationLength {
			break unpack_switch
		}
		n += durationLength

		// algorithm and secret
		algorithm, secret, secretLength, err := unpackSecret(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += secretLength

		// signature is remainder of record (can be zero length)
		signature, signatureLength := unpackBytes(record[n:], 0, maxSignatureLength)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &HashLock{
			Owner:     owner,
			Recipient: recipient,
			AssetId:   assetId,
			Amount:    amount,
			Duration:  duration,
			Algorithm: algorithm,
			Secret:    secret,
			Signature: signature,
		}
		return r, n, nil

	case SecretProofTag:

		// signer public key
		signer, signerLength, err := unpackAccount(record[n:], testnet)
		if nil != err {
			return nil, 0, err
		}
		n += signerLength

		// algorithm and secret
		algorithm, secret, secretLength, err := unpackSecret(record[n:])
		if nil != err {
			return nil, 0, err
		}
		n += secretLength

		// proof (can be zero length)
		proof, proofLength := unpackBytes(record[n:], 0, maxProofLength)
		if 0 == proofLength {
			break unpack_switch
		}
		n += proofLength

		// signature is remainder of record (can be zero length)
		signature, signatureLength := unpackBytes(record[n:], 0, maxSignatureLength)
		if 0 == signatureLength {
			break unpack_switch
		}
		n += signatureLength

		r := &SecretProof{
			Signer:    signer,
			Algorithm: algorithm,
			Secret:    secret,
			Proof:     proof,
			Signature: signature,
		}
		return r, n, nil

	default: // also NullTag
	}
	return nil, 0, fault.ErrNotTransactionPack
}

// length prefixed bytes, returns a copy and the count of bytes consumed
func unpackBytes(buffer []byte, minimum int, maximum int) ([]byte, int) {
	length, offset := util.ClippedVarint64(buffer, minimum, maximum)
	if 0 == offset || offset+length > len(buffer) {
		return nil, 0
	}
	data := make([]byte, length)
	copy(data, buffer[offset:offset+length])
	return data, offset + length
}

func unpackAccount(buffer []byte, testnet bool) (*account.Account, int, error) {
	data, n := unpackBytes(buffer, 1, maxAccountLength)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}
	a, err := account.FromBytes(data)
	if nil != err {
		return nil, 0, err
	}
	if a.IsTesting() != testnet {
		return nil, 0, fault.ErrWrongNetworkForPublicKey
	}
	return a, n, nil
}

// algorithm tag then length prefixed secret
//
// up to 64 bytes are accepted but every byte beyond the algorithm
// width must be zero
func unpackSecret(buffer []byte) (lockhash.Algorithm, lockhash.Hash512, int, error) {
	var secret lockhash.Hash512

	tag, n := util.FromVarint64(buffer)
	if 0 == n {
		return 0, secret, 0, fault.ErrNotTransactionPack
	}
	algorithm, err := lockhash.FromUint64(tag)
	if nil != err {
		return 0, secret, 0, err
	}

	data, secretLength := unpackBytes(buffer[n:], 1, lockhash.Hash512Size)
	if 0 == secretLength {
		return 0, secret, 0, fault.ErrNotTransactionPack
	}
	copy(secret[:], data)
	if !secret.IsPaddedFor(algorithm) {
		return 0, secret, 0, fault.ErrInvalidSecretPadding
	}
	return algorithm, secret, n + secretLength, nil
}
