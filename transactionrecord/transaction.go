// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/util"
)

// TagType - type code for transactions
type TagType uint64

// enumerate the possible transaction record types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	HashLockTag    = TagType(iota) // lock an amount behind a secret
	SecretProofTag = TagType(iota) // reveal the pre-image of a secret

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Transaction - generic transaction interface
type Transaction interface {
	Pack() (Packed, error)
}

// byte sizes for various fields
const (
	maxAccountLength   = 64
	maxProofLength     = 1024
	maxSignatureLength = 1024
)

// Signature - opaque signature bytes, hex in JSON
type Signature []byte

// Proof - pre-image of a secret, hex in JSON
type Proof []byte

// HashLock - the unpacked hash lock structure
type HashLock struct {
	Owner     *account.Account   `json:"owner"`     // base58: pays for the lock
	Recipient *account.Account   `json:"recipient"` // base58: credited on proof
	AssetId   uint64             `json:"assetId"`   // mosaic id
	Amount    uint64             `json:"amount"`    // locked quantity
	Duration  uint64             `json:"duration"`  // blocks until expiry
	Algorithm lockhash.Algorithm `json:"algorithm"` // digest of the secret
	Secret    lockhash.Hash512   `json:"secret"`    // hex: zero padded digest
	Signature Signature          `json:"signature"` // hex: by owner
}

// SecretProof - the unpacked secret proof structure
type SecretProof struct {
	Signer    *account.Account   `json:"signer"`    // base58
	Algorithm lockhash.Algorithm `json:"algorithm"` // must match the lock
	Secret    lockhash.Hash512   `json:"secret"`    // hex: identifies the lock
	Proof     Proof              `json:"proof"`     // hex: pre-image
	Signature Signature          `json:"signature"` // hex: by signer
}

// Type - returns the record type code
func (record Packed) Type() TagType {
	recordType, n := util.FromVarint64(record)
	if 0 == n {
		return NullTag
	}
	return TagType(recordType)
}

// RecordName - returns the name of a transaction record as a string
func RecordName(record interface{}) (string, bool) {
	switch record.(type) {
	case *HashLock, HashLock:
		return "HashLock", true

	case *SecretProof, SecretProof:
		return "SecretProof", true

	default:
		return "*unknown*", false
	}
}

// MarshalText - signature as hex
func (signature Signature) MarshalText() ([]byte, error) {
	return hexEncode(signature), nil
}

// UnmarshalText - signature from hex
func (signature *Signature) UnmarshalText(s []byte) error {
	b, err := hexDecode(s)
	if nil != err {
		return err
	}
	*signature = b
	return nil
}

// MarshalText - proof as hex
func (proof Proof) MarshalText() ([]byte, error) {
	return hexEncode(proof), nil
}

// UnmarshalText - proof from hex
func (proof *Proof) UnmarshalText(s []byte) error {
	b, err := hexDecode(s)
	if nil != err {
		return err
	}
	*proof = b
	return nil
}

func hexEncode(b []byte) []byte {
	buffer := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(buffer, b)
	return buffer
}

func hexDecode(s []byte) ([]byte, error) {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return nil, err
	}
	return buffer[:n], nil
}
