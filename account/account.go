// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - lock owners, recipients and proof signers
//
// an account is an ed25519 public key tagged with a key variant:
//
//	Varint64(algorithm << 4 | test << 1 | public) ++ public key
//
// the text form is Base58(bytes ++ first 4 bytes of SHA3-256(bytes))
//
// signatures are carried by the transaction records as opaque bytes,
// they are not verified here
package account

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/util"
)

// ED25519 - the only supported key algorithm
const ED25519 = 1

// PublicKeySize - bytes in an ed25519 public key
const PublicKeySize = 32

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - a public key on a particular network
type Account struct {
	Test      bool
	PublicKey []byte
}

// FromBytes - decode the packed key variant and public key
//
// the buffer must contain exactly one account
func FromBytes(buffer []byte) (*Account, error) {
	keyVariant, n := util.FromVarint64(buffer)
	if 0 == n || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}

	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	if PublicKeySize != len(buffer)-n {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := make([]byte, PublicKeySize)
	copy(publicKey, buffer[n:])

	return &Account{
		Test:      0 != keyVariant&testKeyCode,
		PublicKey: publicKey,
	}, nil
}

// FromBase58 - decode the text form of an account
func FromBase58(s string) (*Account, error) {
	buffer, err := base58.Decode(s)
	if nil != err || len(buffer) <= checksumLength {
		return nil, fault.ErrCannotDecodeAccount
	}

	checksumStart := len(buffer) - checksumLength
	checksum := sha3.Sum256(buffer[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], buffer[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return FromBytes(buffer[:checksumStart])
}

// Bytes - key variant followed by the public key
func (account *Account) Bytes() []byte {
	keyVariant := uint64(ED25519<<algorithmShift | publicKeyCode)
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append(util.ToVarint64(keyVariant), account.PublicKey...)
}

// Key - comparable form for use as a map key
func (account *Account) Key() string {
	return string(account.Bytes())
}

// Equal - same network and public key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.Test == other.Test && bytes.Equal(account.PublicKey, other.PublicKey)
}

// IsTesting - whether the key belongs to a test network
func (account *Account) IsTesting() bool {
	return account.Test
}

// String - base58 encoding of the key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	return base58.Encode(append(buffer, checksum[:checksumLength]...))
}

// GoString - for %#v
func (account *Account) GoString() string {
	return "<account:" + hex.EncodeToString(account.PublicKey) + ">"
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}
