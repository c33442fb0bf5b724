// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package merkle - transaction identifiers
package merkle

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/hashlockd/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - SHA3-256 of a packed record
//
// stored as little endian byte array
// represented as big endian hex value for print
// represented as little endian hex text for JSON encoding
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrTruncatedRecord
	}
	copy(digest[:], buffer)
	return nil
}

// String - big endian hex for the fmt package (for %s)
func (digest Digest) String() string {
	reversed := make([]byte, DigestLength)
	for i := 0; i < DigestLength; i += 1 {
		reversed[i] = digest[DigestLength-1-i]
	}
	return hex.EncodeToString(reversed)
}

// GoString - for %#v
func (digest Digest) GoString() string {
	return "<SHA3-256:" + digest.String() + ">"
}

// MarshalText - convert digest to little endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert little endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if DigestLength != hex.DecodedLen(len(s)) {
		return fault.ErrTruncatedRecord
	}
	_, err := hex.Decode(digest[:], s)
	return err
}
