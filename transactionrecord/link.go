// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"encoding/hex"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/merkle"
)

// LinkLength - bytes in a link, same as merkle hash
const LinkLength = merkle.DigestLength

// Link - transaction id, the merkle digest of a packed record
// stored as little endian byte array
// represented as little endian hex text for JSON encoding
type Link merkle.Digest

// MakeLink - create a link for a packed record
func (record Packed) MakeLink() Link {
	return Link(merkle.NewDigest(record))
}

// Bytes - convert a binary link to byte slice
func (link Link) Bytes() []byte {
	return link[:]
}

// String - little endian hex string for the fmt package (for %s)
func (link Link) String() string {
	return hex.EncodeToString(link[:])
}

// GoString - for %#v
func (link Link) GoString() string {
	return "<link:" + hex.EncodeToString(link[:]) + ">"
}

// MarshalText - convert link to little endian hex text
func (link Link) MarshalText() ([]byte, error) {
	return hexEncode(link[:]), nil
}

// UnmarshalText - convert little endian hex text into a link
func (link *Link) UnmarshalText(s []byte) error {
	if LinkLength != hex.DecodedLen(len(s)) {
		return fault.ErrNotLink
	}
	byteCount, err := hex.Decode(link[:], s)
	if nil != err {
		return err
	}
	if LinkLength != byteCount {
		return fault.ErrNotLink
	}
	return nil
}

// LinkFromBytes - convert and validate little endian binary byte slice to a link
func LinkFromBytes(link *Link, buffer []byte) error {
	if LinkLength != len(buffer) {
		return fault.ErrNotLink
	}
	copy(link[:], buffer)
	return nil
}
