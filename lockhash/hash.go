// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockhash

import (
	"bytes"
	"encoding/hex"

	"github.com/bitmark-inc/hashlockd/fault"
)

// Hash512Size - bytes in a secret
const Hash512Size = 64

// Hash512 - secret (lock hash) value
type Hash512 [Hash512Size]byte

// Hash512FromBytes - copy a byte slice of exactly Hash512Size bytes
func Hash512FromBytes(h *Hash512, buffer []byte) error {
	if Hash512Size != len(buffer) {
		return fault.ErrTruncatedRecord
	}
	copy(h[:], buffer)
	return nil
}

// IsPaddedFor - true if all bytes beyond the algorithm width are zero
func (h Hash512) IsPaddedFor(a Algorithm) bool {
	width := a.Width()
	if 0 == width {
		return false
	}
	for _, b := range h[width:] {
		if 0 != b {
			return false
		}
	}
	return true
}

// Less - byte order, used to sort secrets
func (h Hash512) Less(other Hash512) bool {
	return bytes.Compare(h[:], other[:]) < 0
}

// String - hex
func (h Hash512) String() string {
	return hex.EncodeToString(h[:])
}

// MarshalText - hex text for JSON
func (h Hash512) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Hash512Size))
	hex.Encode(buffer, h[:])
	return buffer, nil
}

// UnmarshalText - hex text to secret
//
// short values (e.g. a 32 byte hash256 digest) are zero padded
func (h *Hash512) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) > Hash512Size {
		return fault.ErrTruncatedRecord
	}
	var result Hash512
	if _, err := hex.Decode(result[:], s); nil != err {
		return err
	}
	*h = result
	return nil
}
