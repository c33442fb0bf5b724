// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockhash

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/hashlockd/fault"
)

// Algorithm - tag selecting the digest of a lock
type Algorithm uint8

// enumerate the possible algorithms
// this is encoded as a Varint64 in packed transactions
const (
	Sha3    = Algorithm(iota) // SHA3-512
	Keccak  = Algorithm(iota) // Keccak-512
	Hash160 = Algorithm(iota) // RIPEMD-160(SHA-256)
	Hash256 = Algorithm(iota) // SHA-256(SHA-256)

	// this item must be last
	algorithmLimit = Algorithm(iota)
)

type entry struct {
	name   string
	width  int
	digest func([]byte) []byte
}

// the registry, indexed by tag
var algorithms = [algorithmLimit]entry{
	Sha3: {
		name:  "sha3",
		width: 64,
		digest: func(preimage []byte) []byte {
			d := sha3.Sum512(preimage)
			return d[:]
		},
	},
	Keccak: {
		name:  "keccak",
		width: 64,
		digest: func(preimage []byte) []byte {
			h := sha3.NewLegacyKeccak512()
			h.Write(preimage)
			return h.Sum(nil)
		},
	},
	Hash160: {
		name:  "hash160",
		width: ripemd160.Size,
		digest: func(preimage []byte) []byte {
			inner := sha256.Sum256(preimage)
			h := ripemd160.New()
			h.Write(inner[:])
			return h.Sum(nil)
		},
	},
	Hash256: {
		name:  "hash256",
		width: sha256.Size,
		digest: func(preimage []byte) []byte {
			inner := sha256.Sum256(preimage)
			d := sha256.Sum256(inner[:])
			return d[:]
		},
	},
}

// All - every supported algorithm in tag order
func All() []Algorithm {
	all := make([]Algorithm, 0, algorithmLimit)
	for a := Algorithm(0); a < algorithmLimit; a += 1 {
		all = append(all, a)
	}
	return all
}

// FromUint64 - convert a decoded tag, rejecting unknown values
func FromUint64(tag uint64) (Algorithm, error) {
	if tag >= uint64(algorithmLimit) {
		return 0, fault.ErrInvalidHashAlgorithm
	}
	return Algorithm(tag), nil
}

// FromString - convert a name as used in configuration files
func FromString(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, e := range algorithms {
		if e.name == name {
			return Algorithm(a), nil
		}
	}
	return 0, fault.ErrInvalidHashAlgorithm
}

// IsValid - true for a registered tag
func (a Algorithm) IsValid() bool {
	return a < algorithmLimit
}

// Width - number of significant bytes in the digest
func (a Algorithm) Width() int {
	if !a.IsValid() {
		return 0
	}
	return algorithms[a].width
}

// String - name of the algorithm
func (a Algorithm) String() string {
	if !a.IsValid() {
		return "unknown"
	}
	return algorithms[a].name
}

// MarshalText - algorithm name for JSON
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.IsValid() {
		return nil, fault.ErrInvalidHashAlgorithm
	}
	return []byte(a.String()), nil
}

// UnmarshalText - algorithm from its name
func (a *Algorithm) UnmarshalText(s []byte) error {
	algorithm, err := FromString(string(s))
	if nil != err {
		return err
	}
	*a = algorithm
	return nil
}

// Hash - digest a pre-image with the selected algorithm
//
// the result is zero padded to the 64 byte secret size
func Hash(a Algorithm, preimage []byte) (Hash512, error) {
	var result Hash512
	if !a.IsValid() {
		return result, fault.ErrInvalidHashAlgorithm
	}
	copy(result[:], algorithms[a].digest(preimage))
	return result, nil
}
