// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockhash_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

type digestTest struct {
	algorithm lockhash.Algorithm
	preimage  string
	expected  string
}

var digestTests = []digestTest{
	{
		algorithm: lockhash.Sha3,
		preimage:  "abc",
		expected:  "b751850b1a57168a5693cd924b6b096e08f621827444f70d884f5d0240d2712e10e116e9192af3c91a7ec57647e3934057340b4cf408d5a56592f8274eec53f0",
	},
	{
		algorithm: lockhash.Keccak,
		preimage:  "",
		expected:  "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e",
	},
	{
		algorithm: lockhash.Hash160,
		preimage:  "abc",
		expected:  "bb1be98c142444d7a56aa3981c3942a978e4dc33",
	},
	{
		algorithm: lockhash.Hash256,
		preimage:  "abc",
		expected:  "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358",
	},
}

func TestHash(t *testing.T) {
	for i, item := range digestTests {
		h, err := lockhash.Hash(item.algorithm, []byte(item.preimage))
		assert.Nil(t, err, "%d: hash error", i)

		width := item.algorithm.Width()
		assert.Equal(t, len(item.expected)/2, width, "%d: width", i)
		assert.Equal(t, item.expected, hex.EncodeToString(h[:width]), "%d: digest", i)
		assert.True(t, h.IsPaddedFor(item.algorithm), "%d: padding", i)
	}
}

func TestHashUnknownAlgorithm(t *testing.T) {
	_, err := lockhash.Hash(lockhash.Algorithm(4), []byte("abc"))
	assert.Equal(t, fault.ErrInvalidHashAlgorithm, err, "unknown algorithm accepted")
}

func TestDistinctAlgorithms(t *testing.T) {
	sha3, _ := lockhash.Hash(lockhash.Sha3, []byte("abc"))
	keccak, _ := lockhash.Hash(lockhash.Keccak, []byte("abc"))
	assert.NotEqual(t, sha3, keccak, "sha3 and keccak must differ")
}

func TestFromUint64(t *testing.T) {
	for _, a := range lockhash.All() {
		b, err := lockhash.FromUint64(uint64(a))
		assert.Nil(t, err, "valid tag")
		assert.Equal(t, a, b, "tag round trip")
	}
	_, err := lockhash.FromUint64(4)
	assert.Equal(t, fault.ErrInvalidHashAlgorithm, err, "tag 4")
	_, err = lockhash.FromUint64(255)
	assert.Equal(t, fault.ErrInvalidHashAlgorithm, err, "tag 255")
}

func TestNames(t *testing.T) {
	names := map[string]lockhash.Algorithm{
		"sha3":     lockhash.Sha3,
		"Keccak":   lockhash.Keccak,
		"HASH160":  lockhash.Hash160,
		" hash256": lockhash.Hash256,
	}
	for name, expected := range names {
		a, err := lockhash.FromString(name)
		assert.Nil(t, err, "name: %q", name)
		assert.Equal(t, expected, a, "name: %q", name)
	}

	_, err := lockhash.FromString("md5")
	assert.Equal(t, fault.ErrInvalidHashAlgorithm, err, "md5")
	assert.Equal(t, "unknown", lockhash.Algorithm(9).String(), "unknown name")
	assert.Equal(t, 0, lockhash.Algorithm(9).Width(), "unknown width")
}

func TestPadding(t *testing.T) {
	h, _ := lockhash.Hash(lockhash.Hash256, []byte("abc"))
	assert.True(t, h.IsPaddedFor(lockhash.Hash256), "padded")
	assert.True(t, h.IsPaddedFor(lockhash.Sha3), "full width is always padded")

	h[40] = 1
	assert.False(t, h.IsPaddedFor(lockhash.Hash256), "dirty padding")
	assert.False(t, h.IsPaddedFor(lockhash.Algorithm(7)), "unknown algorithm")
}

func TestJSON(t *testing.T) {
	type item struct {
		Algorithm lockhash.Algorithm `json:"algorithm"`
		Secret    lockhash.Hash512   `json:"secret"`
	}

	secret, _ := lockhash.Hash(lockhash.Hash160, []byte("abc"))
	in := item{
		Algorithm: lockhash.Hash160,
		Secret:    secret,
	}
	buffer, err := json.Marshal(in)
	assert.Nil(t, err, "marshal")

	var out item
	err = json.Unmarshal(buffer, &out)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, in, out, "round trip")

	// short hex is zero padded
	err = json.Unmarshal([]byte(`{"algorithm":"hash160","secret":"bb1be98c142444d7a56aa3981c3942a978e4dc33"}`), &out)
	assert.Nil(t, err, "unmarshal short")
	assert.Equal(t, secret, out.Secret, "short secret")

	err = json.Unmarshal([]byte(`{"algorithm":"md4","secret":""}`), &out)
	assert.Equal(t, fault.ErrInvalidHashAlgorithm, err, "bad algorithm")
}

func TestLess(t *testing.T) {
	a := lockhash.Hash512{0x01}
	b := lockhash.Hash512{0x02}
	assert.True(t, a.Less(b), "a < b")
	assert.False(t, b.Less(a), "b > a")
	assert.False(t, a.Less(a), "a == a")
}
