// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
)

func makeAccount(test bool, fill byte) *account.Account {
	key := make([]byte, account.PublicKeySize)
	for i := range key {
		key[i] = fill + byte(i)
	}
	return &account.Account{Test: test, PublicKey: key}
}

func TestBytesRoundTrip(t *testing.T) {
	for _, test := range []bool{false, true} {
		a := makeAccount(test, 0x10)
		b, err := account.FromBytes(a.Bytes())
		assert.Nil(t, err, "FromBytes")
		assert.True(t, a.Equal(b), "account changed")
		assert.Equal(t, test, b.IsTesting(), "wrong network")
	}
}

func TestBase58(t *testing.T) {
	a := makeAccount(true, 0x42)
	s := a.String()

	b, err := account.FromBase58(s)
	assert.Nil(t, err, "FromBase58")
	assert.True(t, a.Equal(b), "account changed")

	// corrupt the last character to break the checksum
	corrupt := []byte(s)
	if corrupt[len(corrupt)-1] == '2' {
		corrupt[len(corrupt)-1] = '3'
	} else {
		corrupt[len(corrupt)-1] = '2'
	}
	_, err = account.FromBase58(string(corrupt))
	assert.NotNil(t, err, "corrupt account accepted")
}

func TestFromBytesErrors(t *testing.T) {
	a := makeAccount(false, 1)
	buffer := a.Bytes()

	_, err := account.FromBytes(buffer[:len(buffer)-1])
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short key")

	private := append([]byte{}, buffer...)
	private[0] &^= 0x01
	_, err = account.FromBytes(private)
	assert.Equal(t, fault.ErrNotPublicKey, err, "private key flag")

	wrongAlgorithm := append([]byte{}, buffer...)
	wrongAlgorithm[0] = 0x21
	_, err = account.FromBytes(wrongAlgorithm)
	assert.Equal(t, fault.ErrInvalidKeyType, err, "algorithm")
}

func TestJSON(t *testing.T) {
	a := makeAccount(true, 7)
	buffer, err := json.Marshal(a)
	assert.Nil(t, err, "marshal")

	var b account.Account
	err = json.Unmarshal(buffer, &b)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, a.Equal(&b), "account changed")
}
