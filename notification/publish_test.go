// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notification_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/notification"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, account.PublicKeySize),
	}
}

func TestPublishHashLock(t *testing.T) {
	secret, _ := lockhash.Hash(lockhash.Sha3, []byte("secret"))
	tx := &transactionrecord.HashLock{
		Owner:     makeAccount(1),
		Recipient: makeAccount(2),
		AssetId:   7,
		Amount:    500,
		Duration:  21,
		Algorithm: lockhash.Sha3,
		Secret:    secret,
	}

	n, err := notification.Publish(tx, 300)
	assert.Nil(t, err, "publish")
	assert.Equal(t, 2, len(n), "count")

	assert.Equal(t, notification.BalanceDebit{
		Sender:  tx.Owner,
		AssetId: 7,
		Amount:  500,
	}, n[0], "debit first")

	assert.Equal(t, notification.SecretLock{
		Owner:        tx.Owner,
		Recipient:    tx.Recipient,
		AssetId:      7,
		Amount:       500,
		Algorithm:    lockhash.Sha3,
		Secret:       secret,
		Duration:     21,
		ExpiryHeight: 321,
	}, n[1], "lock second")

	tx.Duration = math.MaxUint64
	_, err = notification.Publish(tx, 300)
	assert.Equal(t, fault.ErrInvalidDuration, err, "expiry overflow")
}

func TestPublishSecretProof(t *testing.T) {
	secret, _ := lockhash.Hash(lockhash.Keccak, []byte("secret"))
	tx := &transactionrecord.SecretProof{
		Signer:    makeAccount(3),
		Algorithm: lockhash.Keccak,
		Secret:    secret,
		Proof:     transactionrecord.Proof("secret"),
	}

	n, err := notification.Publish(tx, 300)
	assert.Nil(t, err, "publish")

	types := make([]notification.Type, len(n))
	for i, item := range n {
		types[i] = item.Type()
	}
	assert.Equal(t, []notification.Type{
		notification.HashAlgorithmType,
		notification.ProofSecretType,
		notification.ProofPublicationType,
	}, types, "emission order")

	assert.Equal(t, notification.HashAlgorithm{Algorithm: lockhash.Keccak}, n[0], "declaration")
	assert.Equal(t, notification.ProofSecret{
		Algorithm: lockhash.Keccak,
		Secret:    secret,
		Proof:     []byte("secret"),
	}, n[1], "content")
	assert.Equal(t, notification.ProofPublication{
		Signer:    tx.Signer,
		Algorithm: lockhash.Keccak,
		Secret:    secret,
	}, n[2], "publication")

	// the notification does not alias the transaction
	tx.Proof[0] = 'X'
	assert.Equal(t, []byte("secret"), n[1].(notification.ProofSecret).Proof, "aliased proof")
}

func TestPublishUnknown(t *testing.T) {
	_, err := notification.Publish(nil, 1)
	assert.Equal(t, fault.ErrNotTransactionPack, err, "nil transaction")
}

func TestTypeNames(t *testing.T) {
	for _, ty := range notification.Types() {
		assert.NotEqual(t, "*unknown*", ty.String(), "type %d", ty)
	}
	assert.Equal(t, "ProofSecret", notification.ProofSecretType.String(), "name")
	assert.Equal(t, "*unknown*", notification.Type(99).String(), "unknown")
}
