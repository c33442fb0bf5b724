// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notification

import (
	"math"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

// Publish - the ordered notifications of a transaction included at
// height
//
// validators run in this order and stop at the first failure, so a
// declaration always precedes the content that depends on it
func Publish(transaction transactionrecord.Transaction, height uint64) ([]Notification, error) {
	switch tx := transaction.(type) {

	case *transactionrecord.HashLock:
		if tx.Duration > math.MaxUint64-height {
			return nil, fault.ErrInvalidDuration
		}
		return []Notification{
			BalanceDebit{
				Sender:  tx.Owner,
				AssetId: tx.AssetId,
				Amount:  tx.Amount,
			},
			SecretLock{
				Owner:        tx.Owner,
				Recipient:    tx.Recipient,
				AssetId:      tx.AssetId,
				Amount:       tx.Amount,
				Algorithm:    tx.Algorithm,
				Secret:       tx.Secret,
				Duration:     tx.Duration,
				ExpiryHeight: height + tx.Duration,
			},
		}, nil

	case *transactionrecord.SecretProof:
		proof := make([]byte, len(tx.Proof))
		copy(proof, tx.Proof)
		return []Notification{
			HashAlgorithm{
				Algorithm: tx.Algorithm,
			},
			ProofSecret{
				Algorithm: tx.Algorithm,
				Secret:    tx.Secret,
				Proof:     proof,
			},
			ProofPublication{
				Signer:    tx.Signer,
				Algorithm: tx.Algorithm,
				Secret:    tx.Secret,
			},
		}, nil

	default:
		return nil, fault.ErrNotTransactionPack
	}
}
