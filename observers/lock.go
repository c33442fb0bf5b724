// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package observers

import (
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/notification"
)

// NewBalanceDebitObserver - take the locked amount from the sender
func NewBalanceDebitObserver() Observer {
	return New("BalanceDebitObserver", func(n notification.Notification, context *Context) error {
		debit, ok := n.(notification.BalanceDebit)
		if !ok {
			return nil
		}
		return context.Balances.Debit(debit.Sender, debit.AssetId, debit.Amount)
	})
}

// NewSecretLockObserver - create the lock record
func NewSecretLockObserver() Observer {
	return New("SecretLockObserver", func(n notification.Notification, context *Context) error {
		lock, ok := n.(notification.SecretLock)
		if !ok {
			return nil
		}
		return context.Locks.Insert(lockinfo.Record{
			Secret:       lock.Secret,
			Algorithm:    lock.Algorithm,
			Amount:       lock.Amount,
			AssetId:      lock.AssetId,
			Owner:        lock.Owner,
			Recipient:    lock.Recipient,
			ExpiryHeight: lock.ExpiryHeight,
			Status:       lockinfo.Unused,
		})
	})
}

// NewProofObserver - consume the lock and pay the recipient
func NewProofObserver() Observer {
	return New("ProofObserver", func(n notification.Notification, context *Context) error {
		proof, ok := n.(notification.ProofSecret)
		if !ok {
			return nil
		}
		record, found := context.Locks.Find(proof.Secret)
		if !found {
			return fault.ErrLockNotFound
		}
		err := context.Locks.SetStatus(proof.Secret, lockinfo.Used)
		if nil != err {
			return err
		}
		return context.Balances.Credit(record.Recipient, record.AssetId, record.Amount)
	})
}

// NewProofPublicationObserver - queue the proof for external observers
func NewProofPublicationObserver() Observer {
	return New("ProofPublicationObserver", func(n notification.Notification, context *Context) error {
		publication, ok := n.(notification.ProofPublication)
		if !ok {
			return nil
		}
		context.Publications = append(context.Publications, publication)
		return nil
	})
}

// RefundExpired - remove locks expiring at or below the context
// height and return their amounts to the owners
func RefundExpired(context *Context) ([]lockinfo.Record, error) {
	expired := context.Locks.PruneExpired(context.Height)
	for _, r := range expired {
		err := context.Balances.Credit(r.Owner, r.AssetId, r.Amount)
		if nil != err {
			return nil, err
		}
	}
	return expired, nil
}
