// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validators

import (
	"math"

	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/notification"
)

// defaults for node policy
const (
	DefaultMaximumDuration  = 43200 // about 30 days of one minute blocks
	DefaultMinimumProofSize = 10
	DefaultMaximumProofSize = 1000
)

// Policy - node limits applied to locks and proofs
type Policy struct {
	MaximumDuration  uint64
	MinimumProofSize int
	MaximumProofSize int
	Algorithms       []lockhash.Algorithm // enabled algorithms
}

// DefaultPolicy - every algorithm enabled
func DefaultPolicy() Policy {
	return Policy{
		MaximumDuration:  DefaultMaximumDuration,
		MinimumProofSize: DefaultMinimumProofSize,
		MaximumProofSize: DefaultMaximumProofSize,
		Algorithms:       lockhash.All(),
	}
}

func (p Policy) enabled(algorithm lockhash.Algorithm) bool {
	for _, a := range p.Algorithms {
		if a == algorithm {
			return true
		}
	}
	return false
}

// NewHashAlgorithmValidator - the declared algorithm must be enabled
func NewHashAlgorithmValidator(policy Policy) Validator {
	return New("HashAlgorithmValidator", func(n notification.Notification, context *Context) Result {
		var algorithm lockhash.Algorithm
		switch item := n.(type) {
		case notification.HashAlgorithm:
			algorithm = item.Algorithm
		case notification.SecretLock:
			algorithm = item.Algorithm
		default:
			return Success
		}
		if !algorithm.IsValid() || !policy.enabled(algorithm) {
			return FailureLockInvalidHashAlgorithm
		}
		return Success
	})
}

// NewProofSizeValidator - proof length must be within the policy bounds
func NewProofSizeValidator(policy Policy) Validator {
	return New("ProofSizeValidator", func(n notification.Notification, context *Context) Result {
		proof, ok := n.(notification.ProofSecret)
		if !ok {
			return Success
		}
		size := len(proof.Proof)
		if size < policy.MinimumProofSize || size > policy.MaximumProofSize {
			return FailureLockProofSizeOutOfBounds
		}
		return Success
	})
}

// NewLockDurationValidator - duration must be non-zero and within policy
func NewLockDurationValidator(policy Policy) Validator {
	return New("LockDurationValidator", func(n notification.Notification, context *Context) Result {
		lock, ok := n.(notification.SecretLock)
		if !ok {
			return Success
		}
		if 0 == lock.Duration || lock.Duration > policy.MaximumDuration {
			return FailureLockInvalidDuration
		}
		return Success
	})
}

// NewMosaicAmountValidator - a lock must hold something
func NewMosaicAmountValidator() Validator {
	return New("MosaicAmountValidator", func(n notification.Notification, context *Context) Result {
		lock, ok := n.(notification.SecretLock)
		if !ok {
			return Success
		}
		if 0 == lock.Amount {
			return FailureLockInvalidMosaicAmount
		}
		return Success
	})
}

// NewUniquenessValidator - a secret may only be locked once while
// its record is present
func NewUniquenessValidator() Validator {
	return New("UniquenessValidator", func(n notification.Notification, context *Context) Result {
		lock, ok := n.(notification.SecretLock)
		if !ok {
			return Success
		}
		if _, found := context.Locks.Find(lock.Secret); found {
			return FailureLockDuplicateKey
		}
		return Success
	})
}

// NewBalanceDebitValidator - the sender must hold the amount
func NewBalanceDebitValidator() Validator {
	return New("BalanceDebitValidator", func(n notification.Notification, context *Context) Result {
		debit, ok := n.(notification.BalanceDebit)
		if !ok {
			return Success
		}
		if context.Balances.Balance(debit.Sender, debit.AssetId) < debit.Amount {
			return FailureCoreInsufficientBalance
		}
		return Success
	})
}

// NewProofCreditValidator - paying the recipient must not overflow
// the recipient's balance
func NewProofCreditValidator() Validator {
	return New("ProofCreditValidator", func(n notification.Notification, context *Context) Result {
		proof, ok := n.(notification.ProofSecret)
		if !ok {
			return Success
		}
		record, found := context.Locks.Find(proof.Secret)
		if !found {
			return FailureLockUnknownSecret
		}
		if context.Balances.Balance(record.Recipient, record.AssetId) > math.MaxUint64-record.Amount {
			return FailureCoreBalanceOverflow
		}
		return Success
	})
}

// NewDefaultRegistry - every validator for every notification type
func NewDefaultRegistry(policy Policy) *Registry {
	r := NewRegistry()
	r.Add(notification.BalanceDebitType, NewBalanceDebitValidator())

	r.Add(notification.SecretLockType, NewHashAlgorithmValidator(policy))
	r.Add(notification.SecretLockType, NewMosaicAmountValidator())
	r.Add(notification.SecretLockType, NewLockDurationValidator(policy))
	r.Add(notification.SecretLockType, NewUniquenessValidator())

	r.Add(notification.HashAlgorithmType, NewHashAlgorithmValidator(policy))

	r.Add(notification.ProofSecretType, NewProofSizeValidator(policy))
	r.Add(notification.ProofSecretType, NewProofValidator())
	r.Add(notification.ProofSecretType, NewProofCreditValidator())
	return r
}
