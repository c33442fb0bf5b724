// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/notification"
	"github.com/bitmark-inc/hashlockd/validators"
)

func proofFor(record lockinfo.Record, proof []byte) notification.ProofSecret {
	return notification.ProofSecret{
		Algorithm: record.Algorithm,
		Secret:    record.Secret,
		Proof:     proof,
	}
}

func runProof(reader lockinfo.Reader, n notification.ProofSecret, height uint64) validators.Result {
	context := &validators.Context{
		Height: height,
		Locks:  reader,
	}
	return validators.NewProofValidator().Validate(n, context)
}

func TestFailureIfSecretIsNotInCache(t *testing.T) {
	seeded := make([]lockinfo.Record, 10)
	for i := range seeded {
		seeded[i] = makeLock(lockhash.Sha3, makeProof(i), expirationHeight)
	}
	c := seedCache(t, seeded...)

	absent := makeLock(lockhash.Sha3, makeProof(99), expirationHeight)
	result := runProof(c.CreateView(), proofFor(absent, makeProof(99)), defaultHeight)
	assert.Equal(t, validators.FailureLockUnknownSecret, result, "absent secret")
}

func TestFailureIfSecretIsNotActive(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Sha3, proof, expirationHeight)
	c := seedCache(t, lock)

	// expiry boundary is inclusive
	result := runProof(c.CreateView(), proofFor(lock, proof), expirationHeight)
	assert.Equal(t, validators.FailureLockInactiveSecret, result, "at expiry height")

	result = runProof(c.CreateView(), proofFor(lock, proof), expirationHeight+1)
	assert.Equal(t, validators.FailureLockInactiveSecret, result, "after expiry height")
}

func TestFailureIfHashAlgorithmDoesNotMatch(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Sha3, proof, expirationHeight)
	c := seedCache(t, lock)

	n := proofFor(lock, proof)
	n.Algorithm = lockhash.Keccak
	result := runProof(c.CreateView(), n, defaultHeight)
	assert.Equal(t, validators.FailureLockHashAlgorithmMismatch, result, "keccak against sha3 lock")
}

func TestFailureIfLockHasAlreadyBeenUsed(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Sha3, proof, expirationHeight)
	lock.Status = lockinfo.Used

	c := lockinfo.New()
	assert.Nil(t, c.Restore(0, []lockinfo.Record{lock}), "restore")

	result := runProof(c.CreateView(), proofFor(lock, proof), defaultHeight)
	assert.Equal(t, validators.FailureLockSecretAlreadyUsed, result, "used lock")
}

func TestFailureIfProofDoesNotMatch(t *testing.T) {
	lock := makeLock(lockhash.Sha3, makeProof(1), expirationHeight)
	c := seedCache(t, lock)

	result := runProof(c.CreateView(), proofFor(lock, makeProof(2)), defaultHeight)
	assert.Equal(t, validators.FailureLockProofMismatch, result, "wrong pre-image")
}

func TestSuccessIfProofIsValid(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Sha3, proof, expirationHeight)
	c := seedCache(t, lock)

	n := proofFor(lock, proof)
	result := runProof(c.CreateView(), n, defaultHeight)
	assert.Equal(t, validators.Success, result, "valid proof")

	// consume the lock the way the proof observer does
	d, _ := c.CreateDelta()
	assert.Nil(t, d.SetStatus(lock.Secret, lockinfo.Used), "set status")

	result = runProof(d, n, defaultHeight)
	assert.Equal(t, validators.FailureLockSecretAlreadyUsed, result, "delta sees used")

	assert.Nil(t, c.Commit(d, defaultHeight), "commit")

	record, _ := c.CreateView().Find(lock.Secret)
	assert.Equal(t, lockinfo.Used, record.Status, "status after commit")

	result = runProof(c.CreateView(), n, defaultHeight)
	assert.Equal(t, validators.FailureLockSecretAlreadyUsed, result, "repeat submission")
}

// an expired lock is inactive whatever the proof
func TestInactiveForEveryExpiredHeight(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Sha3, proof, expirationHeight)
	c := seedCache(t, lock)
	v := c.CreateView()

	for height := uint64(expirationHeight); height < expirationHeight+50; height += 1 {
		assert.Equal(t, validators.FailureLockInactiveSecret, runProof(v, proofFor(lock, proof), height), "correct proof at %d", height)
		assert.Equal(t, validators.FailureLockInactiveSecret, runProof(v, proofFor(lock, makeProof(2)), height), "wrong proof at %d", height)
	}
	for height := uint64(0); height < expirationHeight; height += 20 {
		assert.Equal(t, validators.Success, runProof(v, proofFor(lock, proof), height), "active at %d", height)
	}
}

// acceptance iff the digest of the proof equals the secret
func TestDigestDecidesAcceptance(t *testing.T) {
	for _, algorithm := range lockhash.All() {
		proof := makeProof(int(algorithm))
		lock := makeLock(algorithm, proof, expirationHeight)
		c := seedCache(t, lock)
		v := c.CreateView()

		for i := 0; i < 8; i += 1 {
			candidate := makeProof(i)
			digest, _ := lockhash.Hash(algorithm, candidate)

			expected := validators.FailureLockProofMismatch
			if digest == lock.Secret {
				expected = validators.Success
			}
			assert.Equal(t, expected, runProof(v, proofFor(lock, candidate), defaultHeight), "%s: candidate %d", algorithm, i)
		}
	}
}

func TestProofValidatorIsPure(t *testing.T) {
	proof := makeProof(1)
	lock := makeLock(lockhash.Hash160, proof, expirationHeight)
	c := seedCache(t, lock)
	v := c.CreateView()

	inputs := []notification.ProofSecret{
		proofFor(lock, proof),
		proofFor(lock, makeProof(2)),
		proofFor(makeLock(lockhash.Hash160, makeProof(3), expirationHeight), makeProof(3)),
	}
	for i, n := range inputs {
		first := runProof(v, n, defaultHeight)
		second := runProof(v, n, defaultHeight)
		assert.Equal(t, first, second, "%d: repeat result", i)
	}

	record, ok := v.Find(lock.Secret)
	assert.True(t, ok, "record present")
	assert.Equal(t, lock, record, "record unchanged")
	assert.Equal(t, uint64(1), c.Stats().Commits, "no extra commits")
}

func TestProofValidatorIgnoresOtherNotifications(t *testing.T) {
	c := seedCache(t)
	context := &validators.Context{
		Height: defaultHeight,
		Locks:  c.CreateView(),
	}
	result := validators.NewProofValidator().Validate(notification.HashAlgorithm{Algorithm: lockhash.Sha3}, context)
	assert.Equal(t, validators.Success, result, "other notification")
}
