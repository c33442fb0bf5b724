// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/builders"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/messagebus"
	"github.com/bitmark-inc/hashlockd/processor"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

const (
	dir = "testing"

	assetId = 0x85bbea6cc462b244
	funds   = 10000
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func makeAccount(b byte) *account.Account {
	return &account.Account{
		Test:      true,
		PublicKey: bytes.Repeat([]byte{b}, account.PublicKeySize),
	}
}

var (
	owner     = makeAccount(0x01)
	recipient = makeAccount(0x02)
	signer    = makeAccount(0x03)
)

func makeProof(n int) []byte {
	return []byte(fmt.Sprintf("proof-of-lock-%04d", n))
}

type fixture struct {
	locks    *lockinfo.Cache
	balances *balance.Ledger
	proofs   *messagebus.Queue
	refunds  *messagebus.Queue
	store    *fakeStore
	p        *processor.Processor
}

// processor with the owner funded
func setup(t *testing.T) *fixture {
	return setupBalances(t, []balance.Entry{
		{Owner: owner, AssetId: assetId, Amount: funds},
	})
}

func setupBalances(t *testing.T, entries []balance.Entry) *fixture {
	f := &fixture{
		locks:    lockinfo.New(),
		balances: balance.New(),
		proofs:   messagebus.NewQueue(10),
		refunds:  messagebus.NewQueue(10),
		store:    &fakeStore{},
	}
	err := f.balances.Restore(entries)
	if nil != err {
		t.Fatalf("restore error: %s", err)
	}
	f.p = processor.New(f.locks, f.balances, processor.Options{
		Testnet: true,
		Store:   f.store,
		Proofs:  f.proofs,
		Refunds: f.refunds,
	})
	return f
}

func packLock(t *testing.T, proof []byte, amount uint64, duration uint64) transactionrecord.Packed {
	secret, err := lockhash.Hash(lockhash.Sha3, proof)
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	packed, err := builders.NewHashLockBuilder(owner).
		SetMosaic(assetId, amount).
		SetDuration(duration).
		SetHash(secret).
		SetRecipient(recipient).
		Pack()
	if nil != err {
		t.Fatalf("pack lock error: %s", err)
	}
	return packed
}

func packProof(t *testing.T, secretFrom []byte, proof []byte) transactionrecord.Packed {
	secret, err := lockhash.Hash(lockhash.Sha3, secretFrom)
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	packed, err := builders.NewSecretProofBuilder(signer).
		SetHashAlgorithm(lockhash.Sha3).
		SetSecret(secret).
		SetProof(proof).
		Pack()
	if nil != err {
		t.Fatalf("pack proof error: %s", err)
	}
	return packed
}

// records calls made by the processor
type fakeStore struct {
	calls     []string
	heights   []uint64
	beginFail error
}

func (s *fakeStore) Begin() error {
	s.calls = append(s.calls, "begin")
	return s.beginFail
}

func (s *fakeStore) Commit(height uint64) error {
	s.calls = append(s.calls, "commit")
	s.heights = append(s.heights, height)
	return nil
}

func (s *fakeStore) Abort() {
	s.calls = append(s.calls, "abort")
}
