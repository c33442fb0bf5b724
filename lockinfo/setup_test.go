// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/lockinfo"
)

const (
	dir = "testing"
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
	key := make([]byte, account.PublicKeySize)
	for i := range key {
		key[i] = b
	}
	return &account.Account{
		Test:      true,
		PublicKey: key,
	}
}

var (
	owner     = makeAccount(0x01)
	recipient = makeAccount(0x02)
)

// an Unused sha3 lock on a numbered pre-image
func makeRecord(n int, expiryHeight uint64) lockinfo.Record {
	secret, _ := lockhash.Hash(lockhash.Sha3, []byte{byte(n >> 8), byte(n)})
	return lockinfo.Record{
		Secret:       secret,
		Algorithm:    lockhash.Sha3,
		Amount:       uint64(100 + n),
		AssetId:      0x85bbea6cc462b244,
		Owner:        owner,
		Recipient:    recipient,
		ExpiryHeight: expiryHeight,
		Status:       lockinfo.Unused,
	}
}

// commit records into the cache at height
func seed(t *testing.T, c *lockinfo.Cache, height uint64, records ...lockinfo.Record) {
	d, err := c.CreateDelta()
	if nil != err {
		t.Fatalf("create delta error: %s", err)
	}
	for _, r := range records {
		if err := d.Insert(r); nil != err {
			t.Fatalf("insert error: %s", err)
		}
	}
	if err := c.Commit(d, height); nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
