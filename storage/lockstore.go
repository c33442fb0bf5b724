// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/util"
)

var heightKey = []byte("height")

// LockStore - persists committed lock records and balances
//
// registered as a change sink on the lock cache and the balance
// ledger; every change must arrive between Begin and Commit so that
// a block is written as one LevelDB batch
type LockStore struct {
	sync.Mutex

	log      *logger.L
	trx      Transaction
	locks    *PoolHandle
	expiry   *PoolHandle
	balances *PoolHandle
	chain    *PoolHandle
}

// NewLockStore - store over the pools of the open database
func NewLockStore() (*LockStore, error) {
	trx, err := NewTransaction()
	if nil != err {
		return nil, err
	}
	return &LockStore{
		log:      logger.New("lockstore"),
		trx:      trx,
		locks:    Pool.Locks,
		expiry:   Pool.Expiry,
		balances: Pool.Balances,
		chain:    Pool.Chain,
	}, nil
}

// Begin - start collecting changes for one block
func (s *LockStore) Begin() error {
	return s.trx.Begin()
}

// Commit - record the block height and write everything collected
func (s *LockStore) Commit(height uint64) error {
	s.Lock()
	defer s.Unlock()

	if !s.trx.InUse() {
		return fault.ErrTransactionNotInUse
	}
	s.trx.PutN(s.chain, heightKey, height)
	err := s.trx.Commit()
	if nil != err {
		s.log.Errorf("commit at height: %d  error: %s", height, err)
		s.trx.Abort()
		return err
	}
	s.log.Debugf("committed height: %d", height)
	return nil
}

// Abort - drop everything collected since Begin
func (s *LockStore) Abort() {
	s.trx.Abort()
}

// Height - last committed height, false if nothing was ever committed
func (s *LockStore) Height() (uint64, bool) {
	return s.chain.GetN(heightKey)
}

// OnRecordChanged - stage a lock record change
func (s *LockStore) OnRecordChanged(record lockinfo.Record, kind lockinfo.ChangeKind) {
	s.Lock()
	defer s.Unlock()

	if !s.trx.InUse() {
		fault.Panicf("lockstore: record change: %s outside transaction", kind)
	}

	secret := record.Secret[:]
	expiryKey := makeExpiryKey(record.ExpiryHeight, record.Secret)

	switch kind {
	case lockinfo.Insert:
		s.trx.Put(s.locks, secret, packRecord(record))
		if lockinfo.Unused == record.Status {
			s.trx.Put(s.expiry, expiryKey, []byte{})
		}
	case lockinfo.Update:
		s.trx.Put(s.locks, secret, packRecord(record))
		if lockinfo.Used == record.Status {
			s.trx.Delete(s.expiry, expiryKey)
		}
	case lockinfo.Remove:
		s.trx.Delete(s.locks, secret)
		s.trx.Delete(s.expiry, expiryKey)
	default:
		fault.Panicf("lockstore: invalid change kind: %d", kind)
	}
}

// OnBalanceChanged - stage a balance change, zero removes the entry
func (s *LockStore) OnBalanceChanged(entry balance.Entry) {
	s.Lock()
	defer s.Unlock()

	if !s.trx.InUse() {
		fault.Panicf("lockstore: balance change outside transaction")
	}

	key := makeBalanceKey(entry.Owner, entry.AssetId)
	if 0 == entry.Amount {
		s.trx.Delete(s.balances, key)
		return
	}
	s.trx.PutN(s.balances, key, entry.Amount)
}

// Load - restore the committed state into an empty cache and ledger
//
// returns the committed height, zero for an empty database
func (s *LockStore) Load(cache *lockinfo.Cache, ledger *balance.Ledger) (uint64, error) {
	height, _ := s.Height()

	records := make([]lockinfo.Record, 0, 100)
	unused := 0
	err := s.locks.ForEach(func(element Element) error {
		record, err := unpackRecord(element.Key, element.Value)
		if nil != err {
			return err
		}
		if lockinfo.Unused == record.Status {
			unused += 1
		}
		records = append(records, record)
		return nil
	})
	if nil != err {
		return 0, err
	}

	// keys sort by big endian height then secret, the same order as
	// the in-memory index
	type indexEntry struct {
		height uint64
		secret lockhash.Hash512
	}
	indexed := make([]indexEntry, 0, unused)
	err = s.expiry.ForEach(func(element Element) error {
		if len(element.Key) != 8+lockhash.Hash512Size {
			return fault.ErrInvalidKeyLength
		}
		e := indexEntry{
			height: binary.BigEndian.Uint64(element.Key[:8]),
		}
		copy(e.secret[:], element.Key[8:])
		indexed = append(indexed, e)
		return nil
	})
	if nil != err {
		return 0, err
	}
	if len(indexed) != unused {
		s.log.Criticalf("expiry index: %d entries  unused locks: %d", len(indexed), unused)
		return 0, fault.ErrInvalidCount
	}

	entries := make([]balance.Entry, 0, 100)
	err = s.balances.ForEach(func(element Element) error {
		entry, err := unpackBalance(element.Key, element.Value)
		if nil != err {
			return err
		}
		entries = append(entries, entry)
		return nil
	})
	if nil != err {
		return 0, err
	}

	err = cache.Restore(height, records)
	if nil != err {
		return 0, err
	}
	view := cache.CreateView()
	expiring := view.Expiring(math.MaxUint64)
	if len(expiring) != len(indexed) {
		s.log.Criticalf("expiry index: %d entries  restored: %d", len(indexed), len(expiring))
		return 0, fault.ErrInvalidCount
	}
	for i, e := range indexed {
		if e.secret != expiring[i] || !view.IsIndexed(e.height, e.secret) {
			s.log.Criticalf("expiry index entry: %d  height: %d  secret: %s  does not match lock record", i, e.height, e.secret)
			return 0, fault.ErrInvalidCount
		}
	}
	err = ledger.Restore(entries)
	if nil != err {
		return 0, err
	}

	s.log.Infof("loaded height: %d  locks: %d  balances: %d", height, len(records), len(entries))
	return height, nil
}

func makeExpiryKey(height uint64, secret lockhash.Hash512) []byte {
	key := make([]byte, 8, 8+lockhash.Hash512Size)
	binary.BigEndian.PutUint64(key, height)
	return append(key, secret[:]...)
}

func makeBalanceKey(owner *account.Account, assetId uint64) []byte {
	key := owner.Bytes()
	asset := make([]byte, 8)
	binary.BigEndian.PutUint64(asset, assetId)
	return append(key, asset...)
}

// algorithm ++ amount ++ asset ++ owner ++ recipient ++ expiry ++ status
func packRecord(record lockinfo.Record) []byte {
	buffer := util.ToVarint64(uint64(record.Algorithm))
	buffer = append(buffer, util.ToVarint64(record.Amount)...)
	buffer = append(buffer, util.ToVarint64(record.AssetId)...)
	buffer = appendAccount(buffer, record.Owner)
	buffer = appendAccount(buffer, record.Recipient)
	buffer = append(buffer, util.ToVarint64(record.ExpiryHeight)...)
	return append(buffer, byte(record.Status))
}

func appendAccount(buffer []byte, a *account.Account) []byte {
	packed := a.Bytes()
	buffer = append(buffer, util.ToVarint64(uint64(len(packed)))...)
	return append(buffer, packed...)
}

func unpackRecord(key []byte, value []byte) (lockinfo.Record, error) {
	if lockhash.Hash512Size != len(key) {
		return lockinfo.Record{}, fault.ErrInvalidKeyLength
	}

	record := lockinfo.Record{}
	copy(record.Secret[:], key)

	n := 0
	tag, err := nextVarint(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}
	record.Algorithm, err = lockhash.FromUint64(tag)
	if nil != err {
		return lockinfo.Record{}, err
	}

	record.Amount, err = nextVarint(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}
	record.AssetId, err = nextVarint(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}
	record.Owner, err = nextAccount(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}
	record.Recipient, err = nextAccount(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}
	record.ExpiryHeight, err = nextVarint(value, &n)
	if nil != err {
		return lockinfo.Record{}, err
	}

	if n+1 != len(value) {
		return lockinfo.Record{}, fault.ErrTruncatedRecord
	}
	record.Status = lockinfo.Status(value[n])
	switch record.Status {
	case lockinfo.Unused, lockinfo.Used:
	default:
		return lockinfo.Record{}, fault.ErrInvalidStatusTransition
	}
	return record, nil
}

func unpackBalance(key []byte, value []byte) (balance.Entry, error) {
	if len(key) <= 8 || 8 != len(value) {
		return balance.Entry{}, fault.ErrTruncatedRecord
	}
	split := len(key) - 8
	owner, err := account.FromBytes(key[:split])
	if nil != err {
		return balance.Entry{}, err
	}
	return balance.Entry{
		Owner:   owner,
		AssetId: binary.BigEndian.Uint64(key[split:]),
		Amount:  binary.BigEndian.Uint64(value),
	}, nil
}

func nextVarint(buffer []byte, offset *int) (uint64, error) {
	value, n := util.FromVarint64(buffer[*offset:])
	if 0 == n {
		return 0, fault.ErrTruncatedRecord
	}
	*offset += n
	return value, nil
}

func nextAccount(buffer []byte, offset *int) (*account.Account, error) {
	length, err := nextVarint(buffer, offset)
	if nil != err {
		return nil, err
	}
	end := *offset + int(length)
	if length > uint64(len(buffer)) || end > len(buffer) {
		return nil, fault.ErrTruncatedRecord
	}
	a, err := account.FromBytes(buffer[*offset:end])
	if nil != err {
		return nil, err
	}
	*offset = end
	return a, nil
}
