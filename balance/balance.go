// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - account balances per asset
//
// same shape as the lock cache: immutable committed snapshots, one
// outstanding Delta, commit by pointer swap
package balance

import (
	"bytes"
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
)

// Entry - the balance of one asset held by one account
type Entry struct {
	Owner   *account.Account `json:"owner"`
	AssetId uint64           `json:"assetId"`
	Amount  uint64           `json:"amount"`
}

type key struct {
	owner   string
	assetId uint64
}

func makeKey(owner *account.Account, assetId uint64) key {
	return key{
		owner:   owner.Key(),
		assetId: assetId,
	}
}

// Reader - balance lookup shared by View and Delta
type Reader interface {
	Balance(owner *account.Account, assetId uint64) uint64
}

// ChangeSink - receives committed balance changes in key order
type ChangeSink interface {
	OnBalanceChanged(entry Entry)
}

// Ledger - the balance cache
type Ledger struct {
	sync.Mutex

	current atomic.Value // map[key]Entry, never modified once stored
	delta   *Delta
	sinks   []ChangeSink
}

// View - read-only snapshot
type View struct {
	entries map[key]Entry
}

// Delta - the single writable overlay
type Delta struct {
	base   map[key]Entry
	writes map[key]Entry
	closed bool
}

// New - empty ledger
func New() *Ledger {
	l := &Ledger{}
	l.current.Store(make(map[key]Entry))
	return l
}

func (l *Ledger) load() map[key]Entry {
	return l.current.Load().(map[key]Entry)
}

// AddSink - register a receiver for committed changes
func (l *Ledger) AddSink(sink ChangeSink) {
	l.Lock()
	defer l.Unlock()
	l.sinks = append(l.sinks, sink)
}

// CreateView - snapshot of committed balances
func (l *Ledger) CreateView() *View {
	return &View{
		entries: l.load(),
	}
}

// CreateDelta - start the single writable overlay
func (l *Ledger) CreateDelta() (*Delta, error) {
	l.Lock()
	defer l.Unlock()

	if nil != l.delta {
		return nil, fault.ErrDeltaInUse
	}
	l.delta = &Delta{
		base:   l.load(),
		writes: make(map[key]Entry),
	}
	return l.delta, nil
}

// Commit - publish the delta
func (l *Ledger) Commit(delta *Delta) {
	l.Lock()
	defer l.Unlock()

	if nil == delta || delta != l.delta {
		fault.Panicf("balance: commit of delta which is not outstanding")
	}

	next := make(map[key]Entry, len(delta.base)+len(delta.writes))
	for k, e := range delta.base {
		next[k] = e
	}
	changes := make([]Entry, 0, len(delta.writes))
	for k, e := range delta.writes {
		if 0 == e.Amount {
			delete(next, k)
		} else {
			next[k] = e
		}
		changes = append(changes, e)
	}
	sortEntries(changes)

	l.current.Store(next)
	delta.closed = true
	l.delta = nil

	for _, e := range changes {
		for _, sink := range l.sinks {
			sink.OnBalanceChanged(e)
		}
	}
}

// Discard - drop the delta
func (l *Ledger) Discard(delta *Delta) {
	l.Lock()
	defer l.Unlock()

	if nil == delta || delta != l.delta {
		fault.Panicf("balance: discard of delta which is not outstanding")
	}
	delta.closed = true
	l.delta = nil
}

// Restore - install balances into an empty ledger, sinks are not called
func (l *Ledger) Restore(entries []Entry) error {
	l.Lock()
	defer l.Unlock()

	if nil != l.delta {
		return fault.ErrDeltaInUse
	}
	if 0 != len(l.load()) {
		return fault.ErrAlreadyInitialised
	}

	next := make(map[key]Entry, len(entries))
	for _, e := range entries {
		k := makeKey(e.Owner, e.AssetId)
		if _, ok := next[k]; ok {
			return fault.ErrDuplicateKey
		}
		if 0 != e.Amount {
			next[k] = e
		}
	}
	l.current.Store(next)
	return nil
}

// CheckSupply - the total of each asset must fit in one balance
//
// while this holds no credit can overflow, since every transfer only
// moves existing supply
func CheckSupply(entries []Entry) error {
	supply := make(map[uint64]uint64, len(entries))
	for _, e := range entries {
		total := supply[e.AssetId]
		if total > math.MaxUint64-e.Amount {
			return fault.ErrSupplyOverflow
		}
		supply[e.AssetId] = total + e.Amount
	}
	return nil
}

// Balance - committed amount
func (v *View) Balance(owner *account.Account, assetId uint64) uint64 {
	return v.entries[makeKey(owner, assetId)].Amount
}

// Entries - all non-zero balances ordered by owner then asset
func (v *View) Entries() []Entry {
	entries := make([]Entry, 0, len(v.entries))
	for _, e := range v.entries {
		entries = append(entries, e)
	}
	sortEntries(entries)
	return entries
}

func (d *Delta) check() {
	if d.closed {
		fault.Panicf("balance: use of closed delta")
	}
}

// Balance - amount including this delta's writes
func (d *Delta) Balance(owner *account.Account, assetId uint64) uint64 {
	d.check()
	k := makeKey(owner, assetId)
	if e, ok := d.writes[k]; ok {
		return e.Amount
	}
	return d.base[k].Amount
}

// Credit - add to a balance
func (d *Delta) Credit(owner *account.Account, assetId uint64, amount uint64) error {
	current := d.Balance(owner, assetId)
	if amount > math.MaxUint64-current {
		return fault.ErrInvalidAmount
	}
	d.set(owner, assetId, current+amount)
	return nil
}

// Debit - subtract from a balance
func (d *Delta) Debit(owner *account.Account, assetId uint64, amount uint64) error {
	current := d.Balance(owner, assetId)
	if amount > current {
		return fault.ErrInsufficientBalance
	}
	d.set(owner, assetId, current-amount)
	return nil
}

func (d *Delta) set(owner *account.Account, assetId uint64, amount uint64) {
	d.writes[makeKey(owner, assetId)] = Entry{
		Owner:   owner,
		AssetId: assetId,
		Amount:  amount,
	}
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		c := bytes.Compare(entries[i].Owner.PublicKey, entries[j].Owner.PublicKey)
		if 0 != c {
			return c < 0
		}
		return entries[i].AssetId < entries[j].AssetId
	})
}
