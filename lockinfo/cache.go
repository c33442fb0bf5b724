// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/benbjohnson/immutable"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/counter"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

// ChangeKind - what happened to a record in a commit
type ChangeKind uint8

// possible changes
const (
	Insert ChangeKind = iota
	Update
	Remove
)

// String - name of the change
func (k ChangeKind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Update:
		return "update"
	case Remove:
		return "remove"
	default:
		return "*unknown*"
	}
}

// ChangeSink - receives committed record changes
//
// called once per changed record after the new generation is
// published, in secret order; a removal carries the record as it
// was before removal
type ChangeSink interface {
	OnRecordChanged(record Record, kind ChangeKind)
}

// Stats - snapshot of the cache counters
type Stats struct {
	Generation uint64
	Height     uint64
	Records    uint64
	Used       uint64
	Indexed    uint64 // Unused records in the expiry index
	Commits    uint64
	Discards   uint64
}

// Cache - the lock record cache
type Cache struct {
	sync.Mutex // serialises delta creation and commit

	log     *logger.L
	current atomic.Value // *generation

	delta       *Delta
	deltaNumber uint64
	sinks       []ChangeSink

	records  counter.Counter
	used     counter.Counter
	commits  counter.Counter
	discards counter.Counter
}

// New - create an empty cache
func New() *Cache {
	c := &Cache{
		log: logger.New("lockinfo"),
	}
	c.current.Store(emptyGeneration())
	return c
}

func (c *Cache) load() *generation {
	return c.current.Load().(*generation)
}

// AddSink - register a receiver for committed changes
func (c *Cache) AddSink(sink ChangeSink) {
	c.Lock()
	defer c.Unlock()
	c.sinks = append(c.sinks, sink)
}

// CreateView - snapshot of the last committed generation
func (c *Cache) CreateView() *View {
	return &View{
		g: c.load(),
	}
}

// CreateDelta - start the single writable overlay
func (c *Cache) CreateDelta() (*Delta, error) {
	c.Lock()
	defer c.Unlock()

	if nil != c.delta {
		return nil, fault.ErrDeltaInUse
	}

	c.deltaNumber += 1
	c.delta = &Delta{
		number: c.deltaNumber,
		base:   c.load(),
		writes: make(map[lockhash.Hash512]*Record),
	}
	return c.delta, nil
}

// must hold lock
func (c *Cache) checkOutstanding(delta *Delta, operation string) {
	if nil == delta {
		fault.Panicf("lockinfo: %s of nil delta", operation)
	}
	if delta != c.delta {
		fault.Panicf("lockinfo: %s of delta %d which is not outstanding", operation, delta.number)
	}
	if delta.base != c.load() {
		fault.Panicf("lockinfo: %s of delta %d with stale base generation", operation, delta.number)
	}
}

type change struct {
	record Record
	kind   ChangeKind
}

// Commit - publish the delta's writes as a new generation at height
//
// a height below the last committed height is rejected and the delta
// stays outstanding
func (c *Cache) Commit(delta *Delta, height uint64) error {
	c.Lock()
	defer c.Unlock()

	c.checkOutstanding(delta, "commit")
	base := delta.base

	if height < base.height {
		c.log.Warnf("commit delta %d: height %d below %d", delta.number, height, base.height)
		return fault.ErrHeightRegression
	}

	secrets := make([]lockhash.Hash512, 0, len(delta.writes))
	for s := range delta.writes {
		secrets = append(secrets, s)
	}
	sortSecrets(secrets)

	// only the written secrets are touched, the rest is shared with base
	records := base.records
	used := base.used
	removes := make([]expiryEntry, 0)
	adds := make([]expiryEntry, 0)
	changes := make([]change, 0, len(secrets))

	for _, s := range secrets {
		w := delta.writes[s]
		old, existed := base.records.Get(s)

		if existed {
			if Unused == old.Status {
				removes = append(removes, expiryEntry{height: old.ExpiryHeight, secret: s})
			} else {
				used -= 1
			}
		}

		if nil == w {
			if !existed {
				continue // inserted then removed within the delta
			}
			records = records.Delete(s)
			changes = append(changes, change{record: old, kind: Remove})
			continue
		}

		records = records.Set(s, *w)
		if Unused == w.Status {
			adds = append(adds, expiryEntry{height: w.ExpiryHeight, secret: s})
		} else {
			used += 1
		}

		kind := Insert
		if existed {
			kind = Update
		}
		changes = append(changes, change{record: *w, kind: kind})
	}

	next := &generation{
		number:  base.number + 1,
		height:  height,
		records: records,
		expiry:  base.expiry.apply(removes, adds),
		used:    used,
	}
	c.current.Store(next)

	delta.closed = true
	c.delta = nil

	c.records.Store(uint64(records.Len()))
	c.used.Store(used)
	c.commits.Increment()

	c.log.Debugf("commit delta %d: generation: %d  height: %d  changes: %d", delta.number, next.number, height, len(changes))

	for _, ch := range changes {
		for _, sink := range c.sinks {
			sink.OnRecordChanged(ch.record, ch.kind)
		}
	}
	return nil
}

// Discard - drop the delta, committed state is untouched
func (c *Cache) Discard(delta *Delta) {
	c.Lock()
	defer c.Unlock()

	c.checkOutstanding(delta, "discard")

	delta.closed = true
	c.delta = nil
	c.discards.Increment()

	c.log.Debugf("discard delta %d: writes: %d", delta.number, len(delta.writes))
}

// PruneExpired - remove expired Unused records in a delta of its own
// and commit it at height
func (c *Cache) PruneExpired(height uint64) ([]lockhash.Hash512, error) {
	d, err := c.CreateDelta()
	if nil != err {
		return nil, err
	}

	removed := d.PruneExpired(height)

	err = c.Commit(d, height)
	if nil != err {
		c.Discard(d)
		return nil, err
	}

	secrets := make([]lockhash.Hash512, len(removed))
	for i, r := range removed {
		secrets[i] = r.Secret
	}
	return secrets, nil
}

// Restore - install previously committed records into an empty cache
//
// change sinks are not called
func (c *Cache) Restore(height uint64, records []Record) error {
	c.Lock()
	defer c.Unlock()

	if nil != c.delta {
		return fault.ErrDeltaInUse
	}
	if 0 != c.load().number {
		return fault.ErrAlreadyInitialised
	}

	builder := immutable.NewMapBuilder[lockhash.Hash512, Record](secretHasher{})
	expiry := immutable.NewSortedMapBuilder[expiryEntry, struct{}](expiryComparer{})
	used := uint64(0)

	for _, r := range records {
		if _, ok := builder.Get(r.Secret); ok {
			return fault.ErrDuplicateKey
		}
		switch r.Status {
		case Unused:
			expiry.Set(expiryEntry{height: r.ExpiryHeight, secret: r.Secret}, struct{}{})
		case Used:
			used += 1
		default:
			return fault.ErrInvalidStatusTransition
		}
		builder.Set(r.Secret, r)
	}

	g := &generation{
		number:  1,
		height:  height,
		records: builder.Map(),
		expiry:  expiryIndex{entries: expiry.Map()},
		used:    used,
	}

	c.current.Store(g)
	c.records.Store(uint64(g.records.Len()))
	c.used.Store(g.used)

	c.log.Infof("restored %d records at height %d", len(records), height)
	return nil
}

// Stats - current counters
func (c *Cache) Stats() Stats {
	g := c.load()
	return Stats{
		Generation: g.number,
		Height:     g.height,
		Records:    c.records.Uint64(),
		Used:       c.used.Uint64(),
		Indexed:    uint64(g.expiry.len()),
		Commits:    c.commits.Uint64(),
		Discards:   c.discards.Uint64(),
	}
}

func sortSecrets(secrets []lockhash.Hash512) {
	sort.Slice(secrets, func(i, j int) bool {
		return secrets[i].Less(secrets[j])
	})
}

func sortRecords(records []Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].Secret.Less(records[j].Secret)
	})
}
