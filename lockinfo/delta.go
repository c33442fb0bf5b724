// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"sort"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

// Delta - the single writable overlay on the current generation
//
// not safe for concurrent use; after Commit or Discard every method
// panics
type Delta struct {
	number uint64
	base   *generation
	writes map[lockhash.Hash512]*Record // nil value: removed
	closed bool
}

func (d *Delta) check(operation string) {
	if d.closed {
		fault.Panicf("lockinfo: %s on closed delta %d", operation, d.number)
	}
}

func (d *Delta) find(secret lockhash.Hash512) (Record, bool) {
	if w, ok := d.writes[secret]; ok {
		if nil == w {
			return Record{}, false
		}
		return *w, true
	}
	return d.base.records.Get(secret)
}

// Find - look up a record including this delta's own writes
func (d *Delta) Find(secret lockhash.Hash512) (Record, bool) {
	d.check("find")
	return d.find(secret)
}

// Height - height of the generation this delta is based on
func (d *Delta) Height() uint64 {
	d.check("height")
	return d.base.height
}

// Number - identifies the delta in log messages
func (d *Delta) Number() uint64 {
	return d.number
}

// Insert - add a new Unused record
func (d *Delta) Insert(record Record) error {
	d.check("insert")

	if Unused != record.Status {
		return fault.ErrInvalidStatusTransition
	}
	if _, found := d.find(record.Secret); found {
		return fault.ErrDuplicateKey
	}
	d.writes[record.Secret] = &record
	return nil
}

// SetStatus - consume a lock, the only transition is Unused to Used
func (d *Delta) SetStatus(secret lockhash.Hash512, status Status) error {
	d.check("set status")

	if Used != status {
		return fault.ErrInvalidStatusTransition
	}
	r, found := d.find(secret)
	if !found || Used == r.Status {
		return fault.ErrLockNotFound
	}
	r.Status = Used
	d.writes[secret] = &r
	return nil
}

// Remove - drop a present record, Unused or Used
func (d *Delta) Remove(secret lockhash.Hash512) (Record, error) {
	d.check("remove")

	r, found := d.find(secret)
	if !found {
		return Record{}, fault.ErrLockNotFound
	}
	d.writes[secret] = nil
	return r, nil
}

// PruneExpired - remove and return Unused records with expiry at or
// below height, ordered by expiry height then secret
func (d *Delta) PruneExpired(height uint64) []Record {
	d.check("prune expired")

	candidates := d.base.expiry.due(height)
	seen := make(map[lockhash.Hash512]struct{}, len(candidates))
	for _, s := range candidates {
		seen[s] = struct{}{}
	}

	// records written by this delta are not in the base index
	pending := make([]lockhash.Hash512, 0)
	for s, w := range d.writes {
		if nil == w || Unused != w.Status || w.ExpiryHeight > height {
			continue
		}
		if _, ok := seen[s]; !ok {
			pending = append(pending, s)
		}
	}
	sortSecrets(pending)
	candidates = append(candidates, pending...)

	removed := make([]Record, 0, len(candidates))
	for _, s := range candidates {
		r, found := d.find(s)
		if !found || Unused != r.Status || r.ExpiryHeight > height {
			continue
		}
		d.writes[s] = nil
		removed = append(removed, r)
	}

	sort.SliceStable(removed, func(i, j int) bool {
		return removed[i].ExpiryHeight < removed[j].ExpiryHeight
	})
	return removed
}
