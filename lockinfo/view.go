// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"hash/maphash"

	"github.com/benbjohnson/immutable"

	"github.com/bitmark-inc/hashlockd/lockhash"
)

// Reader - read access shared by View and Delta
type Reader interface {
	Find(secret lockhash.Hash512) (Record, bool)
	Height() uint64
}

// one immutable committed state
//
// successive generations share the unchanged parts of their maps
type generation struct {
	number  uint64
	height  uint64
	records *immutable.Map[lockhash.Hash512, Record]
	expiry  expiryIndex
	used    uint64
}

var secretSeed = maphash.MakeSeed()

type secretHasher struct{}

func (secretHasher) Hash(key lockhash.Hash512) uint32 {
	h := maphash.Bytes(secretSeed, key[:])
	return uint32(h ^ h>>32)
}

func (secretHasher) Equal(a lockhash.Hash512, b lockhash.Hash512) bool {
	return a == b
}

func emptyGeneration() *generation {
	return &generation{
		records: immutable.NewMap[lockhash.Hash512, Record](secretHasher{}),
		expiry:  emptyExpiryIndex(),
	}
}

// View - read-only snapshot of one committed generation
//
// safe for use from any number of goroutines
type View struct {
	g *generation
}

// Find - look up a record by secret
func (v *View) Find(secret lockhash.Hash512) (Record, bool) {
	return v.g.records.Get(secret)
}

// Height - block height of the last commit
func (v *View) Height() uint64 {
	return v.g.height
}

// Generation - sequence number of the snapshot
func (v *View) Generation() uint64 {
	return v.g.number
}

// Len - number of present records
func (v *View) Len() int {
	return v.g.records.Len()
}

// UsedCount - number of present records in the Used state
func (v *View) UsedCount() int {
	return int(v.g.used)
}

// Expiring - secrets of Unused records with expiry at or below height
func (v *View) Expiring(height uint64) []lockhash.Hash512 {
	return v.g.expiry.due(height)
}

// IsIndexed - true if the secret has an expiry index entry at height
func (v *View) IsIndexed(height uint64, secret lockhash.Hash512) bool {
	return v.g.expiry.contains(height, secret)
}

// Records - all present records ordered by secret
func (v *View) Records() []Record {
	records := make([]Record, 0, v.g.records.Len())
	itr := v.g.records.Iterator()
	for !itr.Done() {
		_, r, _ := itr.Next()
		records = append(records, r)
	}
	sortRecords(records)
	return records
}
