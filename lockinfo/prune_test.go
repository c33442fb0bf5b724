// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo_test

import (
	"encoding/binary"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/hashlockd/lockinfo"
)

// bytes allocated by pruning one expired lock from a cache that also
// holds live far-future locks
func pruneAllocation(t *testing.T, live int) uint64 {
	c := lockinfo.New()

	records := make([]lockinfo.Record, 0, live+1)
	for i := 0; i < live; i += 1 {
		r := makeRecord(1, 1000000)
		binary.BigEndian.PutUint64(r.Secret[:8], uint64(i))
		records = append(records, r)
	}
	expiring := makeRecord(2, 10)
	records = append(records, expiring)
	seed(t, c, 5, records...)

	runtime.GC()
	var before runtime.MemStats
	var after runtime.MemStats
	runtime.ReadMemStats(&before)

	secrets, err := c.PruneExpired(10)

	runtime.ReadMemStats(&after)

	require.Nil(t, err, "prune")
	require.Equal(t, 1, len(secrets), "pruned count")
	require.Equal(t, expiring.Secret, secrets[0], "pruned secret")
	require.Equal(t, live, c.CreateView().Len(), "live records kept")

	return after.TotalAlloc - before.TotalAlloc
}

func TestPruneCostIndependentOfLiveRecords(t *testing.T) {
	small := pruneAllocation(t, 10)
	large := pruneAllocation(t, 100000)

	// copying 100000 records would allocate megabytes
	assert.Less(t, large, uint64(256*1024), "prune allocation with 100000 live: %d  with 10 live: %d", large, small)
}

func TestCommitSharesUnchangedRecords(t *testing.T) {
	c := lockinfo.New()

	records := make([]lockinfo.Record, 0, 1000)
	for i := 0; i < 1000; i += 1 {
		r := makeRecord(1, 500)
		binary.BigEndian.PutUint64(r.Secret[:8], uint64(i))
		records = append(records, r)
	}
	seed(t, c, 1, records...)
	before := c.CreateView()

	extra := makeRecord(3, 600)
	seed(t, c, 2, extra)
	after := c.CreateView()

	assert.Equal(t, 1000, before.Len(), "old generation length")
	assert.Equal(t, 1001, after.Len(), "new generation length")
	_, found := before.Find(extra.Secret)
	assert.False(t, found, "old generation sees new record")
	for _, r := range records[:10] {
		found, ok := after.Find(r.Secret)
		assert.True(t, ok, "record lost")
		assert.Equal(t, r, found, "record changed")
	}
	assert.Equal(t, uint64(1001), c.Stats().Indexed, "indexed")
}
