// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/storage/mocks"
)

func openTestDB(t *testing.T) *leveldb.DB {
	db, err := leveldb.OpenFile(t.TempDir(), nil)
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestAccessReadsStagedValues(t *testing.T) {
	db := openTestDB(t)
	assert.Nil(t, db.Put([]byte("stored"), []byte("old"), nil))

	a := newDA(db, new(leveldb.Batch), newCache())
	assert.Nil(t, a.Begin())
	assert.True(t, a.InUse())

	a.Put([]byte("fresh"), []byte("new"))
	a.Delete([]byte("stored"))

	value, err := a.Get([]byte("fresh"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("new"), value)

	_, err = a.Get([]byte("stored"))
	assert.Equal(t, leveldb.ErrNotFound, err, "staged delete must hide stored value")

	has, err := a.Has([]byte("stored"))
	assert.Nil(t, err)
	assert.False(t, has)

	// nothing written until commit
	_, err = db.Get([]byte("fresh"), nil)
	assert.Equal(t, leveldb.ErrNotFound, err)

	assert.Nil(t, a.Commit())
	assert.False(t, a.InUse())

	value, err = db.Get([]byte("fresh"), nil)
	assert.Nil(t, err)
	assert.Equal(t, []byte("new"), value)

	_, err = db.Get([]byte("stored"), nil)
	assert.Equal(t, leveldb.ErrNotFound, err)
}

func TestAccessAbortDropsStagedValues(t *testing.T) {
	db := openTestDB(t)

	a := newDA(db, new(leveldb.Batch), newCache())
	assert.Nil(t, a.Begin())
	a.Put([]byte("k"), []byte("v"))
	a.Abort()

	assert.False(t, a.InUse())
	_, err := a.Get([]byte("k"))
	assert.Equal(t, leveldb.ErrNotFound, err)
	assert.Equal(t, fault.ErrTransactionNotInUse, a.Commit())
}

func TestAccessBeginTwice(t *testing.T) {
	db := openTestDB(t)

	a := newDA(db, new(leveldb.Batch), newCache())
	assert.Nil(t, a.Begin())
	assert.Equal(t, fault.ErrTransactionInUse, a.Begin())
}

func TestAccessCommitWithoutBegin(t *testing.T) {
	db := openTestDB(t)

	a := newDA(db, new(leveldb.Batch), newCache())
	assert.Equal(t, fault.ErrTransactionNotInUse, a.Commit())
}

func TestAccessUsesCache(t *testing.T) {
	db := openTestDB(t)
	ctl := gomock.NewController(t)
	c := mocks.NewMockCache(ctl)

	gomock.InOrder(
		c.EXPECT().Set(dbPut, "a", []byte("1")).Times(1),
		c.EXPECT().Set(dbDelete, "b", nil).Times(1),
		c.EXPECT().Get("a").Return([]byte("1"), dbPut, true).Times(1),
		c.EXPECT().Clear().Times(1),
	)

	a := newDA(db, new(leveldb.Batch), c)
	assert.Nil(t, a.Begin())
	a.Put([]byte("a"), []byte("1"))
	a.Delete([]byte("b"))

	value, err := a.Get([]byte("a"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("1"), value)

	assert.Nil(t, a.Commit())
}

func TestCache(t *testing.T) {
	c := newCache()

	_, _, found := c.Get("missing")
	assert.False(t, found)

	c.Set(dbPut, "k", []byte("v"))
	value, op, found := c.Get("k")
	assert.True(t, found)
	assert.Equal(t, dbPut, op)
	assert.Equal(t, []byte("v"), value)

	c.Set(dbDelete, "k", nil)
	_, op, found = c.Get("k")
	assert.True(t, found, "deleted key must still be reported")
	assert.Equal(t, dbDelete, op)

	c.Clear()
	_, _, found = c.Get("k")
	assert.False(t, found)
}
