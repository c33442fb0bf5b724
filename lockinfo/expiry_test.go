// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/lockhash"
)

func TestExpiryApplyLeavesBase(t *testing.T) {
	a := lockhash.Hash512{0x0a}
	b := lockhash.Hash512{0x0b}
	c := lockhash.Hash512{0x0c}

	base := emptyExpiryIndex().apply(nil, []expiryEntry{
		{height: 20, secret: a},
		{height: 10, secret: b},
	})
	assert.Equal(t, []lockhash.Hash512{b, a}, base.due(20), "height order")
	assert.Equal(t, 2, base.len(), "len")

	next := base.apply([]expiryEntry{{height: 10, secret: b}}, []expiryEntry{{height: 20, secret: c}})

	assert.Equal(t, 2, base.len(), "base len changed")
	assert.True(t, base.contains(10, b), "base lost b")
	assert.False(t, base.contains(20, c), "base gained c")

	assert.False(t, next.contains(10, b), "next kept b")
	assert.True(t, next.contains(20, a), "next lost a")
	assert.True(t, next.contains(20, c), "next lost c")
	assert.False(t, next.contains(10, a), "a at wrong height")

	assert.Equal(t, []lockhash.Hash512{a, c}, next.due(20), "due in secret order")
	assert.Equal(t, 0, len(next.due(19)), "nothing due at 19")

	// removing an absent entry is a no-op
	same := next.apply([]expiryEntry{{height: 99, secret: a}}, nil)
	assert.Equal(t, next.due(100), same.due(100), "due after no-op")
	assert.Equal(t, 2, same.len(), "len after no-op")
}
