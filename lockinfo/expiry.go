// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"bytes"

	"github.com/benbjohnson/immutable"

	"github.com/bitmark-inc/hashlockd/lockhash"
)

type expiryEntry struct {
	height uint64
	secret lockhash.Hash512
}

// order by height then secret bytes
type expiryComparer struct{}

func (expiryComparer) Compare(a expiryEntry, b expiryEntry) int {
	switch {
	case a.height < b.height:
		return -1
	case a.height > b.height:
		return 1
	default:
		return bytes.Compare(a.secret[:], b.secret[:])
	}
}

// expiryIndex - (height, secret) of present Unused records
//
// persistent: apply returns a new index sharing structure with the
// old one, which is left unchanged
type expiryIndex struct {
	entries *immutable.SortedMap[expiryEntry, struct{}]
}

func emptyExpiryIndex() expiryIndex {
	return expiryIndex{
		entries: immutable.NewSortedMap[expiryEntry, struct{}](expiryComparer{}),
	}
}

// count of indexed secrets
func (e expiryIndex) len() int {
	return e.entries.Len()
}

// secrets expiring at or below height, in height then secret order
//
// stops at the first later entry so the cost follows the number of
// due secrets, not the size of the index
func (e expiryIndex) due(height uint64) []lockhash.Hash512 {
	result := make([]lockhash.Hash512, 0)
	itr := e.entries.Iterator()
	for !itr.Done() {
		k, _, _ := itr.Next()
		if k.height > height {
			break
		}
		result = append(result, k.secret)
	}
	return result
}

// contains - true if the secret is indexed at height
func (e expiryIndex) contains(height uint64, secret lockhash.Hash512) bool {
	_, ok := e.entries.Get(expiryEntry{height: height, secret: secret})
	return ok
}

// apply - new index with the removals then the additions applied
func (e expiryIndex) apply(removes []expiryEntry, adds []expiryEntry) expiryIndex {
	entries := e.entries
	for _, r := range removes {
		entries = entries.Delete(r)
	}
	for _, a := range adds {
		entries = entries.Set(a, struct{}{})
	}
	return expiryIndex{
		entries: entries,
	}
}
