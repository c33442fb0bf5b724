// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - statistics counters shared between goroutines
package counter

import (
	"sync/atomic"
)

// Counter - the zero value is ready to use, must not be copied
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Store - replace the value when a total is recomputed
func (c *Counter) Store(n uint64) {
	c.value.Store(n)
}

// Swap - replace the value, returns the previous one
func (c *Counter) Swap(n uint64) uint64 {
	return c.value.Swap(n)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.Uint64()
}
