// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/change_sink.go -package=mocks github.com/bitmark-inc/hashlockd/lockinfo ChangeSink

// Package lockinfo - versioned cache of hash lock records
//
// committed state is held in immutable generations; a View is a
// handle on one generation and never changes.  All writes go through
// the single outstanding Delta, an overlay on the current generation,
// which is either committed (a new generation is published by a
// single pointer swap) or discarded.
//
// Records that are present and Unused are indexed by expiry height so
// that expiry touches only the records due at a height.
//
// basic usage:
//
//	c := lockinfo.New()
//	d, err := c.CreateDelta()
//	...
//	err = d.Insert(record)
//	...
//	err = c.Commit(d, height)
package lockinfo
