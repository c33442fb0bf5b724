// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

//go:generate mockgen -destination=mocks/access.go -package=mocks github.com/bitmark-inc/hashlockd/storage Access
//go:generate mockgen -destination=mocks/cache.go -package=mocks github.com/bitmark-inc/hashlockd/storage Cache

// Package storage - maintain the on-disk projection of committed state
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. height       = big endian uint64 (8 bytes)
// 4. secret       = 64 byte zero padded lock secret
// 5. owner        = packed account (key variant ++ public key)
// 6. asset        = big endian uint64 (8 bytes)
//
// Locks:
//
//	S ++ secret                - present lock records
//	                             data: algorithm ++ amount ++ asset ++ owner ++ recipient ++ expiry ++ status
//	E ++ height ++ secret      - expiry index of Unused locks
//	                             data: empty
//
// Balances:
//
//	B ++ owner ++ asset        - non-zero balances
//	                             data: amount (big endian uint64)
//
// Chain:
//
//	H ++ "height"              - last committed block height
//	                             data: height
package storage
