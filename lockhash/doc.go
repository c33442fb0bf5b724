// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package lockhash - digest functions that can secure a hash lock
//
//	tag  name     digest                      width
//	0    sha3     SHA3-512                    64
//	1    keccak   Keccak-512                  64
//	2    hash160  RIPEMD-160 of SHA-256       20
//	3    hash256  SHA-256 of SHA-256          32
//
// all secrets are carried as 64 byte values, digests narrower than
// that are stored in the leading bytes followed by zero padding
package lockhash
