// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package lockinfo

import (
	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

// Status - state of a lock record
type Status uint8

// possible states, a Used record never returns to Unused
const (
	Unused Status = iota
	Used
)

// String - name of the status
func (s Status) String() string {
	switch s {
	case Unused:
		return "unused"
	case Used:
		return "used"
	default:
		return "*unknown*"
	}
}

// MarshalText - status name for JSON
func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case Unused, Used:
		return []byte(s.String()), nil
	default:
		return nil, fault.ErrInvalidStatusTransition
	}
}

// UnmarshalText - status from its name
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "unused":
		*s = Unused
	case "used":
		*s = Used
	default:
		return fault.ErrInvalidStatusTransition
	}
	return nil
}

// Record - one hash lock, keyed by its secret
//
// account pointers are shared between generations and must not be
// modified after a record is inserted
type Record struct {
	Secret       lockhash.Hash512   `json:"secret"`
	Algorithm    lockhash.Algorithm `json:"algorithm"`
	Amount       uint64             `json:"amount"`
	AssetId      uint64             `json:"assetId"`
	Owner        *account.Account   `json:"owner"`
	Recipient    *account.Account   `json:"recipient"`
	ExpiryHeight uint64             `json:"expiryHeight"`
	Status       Status             `json:"status"`
}

// IsActiveAt - a lock may only be proved below its expiry height
func (r Record) IsActiveAt(height uint64) bool {
	return r.ExpiryHeight > height
}
