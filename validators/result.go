// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validators

import (
	"fmt"
)

// Result - outcome of validating one notification
//
//	bits 31..30  severity
//	bits 23..16  facility
//	bits 15..0   code
type Result uint32

// Severity - result class
type Severity uint8

// severities
const (
	SeveritySuccess Severity = 0
	SeverityNeutral Severity = 1
	SeverityFailure Severity = 3
)

// Facility - subsystem that defines a result
type Facility uint8

// facilities
const (
	FacilityCore Facility = 0x43
	FacilityLock Facility = 0x4c
)

// MakeResult - compose a result value
func MakeResult(severity Severity, facility Facility, code uint16) Result {
	return Result(uint32(severity)<<30 | uint32(facility)<<16 | uint32(code))
}

func makeFailure(facility Facility, code uint16) Result {
	return MakeResult(SeverityFailure, facility, code)
}

// result values are fixed, new codes are only ever appended
var (
	Success = MakeResult(SeveritySuccess, 0, 0)

	FailureLockUnknownSecret         = makeFailure(FacilityLock, 1)
	FailureLockInactiveSecret        = makeFailure(FacilityLock, 2)
	FailureLockHashAlgorithmMismatch = makeFailure(FacilityLock, 3)
	FailureLockSecretAlreadyUsed     = makeFailure(FacilityLock, 4)
	FailureLockProofMismatch         = makeFailure(FacilityLock, 5)
	FailureLockDuplicateKey          = makeFailure(FacilityLock, 6)
	FailureLockInvalidDuration       = makeFailure(FacilityLock, 7)
	FailureLockInvalidMosaicAmount   = makeFailure(FacilityLock, 8)
	FailureLockInvalidHashAlgorithm  = makeFailure(FacilityLock, 9)
	FailureLockProofSizeOutOfBounds  = makeFailure(FacilityLock, 10)

	FailureCoreInsufficientBalance = makeFailure(FacilityCore, 1)
	FailureCoreBalanceOverflow     = makeFailure(FacilityCore, 2)
)

var resultNames = map[Result]string{
	Success: "Success",

	FailureLockUnknownSecret:         "Failure_Lock_Unknown_Secret",
	FailureLockInactiveSecret:        "Failure_Lock_Inactive_Secret",
	FailureLockHashAlgorithmMismatch: "Failure_Lock_Hash_Algorithm_Mismatch",
	FailureLockSecretAlreadyUsed:     "Failure_Lock_Secret_Already_Used",
	FailureLockProofMismatch:         "Failure_Lock_Proof_Mismatch",
	FailureLockDuplicateKey:          "Failure_Lock_Duplicate_Key",
	FailureLockInvalidDuration:       "Failure_Lock_Invalid_Duration",
	FailureLockInvalidMosaicAmount:   "Failure_Lock_Invalid_Mosaic_Amount",
	FailureLockInvalidHashAlgorithm:  "Failure_Lock_Invalid_Hash_Algorithm",
	FailureLockProofSizeOutOfBounds:  "Failure_Lock_Proof_Size_Out_Of_Bounds",

	FailureCoreInsufficientBalance: "Failure_Core_Insufficient_Balance",
	FailureCoreBalanceOverflow:     "Failure_Core_Balance_Overflow",
}

// Severity - class of the result
func (r Result) Severity() Severity {
	return Severity(r >> 30)
}

// Facility - subsystem of the result
func (r Result) Facility() Facility {
	return Facility(r >> 16)
}

// Code - number within the facility
func (r Result) Code() uint16 {
	return uint16(r)
}

// IsSuccess - true only for Success
func (r Result) IsSuccess() bool {
	return SeveritySuccess == r.Severity()
}

// IsFailure - true for any failure
func (r Result) IsFailure() bool {
	return SeverityFailure == r.Severity()
}

// String - canonical name, unknown values as hex
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Result(0x%08x)", uint32(r))
}

// Error - failed result as an error
type Error struct {
	Result Result
	Index  int // of the failing transaction
}

// Error - the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("transaction %d: %s", e.Index, e.Result)
}
