// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrCannotDecodeAccount        = RecordError("cannot decode account")
	ErrChecksumMismatch           = ProcessError("checksum mismatch")
	ErrDeltaInUse                 = ExistsError("lock cache delta already in use")
	ErrDuplicateKey               = ExistsError("duplicate key")
	ErrHeightRegression           = InvalidError("height is below last committed height")
	ErrInvalidAmount              = InvalidError("invalid amount")
	ErrInvalidChain               = InvalidError("invalid chain")
	ErrInvalidConfiguration       = InvalidError("invalid configuration")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidDuration            = InvalidError("invalid duration")
	ErrInvalidHashAlgorithm       = InvalidError("invalid hash algorithm")
	ErrInvalidKeyLength           = InvalidError("invalid key length")
	ErrInvalidKeyType             = InvalidError("invalid key type")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidOwnerOrRecipient    = InvalidError("invalid owner or recipient")
	ErrInvalidSecretPadding       = InvalidError("secret has non-zero padding beyond algorithm width")
	ErrInvalidStatusTransition    = InvalidError("invalid lock status transition")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInsufficientBalance        = InvalidError("insufficient balance")
	ErrLockNotFound               = NotFoundError("lock not found or already used")
	ErrMissingBuilderField        = InvalidError("missing builder field")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrNotLink                    = RecordError("not a link")
	ErrNotPublicKey               = RecordError("not a public key")
	ErrNotTransactionPack         = RecordError("not a transaction pack")
	ErrProofTooLong               = LengthError("proof too long")
	ErrSignatureTooLong           = LengthError("signature too long")
	ErrSupplyOverflow             = InvalidError("asset supply exceeds maximum balance")
	ErrTransactionFailedToApply   = ProcessError("transaction failed to apply")
	ErrTransactionInUse           = ExistsError("storage transaction already in use")
	ErrTransactionNotInUse        = NotFoundError("storage transaction not in use")
	ErrTruncatedRecord            = RecordError("truncated record")
	ErrWrongNetworkForPublicKey   = InvalidError("wrong network for public key")
	ErrUnsupportedStorageVersion  = ProcessError("unsupported storage version")
	ErrUnexpectedTransactionCount = ProcessError("unexpected transaction count")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }
