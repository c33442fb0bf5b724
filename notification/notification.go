// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package notification - decompose transactions into ordered facts
//
// a notification is an immutable value describing one thing a
// transaction asserts; validators and observers are both keyed by
// the notification Type
package notification

import (
	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/lockhash"
)

// Type - tag of a notification variant
type Type uint8

// the closed set of notification types
const (
	BalanceDebitType Type = iota
	SecretLockType
	HashAlgorithmType
	ProofSecretType
	ProofPublicationType

	// this item must be last
	typeLimit
)

var typeNames = [typeLimit]string{
	BalanceDebitType:     "BalanceDebit",
	SecretLockType:       "SecretLock",
	HashAlgorithmType:    "HashAlgorithm",
	ProofSecretType:      "ProofSecret",
	ProofPublicationType: "ProofPublication",
}

// String - name of the type
func (t Type) String() string {
	if t >= typeLimit {
		return "*unknown*"
	}
	return typeNames[t]
}

// Types - all notification types
func Types() []Type {
	types := make([]Type, 0, typeLimit)
	for t := Type(0); t < typeLimit; t += 1 {
		types = append(types, t)
	}
	return types
}

// Notification - one of the variants below
type Notification interface {
	Type() Type
	notification()
}

// BalanceDebit - amount taken from the sender's balance
type BalanceDebit struct {
	Sender  *account.Account
	AssetId uint64
	Amount  uint64
}

// SecretLock - a new lock to be created
type SecretLock struct {
	Owner        *account.Account
	Recipient    *account.Account
	AssetId      uint64
	Amount       uint64
	Algorithm    lockhash.Algorithm
	Secret       lockhash.Hash512
	Duration     uint64
	ExpiryHeight uint64
}

// HashAlgorithm - algorithm declared by a proof
type HashAlgorithm struct {
	Algorithm lockhash.Algorithm
}

// ProofSecret - the content of a proof
type ProofSecret struct {
	Algorithm lockhash.Algorithm
	Secret    lockhash.Hash512
	Proof     []byte
}

// ProofPublication - a proof for external observers
type ProofPublication struct {
	Signer    *account.Account
	Algorithm lockhash.Algorithm
	Secret    lockhash.Hash512
}

// Type - notification variant
func (BalanceDebit) Type() Type     { return BalanceDebitType }
func (SecretLock) Type() Type       { return SecretLockType }
func (HashAlgorithm) Type() Type    { return HashAlgorithmType }
func (ProofSecret) Type() Type      { return ProofSecretType }
func (ProofPublication) Type() Type { return ProofPublicationType }

func (BalanceDebit) notification()     {}
func (SecretLock) notification()       {}
func (HashAlgorithm) notification()    {}
func (ProofSecret) notification()      {}
func (ProofPublication) notification() {}
