// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package validators

import (
	"github.com/bitmark-inc/hashlockd/lockhash"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/notification"
)

// NewProofValidator - a proof must open an active, unused lock of
// the same algorithm
//
// checks are ordered so the earliest detectable failure is reported
func NewProofValidator() Validator {
	return New("ProofValidator", func(n notification.Notification, context *Context) Result {
		proof, ok := n.(notification.ProofSecret)
		if !ok {
			return Success
		}

		record, found := context.Locks.Find(proof.Secret)
		if !found {
			return FailureLockUnknownSecret
		}
		if !record.IsActiveAt(context.Height) {
			return FailureLockInactiveSecret
		}
		if record.Algorithm != proof.Algorithm {
			return FailureLockHashAlgorithmMismatch
		}
		if lockinfo.Used == record.Status {
			return FailureLockSecretAlreadyUsed
		}

		digest, err := lockhash.Hash(record.Algorithm, proof.Proof)
		if nil != err || digest != record.Secret {
			return FailureLockProofMismatch
		}
		return Success
	})
}
