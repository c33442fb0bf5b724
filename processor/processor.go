// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/messagebus"
	"github.com/bitmark-inc/hashlockd/notification"
	"github.com/bitmark-inc/hashlockd/observers"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
	"github.com/bitmark-inc/hashlockd/validators"
)

// messagebus commands
const (
	ProofCommand  = "proof"
	RefundCommand = "refund"
)

// Store - persistence of a committed block
//
// Begin is called before the in-memory commits so that change sinks
// registered on the cache and ledger are inside the store transaction
type Store interface {
	Begin() error
	Commit(height uint64) error
	Abort()
}

// Options - processor set up
type Options struct {
	Testnet bool              // accounts must carry the test flag
	Policy  validators.Policy // zero value selects the default policy
	Store   Store             // optional
	Proofs  *messagebus.Queue // optional, receives accepted proofs
	Refunds *messagebus.Queue // optional, receives refunded locks
}

// Outcome - result of one transaction
//
// Err is set for a transaction that could not be unpacked or
// published, otherwise Result holds the validation result
type Outcome struct {
	Result validators.Result
	Err    error
}

// IsAccepted - true if the transaction passed every check
func (o Outcome) IsAccepted() bool {
	return nil == o.Err && o.Result.IsSuccess()
}

// Processor - applies blocks to the lock cache and balance ledger
type Processor struct {
	sync.Mutex // one block at a time

	log        *logger.L
	testnet    bool
	locks      *lockinfo.Cache
	balances   *balance.Ledger
	validators *validators.Registry
	observers  *observers.Registry
	store      Store
	proofs     *messagebus.Queue
	refunds    *messagebus.Queue
}

// New - processor over an existing cache and ledger
func New(locks *lockinfo.Cache, balances *balance.Ledger, options Options) *Processor {
	policy := options.Policy
	if 0 == len(policy.Algorithms) {
		policy = validators.DefaultPolicy()
	}

	return &Processor{
		log:        logger.New("processor"),
		testnet:    options.Testnet,
		locks:      locks,
		balances:   balances,
		validators: validators.NewDefaultRegistry(policy),
		observers:  observers.NewDefaultRegistry(),
		store:      options.Store,
		proofs:     options.Proofs,
		refunds:    options.Refunds,
	}
}

// Height - height of the last committed block
func (p *Processor) Height() uint64 {
	return p.locks.CreateView().Height()
}

// unpack and publish a single packed transaction
func (p *Processor) notifications(packed transactionrecord.Packed, height uint64) ([]notification.Notification, error) {
	tx, n, err := packed.Unpack(p.testnet)
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.ErrNotTransactionPack
	}
	return notification.Publish(tx, height)
}

// the per-transaction step shared by every block mode
//
// observers only run once validation succeeded, so a rejected
// transaction leaves the deltas untouched
func (p *Processor) execute(packed transactionrecord.Packed, vctx *validators.Context, octx *observers.Context) Outcome {
	ns, err := p.notifications(packed, vctx.Height)
	if nil != err {
		return Outcome{Err: err}
	}

	result := p.validators.Validate(ns, vctx)
	if !result.IsSuccess() {
		return Outcome{Result: result}
	}

	err = p.observers.Notify(ns, octx)
	fault.PanicIfError("processor: observer after successful validation", err)

	return Outcome{Result: validators.Success}
}
