// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/chain"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/messagebus"
	"github.com/bitmark-inc/hashlockd/processor"
	"github.com/bitmark-inc/hashlockd/storage"
)

// everything restored from the database
type state struct {
	store     *storage.LockStore
	locks     *lockinfo.Cache
	balances  *balance.Ledger
	processor *processor.Processor
}

// restore committed state and connect the persistence sinks
//
// storage must already be initialised
func newState(log *logger.L, options *Configuration) (*state, error) {
	testnet, err := chain.IsTesting(options.Chain)
	if nil != err {
		return nil, err
	}

	policy, err := options.Lock.policy()
	if nil != err {
		return nil, err
	}

	store, err := storage.NewLockStore()
	if nil != err {
		return nil, err
	}

	locks := lockinfo.New()
	balances := balance.New()

	height, err := store.Load(locks, balances)
	if nil != err {
		return nil, err
	}
	log.Infof("restored height: %d  locks: %d", height, locks.CreateView().Len())

	// sinks only after restore so loading does not write back
	locks.AddSink(store)
	balances.AddSink(store)

	p := processor.New(locks, balances, processor.Options{
		Testnet: testnet,
		Policy:  policy,
		Store:   store,
		Proofs:  messagebus.Bus.Proofs,
		Refunds: messagebus.Bus.Refunds,
	})

	return &state{
		store:     store,
		locks:     locks,
		balances:  balances,
		processor: p,
	}, nil
}
