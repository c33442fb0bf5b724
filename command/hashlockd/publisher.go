// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/account"
	"github.com/bitmark-inc/hashlockd/counter"
	"github.com/bitmark-inc/hashlockd/messagebus"
	"github.com/bitmark-inc/hashlockd/processor"
)

// drains the proof and refund queues to the log
type publisher struct {
	log       *logger.L
	proofs    *messagebus.Queue
	refunds   *messagebus.Queue
	published counter.Counter
}

func newPublisher(proofs *messagebus.Queue, refunds *messagebus.Queue) *publisher {
	return &publisher{
		log:     logger.New("publisher"),
		proofs:  proofs,
		refunds: refunds,
	}
}

// Run - background process
func (pub *publisher) Run(args interface{}, shutdown <-chan struct{}) {
	pub.log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-pub.proofs.Chan():
			pub.process(item)
		case item := <-pub.refunds.Chan():
			pub.process(item)
		}
	}

	// flush anything queued before shutdown
drain:
	for {
		select {
		case item := <-pub.proofs.Chan():
			pub.process(item)
		case item := <-pub.refunds.Chan():
			pub.process(item)
		default:
			break drain
		}
	}

	pub.log.Infof("stopped  published: %d  dropped proofs: %d  dropped refunds: %d",
		pub.published.Uint64(), pub.proofs.Dropped(), pub.refunds.Dropped())
}

func (pub *publisher) process(item messagebus.Message) {
	pub.published.Increment()

	switch item.Command {
	case processor.ProofCommand:
		if 3 != len(item.Parameters) {
			pub.log.Errorf("proof: bad parameter count: %d", len(item.Parameters))
			return
		}
		pub.log.Infof("proof: secret: %s  algorithm: %s  signer: %s",
			hex.EncodeToString(item.Parameters[0]), item.Parameters[1], accountText(item.Parameters[2]))

	case processor.RefundCommand:
		if 4 != len(item.Parameters) {
			pub.log.Errorf("refund: bad parameter count: %d", len(item.Parameters))
			return
		}
		pub.log.Infof("refund: secret: %s  owner: %s",
			hex.EncodeToString(item.Parameters[0]), accountText(item.Parameters[1]))

	default:
		pub.log.Errorf("unknown command: %q", item.Command)
	}
}

func accountText(packed []byte) string {
	a, err := account.FromBytes(packed)
	if nil != err {
		return hex.EncodeToString(packed)
	}
	return a.String()
}
