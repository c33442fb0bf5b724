// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"time"

	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/lockinfo"
	"github.com/bitmark-inc/hashlockd/observers"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
	"github.com/bitmark-inc/hashlockd/util"
	"github.com/bitmark-inc/hashlockd/validators"
)

const (
	modeApply = "apply"
	modeBuild = "build"
)

// ApplyBlock - re-validate and commit a received block
//
// any rejected transaction discards the whole block: the returned
// error is a *validators.Error for a failed check, or the unpack error
// of a malformed transaction
func (p *Processor) ApplyBlock(height uint64, transactions []transactionrecord.Packed) error {
	_, err := p.process(modeApply, height, transactions)
	return err
}

// BuildBlock - assemble a block from candidate transactions
//
// candidates failing any check are dropped; the outcomes parallel the
// candidates and the accepted transactions are returned in order
func (p *Processor) BuildBlock(height uint64, candidates []transactionrecord.Packed) ([]transactionrecord.Packed, []Outcome, error) {
	outcomes, err := p.process(modeBuild, height, candidates)
	if nil != err {
		return nil, nil, err
	}

	accepted := make([]transactionrecord.Packed, 0, len(candidates))
	for i, o := range outcomes {
		if o.IsAccepted() {
			accepted = append(accepted, candidates[i])
		}
	}
	return accepted, outcomes, nil
}

func (p *Processor) process(mode string, height uint64, transactions []transactionrecord.Packed) ([]Outcome, error) {
	p.Lock()
	defer p.Unlock()

	start := time.Now()
	defer func() {
		blockDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	}()

	if last := p.locks.CreateView().Height(); height < last {
		p.log.Warnf("%s: height: %d below committed height: %d", mode, height, last)
		blocksTotal.WithLabelValues(mode, "rejected").Inc()
		return nil, fault.ErrHeightRegression
	}

	lockDelta, err := p.locks.CreateDelta()
	if nil != err {
		return nil, err
	}
	balanceDelta, err := p.balances.CreateDelta()
	if nil != err {
		p.locks.Discard(lockDelta)
		return nil, err
	}

	discard := func() {
		p.locks.Discard(lockDelta)
		p.balances.Discard(balanceDelta)
		blocksTotal.WithLabelValues(mode, "rejected").Inc()
	}

	vctx := &validators.Context{
		Height:   height,
		Locks:    lockDelta,
		Balances: balanceDelta,
	}
	octx := &observers.Context{
		Height:   height,
		Locks:    lockDelta,
		Balances: balanceDelta,
	}

	outcomes := make([]Outcome, len(transactions))
	for i, packed := range transactions {
		o := p.execute(packed, vctx, octx)
		outcomes[i] = o
		transactionsTotal.WithLabelValues(resultLabel(o)).Inc()

		if o.IsAccepted() {
			continue
		}
		if nil != o.Err {
			p.log.Infof("%s: height: %d  transaction: %d  error: %s", mode, height, i, o.Err)
		} else {
			p.log.Infof("%s: height: %d  transaction: %d  result: %s", mode, height, i, o.Result)
		}
		if modeApply == mode {
			discard()
			if nil != o.Err {
				return nil, o.Err
			}
			return nil, &validators.Error{Result: o.Result, Index: i}
		}
	}

	refunded, err := observers.RefundExpired(octx)
	fault.PanicIfError("processor: refund expired locks", err)

	if nil != p.store {
		err = p.store.Begin()
		if nil != err {
			p.log.Errorf("%s: height: %d  store begin error: %s", mode, height, err)
			discard()
			return nil, err
		}
	}

	err = p.locks.Commit(lockDelta, height)
	if nil != err {
		// cannot happen while the lock is held, the height was checked above
		if nil != p.store {
			p.store.Abort()
		}
		discard()
		return nil, err
	}
	p.balances.Commit(balanceDelta)

	if nil != p.store {
		err = p.store.Commit(height)
		fault.PanicIfError("processor: store commit", err)
	}

	blocksTotal.WithLabelValues(mode, "committed").Inc()
	refundsTotal.Add(float64(len(refunded)))
	committedHeight.Set(float64(height))
	p.publish(octx, refunded)

	stats := p.locks.Stats()
	presentLocks.Set(float64(stats.Records))
	expiringLocks.Set(float64(stats.Indexed))

	p.log.Debugf("%s: height: %d  delta: %d  transactions: %d  refunds: %d  locks: %d  unused: %d",
		mode, height, lockDelta.Number(), len(transactions), len(refunded), stats.Records, stats.Indexed)
	return outcomes, nil
}

// send committed proofs and refunds to the external queues
func (p *Processor) publish(octx *observers.Context, refunded []lockinfo.Record) {
	if nil != p.proofs {
		for i := range octx.Publications {
			item := &octx.Publications[i]
			if !p.proofs.Send(ProofCommand, item.Secret[:], []byte(item.Algorithm.String()), item.Signer.Bytes()) {
				p.log.Warnf("proof queue full, dropped secret: %s", item.Secret)
			}
		}
	}
	if nil != p.refunds {
		for i := range refunded {
			r := &refunded[i]
			if !p.refunds.Send(RefundCommand, r.Secret[:], r.Owner.Bytes(), util.ToVarint64(r.AssetId), util.ToVarint64(r.Amount)) {
				p.log.Warnf("refund queue full, dropped secret: %s", r.Secret)
			}
		}
	}
}
