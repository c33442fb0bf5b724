// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/hashlockd/transactionrecord"
	"github.com/bitmark-inc/hashlockd/validators"
)

// Precheck - validate independent transactions for inclusion at height
//
// all transactions are checked concurrently against one committed
// snapshot; nothing is modified, so transactions that conflict with
// each other may all pass here and be resolved by BuildBlock
func (p *Processor) Precheck(ctx context.Context, height uint64, transactions []transactionrecord.Packed) ([]Outcome, error) {
	// both views must come from the same block
	p.Lock()
	vctx := &validators.Context{
		Height:   height,
		Locks:    p.locks.CreateView(),
		Balances: p.balances.CreateView(),
	}
	p.Unlock()

	outcomes := make([]Outcome, len(transactions))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range transactions {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); nil != err {
				return err
			}
			ns, err := p.notifications(transactions[i], height)
			if nil != err {
				outcomes[i] = Outcome{Err: err}
				return nil
			}
			outcomes[i] = Outcome{Result: p.validators.Validate(ns, vctx)}
			return nil
		})
	}

	err := g.Wait()
	if nil != err {
		return nil, err
	}
	return outcomes, nil
}
