// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/hashlockd/balance"
	"github.com/bitmark-inc/hashlockd/fault"
	"github.com/bitmark-inc/hashlockd/processor"
	"github.com/bitmark-inc/hashlockd/transactionrecord"
)

// a file of blocks to apply in order
//
//	{
//	  "genesis": [ { "owner": "<base58>", "assetId": 1, "amount": 1000 } ],
//	  "blocks": [ { "height": 1, "transactions": [ "<hex>", … ] } ]
//	}
//
// genesis balances are only credited to an empty database
type blockFile struct {
	Genesis []balance.Entry `json:"genesis"`
	Blocks  []blockItem     `json:"blocks"`
}

type blockItem struct {
	Height       uint64   `json:"height"`
	Transactions []string `json:"transactions"`
}

// result of one block for display
type blockResult struct {
	Height   uint64         `json:"height"`
	Accepted int            `json:"accepted"`
	Rejected []rejectedItem `json:"rejected,omitempty"`
}

type rejectedItem struct {
	Index  int    `json:"index"`
	Result string `json:"result"`
}

func readBlockFile(filename string) (*blockFile, error) {
	data, err := os.ReadFile(filename)
	if nil != err {
		return nil, err
	}
	var file blockFile
	err = json.Unmarshal(data, &file)
	if nil != err {
		return nil, err
	}
	return &file, nil
}

func (item blockItem) packed() ([]transactionrecord.Packed, error) {
	txs := make([]transactionrecord.Packed, len(item.Transactions))
	for i, s := range item.Transactions {
		b, err := hex.DecodeString(s)
		if nil != err {
			return nil, fmt.Errorf("block: %d  transaction: %d  error: %s", item.Height, i, err)
		}
		txs[i] = b
	}
	return txs, nil
}

// credit genesis balances to an empty database
func applyGenesis(log *logger.L, s *state, entries []balance.Entry) error {
	if 0 == len(entries) {
		return nil
	}
	if 0 != s.processor.Height() || 0 != len(s.balances.CreateView().Entries()) {
		log.Warn("genesis ignored: database is not empty")
		return nil
	}
	err := balance.CheckSupply(entries)
	if nil != err {
		log.Errorf("genesis rejected: %s", err)
		return err
	}

	err = s.store.Begin()
	if nil != err {
		return err
	}
	delta, err := s.balances.CreateDelta()
	if nil != err {
		s.store.Abort()
		return err
	}
	for _, e := range entries {
		if nil == e.Owner {
			s.balances.Discard(delta)
			s.store.Abort()
			return fault.ErrInvalidOwnerOrRecipient
		}
		err := delta.Credit(e.Owner, e.AssetId, e.Amount)
		if nil != err {
			s.balances.Discard(delta)
			s.store.Abort()
			return err
		}
	}
	s.balances.Commit(delta)
	log.Infof("genesis: %d balances", len(entries))
	return s.store.Commit(0)
}

// apply every block of a file; apply mode stops at the first
// rejected block, build mode drops rejected transactions
func replay(log *logger.L, s *state, filename string, build bool) ([]blockResult, error) {
	file, err := readBlockFile(filename)
	if nil != err {
		return nil, err
	}

	err = applyGenesis(log, s, file.Genesis)
	if nil != err {
		return nil, err
	}

	results := make([]blockResult, 0, len(file.Blocks))
	for _, item := range file.Blocks {
		txs, err := item.packed()
		if nil != err {
			return results, err
		}

		if !build {
			err = s.processor.ApplyBlock(item.Height, txs)
			if nil != err {
				return results, fmt.Errorf("block: %d  error: %s", item.Height, err)
			}
			results = append(results, blockResult{Height: item.Height, Accepted: len(txs)})
			continue
		}

		accepted, outcomes, err := s.processor.BuildBlock(item.Height, txs)
		if nil != err {
			return results, fmt.Errorf("block: %d  error: %s", item.Height, err)
		}
		results = append(results, makeResult(item.Height, len(accepted), outcomes))
	}
	return results, nil
}

func makeResult(height uint64, accepted int, outcomes []processor.Outcome) blockResult {
	r := blockResult{
		Height:   height,
		Accepted: accepted,
	}
	for i, o := range outcomes {
		switch {
		case nil != o.Err:
			r.Rejected = append(r.Rejected, rejectedItem{Index: i, Result: o.Err.Error()})
		case !o.Result.IsSuccess():
			r.Rejected = append(r.Rejected, rejectedItem{Index: i, Result: o.Result.String()})
		}
	}
	return r
}
