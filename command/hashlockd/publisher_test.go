// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/background"
	"github.com/bitmark-inc/hashlockd/messagebus"
	"github.com/bitmark-inc/hashlockd/processor"
	"github.com/bitmark-inc/hashlockd/util"
)

func TestPublisherDrainsOnStop(t *testing.T) {
	proofs := messagebus.NewQueue(5)
	refunds := messagebus.NewQueue(5)
	pub := newPublisher(proofs, refunds)

	assert.True(t, proofs.Send(processor.ProofCommand, []byte{0x01}, []byte("sha3"), owner.Bytes()))
	assert.True(t, refunds.Send(processor.RefundCommand, []byte{0x02}, owner.Bytes(), util.ToVarint64(1), util.ToVarint64(2)))
	assert.True(t, refunds.Send("bogus"))

	bg := background.Start(background.Processes{pub}, nil)
	bg.Stop()

	assert.Equal(t, uint64(3), pub.published.Uint64())
}

func TestAccountText(t *testing.T) {
	assert.Equal(t, owner.String(), accountText(owner.Bytes()))
	assert.Equal(t, "0102", accountText([]byte{0x01, 0x02}))
}
