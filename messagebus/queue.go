// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/bitmark-inc/hashlockd/counter"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its packed parameters
type Message struct {
	Command    string
	Parameters [][]byte
}

// Queue - a bounded channel of messages
type Queue struct {
	c       chan Message
	dropped counter.Counter
}

// the global queues
type busses struct {
	Proofs  *Queue // secret proofs accepted in a committed block
	Refunds *Queue // expired locks returned to their owners
}

// Bus - queues used by the daemon
var Bus = busses{
	Proofs:  NewQueue(queueSize),
	Refunds: NewQueue(queueSize),
}

// NewQueue - create a queue holding up to size messages
func NewQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message, false if the queue was full
func (queue *Queue) Send(command string, parameters ...[]byte) bool {
	select {
	case queue.c <- Message{
		Command:    command,
		Parameters: parameters,
	}:
		return true
	default:
		queue.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - count of messages lost to a full queue
func (queue *Queue) Dropped() uint64 {
	return queue.dropped.Uint64()
}
