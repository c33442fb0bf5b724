// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/hashlockd/background"
	"github.com/bitmark-inc/hashlockd/messagebus"
)

// drains a queue until shutdown
type drainer struct {
	sync.Mutex
	queue    *messagebus.Queue
	commands []string
	finished bool
}

func (d *drainer) Run(args interface{}, shutdown <-chan struct{}) {
	t := args.(*testing.T)
	t.Logf("drainer started")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-d.queue.Chan():
			d.Lock()
			d.commands = append(d.commands, item.Command)
			d.Unlock()
		}
	}

	d.Lock()
	d.finished = true
	d.Unlock()
}

func (d *drainer) received() int {
	d.Lock()
	defer d.Unlock()
	return len(d.commands)
}

func TestBackground(t *testing.T) {
	d1 := &drainer{queue: messagebus.NewQueue(10)}
	d2 := &drainer{queue: messagebus.NewQueue(10)}

	p := background.Start(background.Processes{d1, d2}, t)

	assert.True(t, d1.queue.Send("one"))
	assert.True(t, d1.queue.Send("two"))
	assert.True(t, d2.queue.Send("three"))

	assert.Eventually(t, func() bool {
		return 2 == d1.received() && 1 == d2.received()
	}, time.Second, time.Millisecond)

	p.Stop()
	p.Stop()

	assert.True(t, d1.finished, "stop must wait for the process to return")
	assert.True(t, d2.finished, "stop must wait for the process to return")
	assert.Equal(t, []string{"one", "two"}, d1.commands)
	assert.Equal(t, []string{"three"}, d2.commands)
}

func TestStopWithoutProcesses(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
