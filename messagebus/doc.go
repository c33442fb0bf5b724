// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - bounded queues carrying committed lock events
// to external observers
//
// sending never blocks: a full queue drops the message and counts it
package messagebus
