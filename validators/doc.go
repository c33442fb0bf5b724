// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package validators - acceptance checks on notifications
//
// a validator maps a notification and a read-only context to a
// Result and never changes state.  The registry runs the validators
// of each notification in registration order, notifications in
// emission order, and stops at the first failure.
package validators
