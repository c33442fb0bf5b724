// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Validation failures are not errors; they are returned as
// validators.Result values.  The errors here cover malformed input,
// storage problems and caller mistakes that can be reported.  Broken
// invariants go through the Panic functions in log.go.
package fault
