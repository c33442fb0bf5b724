// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistry(t *testing.T) {
	registry := newMetrics()

	families, err := registry.Gather()
	assert.Nil(t, err, "gather")
	for _, family := range families {
		assert.Contains(t, family.GetName(), "hashlockd_processor_", "namespace")
	}

	// a second registry holds the same collectors
	assert.NotPanics(t, func() { newMetrics() }, "second registry")

	log := logger.New("metrics-test")
	assert.NotPanics(t, func() { logMetrics(log, registry) }, "log metrics")
}
