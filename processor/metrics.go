// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace = "hashlockd"
	metricsSubsystem = "processor"
)

var (
	blocksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "blocks_total",
			Help:      "Blocks processed by mode and outcome",
		},
		[]string{"mode", "outcome"},
	)

	transactionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "transactions_total",
			Help:      "Transactions processed by result",
		},
		[]string{"result"},
	)

	refundsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "refunds_total",
		Help:      "Expired locks refunded to their owners",
	})

	committedHeight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "committed_height",
		Help:      "Height of the last committed block",
	})

	presentLocks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "locks",
		Help:      "Lock records present in the committed generation",
	})

	expiringLocks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Subsystem: metricsSubsystem,
		Name:      "unused_locks",
		Help:      "Unused lock records waiting for a proof or expiry",
	})

	blockDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "block_duration_seconds",
			Help:      "Time to process a block",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
		[]string{"mode"},
	)
)

// Collectors - all processor metrics for registration by the caller
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		blocksTotal,
		transactionsTotal,
		refundsTotal,
		committedHeight,
		presentLocks,
		expiringLocks,
		blockDuration,
	}
}

// label for a transaction outcome
func resultLabel(o Outcome) string {
	if nil != o.Err {
		return "malformed"
	}
	return o.Result.String()
}
