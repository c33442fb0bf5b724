// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/bitmark-inc/hashlockd/processor"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

func memstats() {

	log := logger.New("memory")

	for {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		text, err := json.Marshal(m)
		if nil != err {
			log.Errorf("marshal error: %s", err)
		} else {
			log.Debugf("stats: %s", text)
		}
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		time.Sleep(statsDelay)
	}
}

// registry holding the processor metrics
func newMetrics() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(processor.Collectors()...)
	return registry
}

// write the current metric values to the log in the text
// exposition format, one log line per sample
func logMetrics(log *logger.L, registry *prometheus.Registry) {
	families, err := registry.Gather()
	if nil != err {
		log.Errorf("gather metrics error: %s", err)
		return
	}

	buffer := &bytes.Buffer{}
	for _, family := range families {
		buffer.Reset()
		if _, err := expfmt.MetricFamilyToText(buffer, family); nil != err {
			log.Errorf("format metric: %s  error: %s", family.GetName(), err)
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
			if strings.HasPrefix(line, "#") {
				continue
			}
			log.Infof("metric: %s", line)
		}
	}
}
