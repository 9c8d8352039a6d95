/*
Copyright 2025 The llm-d Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics registers the search core's Prometheus instrumentation:
// how many candidates a run emitted, the most recent throughput sample per
// model, and how long a full search took. Mirrors the teacher's
// sync.Once-guarded InitMetrics/MetricsEmitter split, retargeted from
// per-variant replica-scaling counters to per-model search counters.
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	labelModelName = "model_name"
)

var (
	candidatesEmittedTotal *prometheus.CounterVec
	lastThroughput         *prometheus.GaugeVec
	searchDuration         *prometheus.HistogramVec

	initOnce sync.Once
	initErr  error
)

// InitMetrics registers the search core's metrics with registry. Safe to
// call more than once; only the first call's registry takes effect.
func InitMetrics(registry prometheus.Registerer) error {
	initOnce.Do(func() {
		candidatesEmittedTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wva_profiler_candidates_emitted_total",
				Help: "Total number of RunConfig candidates emitted by the search core.",
			},
			[]string{labelModelName},
		)
		lastThroughput = prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wva_profiler_last_throughput",
				Help: "Most recent perf_throughput measurement observed for a model.",
			},
			[]string{labelModelName},
		)
		searchDuration = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "wva_profiler_search_duration_seconds",
				Help:    "Wall-clock duration of a full configuration search.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{labelModelName},
		)

		if err := registry.Register(candidatesEmittedTotal); err != nil {
			initErr = fmt.Errorf("registering candidatesEmittedTotal metric: %w", err)
			return
		}
		if err := registry.Register(lastThroughput); err != nil {
			initErr = fmt.Errorf("registering lastThroughput metric: %w", err)
			return
		}
		if err := registry.Register(searchDuration); err != nil {
			initErr = fmt.Errorf("registering searchDuration metric: %w", err)
			return
		}
	})

	return initErr
}

// Emitter records search-core events against the metrics InitMetrics
// registered. A zero-value Emitter is usable but silently drops
// observations if InitMetrics was never called (mirroring the teacher's
// nil-gauge guard in MetricsEmitter).
type Emitter struct{}

// NewEmitter returns an Emitter. InitMetrics must be called once beforehand
// for its observations to take effect.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// CandidateEmitted increments the candidate counter for modelName.
func (e *Emitter) CandidateEmitted(modelName string) {
	if candidatesEmittedTotal == nil {
		return
	}
	candidatesEmittedTotal.WithLabelValues(modelName).Inc()
}

// ObserveThroughput records the latest throughput sample for modelName.
func (e *Emitter) ObserveThroughput(modelName string, throughput float64) {
	if lastThroughput == nil {
		return
	}
	lastThroughput.WithLabelValues(modelName).Set(throughput)
}

// ObserveSearchDuration records how long a full search took for modelName.
func (e *Emitter) ObserveSearchDuration(modelName string, d time.Duration) {
	if searchDuration == nil {
		return
	}
	searchDuration.WithLabelValues(modelName).Observe(d.Seconds())
}
