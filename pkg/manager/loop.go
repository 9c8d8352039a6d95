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

package manager

import (
	"context"
	"time"

	"github.com/llm-d-incubation/wva-profiler/internal/interfaces"
	"github.com/llm-d-incubation/wva-profiler/internal/logging"
	"github.com/llm-d-incubation/wva-profiler/internal/metrics"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// runConfigSource is the pull-driven search core's surface, satisfied by
// *generate.RunConfigGenerator. Declared locally so Loop can be tested
// against a fake generator without pkg/manager importing pkg/generate's
// construction helpers.
type runConfigSource interface {
	NextConfig() core.RunConfig
	IsDone() bool
	SetLastResults(results core.Measurements)
}

// Loop drives one runConfigSource to completion against a concrete set of
// upstream collaborators (spec.md §4.6, §6.3).
type Loop struct {
	gen      runConfigSource
	runtime  interfaces.ServingRuntime
	loadTool interfaces.LoadTool
	store    interfaces.ResultStore
	checker  interfaces.ConstraintChecker
	emitter  *metrics.Emitter
}

// NewLoop builds a Loop. store, checker and emitter may be nil: a nil store
// skips persistence, a nil checker accepts every candidate, a nil emitter
// skips metrics.
func NewLoop(
	gen runConfigSource,
	runtime interfaces.ServingRuntime,
	loadTool interfaces.LoadTool,
	store interfaces.ResultStore,
	checker interfaces.ConstraintChecker,
	emitter *metrics.Emitter,
) *Loop {
	return &Loop{gen: gen, runtime: runtime, loadTool: loadTool, store: store, checker: checker, emitter: emitter}
}

// Run pulls candidates until the generator is done or ctx is cancelled,
// dispatching each one and routing its Measurements back. It returns every
// candidate the ConstraintChecker accepted (or every candidate, if none was
// given).
func (l *Loop) Run(ctx context.Context) ([]core.RunConfig, error) {
	var accepted []core.RunConfig

	for !l.gen.IsDone() {
		select {
		case <-ctx.Done():
			return accepted, ctx.Err()
		default:
		}

		run := l.gen.NextConfig()
		logging.L(ctx).Infow("dispatching run config", "run", run.String())

		results := l.dispatch(ctx, run)
		l.gen.SetLastResults(results)

		if l.store != nil {
			if err := l.store.Save(ctx, run, results); err != nil {
				logging.L(ctx).Warnw("saving run result failed", "run", run.String(), "error", err)
			}
		}

		if l.checker == nil || l.checker.Satisfies(run, results) {
			accepted = append(accepted, run)
		}

		if l.emitter != nil {
			for i, m := range run.Models {
				l.emitter.CandidateEmitted(m.ModelName)
				if i < len(results) && results[i] != nil {
					if t, ok := results[i].GetMetric("perf_throughput"); ok {
						l.emitter.ObserveThroughput(m.ModelName, t)
					}
				}
			}
		}
	}

	return accepted, nil
}

// dispatch starts/stops the serving runtime and invokes the load tool for
// every co-located model in run, in model order, and assembles the
// resulting Measurements. A model whose runtime fails to start or whose
// load tool invocation errors gets a nil Measurement at its index: the
// feedback-signalled resource-exhaustion path the automatic state machine
// consumes (spec.md §7), not a propagated error. This always yields a
// Measurements slice of len(run.Models) with a nil element at the failed
// index, never a shorter or empty slice — so LoadConfigGenerator's
// empty-batch stop condition (load_config_generator.go's lastBatchEmpty) is
// never reached through this driver; only AnyNil's serving-level prune is.
func (l *Loop) dispatch(ctx context.Context, run core.RunConfig) core.Measurements {
	results := make(core.Measurements, len(run.Models))

	for i, m := range run.Models {
		if err := l.runtime.Start(ctx, m.Serving); err != nil {
			logging.L(ctx).Warnw("serving runtime failed to start", "serving", m.Serving.Name, "error", err)
			results[i] = nil
			continue
		}

		measurement, err := l.loadTool.Run(ctx, m.Load)
		stopErr := l.runtime.Stop(ctx, m.Serving)
		if stopErr != nil {
			logging.L(ctx).Warnw("serving runtime failed to stop", "serving", m.Serving.Name, "error", stopErr)
		}

		if err != nil || len(measurement) == 0 {
			results[i] = nil
			continue
		}
		results[i] = measurement[0]
	}

	return results
}

// Elapsed is a convenience for callers that want to feed
// metrics.Emitter.ObserveSearchDuration without importing time themselves.
func Elapsed(since time.Time) time.Duration {
	return time.Since(since)
}
