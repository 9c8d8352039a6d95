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

package generate

import (
	"github.com/llm-d-incubation/wva-profiler/internal/constants"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// AutomaticServingConfigGenerator sweeps instance-count x max-batch-size in
// a two-axis state machine, prepended with a default probe. Ported from
// automatic_model_config_generator.py: the inner axis (batch size) escalates
// at fixed parallelism; the outer axis (instance count) grows parallelism
// once the inner axis is exhausted.
type AutomaticServingConfigGenerator struct {
	liveLatch

	namer *namer
	base  core.Map

	minInstanceCount int
	maxInstanceCount int
	minBatchSize     int
	maxBatchSize     int
	instanceKind     string

	// State machine counters. Properly initialized on the first
	// NextConfig call after the default probe.
	currInstanceCount int
	currMaxBatchSize  int
	started           bool

	// advanced is set once NextConfig has returned its first candidate
	// (the default probe). It exists only to reproduce the original
	// generator's yield/step ordering: the state machine step that
	// follows a yield in the Python source runs when the *next* value is
	// requested, not before the first one is produced.
	advanced bool

	lastResults core.Measurements
}

// NewAutomaticServingConfigGenerator builds a generator for one model's
// automatic serving search.
func NewAutomaticServingConfigGenerator(
	base core.Map,
	baseModelName string,
	cpuOnly bool,
	minInstanceCount, maxInstanceCount, minBatchSize, maxBatchSize int,
) *AutomaticServingConfigGenerator {
	kind := constants.InstanceKindGPU
	if cpuOnly {
		kind = constants.InstanceKindCPU
	}

	return &AutomaticServingConfigGenerator{
		namer:            newNamer(baseModelName),
		base:             base,
		minInstanceCount: minInstanceCount,
		maxInstanceCount: maxInstanceCount,
		minBatchSize:     minBatchSize,
		maxBatchSize:     maxBatchSize,
		instanceKind:     kind,
	}
}

// NextConfig implements ServingConfigGenerator.
func (g *AutomaticServingConfigGenerator) NextConfig() core.ServingConfig {
	g.markLive()
	if g.advanced {
		g.step()
	}
	g.advanced = true
	combo := g.currParamCombo()
	return buildServingConfig(g.base, combo, g.namer)
}

// IsDone implements ServingConfigGenerator.
func (g *AutomaticServingConfigGenerator) IsDone() bool {
	return g.isLive() && g.doneWalking()
}

// SetLastResults implements ServingConfigGenerator.
func (g *AutomaticServingConfigGenerator) SetLastResults(results core.Measurements) {
	g.lastResults = results
}

func (g *AutomaticServingConfigGenerator) doneWalking() bool {
	return g.doneWalkingMaxBatchSize() && g.doneWalkingInstanceCount()
}

func (g *AutomaticServingConfigGenerator) step() {
	if !g.started {
		g.startStateMachine()
		return
	}
	g.stepStateMachine()
}

func (g *AutomaticServingConfigGenerator) startStateMachine() {
	g.started = true
	g.currInstanceCount = g.minInstanceCount
	g.currMaxBatchSize = g.minBatchSize
}

func (g *AutomaticServingConfigGenerator) stepStateMachine() {
	if g.doneWalkingMaxBatchSize() {
		g.currMaxBatchSize = g.minBatchSize
		g.currInstanceCount++
	} else {
		g.currMaxBatchSize *= 2
	}
}

func (g *AutomaticServingConfigGenerator) doneWalkingMaxBatchSize() bool {
	return g.maxBatchSizeLimitReached() || g.lastResultsErroneous()
}

func (g *AutomaticServingConfigGenerator) doneWalkingInstanceCount() bool {
	return g.currInstanceCount >= g.maxInstanceCount
}

func (g *AutomaticServingConfigGenerator) maxBatchSizeLimitReached() bool {
	return g.currMaxBatchSize*2 > g.maxBatchSize
}

func (g *AutomaticServingConfigGenerator) lastResultsErroneous() bool {
	return g.lastResults.AnyNil()
}

func (g *AutomaticServingConfigGenerator) currParamCombo() core.ParamCombo {
	if !g.started {
		return core.DefaultCombo
	}

	return core.ParamCombo{
		"dynamic_batching": core.Map{},
		"max_batch_size":   g.currMaxBatchSize,
		"instance_group": core.List{
			core.Map{
				"count": g.currInstanceCount,
				"kind":  g.instanceKind,
			},
		},
	}
}
