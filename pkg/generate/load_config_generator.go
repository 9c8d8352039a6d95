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

// NetworkEndpoint carries the protocol/url pair used when the load tool
// talks to the serving instance over the network rather than in-process.
type NetworkEndpoint struct {
	Protocol string
	URL      string
}

// InProcessTarget carries the service-kind/runtime-directory/model-repository
// triple used when the load tool drives the serving instance directly.
type InProcessTarget struct {
	ServiceKind     string
	ServerDirectory string
	ModelRepository string
}

// LoadConfigGeneratorOpts configures one model's load-profile sweep.
type LoadConfigGeneratorOpts struct {
	ModelName     string
	FixedFlags    core.Map
	BatchSizes    []int
	Concurrencies []int
	// MaxConcurrency, when Concurrencies is empty and ConcurrencySearch is
	// true, drives power_of_two_ladder(MaxConcurrency).
	MaxConcurrency    int
	ConcurrencySearch bool

	Network   *NetworkEndpoint
	InProcess *InProcessTarget
}

// LoadConfigGenerator enumerates a model's load-profile candidates
// (batch sizes x concurrencies x transport), eagerly materialised at
// construction, with feedback-driven early stop (spec.md §4.2).
type LoadConfigGenerator struct {
	candidates []core.LoadConfig
	index      int

	// lastBatchEmpty mirrors the Python source's ["valid"] sentinel: it
	// starts false (no "erroneous" last batch) so the generator is never
	// reported done before SetLastResults has actually been called once.
	lastBatchEmpty bool
	history        []float64
}

// NewLoadConfigGenerator builds and fully materialises the candidate
// sequence for one model's load sweep.
func NewLoadConfigGenerator(opts LoadConfigGeneratorOpts) *LoadConfigGenerator {
	batchSizes := opts.BatchSizes
	if len(batchSizes) == 0 {
		batchSizes = []int{1}
	}

	concurrencies := opts.Concurrencies
	if len(concurrencies) == 0 {
		if opts.ConcurrencySearch {
			concurrencies = PowerOfTwoLadder(opts.MaxConcurrency)
		} else {
			concurrencies = []int{1}
		}
	}

	pm := NewParamMap()
	pm.Set(constants.LoadParamModelName, core.Value(opts.ModelName))
	pm.Set(constants.LoadParamBatchSize, intsToValues(batchSizes)...)
	pm.Set(constants.LoadParamConcurrencyRange, intsToValues(concurrencies)...)
	pm.Set(constants.LoadParamMeasurementMode, core.Value(constants.DefaultMeasurementMode))

	if opts.InProcess != nil {
		pm.Set(constants.LoadParamServiceKind, core.Value(opts.InProcess.ServiceKind))
		pm.Set(constants.LoadParamServerDirectory, core.Value(opts.InProcess.ServerDirectory))
		pm.Set(constants.LoadParamModelRepository, core.Value(opts.InProcess.ModelRepository))
	} else if opts.Network != nil {
		pm.Set(constants.LoadParamProtocol, core.Value(opts.Network.Protocol))
		pm.Set(constants.LoadParamURL, core.Value(opts.Network.URL))
	}

	points := Cartesian(pm)
	candidates := make([]core.LoadConfig, len(points))
	for i, p := range points {
		merged := DeepMerge(p, opts.FixedFlags)
		candidates[i] = core.LoadConfig(merged)
	}

	return &LoadConfigGenerator{candidates: candidates}
}

// NextConfig returns the candidate at the current index and advances it.
func (g *LoadConfigGenerator) NextConfig() core.LoadConfig {
	cfg := g.candidates[g.index]
	g.index++
	return cfg
}

// IsDone reports whether the sweep is exhausted, the last measurement batch
// was empty, or the throughput-plateau predicate has fired.
func (g *LoadConfigGenerator) IsDone() bool {
	if g.index >= len(g.candidates) {
		return true
	}
	if g.lastBatchEmpty {
		return true
	}
	return g.plateaued()
}

// SetLastResults records whether the last measurement batch was empty (for
// the empty-batch stop check) and appends its throughput to the running
// history (for the plateau check).
func (g *LoadConfigGenerator) SetLastResults(results core.Measurements) {
	g.lastBatchEmpty = len(results) == 0
	if t, ok := results.Throughput(constants.MetricThroughput); ok {
		g.history = append(g.history, t)
	}
}

// plateaued implements the throughput-plateau predicate verbatim: after at
// least 4 measurements, if all three of the last three consecutive relative
// gains are <= the threshold, the sweep has converged. Any one gain above
// the threshold keeps the sweep going, even if the other two are small
// (spec.md §9 Open Question 1: this literal "any exceeds => continue"
// behaviour is intentional, not reinterpreted as a majority vote).
func (g *LoadConfigGenerator) plateaued() bool {
	n := len(g.history)
	if n < 4 {
		return false
	}

	for i := 1; i <= 3; i++ {
		curr := g.history[n-i]
		prev := g.history[n-i-1]
		if prev == 0 {
			return false
		}
		gain := (curr - prev) / prev
		if gain > constants.ThroughputGainThreshold {
			return false
		}
	}
	return true
}

func intsToValues(xs []int) []core.Value {
	out := make([]core.Value, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}
