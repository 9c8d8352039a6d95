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

import "github.com/llm-d-incubation/wva-profiler/pkg/core"

// DefaultServingConfigGenerator handles run_config_search_disable=true with
// no user-fixed model_config_parameters (spec.md §6, §8 scenario 2): the
// automatic serving sweep is turned off entirely rather than run with
// zero-valued bounds, so there is exactly one candidate, the default combo
// (the base config unchanged).
type DefaultServingConfigGenerator struct {
	liveLatch

	namer   *namer
	base    core.Map
	emitted bool
	results core.Measurements
}

// NewDefaultServingConfigGenerator builds a single-candidate generator that
// always emits the base config unchanged.
func NewDefaultServingConfigGenerator(base core.Map, baseModelName string) *DefaultServingConfigGenerator {
	return &DefaultServingConfigGenerator{
		namer: newNamer(baseModelName),
		base:  base,
	}
}

// NextConfig implements ServingConfigGenerator.
func (g *DefaultServingConfigGenerator) NextConfig() core.ServingConfig {
	g.markLive()
	g.emitted = true
	return buildServingConfig(g.base, core.DefaultCombo, g.namer)
}

// IsDone implements ServingConfigGenerator.
func (g *DefaultServingConfigGenerator) IsDone() bool {
	return g.isLive() && g.emitted
}

// SetLastResults implements ServingConfigGenerator. The single candidate
// never branches on feedback; results are stored only to satisfy the
// interface contract.
func (g *DefaultServingConfigGenerator) SetLastResults(results core.Measurements) {
	g.results = results
}
