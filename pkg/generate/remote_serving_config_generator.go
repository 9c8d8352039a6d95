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

// RemoteServingConfigGenerator handles the case where the serving instance
// is already running outside this tool's control (spec.md §4.3.1): there is
// exactly one candidate, the default combo, since there is nothing for this
// tool to configure.
type RemoteServingConfigGenerator struct {
	liveLatch

	namer   *namer
	base    core.Map
	emitted bool
	results core.Measurements
}

// NewRemoteServingConfigGenerator builds a single-candidate generator for a
// pre-started remote serving instance.
func NewRemoteServingConfigGenerator(base core.Map, baseModelName string) *RemoteServingConfigGenerator {
	return &RemoteServingConfigGenerator{
		namer: newNamer(baseModelName),
		base:  base,
	}
}

// NextConfig implements ServingConfigGenerator.
func (g *RemoteServingConfigGenerator) NextConfig() core.ServingConfig {
	g.markLive()
	g.emitted = true
	return buildServingConfig(g.base, core.DefaultCombo, g.namer)
}

// IsDone implements ServingConfigGenerator.
func (g *RemoteServingConfigGenerator) IsDone() bool {
	return g.isLive() && g.emitted
}

// SetLastResults implements ServingConfigGenerator. A remote instance's
// single candidate never branches on feedback; results are stored only to
// satisfy the interface contract.
func (g *RemoteServingConfigGenerator) SetLastResults(results core.Measurements) {
	g.results = results
}
