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

// ModelRunConfigGenerator composes one model's ServingConfigGenerator with a
// fresh LoadConfigGenerator per serving candidate (spec.md §4.4): for every
// serving config the outer generator emits, the inner load sweep is built
// from scratch, fully drained, and each (serving, load) pair is forwarded to
// the caller.
type ModelRunConfigGenerator struct {
	modelName  string
	servingGen ServingConfigGenerator
	newLoadGen func(serving core.ServingConfig) *LoadConfigGenerator

	loadGen     *LoadConfigGenerator
	currServing core.ServingConfig
	advanced    bool

	pendingServing core.Measurements
	pendingLoad    core.Measurements
}

// NewModelRunConfigGenerator builds a composed generator for one model.
// newLoadGen constructs a fresh LoadConfigGenerator for the given serving
// candidate; it is called once per serving candidate emitted by servingGen.
func NewModelRunConfigGenerator(
	modelName string,
	servingGen ServingConfigGenerator,
	newLoadGen func(serving core.ServingConfig) *LoadConfigGenerator,
) *ModelRunConfigGenerator {
	return &ModelRunConfigGenerator{
		modelName:  modelName,
		servingGen: servingGen,
		newLoadGen: newLoadGen,
	}
}

// NextConfig implements the shared generator contract.
func (g *ModelRunConfigGenerator) NextConfig() core.ModelRunConfig {
	switch {
	case !g.advanced:
		g.advanced = true
		g.currServing = g.servingGen.NextConfig()
		g.loadGen = g.newLoadGen(g.currServing)
	case g.loadGen.IsDone():
		g.currServing = g.servingGen.NextConfig()
		g.loadGen = g.newLoadGen(g.currServing)
	}

	load := g.loadGen.NextConfig()
	return core.ModelRunConfig{ModelName: g.modelName, Serving: g.currServing, Load: load}
}

// IsDone implements the shared generator contract: done once the outer
// serving generator and the current (final) load sweep are both exhausted.
func (g *ModelRunConfigGenerator) IsDone() bool {
	return g.advanced && g.servingGen.IsDone() && g.loadGen.IsDone()
}

// SetLastResults routes feedback innermost-first: the load generator always
// sees the latest batch; the serving generator only sees it once the load
// generator reports done, so its state-machine step reflects the outcome of
// the whole load sweep it just drove, not a mid-sweep sample.
func (g *ModelRunConfigGenerator) SetLastResults(results core.Measurements) {
	g.pendingServing = append(g.pendingServing, results...)
	g.pendingLoad = append(g.pendingLoad, results...)

	loadBatch := g.pendingLoad
	g.pendingLoad = nil
	g.loadGen.SetLastResults(loadBatch)
	if !g.loadGen.IsDone() {
		return
	}

	servingBatch := g.pendingServing
	g.pendingServing = nil
	g.servingGen.SetLastResults(servingBatch)
}
