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

// RunConfigGenerator composes N models' ModelRunConfigGenerators into the
// full nested Cartesian sweep (spec.md §4.5): a pseudorecursive descent
// where the innermost model's generator is driven fastest, and an outer
// model's generator only steps once everything nested inside its current
// candidate has been fully explored.
type RunConfigGenerator struct {
	env         core.EnvironmentDescriptor
	newModelGen func(index int) *ModelRunConfigGenerator

	gens  []*ModelRunConfigGenerator
	slots []core.ModelRunConfig

	// pending accumulates feedback per level between cascades, mirroring
	// the reference implementation's per-generator result buffer: every
	// external SetLastResults call appends to every live level's buffer,
	// and a level's buffer is flushed (handed to its generator, then
	// cleared) only when the cascade reaches it.
	pending []core.Measurements
}

// NewRunConfigGenerator builds a generator for the given co-located models.
// newModelGen(i) must return a fresh ModelRunConfigGenerator for models[i];
// it is called once per "unwind" of that level. All models must report an
// equal runtime environment or construction fails fatally (spec.md §4.5
// "Environment check").
func NewRunConfigGenerator(models []core.ModelSpec, newModelGen func(index int) *ModelRunConfigGenerator) (*RunConfigGenerator, error) {
	if len(models) == 0 {
		return nil, &EnvironmentMismatchError{ModelName: "<no models>"}
	}
	env := models[0].Environment
	for _, m := range models[1:] {
		if !env.Equal(m.Environment) {
			return nil, &EnvironmentMismatchError{ModelName: m.ModelName}
		}
	}

	n := len(models)
	return &RunConfigGenerator{
		env:         env,
		newModelGen: newModelGen,
		gens:        make([]*ModelRunConfigGenerator, n),
		slots:       make([]core.ModelRunConfig, n),
		pending:     make([]core.Measurements, n),
	}, nil
}

// NextConfig implements the shared generator contract, assembling and
// returning the next full RunConfig.
func (g *RunConfigGenerator) NextConfig() core.RunConfig {
	if g.gens[0] == nil {
		g.descendFrom(0)
	} else {
		g.advance(len(g.gens) - 1)
	}
	return g.buildRunConfig()
}

// IsDone implements the shared generator contract: true once every
// currently instantiated generator, from the outermost down, reports done —
// i.e. the walk has fully unwound past the outermost model.
func (g *RunConfigGenerator) IsDone() bool {
	if g.gens[0] == nil {
		return false
	}
	for _, gen := range g.gens {
		if !gen.IsDone() {
			return false
		}
	}
	return true
}

// SetLastResults implements the feedback cascade: enqueue the batch onto
// every live level, then drain innermost-first, stopping as soon as a level
// reports not-done after consuming its batch.
func (g *RunConfigGenerator) SetLastResults(results core.Measurements) {
	for i, gen := range g.gens {
		if gen == nil {
			continue
		}
		g.pending[i] = append(g.pending[i], results...)
	}

	for i := len(g.gens) - 1; i >= 0; i-- {
		if g.gens[i] == nil {
			continue
		}
		batch := g.pending[i]
		g.pending[i] = nil
		g.gens[i].SetLastResults(batch)
		if !g.gens[i].IsDone() {
			break
		}
	}
}

// descendFrom (re)builds levels i..N-1 fresh and pulls each one's first
// candidate, the "instantiate G_i; record it" step of the pseudorecursive
// descent. Used only for the very first descent (NextConfig's initial
// build), where every level still needs constructing.
func (g *RunConfigGenerator) descendFrom(i int) {
	for ; i < len(g.gens); i++ {
		g.descendOne(i)
	}
}

// descendOne (re)builds the single level i fresh and pulls its first
// candidate, without touching any other level.
func (g *RunConfigGenerator) descendOne(i int) {
	g.gens[i] = g.newModelGen(i)
	g.slots[i] = g.gens[i].NextConfig()
}

// advance resumes the walk at level i: if level i still has candidates, it
// pulls the next one; otherwise it unwinds to advance the enclosing level
// and, if that succeeded, rebuilds level i fresh. Each level in the
// recursion rebuilds only itself — by the time advance(i) reaches its own
// descendOne(i), advance(i-1) has already rebuilt every level below i that
// needed it, so no level is ever constructed twice for one unwind. Returns
// false only when the walk has fully exhausted level 0 and above, i.e. the
// entire composition is done.
func (g *RunConfigGenerator) advance(i int) bool {
	if !g.gens[i].IsDone() {
		g.slots[i] = g.gens[i].NextConfig()
		return true
	}
	if i == 0 {
		return false
	}
	if !g.advance(i - 1) {
		return false
	}
	g.descendOne(i)
	return true
}

func (g *RunConfigGenerator) buildRunConfig() core.RunConfig {
	models := make([]core.ModelRunConfig, len(g.slots))
	copy(models, g.slots)
	return core.RunConfig{Environment: g.env, Models: models}
}
