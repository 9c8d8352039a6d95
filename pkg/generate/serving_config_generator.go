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
	"fmt"

	"github.com/llm-d-incubation/wva-profiler/internal/interfaces"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// ServingConfigGenerator is the shared capability set of the serving search
// variants (remote, manual, automatic, and the single-candidate default used
// when the search is disabled). It is a tagged sum
// implemented as an interface, not a class hierarchy: each variant owns its
// own state and naming counter.
type ServingConfigGenerator interface {
	// NextConfig returns the next candidate ServingConfig and advances
	// internal state. Must not be called once IsDone returns true.
	NextConfig() core.ServingConfig

	// IsDone reports whether this generator has no more candidates.
	IsDone() bool

	// SetLastResults records the measurements for the most recently
	// emitted candidate, across its full load-config sweep.
	SetLastResults(results core.Measurements)
}

// namer assigns unique ServingConfig names per model: "<base>_config_default"
// for the default probe, else "<base>_config_<k>" with a per-model
// monotonically increasing k. It is owned by the generator that creates it,
// never shared across models (per spec.md §5 "Shared resources").
type namer struct {
	baseModelName string
	nextIndex     int
}

func newNamer(baseModelName string) *namer {
	return &namer{baseModelName: baseModelName}
}

func (n *namer) nameFor(combo core.ParamCombo) string {
	if core.IsDefaultCombo(combo) {
		return fmt.Sprintf("%s_config_default", n.baseModelName)
	}
	name := fmt.Sprintf("%s_config_%d", n.baseModelName, n.nextIndex)
	n.nextIndex++
	return name
}

// buildServingConfig overlays combo on top of base (loaded once per
// generator construction) and assigns the combo's unique name.
func buildServingConfig(base core.Map, combo core.ParamCombo, n *namer) core.ServingConfig {
	fields := DeepMerge(base, core.Map(combo))
	name := n.nameFor(combo)
	fields["name"] = name
	return core.ServingConfig{Name: name, Fields: fields}
}

// loadBase reads the model repository's on-disk base ServingConfig via the
// BaseConfigLoader collaborator.
func loadBase(loader interfaces.BaseConfigLoader, modelName string) (core.Map, error) {
	base, err := loader.Load(modelName)
	if err != nil {
		return nil, fmt.Errorf("loading base serving config for %q: %w", modelName, err)
	}
	return base, nil
}

// liveLatch tracks whether a generator has been advanced at least once,
// implementing the "_live" guard from base_model_config_generator.py:
// IsDone is false until NextConfig has been called, preventing a generator
// from reporting done before its first yield.
type liveLatch struct {
	live bool
}

func (l *liveLatch) markLive() {
	l.live = true
}

func (l *liveLatch) isLive() bool {
	return l.live
}
