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
	"sort"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// ManualServingConfigGenerator enumerates the Cartesian product of a
// user-supplied nested model_config_parameters map, with the default probe
// emitted last (spec.md §4.3.2: "the default serves as a baseline the user
// sees after their picks").
type ManualServingConfigGenerator struct {
	liveLatch

	namer   *namer
	base    core.Map
	combos  []core.ParamCombo
	index   int
	results core.Measurements
}

// NewManualServingConfigGenerator builds a generator that sweeps params,
// a nested mapping whose leaves are candidate-value lists (scalar leaves
// are held constant; a list of maps is lifted into the Cartesian product of
// its element structure).
func NewManualServingConfigGenerator(base core.Map, baseModelName string, params core.Map) *ManualServingConfigGenerator {
	overlays := expandOverlayCandidates(params)
	combos := make([]core.ParamCombo, 0, len(overlays)+1)
	for _, o := range overlays {
		combos = append(combos, core.ParamCombo(o))
	}
	combos = append(combos, core.DefaultCombo)

	return &ManualServingConfigGenerator{
		namer:  newNamer(baseModelName),
		base:   base,
		combos: combos,
	}
}

// NextConfig implements ServingConfigGenerator.
func (g *ManualServingConfigGenerator) NextConfig() core.ServingConfig {
	g.markLive()
	combo := g.combos[g.index]
	g.index++
	return buildServingConfig(g.base, combo, g.namer)
}

// IsDone implements ServingConfigGenerator.
func (g *ManualServingConfigGenerator) IsDone() bool {
	return g.isLive() && g.index >= len(g.combos)
}

// SetLastResults implements ServingConfigGenerator. The manual variant's
// enumeration does not depend on feedback; results are stored only so the
// interface contract holds uniformly across variants.
func (g *ManualServingConfigGenerator) SetLastResults(results core.Measurements) {
	g.results = results
}

// expandOverlayCandidates flattens a nested parameter map into the ordered
// list of concrete overlay maps it describes: each top-level key's value is
// expanded into its own candidate list (recursing into nested maps and
// lifting a list-of-maps into the Cartesian product of its element
// structure), then those per-key candidate lists are combined via the same
// rightmost-fastest ordering GeneratorUtils.Cartesian uses.
//
// Go maps carry no insertion order, so key order here is lexicographic
// rather than the user's original declaration order. This only affects
// which axis is "rightmost" when two or more keys are genuinely
// independent; the set of emitted candidates is unaffected.
func expandOverlayCandidates(params core.Map) []core.Map {
	candidates := expandParam(params)
	out := make([]core.Map, len(candidates))
	for i, c := range candidates {
		out[i] = c.(core.Map)
	}
	return out
}

// expandParam returns the list of concrete Values a parameter-map node may
// take: a plain candidate list is returned as-is, a map recurses field by
// field and takes the Cartesian product across fields, and a list of maps
// recurses into the Cartesian product of its element structure.
func expandParam(v core.Value) []core.Value {
	switch t := v.(type) {
	case core.Map:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		axes := make([][]core.Value, len(keys))
		for i, k := range keys {
			axes[i] = expandParam(t[k])
		}

		combos := cartesianCombos(axes)
		out := make([]core.Value, len(combos))
		for i, combo := range combos {
			m := make(core.Map, len(keys))
			for j, k := range keys {
				m[k] = combo[j]
			}
			out[i] = m
		}
		return out

	case core.List:
		if allMaps(t) {
			axes := make([][]core.Value, len(t))
			for i, e := range t {
				axes[i] = expandParam(e)
			}
			combos := cartesianCombos(axes)
			out := make([]core.Value, len(combos))
			for i, combo := range combos {
				lst := make(core.List, len(combo))
				copy(lst, combo)
				out[i] = lst
			}
			return out
		}
		return append([]core.Value(nil), []core.Value(t)...)

	default:
		return []core.Value{t}
	}
}

// cartesianCombos returns the Cartesian product of axes as a slice of
// per-axis value tuples, with the last axis varying fastest.
func cartesianCombos(axes [][]core.Value) [][]core.Value {
	result := [][]core.Value{{}}
	for _, axis := range axes {
		next := make([][]core.Value, 0, len(result)*len(axis))
		for _, combo := range result {
			for _, v := range axis {
				nc := make([]core.Value, len(combo)+1)
				copy(nc, combo)
				nc[len(combo)] = v
				next = append(next, nc)
			}
		}
		result = next
	}
	return result
}

func allMaps(list core.List) bool {
	if len(list) == 0 {
		return false
	}
	for _, e := range list {
		if _, ok := e.(core.Map); !ok {
			return false
		}
	}
	return true
}
