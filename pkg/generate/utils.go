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

// PowerOfTwoLadder returns [1, 2, 4, ..., 2^k] where 2^k <= max < 2^(k+1).
// The result always includes 1, even when max < 1. It is finite and
// restartable: callers may call it repeatedly with the same max and get the
// same slice back.
func PowerOfTwoLadder(max int) []int {
	ladder := []int{1}
	for next := 2; next <= max; next *= 2 {
		ladder = append(ladder, next)
	}
	return ladder
}

// PowerOfTwoLadderFrom returns the ladder min, 2*min, 4*min, ... capped at
// max: the max_batch_size values the automatic serving-config search steps
// through at one instance count (AutomaticServingConfigGenerator doubles its
// own counter rather than calling this function), where the starting point
// (min_model_batch_size) need not itself be a power of two. Unlike
// PowerOfTwoLadder, the ladder does not necessarily start at 1.
func PowerOfTwoLadderFrom(min, max int) []int {
	if min <= 0 {
		return nil
	}
	ladder := []int{min}
	for next := min * 2; next <= max; next *= 2 {
		ladder = append(ladder, next)
	}
	return ladder
}

// ParamMap is the input to Cartesian: a key's candidate-value list. Key
// order is the order keys were inserted via NewParamMap/Set, since Go maps
// do not preserve insertion order on their own.
type ParamMap struct {
	keys   []string
	values map[string][]core.Value
}

// NewParamMap returns an empty ParamMap.
func NewParamMap() *ParamMap {
	return &ParamMap{values: make(map[string][]core.Value)}
}

// Set assigns a key's candidate-value list, appending the key to the
// insertion order the first time it is seen. A scalar (non-list) value is
// treated as a one-element list, matching the spec's "keys whose value is a
// scalar are held constant".
func (p *ParamMap) Set(key string, values ...core.Value) *ParamMap {
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = values
	return p
}

// Cartesian returns the Cartesian product of p's value lists, one map per
// point. Order is lexicographic on insertion-order keys with the rightmost
// key iterating fastest (little-endian): the last-set key varies on every
// successive result, the first-set key varies slowest.
func Cartesian(p *ParamMap) []core.Map {
	if len(p.keys) == 0 {
		return []core.Map{{}}
	}

	total := 1
	for _, k := range p.keys {
		n := len(p.values[k])
		if n == 0 {
			// A key with no candidate values contributes nothing;
			// the product is empty.
			return nil
		}
		total *= n
	}

	out := make([]core.Map, 0, total)
	indices := make([]int, len(p.keys))

	for {
		point := make(core.Map, len(p.keys))
		for i, k := range p.keys {
			point[k] = p.values[k][indices[i]]
		}
		out = append(out, point)

		// Advance the rightmost (last-set) key first.
		pos := len(p.keys) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(p.values[p.keys[pos]]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return out
}

// SortedKeys returns p's keys sorted lexicographically, useful for tests
// that want deterministic output independent of Set call order.
func (p *ParamMap) SortedKeys() []string {
	out := append([]string(nil), p.keys...)
	sort.Strings(out)
	return out
}

// DeepMerge recursively overwrites base with overlay: where both sides hold
// a core.Map at the same key, DeepMerge recurses; otherwise overlay's value
// replaces base's wholesale, including a type change (scalar -> map or vice
// versa). Returns a new map; base and overlay are left unchanged.
func DeepMerge(base, overlay core.Map) core.Map {
	out := base.Clone()
	for k, overlayVal := range overlay {
		baseVal, exists := out[k]
		if exists {
			baseMap, baseIsMap := baseVal.(core.Map)
			overlayMap, overlayIsMap := overlayVal.(core.Map)
			if baseIsMap && overlayIsMap {
				out[k] = DeepMerge(baseMap, overlayMap)
				continue
			}
		}
		out[k] = cloneAny(overlayVal)
	}
	return out
}

func cloneAny(v core.Value) core.Value {
	switch t := v.(type) {
	case core.Map:
		return t.Clone()
	case core.List:
		out := make(core.List, len(t))
		for i, e := range t {
			out[i] = cloneAny(e)
		}
		return out
	default:
		return v
	}
}
