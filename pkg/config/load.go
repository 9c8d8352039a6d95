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

package config

import (
	"fmt"
	"os"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"gopkg.in/yaml.v3"
)

// Load reads one or more YAML documents and merges them into a single
// ProfileConfig, later files overriding fields earlier files set. A field
// a later file omits keeps whatever value an earlier file gave it, matching
// yaml.v3's default "only touch fields present in the document" unmarshal
// behavior.
func Load(paths ...string) (*ProfileConfig, error) {
	cfg := &ProfileConfig{}
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %q: %w", path, err)
		}
	}

	for i := range cfg.ProfileModels {
		m := &cfg.ProfileModels[i]
		m.ModelConfigParameters = normalizeMap(m.ModelConfigParameters)
		m.PerfAnalyzerFlags = normalizeMap(m.PerfAnalyzerFlags)
	}

	return cfg, nil
}

// normalizeMap converts the generic map[string]interface{}/[]interface{}
// tree yaml.v3 produces for values decoded against a core.Map-typed field
// into core.Map/core.List throughout, so the rest of the search core only
// ever deals with core.Value shapes (mirrors
// internal/interfaces.JSONRepository's jsonToMap for the YAML decoder).
func normalizeMap(m core.Map) core.Map {
	if m == nil {
		return nil
	}
	out := make(core.Map, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) core.Value {
	switch t := v.(type) {
	case map[string]any:
		out := make(core.Map, len(t))
		for k, e := range t {
			out[k] = normalizeValue(e)
		}
		return out
	case core.Map:
		return normalizeMap(t)
	case []any:
		out := make(core.List, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return t
	}
}
