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

package interfaces

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// JSONRepository is the default BaseConfigLoader: it reads
// <root>/<modelName>/config.json and decodes it into a core.Map, mirroring
// Model Analyzer's ModelConfig.create_from_file reading the model
// repository's serialized config for each model subdirectory.
type JSONRepository struct {
	Root string
}

// NewJSONRepository returns a JSONRepository rooted at root.
func NewJSONRepository(root string) *JSONRepository {
	return &JSONRepository{Root: root}
}

// Load implements BaseConfigLoader.
func (r *JSONRepository) Load(modelName string) (core.Map, error) {
	path := filepath.Join(r.Root, modelName, "config.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading base config at %q: %w", path, err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("parsing base config at %q: %w", path, err)
	}

	return jsonToMap(decoded), nil
}

// jsonToMap converts the generic map[string]any / []any tree
// encoding/json produces into core.Map / core.List, so the rest of the
// search core only ever deals with the core.Value shapes.
func jsonToMap(decoded map[string]any) core.Map {
	out := make(core.Map, len(decoded))
	for k, v := range decoded {
		out[k] = jsonToValue(v)
	}
	return out
}

func jsonToValue(v any) core.Value {
	switch t := v.(type) {
	case map[string]any:
		return jsonToMap(t)
	case []any:
		out := make(core.List, len(t))
		for i, e := range t {
			out[i] = jsonToValue(e)
		}
		return out
	default:
		return t
	}
}
