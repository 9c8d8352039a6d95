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
	"testing"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoadGen(serving core.ServingConfig) *LoadConfigGenerator {
	return NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     serving.Name,
		Concurrencies: []int{1, 2},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "x"},
	})
}

func TestModelRunConfigGenerator_FreshLoadGenPerServingCandidate(t *testing.T) {
	serving := NewManualServingConfigGenerator(core.Map{}, "m", core.Map{
		"max_batch_size": core.List{1, 2},
	})
	gen := NewModelRunConfigGenerator("m", serving, newTestLoadGen)

	var servingNames []string
	for !gen.IsDone() {
		cfg := gen.NextConfig()
		servingNames = append(servingNames, cfg.Serving.Name)
		gen.SetLastResults(throughput(10))
	}

	// 2 manual overlays + default = 3 serving candidates, 2 load candidates
	// each => 6 pairs total.
	require.Len(t, servingNames, 6)
	assert.Equal(t, []string{
		"m_config_0", "m_config_0",
		"m_config_1", "m_config_1",
		"m_config_default", "m_config_default",
	}, servingNames)
}

func TestModelRunConfigGenerator_RemoteVariantSingleServingCandidate(t *testing.T) {
	remote := NewRemoteServingConfigGenerator(core.Map{}, "m")
	gen := NewModelRunConfigGenerator("m", remote, newTestLoadGen)

	count := 0
	for !gen.IsDone() {
		cfg := gen.NextConfig()
		assert.Equal(t, "m_config_default", cfg.Serving.Name)
		count++
		gen.SetLastResults(throughput(10))
	}
	assert.Equal(t, 2, count)
}
