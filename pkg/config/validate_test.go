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
	"testing"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *ProfileConfig {
	return &ProfileConfig{
		TritonLaunchMode:                 "local",
		ClientProtocol:                   "http",
		ModelRepository:                  "/models",
		RunConfigSearchMinInstanceCount:  1,
		RunConfigSearchMaxInstanceCount:  3,
		RunConfigSearchMinModelBatchSize: 1,
		RunConfigSearchMaxModelBatchSize: 8,
		ProfileModels: []ModelSpecConfig{
			{ModelName: "m"},
		},
	}
}

func TestValidate_AcceptsWellFormedConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RejectsUnknownLaunchMode(t *testing.T) {
	cfg := validConfig()
	cfg.TritonLaunchMode = "bogus"

	err := cfg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "triton_launch_mode", verr.Field)
}

func TestValidate_RemoteModeSkipsModelRepository(t *testing.T) {
	cfg := validConfig()
	cfg.TritonLaunchMode = "remote"
	cfg.ModelRepository = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsInvertedInstanceBounds(t *testing.T) {
	cfg := validConfig()
	cfg.RunConfigSearchMaxInstanceCount = 0
	cfg.RunConfigSearchMinInstanceCount = 5

	err := cfg.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "run_config_search_max_instance_count", verr.Field)
}

func TestValidate_SearchDisabledSkipsLadderBounds(t *testing.T) {
	cfg := validConfig()
	cfg.RunConfigSearchDisable = true
	cfg.RunConfigSearchMinInstanceCount = 0
	cfg.RunConfigSearchMaxInstanceCount = 0

	assert.NoError(t, cfg.Validate())
}

func TestValidate_AcceptsPerfAnalyzerFlagShadowingDerivedKey(t *testing.T) {
	// spec.md §4.2: the user's perf_analyzer_flags always win over the
	// generator's own derived flags via deep_merge, so shadowing a derived
	// key (e.g. batch-size) is an intentional override, not a config error.
	cfg := validConfig()
	cfg.ProfileModels[0].PerfAnalyzerFlags = core.Map{"batch-size": 7}

	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsDuplicateModelNames(t *testing.T) {
	cfg := validConfig()
	cfg.ProfileModels = append(cfg.ProfileModels, ModelSpecConfig{ModelName: "m"})

	err := cfg.Validate()
	require.Error(t, err)
}

func TestValidate_RejectsEmptyModelList(t *testing.T) {
	cfg := validConfig()
	cfg.ProfileModels = nil

	err := cfg.Validate()
	require.Error(t, err)
}
