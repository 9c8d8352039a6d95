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

import "github.com/llm-d-incubation/wva-profiler/pkg/core"

// ProfileConfig is the root of the YAML configuration surface (spec.md §6).
type ProfileConfig struct {
	ProfileModels []ModelSpecConfig `yaml:"profile_models"`

	BatchSizes  []int `yaml:"batch_sizes"`
	Concurrency []int `yaml:"concurrency"`

	RunConfigSearchDisable          bool `yaml:"run_config_search_disable"`
	RunConfigSearchMaxInstanceCount int  `yaml:"run_config_search_max_instance_count"`
	RunConfigSearchMinInstanceCount int  `yaml:"run_config_search_min_instance_count"`
	RunConfigSearchMinModelBatchSize int `yaml:"run_config_search_min_model_batch_size"`
	RunConfigSearchMaxModelBatchSize int `yaml:"run_config_search_max_model_batch_size"`
	RunConfigSearchMaxConcurrency    int `yaml:"run_config_search_max_concurrency"`

	// TritonLaunchMode selects which NetworkEndpoint/InProcessTarget shape
	// generate.LoadConfigGeneratorOpts receives: constants.LaunchModeCAPI
	// gets an InProcessTarget, while LaunchModeLocal and LaunchModeDocker
	// get a localhost NetworkEndpoint; none of these three takes the remote
	// short-circuit (4.3.1). LaunchModeRemote gets a NetworkEndpoint at
	// TritonServerURL and is the only mode in which ServingConfigGenerator
	// degenerates to a single candidate.
	TritonLaunchMode string `yaml:"triton_launch_mode"`

	// ClientProtocol selects the load tool's transport: constants.ProtocolHTTP
	// or constants.ProtocolGRPC.
	ClientProtocol string `yaml:"client_protocol"`

	// ModelRepository is the on-disk directory JSONRepository reads base
	// serving configs from, and the c_api (in-process) launch mode's model
	// repository flag value.
	ModelRepository string `yaml:"model_repository"`

	// TritonServerPath is the c_api (in-process) launch mode's server
	// binary/library directory (perf-analyzer's --triton-server-directory).
	TritonServerPath string `yaml:"triton_server_path"`

	// TritonServerURL is the remote launch mode's endpoint; local and docker
	// modes use localhost at the protocol's default port instead.
	TritonServerURL string `yaml:"triton_server_url"`
}

// ModelSpecConfig is one profile_models entry.
type ModelSpecConfig struct {
	ModelName string `yaml:"model_name"`
	CPUOnly   bool   `yaml:"cpu_only"`

	// ModelConfigParameters, when set, selects manual serving search
	// (generate.NewManualServingConfigGenerator) unless the launch mode is
	// remote. When nil, a non-remote launch mode selects the single default
	// candidate if run_config_search_disable is set, else automatic search.
	ModelConfigParameters core.Map `yaml:"model_config_parameters"`

	// PerfAnalyzerFlags are user-fixed load-tool flags merged on top of
	// every generated LoadConfig; the user always wins.
	PerfAnalyzerFlags core.Map `yaml:"perf_analyzer_flags"`

	// Parameters overrides the global batch/concurrency search lists for
	// this model only.
	Parameters *ModelSearchParameters `yaml:"parameters"`

	// Environment is this model's runtime-environment descriptor. All
	// co-located models must agree.
	Environment map[string]string `yaml:"environment"`
}

// ModelSearchParameters is a per-model override of the global load-tool
// search lists (spec.md §6's "optional parameters (batch/concurrency)").
type ModelSearchParameters struct {
	BatchSizes  []int `yaml:"batch_sizes"`
	Concurrency []int `yaml:"concurrency"`
}
