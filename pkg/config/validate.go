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

	"github.com/llm-d-incubation/wva-profiler/internal/constants"
)

// ValidationError reports a fatal configuration-time defect: spec.md §7's
// structural checks needed before any generator can be constructed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid configuration field %q: %s", e.Field, e.Reason)
}

// Validate checks fatal, configuration-time structural errors: invalid
// launch mode/protocol, nonsensical search bounds, and missing required
// paths. It does not check anything that can only be known at
// generator-construction time (e.g. environment mismatches across
// co-located models), per spec.md §7's split between configuration-time and
// run-time error classes. It also does not reject a user-supplied
// perf_analyzer_flags entry that shadows a key the search core derives
// (batch-size, concurrency-range, ...): spec.md §4.2 deep_merges the
// generated load config with the user's fixed flags with the user's value
// winning (load_config_generator.go's DeepMerge(p, opts.FixedFlags)), so
// such an entry is an intentional override, not an error. §7's "invalid
// user-supplied load-tool key" refers to a flag name the load tool itself
// doesn't recognize, which this package cannot check without the tool's
// flag schema.
func (c *ProfileConfig) Validate() error {
	if len(c.ProfileModels) == 0 {
		return &ValidationError{Field: "profile_models", Reason: "must list at least one model"}
	}

	switch c.TritonLaunchMode {
	case constants.LaunchModeLocal, constants.LaunchModeRemote, constants.LaunchModeDocker, constants.LaunchModeCAPI:
	case "":
		return &ValidationError{Field: "triton_launch_mode", Reason: "must be set"}
	default:
		return &ValidationError{Field: "triton_launch_mode", Reason: fmt.Sprintf("unrecognized value %q", c.TritonLaunchMode)}
	}

	if c.TritonLaunchMode != constants.LaunchModeRemote {
		switch c.ClientProtocol {
		case constants.ProtocolHTTP, constants.ProtocolGRPC:
		default:
			return &ValidationError{Field: "client_protocol", Reason: fmt.Sprintf("unrecognized value %q", c.ClientProtocol)}
		}
	}

	if c.TritonLaunchMode != constants.LaunchModeRemote && c.ModelRepository == "" {
		return &ValidationError{Field: "model_repository", Reason: "required unless triton_launch_mode is remote"}
	}

	if !c.RunConfigSearchDisable {
		if c.RunConfigSearchMinInstanceCount <= 0 {
			return &ValidationError{Field: "run_config_search_min_instance_count", Reason: "must be positive"}
		}
		if c.RunConfigSearchMaxInstanceCount < c.RunConfigSearchMinInstanceCount {
			return &ValidationError{Field: "run_config_search_max_instance_count", Reason: "must be >= the min instance count"}
		}
		if c.RunConfigSearchMinModelBatchSize <= 0 {
			return &ValidationError{Field: "run_config_search_min_model_batch_size", Reason: "must be positive"}
		}
		if c.RunConfigSearchMaxModelBatchSize < c.RunConfigSearchMinModelBatchSize {
			return &ValidationError{Field: "run_config_search_max_model_batch_size", Reason: "must be >= the min batch size"}
		}
	}

	seen := make(map[string]bool, len(c.ProfileModels))
	for _, m := range c.ProfileModels {
		if m.ModelName == "" {
			return &ValidationError{Field: "profile_models[].model_name", Reason: "must be set"}
		}
		if seen[m.ModelName] {
			return &ValidationError{Field: "profile_models[].model_name", Reason: fmt.Sprintf("duplicate model name %q", m.ModelName)}
		}
		seen[m.ModelName] = true
	}

	return nil
}
