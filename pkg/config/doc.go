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

/*
Package config loads and validates the YAML configuration surface that
drives pkg/generate and pkg/manager.

# Overview

ProfileConfig is the root document. It names the co-located models under
profile_models, the global batch/concurrency search defaults, the
run-config-search ladders' bounds, and the serving runtime's launch mode
and client protocol. Load reads one or more YAML files, applying later
files on top of earlier ones, and Validate rejects structurally invalid
configuration before any generator is constructed.

# Usage

	cfg, err := config.Load("base.yaml", "override.yaml")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
*/
package config
