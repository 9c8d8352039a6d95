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
Package core implements the data model for wva-profiler's configuration
search: the entities a generator emits, consumes, or is built from.

# Overview

This package holds the entities the search core operates on: ModelSpec (an
immutable per-model user declaration), ServingConfig and LoadConfig
(candidate configurations), ParamCombo (one Cartesian-product point), a
Measurement accessor, and RunConfig (one fully-composed, executable
candidate spanning every co-located model).

None of these types know how to enumerate themselves — that is
pkg/generate's job. core defines only the shapes and the handful of pure
accessors every generator variant needs identically: unique ServingConfig
naming, default-combo detection, deep copies.

# Core Types

ModelSpec:

	type ModelSpec struct {
		ModelName         string
		CPUOnly           bool
		ServingParameters Map
		LoadToolFlags     Map
		BatchSizes        []int
		Concurrencies     []int
		Environment       EnvironmentDescriptor
	}

ServingConfig:

	type ServingConfig struct {
		Name   string
		Fields Map
	}

RunConfig:

	type RunConfig struct {
		Environment EnvironmentDescriptor
		Models      []ModelRunConfig
	}

# Default combo

DefaultCombo is the distinguished empty ParamCombo meaning "use the base
config unchanged". Generators test for it with IsDefaultCombo, which
compares map identity rather than emptiness, so a user-supplied empty
overlay is never confused with the sentinel.

# Environment coherence

EnvironmentDescriptor is opaque and only required to support Equal. The
search core never inspects its contents; pkg/generate.NewRunConfigGenerator
uses Equal to enforce invariant 5 (co-located models must request
compatible runtime environments) at construction time.

# Integration

This package is used by:

  - pkg/generate: enumerates ServingConfig/LoadConfig/RunConfig values
  - pkg/config: types its free-form parameter maps as Map
  - cmd/wva-profiler: builds ModelSpec from the loaded configuration
  - pkg/manager: dispatches RunConfig values to external collaborators

# Thread Safety

All types in this package are plain values or interfaces with no internal
mutable state; Clone methods exist where a caller needs to hand out a
value without risking the recipient mutating the original.
*/
package core
