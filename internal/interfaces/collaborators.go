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
Package interfaces defines the contract layer between wva-profiler's
configuration-search core and the external systems it drives but does not
itself implement.

# Overview

spec.md scopes several concerns out of the search core entirely: runtime
process lifecycle, load-generator invocation and CSV parsing, result
persistence and reporting, and constraint/ranking checks. This package
gives each of those concerns a named Go interface so pkg/generate and
pkg/manager can depend on a contract instead of a concrete implementation.

# Core Interfaces

BaseConfigLoader reads a model's on-disk base serving configuration:

	type BaseConfigLoader interface {
		Load(modelName string) (core.Map, error)
	}

ServingRuntime and LoadTool represent the out-of-process collaborators
spec.md calls "external lifecycle" and "external tool":

	type ServingRuntime interface {
		Start(ctx context.Context, serving core.ServingConfig) error
		Stop(ctx context.Context, serving core.ServingConfig) error
	}

	type LoadTool interface {
		Run(ctx context.Context, load core.LoadConfig) (core.Measurements, error)
	}

ResultStore and ConstraintChecker represent persistence and report-ranking,
referenced only via their interfaces per spec.md §1:

	type ResultStore interface {
		Save(ctx context.Context, run core.RunConfig, results core.Measurements) error
	}

	type ConstraintChecker interface {
		Satisfies(run core.RunConfig, results core.Measurements) bool
	}

# Integration

pkg/generate depends only on BaseConfigLoader (to build the base
ServingConfig a generator overlays onto). pkg/manager depends on all four,
since it is the layer that actually drives a search end to end.
*/
package interfaces

import (
	"context"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// BaseConfigLoader loads a model's on-disk base ServingConfig from the
// model repository. Implementations are read-only and may be called once
// per generator construction (spec.md §5 "Shared resources").
type BaseConfigLoader interface {
	Load(modelName string) (core.Map, error)
}

// ServingRuntime manages the out-of-process inference server lifecycle:
// start and stop (it has no log-capture method). Out of scope for the search core itself; consumed
// only by pkg/manager's driver loop.
type ServingRuntime interface {
	// Start launches the runtime with the given serving configuration and
	// blocks until it is ready to receive the load tool's requests.
	Start(ctx context.Context, serving core.ServingConfig) error
	// Stop tears down the runtime started by the matching Start call.
	Stop(ctx context.Context, serving core.ServingConfig) error
}

// LoadTool invokes the external load generator against a running serving
// instance and parses its output into Measurements.
type LoadTool interface {
	Run(ctx context.Context, load core.LoadConfig) (core.Measurements, error)
}

// ResultStore persists a (RunConfig, Measurements) pair. Referenced only
// via this interface; the search core never depends on a concrete store.
type ResultStore interface {
	Save(ctx context.Context, run core.RunConfig, results core.Measurements) error
}

// ConstraintChecker is a predicate over a completed measurement, used by
// report ranking. Referenced only via this interface per spec.md §1.
type ConstraintChecker interface {
	Satisfies(run core.RunConfig, results core.Measurements) bool
}
