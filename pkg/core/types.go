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

package core

import (
	"fmt"
	"reflect"
)

// ModelSpec is the user's declaration for one profiled model. It is loaded
// once at config time and never mutated afterward.
type ModelSpec struct {
	// ModelName is the model's identifier in the serving runtime's model
	// repository.
	ModelName string

	// CPUOnly forces the automatic serving-config search to request
	// KIND_CPU instance groups instead of KIND_GPU.
	CPUOnly bool

	// ServingParameters is the user-fixed nested parameter map for manual
	// serving-config search (model_config_parameters). Generator
	// selection is made by cmd/wva-profiler from the configuration, not
	// from this field.
	ServingParameters Map

	// LoadToolFlags are user-fixed load-tool flags merged on top of every
	// generated LoadConfig (perf_analyzer_flags). The user always wins.
	LoadToolFlags Map

	// BatchSizes overrides the global batch-size list for this model's
	// load search, if non-empty.
	BatchSizes []int

	// Concurrencies overrides the global concurrency list for this
	// model's load search, if non-empty.
	Concurrencies []int

	// Environment is the opaque runtime-environment descriptor that must
	// compare equal across all co-located models.
	Environment EnvironmentDescriptor
}

// EnvironmentDescriptor is an opaque, comparable value describing the
// runtime environment a model requires (process environment variables,
// container image, etc). Two co-located models must produce equal
// descriptors or the run aborts.
type EnvironmentDescriptor interface {
	// Equal reports whether d describes the same runtime environment as
	// other.
	Equal(other EnvironmentDescriptor) bool
}

// MapEnvironment is the simplest EnvironmentDescriptor: a flat string map
// compared key-by-key.
type MapEnvironment map[string]string

// Equal implements EnvironmentDescriptor.
func (e MapEnvironment) Equal(other EnvironmentDescriptor) bool {
	o, ok := other.(MapEnvironment)
	if !ok {
		return false
	}
	if len(e) != len(o) {
		return false
	}
	for k, v := range e {
		if ov, ok := o[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// ServingConfig is one candidate server-side configuration: the model
// repository's base config with an overlay applied, plus a unique Name.
type ServingConfig struct {
	Name   string
	Fields Map
}

// Clone returns a deep copy.
func (c ServingConfig) Clone() ServingConfig {
	return ServingConfig{Name: c.Name, Fields: c.Fields.Clone()}
}

// LoadConfig is a mapping of load-tool flags for one candidate load
// profile (batch size, concurrency, transport).
type LoadConfig map[string]Value

// Clone returns a deep copy.
func (c LoadConfig) Clone() LoadConfig {
	return LoadConfig(Map(c).Clone())
}

// ParamCombo is one concrete assignment drawn from a parameter map: a
// mapping from key to one candidate value (not a list).
type ParamCombo map[string]Value

// DefaultCombo is the sentinel "use base config unchanged" overlay. It is
// compared against by reference via IsDefaultCombo, not by map equality, so
// an incidental empty user overlay is never mistaken for it.
var DefaultCombo = ParamCombo{}

// IsDefaultCombo reports whether combo is the DefaultCombo sentinel.
func IsDefaultCombo(combo ParamCombo) bool {
	return sameMap(combo, DefaultCombo)
}

func sameMap[K comparable, V any](a, b map[K]V) bool {
	// Map values don't support == directly; reflect.Value.Pointer gives
	// the underlying hmap address, which is stable for the package-level
	// DefaultCombo sentinel and distinct for any independently allocated
	// "empty" map a caller builds.
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

// RunConfig is one fully composed, executable candidate: the shared runtime
// environment plus one (ServingConfig, LoadConfig) pair per co-located
// model, in model order.
type RunConfig struct {
	Environment EnvironmentDescriptor
	Models      []ModelRunConfig
}

// ModelRunConfig pairs one model's serving candidate with the load profile
// it is being measured under.
type ModelRunConfig struct {
	ModelName string
	Serving   ServingConfig
	Load      LoadConfig
}

// String renders a compact, stable identifier useful for logging and test
// failure messages.
func (r RunConfig) String() string {
	names := make([]string, len(r.Models))
	for i, m := range r.Models {
		names[i] = m.Serving.Name
	}
	return fmt.Sprintf("RunConfig%v", names)
}
