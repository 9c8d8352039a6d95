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

// Package constants holds the small set of literal values shared across the
// search core that would otherwise be duplicated between pkg/generate,
// pkg/config and internal/metrics.
package constants

// ThroughputGainThreshold is the relative throughput gain between two
// consecutive load-level measurements that must be exceeded to count as
// progress. Three consecutive gains at or below this value declare a plateau.
const ThroughputGainThreshold = 0.05

// DefaultMeasurementMode is the perf-analyzer measurement mode used when the
// user does not override it.
const DefaultMeasurementMode = "count_windows"

// Instance kinds for the automatic serving-config state machine.
const (
	InstanceKindGPU = "KIND_GPU"
	InstanceKindCPU = "KIND_CPU"
)

// Launch modes recognized on ProfileConfig.TritonLaunchMode.
const (
	LaunchModeLocal  = "local"
	LaunchModeRemote = "remote"
	LaunchModeDocker = "docker"
	LaunchModeCAPI   = "c_api"
)

// Client protocols recognized on ProfileConfig.ClientProtocol.
const (
	ProtocolHTTP = "http"
	ProtocolGRPC = "grpc"
)

// ServingServiceKind is the perf-analyzer service-kind value used in c_api
// (in-process) launch mode.
const ServingServiceKind = "triton_c_api"

// Load-tool parameter keys, mirroring Model Analyzer's PerfAnalyzerConfig
// flag names. Kept as constants so generator code and tests never repeat the
// raw strings.
const (
	LoadParamModelName         = "model-name"
	LoadParamBatchSize         = "batch-size"
	LoadParamConcurrencyRange  = "concurrency-range"
	LoadParamMeasurementMode   = "measurement-mode"
	LoadParamServiceKind       = "service-kind"
	LoadParamServerDirectory   = "triton-server-directory"
	LoadParamModelRepository   = "model-repository"
	LoadParamProtocol          = "protocol"
	LoadParamURL               = "url"
)

// MetricThroughput is the only measurement metric the search core reads.
const MetricThroughput = "perf_throughput"
