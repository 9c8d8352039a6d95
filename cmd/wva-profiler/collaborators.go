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

package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"sync"

	"github.com/llm-d-incubation/wva-profiler/internal/constants"
	"github.com/llm-d-incubation/wva-profiler/pkg/config"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
)

// processServingRuntime implements interfaces.ServingRuntime by spawning
// and killing a local server subprocess per candidate, matching
// triton_launch_mode's local/docker/c_api modes. In remote mode the
// inference server is assumed already running and Start/Stop are no-ops,
// matching the remote ServingConfigGenerator's single-candidate
// short-circuit (spec.md §4.3.1: there is only ever one serving
// configuration to "start").
type processServingRuntime struct {
	binary string
	remote bool

	mu    sync.Mutex
	procs map[string]*exec.Cmd
}

func newProcessServingRuntime(cfg *config.ProfileConfig, binary string) *processServingRuntime {
	return &processServingRuntime{
		binary: binary,
		remote: cfg.TritonLaunchMode == constants.LaunchModeRemote,
		procs:  make(map[string]*exec.Cmd),
	}
}

// Start implements interfaces.ServingRuntime. It returns as soon as the
// subprocess is spawned; it does not wait for the server to become ready.
func (r *processServingRuntime) Start(ctx context.Context, serving core.ServingConfig) error {
	if r.remote {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := exec.CommandContext(ctx, r.binary, flattenFlags(serving.Fields)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting serving runtime for %q: %w", serving.Name, err)
	}
	r.procs[serving.Name] = cmd
	return nil
}

// Stop implements interfaces.ServingRuntime.
func (r *processServingRuntime) Stop(ctx context.Context, serving core.ServingConfig) error {
	if r.remote {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cmd, ok := r.procs[serving.Name]
	if !ok || cmd.Process == nil {
		return nil
	}
	delete(r.procs, serving.Name)
	if err := cmd.Process.Kill(); err != nil {
		return fmt.Errorf("stopping serving runtime for %q: %w", serving.Name, err)
	}
	return nil
}

// execLoadTool implements interfaces.LoadTool by shelling out to the
// load-generator binary with one "--flag value" pair per LoadConfig entry
// and parsing its CSV report for the throughput metric, mirroring how
// Model Analyzer drives perf_analyzer as a subprocess.
type execLoadTool struct {
	binary string
}

func newExecLoadTool(binary string) *execLoadTool {
	return &execLoadTool{binary: binary}
}

// Run implements interfaces.LoadTool.
func (t *execLoadTool) Run(ctx context.Context, load core.LoadConfig) (core.Measurements, error) {
	cmd := exec.CommandContext(ctx, t.binary, flattenFlags(core.Map(load))...)

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("running load tool: %w", err)
	}

	m, err := parseThroughputCSV(out.Bytes())
	if err != nil {
		return nil, err
	}
	return core.Measurements{m}, nil
}

// scalarMeasurement is the measurement parseThroughputCSV returns: a flat
// metric name -> value map satisfying core.Measurement.
type scalarMeasurement map[string]float64

// GetMetric implements core.Measurement.
func (m scalarMeasurement) GetMetric(name string) (float64, bool) {
	v, ok := m[name]
	return v, ok
}

// parseThroughputCSV reads the load tool's CSV report and returns the
// throughput column of its last row (the steady-state measurement window).
func parseThroughputCSV(raw []byte) (scalarMeasurement, error) {
	r := csv.NewReader(bytes.NewReader(raw))
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing load tool CSV output: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("load tool CSV output has no data rows")
	}

	header := records[0]
	col := -1
	for i, h := range header {
		if h == "Throughput (infer/sec)" || h == "perf_throughput" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("load tool CSV output has no throughput column")
	}

	last := records[len(records)-1]
	v, err := strconv.ParseFloat(last[col], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing throughput value %q: %w", last[col], err)
	}

	return scalarMeasurement{constants.MetricThroughput: v}, nil
}

// flattenFlags renders a core.Map of scalar flag values as sorted
// "--key", "value" argument pairs, skipping nested maps/lists (dynamic
// batching and instance groups are server-config-file concerns, not
// command-line flags, in every launch mode this runtime supports).
func flattenFlags(m core.Map) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		switch v := m[k].(type) {
		case core.Map, core.List:
			continue
		default:
			args = append(args, "--"+k, fmt.Sprintf("%v", v))
		}
	}
	return args
}
