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

	"github.com/llm-d-incubation/wva-profiler/internal/constants"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMeasurement is the package-wide test double for core.Measurement.
type fakeMeasurement struct {
	metrics map[string]float64
}

func (m *fakeMeasurement) GetMetric(name string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m.metrics[name]
	return v, ok
}

func throughput(v float64) core.Measurements {
	return core.Measurements{&fakeMeasurement{metrics: map[string]float64{constants.MetricThroughput: v}}}
}

func driveAll(gen ServingConfigGenerator, feedback func(core.ServingConfig) core.Measurements) []core.ServingConfig {
	var out []core.ServingConfig
	for !gen.IsDone() {
		cfg := gen.NextConfig()
		out = append(out, cfg)
		gen.SetLastResults(feedback(cfg))
	}
	return out
}

func TestAutomaticGenerator_BoundaryCaseYieldsExactlyTwoCandidates(t *testing.T) {
	gen := NewAutomaticServingConfigGenerator(core.Map{}, "m", false, 1, 1, 4, 4)

	candidates := driveAll(gen, func(core.ServingConfig) core.Measurements { return throughput(10) })

	require.Len(t, candidates, 2)
	assert.Equal(t, "m_config_default", candidates[0].Name)
	assert.Equal(t, "m_config_0", candidates[1].Name)

	instGroup := candidates[1].Fields["instance_group"].(core.List)[0].(core.Map)
	assert.Equal(t, 1, instGroup["count"])
	assert.Equal(t, 4, candidates[1].Fields["max_batch_size"])
}

func TestAutomaticGenerator_BatchSizeIsInnerAxis(t *testing.T) {
	// min_inst=1, max_inst=2, min_bs=1, max_bs=4: batch ladder {1,2,4} at
	// each instance count before instance count increments.
	gen := NewAutomaticServingConfigGenerator(core.Map{}, "m", false, 1, 2, 1, 4)

	candidates := driveAll(gen, func(core.ServingConfig) core.Measurements { return throughput(10) })

	type point struct {
		count, batch int
	}
	var points []point
	for _, c := range candidates[1:] { // skip the default probe
		ig := c.Fields["instance_group"].(core.List)[0].(core.Map)
		points = append(points, point{count: ig["count"].(int), batch: c.Fields["max_batch_size"].(int)})
	}

	want := []point{
		{1, 1}, {1, 2}, {1, 4},
		{2, 1}, {2, 2}, {2, 4},
	}
	assert.Equal(t, want, points)
}

func TestAutomaticGenerator_CPUOnlyUsesKindCPU(t *testing.T) {
	gen := NewAutomaticServingConfigGenerator(core.Map{}, "m", true, 1, 1, 1, 1)
	gen.NextConfig() // default
	second := gen.NextConfig()
	ig := second.Fields["instance_group"].(core.List)[0].(core.Map)
	assert.Equal(t, constants.InstanceKindCPU, ig["kind"])
}

func TestAutomaticGenerator_ErroneousMeasurementShortCircuitsBatchAxis(t *testing.T) {
	// min_inst=1, max_inst=3, min_bs=1, max_bs=16: a nil measurement at the
	// first inner step should force instance_count to increment instead of
	// doubling max_batch_size again.
	gen := NewAutomaticServingConfigGenerator(core.Map{}, "m", false, 1, 3, 1, 16)

	gen.NextConfig() // default
	first := gen.NextConfig()
	ig := first.Fields["instance_group"].(core.List)[0].(core.Map)
	require.Equal(t, 1, ig["count"])
	require.Equal(t, 1, first.Fields["max_batch_size"])

	gen.SetLastResults(core.Measurements{nil})

	second := gen.NextConfig()
	ig2 := second.Fields["instance_group"].(core.List)[0].(core.Map)
	assert.Equal(t, 2, ig2["count"], "a nil measurement must bump instance count, not double max_batch_size")
	assert.Equal(t, 1, second.Fields["max_batch_size"])
}

func TestAutomaticGenerator_NotDoneBeforeFirstAdvance(t *testing.T) {
	gen := NewAutomaticServingConfigGenerator(core.Map{}, "m", false, 1, 1, 1, 1)
	assert.False(t, gen.IsDone(), "generator must never report done before being advanced at least once")
}
