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

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigGenerator_MaterializesFullCartesianAtConstruction(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     "m",
		BatchSizes:    []int{1, 2},
		Concurrencies: []int{1, 2, 4},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "localhost:8000"},
	})
	assert.Len(t, gen.candidates, 6)
}

func TestLoadConfigGenerator_UserFlagsWinOverSearchParams(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:  "m",
		BatchSizes: []int{1},
		FixedFlags: core.Map{"batch-size": 99},
		Network:    &NetworkEndpoint{Protocol: "grpc", URL: "localhost:8001"},
	})
	require.Len(t, gen.candidates, 1)
	assert.Equal(t, 99, gen.candidates[0]["batch-size"])
}

func TestLoadConfigGenerator_PlateauAfterFourMeasurements(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     "m",
		Concurrencies: []int{1, 2, 4, 8, 16, 32},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "x"},
	})

	samples := []float64{10, 11, 11.1, 11.15, 11.17}
	for i, s := range samples {
		require.False(t, gen.IsDone(), "must not be done before sample %d", i)
		gen.NextConfig()
		gen.SetLastResults(throughput(s))
	}
	assert.True(t, gen.IsDone(), "gains 0.009, 0.0045, 0.0018 are all <= 0.05")
}

func TestLoadConfigGenerator_AnyLargeGainKeepsGoing(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     "m",
		Concurrencies: []int{1, 2, 4, 8, 16},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "x"},
	})

	// Gains: (11-10)/10=0.1 (>threshold), (11.01-11)/11~0.0009,
	// (20-11.01)/11.01~0.817 (>threshold). The literal "any exceeds =>
	// continue" rule means this must NOT be declared a plateau even though
	// one of the three gains is tiny.
	samples := []float64{10, 11, 11.01, 20}
	for _, s := range samples {
		gen.NextConfig()
		gen.SetLastResults(throughput(s))
	}
	assert.False(t, gen.IsDone())
}

func TestLoadConfigGenerator_EmptyMeasurementBatchStopsEarly(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     "m",
		Concurrencies: []int{1, 2, 4, 8},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "x"},
	})

	gen.NextConfig()
	gen.SetLastResults(core.Measurements{})
	assert.True(t, gen.IsDone())
}

func TestLoadConfigGenerator_IndexExhaustionStops(t *testing.T) {
	gen := NewLoadConfigGenerator(LoadConfigGeneratorOpts{
		ModelName:     "m",
		Concurrencies: []int{1},
		Network:       &NetworkEndpoint{Protocol: "http", URL: "x"},
	})
	require.False(t, gen.IsDone())
	gen.NextConfig()
	gen.SetLastResults(throughput(5))
	assert.True(t, gen.IsDone())
}
