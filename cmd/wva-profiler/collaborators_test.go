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
	"testing"

	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseThroughputCSV_ReadsLastRowOfNamedColumn(t *testing.T) {
	csv := "Concurrency,Throughput (infer/sec),Latency\n1,100.5,20\n2,205.25,25\n"

	m, err := parseThroughputCSV([]byte(csv))
	require.NoError(t, err)

	v, ok := m.GetMetric("perf_throughput")
	require.True(t, ok)
	assert.Equal(t, 205.25, v)
}

func TestParseThroughputCSV_MissingThroughputColumnErrors(t *testing.T) {
	csv := "Concurrency,Latency\n1,20\n"

	_, err := parseThroughputCSV([]byte(csv))
	assert.Error(t, err)
}

func TestParseThroughputCSV_NoDataRowsErrors(t *testing.T) {
	csv := "Throughput (infer/sec)\n"

	_, err := parseThroughputCSV([]byte(csv))
	assert.Error(t, err)
}

func TestFlattenFlags_SortsAndSkipsNestedValues(t *testing.T) {
	m := core.Map{
		"batch-size":       4,
		"model-name":       "resnet50",
		"instance_group":   core.List{core.Map{"kind": "GPU"}},
		"dynamic_batching": core.Map{"enabled": true},
	}

	args := flattenFlags(m)
	assert.Equal(t, []string{"--batch-size", "4", "--model-name", "resnet50"}, args)
}

func TestFlattenFlags_EmptyMapProducesNoArgs(t *testing.T) {
	assert.Empty(t, flattenFlags(core.Map{}))
}
