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

func newRemoteModelGen(name string) *ModelRunConfigGenerator {
	remote := NewRemoteServingConfigGenerator(core.Map{}, name)
	return NewModelRunConfigGenerator(name, remote, newTestLoadGen)
}

func TestRunConfigGenerator_InnermostModelVariesFastest(t *testing.T) {
	env := core.MapEnvironment{"IMAGE": "triton:1"}
	models := []core.ModelSpec{
		{ModelName: "a", Environment: env},
		{ModelName: "b", Environment: env},
	}

	names := []string{"a", "b"}
	gen, err := NewRunConfigGenerator(models, func(i int) *ModelRunConfigGenerator {
		return newRemoteModelGen(names[i])
	})
	require.NoError(t, err)

	type point struct{ a, b int }
	var points []point
	for !gen.IsDone() {
		rc := gen.NextConfig()
		require.Len(t, rc.Models, 2)
		points = append(points, point{
			a: rc.Models[0].Load["concurrency-range"].(int),
			b: rc.Models[1].Load["concurrency-range"].(int),
		})
		gen.SetLastResults(throughput(10))
	}

	want := []point{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	assert.Equal(t, want, points)
}

func TestRunConfigGenerator_MismatchedEnvironmentsFail(t *testing.T) {
	models := []core.ModelSpec{
		{ModelName: "a", Environment: core.MapEnvironment{"IMAGE": "triton:1"}},
		{ModelName: "b", Environment: core.MapEnvironment{"IMAGE": "triton:2"}},
	}

	_, err := NewRunConfigGenerator(models, func(i int) *ModelRunConfigGenerator {
		return newRemoteModelGen(models[i].ModelName)
	})
	require.Error(t, err)
	var mismatch *EnvironmentMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "b", mismatch.ModelName)
}
