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

	"github.com/google/go-cmp/cmp"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPowerOfTwoLadder(t *testing.T) {
	cases := []struct {
		max  int
		want []int
	}{
		{max: 0, want: []int{1}},
		{max: 1, want: []int{1}},
		{max: 4, want: []int{1, 2, 4}},
		{max: 5, want: []int{1, 2, 4}},
		{max: 16, want: []int{1, 2, 4, 8, 16}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PowerOfTwoLadder(c.max))
	}
}

func TestPowerOfTwoLadderFrom(t *testing.T) {
	// min_bs=3, max_bs=15 -> {3,6,12}: 24 would overshoot 15.
	assert.Equal(t, []int{3, 6, 12}, PowerOfTwoLadderFrom(3, 15))
	assert.Nil(t, PowerOfTwoLadderFrom(0, 10))
}

func TestCartesianRightmostFastest(t *testing.T) {
	pm := NewParamMap().
		Set("a", core.Value(1), core.Value(2)).
		Set("b", core.Value("x"), core.Value("y"))

	got := Cartesian(pm)
	want := []core.Map{
		{"a": 1, "b": "x"},
		{"a": 1, "b": "y"},
		{"a": 2, "b": "x"},
		{"a": 2, "b": "y"},
	}
	require.Len(t, got, 4)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cartesian mismatch (-want +got):\n%s", diff)
	}
}

func TestCartesianEmptyKeyYieldsNothing(t *testing.T) {
	pm := NewParamMap().Set("a", core.Value(1)).Set("b")
	assert.Nil(t, Cartesian(pm))
}

func TestCartesianNoKeysYieldsOneEmptyMap(t *testing.T) {
	pm := NewParamMap()
	assert.Equal(t, []core.Map{{}}, Cartesian(pm))
}

func TestDeepMergeScalarOverwrite(t *testing.T) {
	base := core.Map{"max_batch_size": 4, "name": "m"}
	overlay := core.Map{"max_batch_size": 8}

	got := DeepMerge(base, overlay)
	assert.Equal(t, core.Map{"max_batch_size": 8, "name": "m"}, got)
	// base untouched
	assert.Equal(t, 4, base["max_batch_size"])
}

func TestDeepMergeRecursesIntoNestedMaps(t *testing.T) {
	base := core.Map{
		"dynamic_batching": core.Map{"max_queue_delay_microseconds": 100},
	}
	overlay := core.Map{
		"dynamic_batching": core.Map{"preferred_batch_size": []int{4, 8}},
	}

	got := DeepMerge(base, overlay)
	want := core.Map{
		"dynamic_batching": core.Map{
			"max_queue_delay_microseconds": 100,
			"preferred_batch_size":         []int{4, 8},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepMerge mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepMergeTypeChangeOverwritesWholesale(t *testing.T) {
	base := core.Map{"instance_group": core.Map{"count": 1}}
	overlay := core.Map{"instance_group": core.List{core.Map{"count": 2, "kind": "KIND_GPU"}}}

	got := DeepMerge(base, overlay)
	want := core.Map{"instance_group": core.List{core.Map{"count": 2, "kind": "KIND_GPU"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DeepMerge mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepMergeIsIdempotent(t *testing.T) {
	base := core.Map{"a": core.Map{"b": 1, "c": 2}}
	overlay := core.Map{"a": core.Map{"b": 9}}

	once := DeepMerge(base, overlay)
	twice := DeepMerge(once, overlay)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("DeepMerge not idempotent (-once +twice):\n%s", diff)
	}
}
