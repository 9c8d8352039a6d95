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

// Value is a heterogeneous tree node: null, bool, number, string, list, or
// map. ServingConfig and ParamCombo are both built out of it, matching the
// dynamically-typed config dictionaries the search core pulls apart and
// recombines (model-repository JSON, user-supplied parameter maps).
//
// Go's empty interface already allows any of these shapes; Value exists so
// that DeepMerge and Cartesian have one named type to pattern-match on
// instead of scattering `interface{}` type switches through the generator
// package.
type Value = any

// Map is a ServingConfig/ParamCombo/LoadConfig node: a string-keyed tree of
// Values. Map keys preserve no particular order by themselves; callers that
// need deterministic iteration (Cartesian) carry key order separately.
type Map map[string]Value

// List is an ordered Value sequence, used for instance_group entries and
// any other list-of-maps the manual serving-config parameters describe.
type List []Value

// Clone returns a deep copy of m so callers can hand out a Map without the
// recipient being able to mutate the original.
func (m Map) Clone() Map {
	return cloneValue(m).(Map)
}

func cloneValue(v Value) Value {
	switch t := v.(type) {
	case Map:
		out := make(Map, len(t))
		for k, val := range t {
			out[k] = cloneValue(val)
		}
		return out
	case List:
		out := make(List, len(t))
		for i, val := range t {
			out[i] = cloneValue(val)
		}
		return out
	default:
		return v
	}
}
