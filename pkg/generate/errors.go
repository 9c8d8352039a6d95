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

import "fmt"

// EnvironmentMismatchError is returned by NewRunConfigGenerator when the
// co-located models do not agree on a runtime environment (spec.md §4.5
// "Environment check"): all models profiled together must run against the
// same server environment, since they share one serving runtime instance.
type EnvironmentMismatchError struct {
	ModelName string
}

func (e *EnvironmentMismatchError) Error() string {
	return fmt.Sprintf("model %q has a runtime environment that differs from the other co-located models", e.ModelName)
}
