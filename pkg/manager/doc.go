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

/*
Package manager drives a pkg/generate run to completion.

# Overview

pkg/generate is pull-driven and has no notion of a running process: it
only produces RunConfig candidates and consumes Measurements fed back to
it. Loop is the thin external driver spec.md §4.6 describes: it pulls
NextConfig/IsDone, starts and stops the serving runtime, invokes the load
tool, and routes the resulting Measurements back via SetLastResults.

# Usage

	loop := manager.NewLoop(gen, runtime, loadTool, store, checker, emitter)
	accepted, err := loop.Run(ctx)
*/
package manager
