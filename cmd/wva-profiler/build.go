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
	"fmt"

	"github.com/llm-d-incubation/wva-profiler/internal/constants"
	"github.com/llm-d-incubation/wva-profiler/internal/interfaces"
	"github.com/llm-d-incubation/wva-profiler/pkg/config"
	"github.com/llm-d-incubation/wva-profiler/pkg/core"
	"github.com/llm-d-incubation/wva-profiler/pkg/generate"
)

// buildRunConfigGenerator wires one generate.RunConfigGenerator from a
// loaded ProfileConfig: one ServingConfigGenerator + LoadConfigGenerator
// factory pair per profile_models entry, composed via
// ModelRunConfigGenerator.
func buildRunConfigGenerator(cfg *config.ProfileConfig, loader interfaces.BaseConfigLoader) (*generate.RunConfigGenerator, error) {
	models := make([]core.ModelSpec, len(cfg.ProfileModels))
	for i, m := range cfg.ProfileModels {
		models[i] = core.ModelSpec{
			ModelName:         m.ModelName,
			CPUOnly:           m.CPUOnly,
			ServingParameters: m.ModelConfigParameters,
			LoadToolFlags:     m.PerfAnalyzerFlags,
			Environment:       core.MapEnvironment(m.Environment),
		}
	}

	return generate.NewRunConfigGenerator(models, func(i int) *generate.ModelRunConfigGenerator {
		m := cfg.ProfileModels[i]

		base, err := loader.Load(m.ModelName)
		if err != nil {
			// The search core treats base-config loading as an upstream
			// collaborator concern (spec.md §6); a missing base config is
			// a configuration-time defect, so an empty base is used and
			// the overlay still produces a structurally valid
			// ServingConfig rather than aborting generator construction
			// (NewModelRunConfigGenerator has no error return).
			base = core.Map{}
		}

		servingGen := buildServingGenerator(cfg, m, base)
		newLoadGen := buildLoadGenFactory(cfg, m)
		return generate.NewModelRunConfigGenerator(m.ModelName, servingGen, newLoadGen)
	})
}

func buildServingGenerator(cfg *config.ProfileConfig, m config.ModelSpecConfig, base core.Map) generate.ServingConfigGenerator {
	if cfg.TritonLaunchMode == constants.LaunchModeRemote {
		return generate.NewRemoteServingConfigGenerator(base, m.ModelName)
	}
	if m.ModelConfigParameters != nil {
		return generate.NewManualServingConfigGenerator(base, m.ModelName, m.ModelConfigParameters)
	}
	if cfg.RunConfigSearchDisable {
		return generate.NewDefaultServingConfigGenerator(base, m.ModelName)
	}
	return generate.NewAutomaticServingConfigGenerator(
		base, m.ModelName, m.CPUOnly,
		cfg.RunConfigSearchMinInstanceCount, cfg.RunConfigSearchMaxInstanceCount,
		cfg.RunConfigSearchMinModelBatchSize, cfg.RunConfigSearchMaxModelBatchSize,
	)
}

func buildLoadGenFactory(cfg *config.ProfileConfig, m config.ModelSpecConfig) func(core.ServingConfig) *generate.LoadConfigGenerator {
	batchSizes := cfg.BatchSizes
	concurrencies := cfg.Concurrency
	if m.Parameters != nil {
		if len(m.Parameters.BatchSizes) > 0 {
			batchSizes = m.Parameters.BatchSizes
		}
		if len(m.Parameters.Concurrency) > 0 {
			concurrencies = m.Parameters.Concurrency
		}
	}

	return func(serving core.ServingConfig) *generate.LoadConfigGenerator {
		opts := generate.LoadConfigGeneratorOpts{
			ModelName:         m.ModelName,
			FixedFlags:        m.PerfAnalyzerFlags,
			BatchSizes:        batchSizes,
			Concurrencies:     concurrencies,
			MaxConcurrency:    cfg.RunConfigSearchMaxConcurrency,
			ConcurrencySearch: !cfg.RunConfigSearchDisable && len(concurrencies) == 0,
		}

		switch cfg.TritonLaunchMode {
		case constants.LaunchModeRemote:
			opts.Network = &generate.NetworkEndpoint{Protocol: cfg.ClientProtocol, URL: cfg.TritonServerURL}
		case constants.LaunchModeCAPI:
			opts.InProcess = &generate.InProcessTarget{
				ServiceKind:     constants.ServingServiceKind,
				ServerDirectory: cfg.TritonServerPath,
				ModelRepository: cfg.ModelRepository,
			}
		default:
			opts.Network = &generate.NetworkEndpoint{Protocol: cfg.ClientProtocol, URL: fmt.Sprintf("localhost:%s", defaultPortFor(cfg.ClientProtocol))}
		}

		return generate.NewLoadConfigGenerator(opts)
	}
}

func defaultPortFor(protocol string) string {
	if protocol == constants.ProtocolGRPC {
		return "8001"
	}
	return "8000"
}
