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

// Command wva-profiler runs the configuration search core against a set of
// co-located models and reports every accepted RunConfig.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/llm-d-incubation/wva-profiler/internal/interfaces"
	"github.com/llm-d-incubation/wva-profiler/internal/logging"
	"github.com/llm-d-incubation/wva-profiler/internal/metrics"
	"github.com/llm-d-incubation/wva-profiler/pkg/config"
	"github.com/llm-d-incubation/wva-profiler/pkg/manager"
)

var version = "dev"

// cliFlags is the kong command-line surface: the search core's only
// required input is one or more YAML configuration files, later files
// overriding earlier ones (pkg/config.Load).
type cliFlags struct {
	Config  []string `arg:"" help:"YAML configuration file(s), later files override earlier ones." type:"path"`
	Verbose bool     `help:"Enable debug logging." short:"v"`

	PerfAnalyzerPath   string `help:"Path to the load-generator binary invoked for each candidate." default:"perf_analyzer"`
	TritonServerBinary string `help:"Path to the serving runtime binary, for non-remote launch modes." default:"tritonserver"`

	Version kong.VersionFlag `help:"Print version and exit."`
}

var CLI cliFlags

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wva-profiler"),
		kong.Description("Configuration search core for a model-serving auto-tuner."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Run implements kong's default command: load configuration, build the
// generator tree, and drive it to completion.
func (c *cliFlags) Run() error {
	log, err := logging.New(c.Verbose)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load(c.Config...)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := metrics.InitMetrics(prometheus.DefaultRegisterer); err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}
	emitter := metrics.NewEmitter()

	loader := interfaces.NewJSONRepository(cfg.ModelRepository)

	gen, err := buildRunConfigGenerator(cfg, loader)
	if err != nil {
		return err
	}

	runtime := newProcessServingRuntime(cfg, c.TritonServerBinary)
	loadTool := newExecLoadTool(c.PerfAnalyzerPath)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = logging.NewContext(ctx, log)

	loop := manager.NewLoop(gen, runtime, loadTool, nil, nil, emitter)
	started := time.Now()
	accepted, err := loop.Run(ctx)
	elapsed := manager.Elapsed(started)
	for _, m := range cfg.ProfileModels {
		emitter.ObserveSearchDuration(m.ModelName, elapsed)
	}
	if err != nil {
		return err
	}

	log.Infow("search complete", "accepted_candidates", len(accepted), "elapsed", elapsed)
	for _, rc := range accepted {
		log.Infow("accepted run config", "run", rc.String())
	}

	return nil
}
