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

// Package logging attaches a zap logger to a context.Context, mirroring the
// teacher's ctrl.LoggerFrom(ctx).V(logging.DEBUG).Info(...) call convention
// without depending on controller-runtime or logr: this is a CLI tool, not
// a Kubernetes controller, so there is no ambient manager logger to pull
// from a context the way a Reconcile call would.
package logging

import (
	"context"

	"go.uber.org/zap"
)

// Level names the verbosity tiers the search core logs at.
type Level int

const (
	// INFO is emitted unconditionally: one candidate's dispatch, one
	// generator's termination, fatal configuration errors.
	INFO Level = iota
	// DEBUG is emitted only when the driver is run with verbose logging
	// enabled: per-candidate field dumps, feedback routing decisions.
	DEBUG
)

type ctxKey struct{}

// NewContext returns a copy of ctx carrying l, retrievable via L.
func NewContext(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// L returns the logger attached to ctx, or a no-op logger if none was
// attached (matching logr's behavior of never panicking on a missing
// logger).
func L(ctx context.Context) *zap.SugaredLogger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok {
		return l
	}
	return zap.NewNop().Sugar()
}

// V reports whether messages at level should be logged, given the
// configured minimum verbosity. Mirrors the teacher's logger.V(level)
// gating without requiring a logr.Logger.
func V(level, minLevel Level) bool {
	return level <= minLevel
}

// New builds the process-wide logger: a production zap configuration at
// INFO, or a development configuration (caller, stacktraces) when debug is
// true, matching run_config_search_disable-adjacent "--verbose"-style CLI
// flags wired in cmd/wva-profiler.
func New(debug bool) (*zap.SugaredLogger, error) {
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		return l.Sugar(), nil
	}

	l, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}
