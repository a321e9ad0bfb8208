// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// options.go — functional options for the fallback calculators.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs (nil).
//     The calculators themselves never panic on invalid shapes.
//   • No hidden mutable globals: the default logger is built once and only
//     replaced per call through WithLogger.

package geometry

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Option customizes a single CalculateArea/CalculateVolume call.
type Option func(*calcConfig)

// calcConfig is the resolved per-call configuration.
type calcConfig struct {
	logger *zap.Logger
}

// stderrLogger receives diagnostics when no WithLogger option is given.
// Console encoding on stderr at Warn level; building it cannot fail.
var stderrLogger = zap.New(zapcore.NewCore(
	zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
	zapcore.Lock(os.Stderr),
	zapcore.WarnLevel,
))

// WithLogger routes diagnostics to l. Panics on nil; pass zap.NewNop()
// to silence diagnostics explicitly.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("geometry: WithLogger(nil)")
	}
	return func(c *calcConfig) {
		c.logger = l
	}
}

// newCalcConfig applies opts over the defaults.
func newCalcConfig(opts ...Option) calcConfig {
	cfg := calcConfig{logger: stderrLogger}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
