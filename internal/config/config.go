// Package config defines tool configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - Functions accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// TotalPossible is the maximum attainable score used for roster
	// entries that do not set their own.
	TotalPossible float64 `koanf:"total_possible"`

	// MetricsEnabled toggles Prometheus metric collection.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// DemoStudents sets the roster size generated in demo mode.
	DemoStudents int `koanf:"demo_students"`

	// DemoSeed seeds the demo roster generator for reproducible runs.
	DemoSeed int64 `koanf:"demo_seed"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:       "info",
		TotalPossible:  100,
		MetricsEnabled: true,
		DemoStudents:   10,
		DemoSeed:       42,
	}
	return c
}
