package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New(ctx))
//  2. file (YAML) if MARKS_CONFIG is set
//  3. env (prefix MARKS_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New(ctx)

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("MARKS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MARKS_LOG_LEVEL, MARKS_TOTAL_POSSIBLE, ...
	// Map env keys like MARKS_TOTAL_POSSIBLE -> total_possible (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("MARKS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "marks_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.TotalPossible <= 0 {
		return nil, fmt.Errorf("%w: total_possible must be greater than zero", ErrInvalidConfig)
	}
	if cfg.DemoStudents <= 0 {
		return nil, fmt.Errorf("%w: demo_students must be greater than zero", ErrInvalidConfig)
	}
	return &cfg, nil
}
