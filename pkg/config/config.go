// Package config holds tool-level configuration for atelier, loaded from
// defaults and ATELIER_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "ATELIER_"

// Config is the resolved tool configuration
type Config struct {
	// SkeletonDir mounts an on-disk directory of custom skeleton themes over
	// the embedded defaults. Empty means embedded themes only.
	SkeletonDir string `koanf:"skeleton_dir"`
	// Theme is the skeleton theme consulted before the default theme
	Theme string `koanf:"theme"         validate:"required"`
	// Format is the routing configuration format used when the command line
	// does not specify one
	Format string    `koanf:"format"`
	Log    LogConfig `koanf:"log"`
}

// LogConfig controls CLI logging
type LogConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
	JSON  bool   `koanf:"json"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Theme:  "default",
		Format: "yaml",
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load resolves configuration from defaults and the environment
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// ATELIER_LOG_LEVEL -> log.level, ATELIER_SKELETON_DIR -> skeleton_dir
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return transformEnvKey(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// transformEnvKey maps a lowercased env var suffix to its config path.
// Nested keys use the LOG_ section prefix; everything else is a flat key
// whose underscores are part of the name.
func transformEnvKey(key string) string {
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}
