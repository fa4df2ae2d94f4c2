/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads marketlint settings.
//
// Settings are layered, lowest to highest precedence: built-in defaults,
// an optional YAML file, MARKETLINT_* environment variables. Command line
// flags are applied on top by the caller, which then calls Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/NVIDIA/marketlint/pkg/defaults"
	cnserrors "github.com/NVIDIA/marketlint/pkg/errors"
)

// Config holds the settings of a validation run.
type Config struct {
	DataDir                string   `koanf:"data_dir" yaml:"data_dir" validate:"required"`
	Exclude                []string `koanf:"exclude" yaml:"exclude"`
	CheckMapInitialization bool     `koanf:"check_map_initialization" yaml:"check_map_initialization"`
	SuggestFields          bool     `koanf:"suggest_fields" yaml:"suggest_fields"`
	Parallelism            int      `koanf:"parallelism" yaml:"parallelism" validate:"min=1,max=64"`
	FailFast               bool     `koanf:"fail_fast" yaml:"fail_fast"`
	Format                 string   `koanf:"format" yaml:"format" validate:"oneof=text json yaml table"`
	Output                 string   `koanf:"output" yaml:"output"`
	MetricsFile            string   `koanf:"metrics_file" yaml:"metrics_file"`
	NoColor                bool     `koanf:"no_color" yaml:"no_color"`

	// API server settings, used by the serve command.
	ListenAddress  string  `koanf:"listen_address" yaml:"listen_address"`
	Port           int     `koanf:"port" yaml:"port" validate:"min=0,max=65535"`
	RateLimit      float64 `koanf:"rate_limit" yaml:"rate_limit" validate:"gt=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" yaml:"rate_limit_burst" validate:"min=1"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:     defaults.DataDir,
		Parallelism: defaults.Parallelism,
		Format:      defaults.OutputFormat,

		RateLimit:      defaults.RateLimit,
		RateLimitBurst: defaults.RateLimitBurst,
	}
}

// sliceKeys are parsed from comma-separated strings when set via environment.
var sliceKeys = []string{"exclude"}

var validate = validator.New()

// Load builds the configuration. When path is empty, MARKETLINT_CONFIG and
// then ./marketlint.yaml are tried; a missing implicit file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to load defaults", err)
	}

	configPath, err := findConfigFile(path)
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidRequest, "failed to load config file", err,
				map[string]any{"path": configPath})
		}
	}

	if err := k.Load(env.Provider(defaults.EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to load environment variables", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInternal, "failed to process slice fields", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to unmarshal configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return cnserrors.Wrap(cnserrors.ErrCodeInternal, "configuration validation failed", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return cnserrors.New(cnserrors.ErrCodeInvalidRequest, "invalid configuration: "+strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "max":
		switch fe.Field() {
		case "Parallelism":
			return fmt.Sprintf("%s must be between 1 and %d, got %v", fe.Field(), defaults.MaxParallelism, fe.Value())
		case "Port":
			return fmt.Sprintf("%s must be between 0 and %d, got %v", fe.Field(), defaults.MaxPort, fe.Value())
		default:
			return fmt.Sprintf("%s must be at least %s, got %v", fe.Field(), fe.Param(), fe.Value())
		}
	case "gt":
		return fmt.Sprintf("%s must be greater than %s, got %v", fe.Field(), fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func findConfigFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound, "config file not found", err,
				map[string]any{"path": explicit})
		}
		return explicit, nil
	}

	if p := os.Getenv(defaults.ConfigFileEnv); p != "" {
		if _, err := os.Stat(p); err != nil {
			return "", cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound, "config file not found", err,
				map[string]any{"path": p, "env": defaults.ConfigFileEnv})
		}
		return p, nil
	}

	if _, err := os.Stat(defaults.ConfigFile); err == nil {
		return defaults.ConfigFile, nil
	}
	return "", nil
}

// envTransformFunc maps MARKETLINT_DATA_DIR to data_dir. The config file
// variable itself is skipped.
func envTransformFunc(key string) string {
	if key == defaults.ConfigFileEnv {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(key, defaults.EnvPrefix))
}

func processSliceFields(k *koanf.Koanf) error {
	for _, key := range sliceKeys {
		s, ok := k.Get(key).(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(key, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}
	return nil
}
