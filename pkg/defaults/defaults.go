/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package defaults

// Dataset discovery defaults.
const (
	// DataDir is the dataset directory used when none is configured.
	DataDir = "data"
)

// Validation defaults.
const (
	// Parallelism is the default number of features validated concurrently.
	Parallelism = 1

	// MaxParallelism is the highest accepted parallelism setting.
	MaxParallelism = 64
)

// Configuration defaults.
const (
	// ConfigFile is the configuration file looked up in the working directory.
	ConfigFile = "marketlint.yaml"

	// ConfigFileEnv names the environment variable pointing to a config file.
	ConfigFileEnv = "MARKETLINT_CONFIG"

	// EnvPrefix prefixes every configuration environment variable.
	EnvPrefix = "MARKETLINT_"

	// OutputFormat is the default report format.
	OutputFormat = "text"
)

// API server defaults.
const (
	// MaxPort is the highest accepted listen port. Port 0 selects the
	// server default (8080 or $PORT).
	MaxPort = 65535

	// RateLimit is the number of API requests per second allowed.
	RateLimit = 50

	// RateLimitBurst is the API request burst size.
	RateLimitBurst = 100
)
