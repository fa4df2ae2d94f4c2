/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/marketlint/pkg/api"
	"github.com/NVIDIA/marketlint/pkg/config"
	"github.com/NVIDIA/marketlint/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve dataset validation over HTTP",
		Description: `Start the validation API:
  POST /v1/validate        validate one dataset (JSON, or YAML with a yaml Content-Type)
  GET  /v1/opening-hours   check an opening_hours expression
  GET  /health, /ready     liveness and readiness probes
  GET  /metrics            Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (default: marketlint.yaml if present)",
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "listen address (default: all interfaces)",
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "listen port (default: $PORT or 8080)",
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Usage: "API requests per second",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Usage: "API request burst size",
			},
			&cli.BoolFlag{
				Name:  "check-map-init",
				Usage: "also validate metadata.map_initialization",
			},
			&cli.BoolFlag{
				Name:  "suggest-fields",
				Usage: "warn about property names that look like typos of known ones",
			},
			&cli.IntFlag{
				Name:  "parallelism",
				Usage: "number of features validated concurrently",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return usageError(err)
	}
	applyServeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	return api.Serve(ctx, newValidator(cfg), serverConfig(cfg), version)
}

func applyServeFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("address") {
		cfg.ListenAddress = cmd.String("address")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}
	if cmd.IsSet("rate-limit") {
		cfg.RateLimit = cmd.Float("rate-limit")
	}
	if cmd.IsSet("rate-limit-burst") {
		cfg.RateLimitBurst = cmd.Int("rate-limit-burst")
	}
	if cmd.IsSet("check-map-init") {
		cfg.CheckMapInitialization = cmd.Bool("check-map-init")
	}
	if cmd.IsSet("suggest-fields") {
		cfg.SuggestFields = cmd.Bool("suggest-fields")
	}
	if cmd.IsSet("parallelism") {
		cfg.Parallelism = cmd.Int("parallelism")
	}
}

// serverConfig derives the HTTP server settings. Port 0 keeps the
// server default.
func serverConfig(cfg *config.Config) *server.Config {
	sc := server.DefaultConfig()
	sc.Address = cfg.ListenAddress
	if cfg.Port != 0 {
		sc.Port = cfg.Port
	}
	sc.RateLimit = rate.Limit(cfg.RateLimit)
	sc.RateLimitBurst = cfg.RateLimitBurst
	return sc
}
