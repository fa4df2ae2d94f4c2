/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/config"
	"github.com/NVIDIA/marketlint/pkg/report"
	"github.com/NVIDIA/marketlint/pkg/serializer"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

const textFormat = "text"

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate every dataset in a directory",
		Description: `Validate each regular file in the dataset directory as one dataset:
  - feature type, geometry and coordinates
  - title, location and opening hours of every market
  - the metadata data source (and, optionally, the initial map view)

Errors fail a dataset, warnings do not. The exit status is 1 when any
dataset failed and 2 when the run itself could not complete.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "dataset directory (default: data)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "configuration file (default: marketlint.yaml if present)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "file name pattern to skip (prefix*, *suffix, *contains*, exact); repeatable",
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
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "stop at the first document that cannot be decoded",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics in text format to this file",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: runValidate,
	}
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return usageError(err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	slog.Debug("configuration loaded",
		"dir", cfg.DataDir,
		"exclude", cfg.Exclude,
		"format", cfg.Format,
		"parallelism", cfg.Parallelism)

	v := newValidator(cfg)

	opts := []batch.Option{
		batch.WithExclude(cfg.Exclude),
		batch.WithFailFast(cfg.FailFast),
	}
	if cfg.Format == textFormat {
		opts = append(opts, batch.WithPrinter(report.NewPrinter(
			cmd.Root().Writer,
			report.WithColor(cmd.Root().Writer == os.Stdout && report.ColorEnabled(os.Stdout, cfg.NoColor)),
		)))
	}

	sum, err := batch.NewRunner(v, opts...).Run(ctx, cfg.DataDir)
	if err != nil {
		return usageError(fmt.Errorf("validation run failed: %w", err))
	}

	if cfg.Format != textFormat {
		if err := writeSummary(ctx, cmd, serializer.Format(cfg.Format), cfg.Output, sum); err != nil {
			return usageError(err)
		}
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return usageError(fmt.Errorf("failed to write metrics file %q: %w", cfg.MetricsFile, err))
		}
	}

	if code := sum.ExitCode(); code != batch.ExitPassed {
		return cli.Exit("", code)
	}
	return nil
}

func newValidator(cfg *config.Config) *validator.Validator {
	return validator.New(
		validator.WithVersion(version),
		validator.WithMapInitialization(cfg.CheckMapInitialization),
		validator.WithFieldSuggestions(cfg.SuggestFields),
		validator.WithParallelism(cfg.Parallelism),
	)
}

// applyFlags overrides configuration values with flags set explicitly.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("dir") {
		cfg.DataDir = cmd.String("dir")
	}
	if cmd.IsSet("exclude") {
		cfg.Exclude = cmd.StringSlice("exclude")
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
	if cmd.IsSet("fail-fast") {
		cfg.FailFast = cmd.Bool("fail-fast")
	}
	if cmd.IsSet("no-color") {
		cfg.NoColor = cmd.Bool("no-color")
	}
	if cmd.IsSet("metrics-file") {
		cfg.MetricsFile = cmd.String("metrics-file")
	}
	if cmd.IsSet("output") {
		cfg.Output = cmd.String("output")
	}
	if cmd.IsSet("format") {
		cfg.Format = strings.ToLower(cmd.String("format"))
	}
}
