/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/logging"
)

const (
	name           = "marketlint"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/marketlint/pkg/cli.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the marketlint command line and exits with its status code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().Run(ctx, os.Args)
	stop()

	os.Exit(exitCode(err))
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Validate market datasets",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "output logs in JSON format",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultCLILogger(name, version, cmd.Bool("debug"), cmd.Bool("log-json"))
			return ctx, nil
		},
		// Exit codes are mapped by exitCode so commands stay testable.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			validateCmd(),
			checkHoursCmd(),
			serveCmd(),
			versionCmd(),
		},
		Action: commandLister,
	}
}

// exitCode maps a command error to the process exit status and reports it
// on stderr.
func exitCode(err error) int {
	if err == nil {
		return batch.ExitPassed
	}

	code := batch.ExitUsage
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	return code
}

// commandLister prints the visible subcommands when none is given.
func commandLister(_ context.Context, cmd *cli.Command) error {
	if cmd == nil || cmd.Root() == nil {
		return nil
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, "Usage: %s <command> [flags]\n\nCommands:\n", cmd.Root().Name)
	for _, c := range cmd.Root().Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintf(w, "  %-12s %s\n", c.Name, c.Usage)
	}
	return nil
}
