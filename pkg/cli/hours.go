/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/openinghours"
)

func checkHoursCmd() *cli.Command {
	return &cli.Command{
		Name:      "check-hours",
		Usage:     "Check opening_hours expressions",
		ArgsUsage: "EXPR...",
		Description: `Parse each expression with the same grammar the validator uses and print
OK, its advisory warnings, or the syntax error with its position.
The exit status is 1 when any expression is invalid.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			exprs := cmd.Args().Slice()
			if len(exprs) == 0 {
				return usageError(errors.New("at least one expression is required"))
			}

			w := cmd.Root().Writer
			var checker openinghours.Checker
			invalid := 0
			for _, expr := range exprs {
				warnings, err := checker.Check(expr)
				switch {
				case err != nil:
					invalid++
					fmt.Fprintf(w, "ERROR %q: %v\n", expr, err)
				case len(warnings) == 0:
					fmt.Fprintf(w, "OK    %q\n", expr)
				default:
					for _, warning := range warnings {
						fmt.Fprintf(w, "WARN  %q: %s\n", expr, warning)
					}
				}
			}

			if invalid > 0 {
				return cli.Exit(fmt.Sprintf("%d of %d expression(s) invalid", invalid, len(exprs)), batch.ExitFailed)
			}
			return nil
		},
	}
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			fmt.Fprintf(cmd.Root().Writer, "%s %s (commit: %s, date: %s)\n", name, version, commit, date)
			return nil
		},
	}
}
