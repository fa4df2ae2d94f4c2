/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/serializer"
)

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "summary output file for json, yaml and table formats (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Usage:   fmt.Sprintf("output format (%s, %s)", textFormat, strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

// usageError marks err as a failure of the run itself.
func usageError(err error) error {
	return cli.Exit(err.Error(), batch.ExitUsage)
}

// parseOutputFormat validates a machine readable output format.
func parseOutputFormat(s string) (serializer.Format, error) {
	outFormat := serializer.Format(strings.ToLower(s))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: %s", s, strings.Join(serializer.SupportedFormats(), ", "))
	}
	return outFormat, nil
}

// writeSummary serializes the batch summary to path, or to the command's
// writer when path is empty.
func writeSummary(ctx context.Context, cmd *cli.Command, format serializer.Format, path string, sum *batch.Summary) error {
	format, err := parseOutputFormat(string(format))
	if err != nil {
		return err
	}

	var ser serializer.Serializer
	if path == "" || path == serializer.StdoutURI {
		ser = serializer.NewWriter(format, cmd.Root().Writer)
	} else {
		ser, err = serializer.NewFileWriterOrStdout(format, path)
		if err != nil {
			return err
		}
	}

	if closer, ok := ser.(serializer.Closer); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				slog.Warn("failed to close serializer", "error", err)
			}
		}()
	}

	return ser.Serialize(ctx, sum)
}
