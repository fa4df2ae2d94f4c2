/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelEnv names the environment variable holding the log level.
const LevelEnv = "LOG_LEVEL"

// ParseLevel converts a level name (debug, info, warn, error) to a
// slog.Level. Unknown names yield info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New returns a logger writing to w, tagged with the module name and version.
func New(w io.Writer, name, version string, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("module", name, "version", version)
}

// SetDefaultStructuredLogger installs a JSON logger on stderr as the slog
// default, at the level given by LOG_LEVEL.
func SetDefaultStructuredLogger(name, version string) {
	slog.SetDefault(New(os.Stderr, name, version, ParseLevel(os.Getenv(LevelEnv)), true))
}

// SetDefaultCLILogger installs the logger used by the command line tool:
// text on stderr unless asJSON, debug level when debug is set, LOG_LEVEL
// otherwise.
func SetDefaultCLILogger(name, version string, debug, asJSON bool) {
	level := ParseLevel(os.Getenv(LevelEnv))
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(New(os.Stderr, name, version, level, asJSON))
}
