/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "marketlint", "v1.0.0", slog.LevelInfo, true)
	logger.Info("dataset validated", "dataset", "berlin")
	logger.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "dataset validated", entry["msg"])
	assert.Equal(t, "marketlint", entry["module"])
	assert.Equal(t, "v1.0.0", entry["version"])
	assert.Equal(t, "berlin", entry["dataset"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "marketlint", "dev", slog.LevelDebug, false)
	logger.Debug("skipping excluded file", "path", ".hidden.json")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "path=.hidden.json")
}

func TestSetDefaultCLILogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Setenv(LevelEnv, "error")
	SetDefaultCLILogger("marketlint", "dev", false, false)
	assert.False(t, slog.Default().Enabled(context.Background(), slog.LevelWarn))

	SetDefaultCLILogger("marketlint", "dev", true, true)
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
