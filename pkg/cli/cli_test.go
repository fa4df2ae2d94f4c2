/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/config"
)

const passingDataset = `{
	"features": [{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [13.40495, 52.520008]},
		"properties": {"title": "Wochenmarkt", "location": "Platz", "opening_hours": "Sa 09:00-16:00", "opening_hours_unclassified": null}
	}],
	"metadata": {
		"data_source": {"title": "Berlin", "url": "https://daten.berlin.de"},
		"map_initialization": {"coordinates": [13.4, 52.5], "zoom_level": 30}
	}
}`

const failingDataset = `{
	"features": [{
		"type": "Feature",
		"geometry": {"type": "Point", "coordinates": [-180, 52.5]},
		"properties": {"title": "Markt", "location": "Platz", "opening_hours": null, "opening_hours_unclassified": null}
	}],
	"metadata": {"data_source": {"title": "Hamburg", "url": "https://hamburg.de"}}
}`

func datasetDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.Writer = &buf
	cmd.ErrWriter = &buf
	err := cmd.Run(context.Background(), append([]string{name}, args...))
	return buf.String(), err
}

func exitCodeOf(err error) int {
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	if err != nil {
		return batch.ExitUsage
	}
	return batch.ExitPassed
}

func TestValidate_Passing(t *testing.T) {
	dir := datasetDir(t, map[string]string{"berlin.json": passingDataset})

	out, err := run(t, "validate", "--dir", dir, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "BERLIN: PASSED without warnings or errors.")
}

func TestValidate_Failing(t *testing.T) {
	dir := datasetDir(t, map[string]string{"hamburg.json": failingDataset})

	out, err := run(t, "validate", "-d", dir)
	assert.Equal(t, batch.ExitFailed, exitCodeOf(err))
	assert.Contains(t, out, "HAMBURG: Markt")
	assert.Contains(t, out, "Field 'longitude' exceeds valid range of [-180:180]. Actual value is -180.")
	assert.Contains(t, out, "Field 'opening_hours_unclassified' cannot be null.")
	assert.Contains(t, out, "HAMBURG: FAILED with 0 warning(s) and 2 error(s).")
}

func TestValidate_MapInitializationOptIn(t *testing.T) {
	dir := datasetDir(t, map[string]string{"berlin.json": passingDataset})

	out, err := run(t, "validate", "--dir", dir, "--check-map-init")
	assert.Equal(t, batch.ExitFailed, exitCodeOf(err))
	assert.Contains(t, out, "Field 'zoom_level' exceeds valid range of [1:18]. Actual value is 30.")
}

func TestValidate_JSONSummary(t *testing.T) {
	dir := datasetDir(t, map[string]string{
		"berlin.json":  passingDataset,
		"hamburg.json": failingDataset,
	})

	out, err := run(t, "validate", "--dir", dir, "--format", "json")
	assert.Equal(t, batch.ExitFailed, exitCodeOf(err))

	var sum batch.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, 1, sum.Passed)
	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 2, sum.Errors)
	assert.Len(t, sum.Datasets, 2)
}

func TestValidate_OutputFileAndMetrics(t *testing.T) {
	dir := datasetDir(t, map[string]string{"berlin.json": passingDataset})
	outDir := t.TempDir()
	summaryPath := filepath.Join(outDir, "summary.yaml")
	metricsPath := filepath.Join(outDir, "marketlint.prom")

	_, err := run(t, "validate", "--dir", dir, "--format", "yaml", "--output", summaryPath, "--metrics-file", metricsPath)
	require.NoError(t, err)

	summary, err := os.ReadFile(summaryPath)
	require.NoError(t, err)
	assert.Contains(t, string(summary), "passed: 1")

	metrics, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "marketlint_datasets_validated_total")
}

func TestValidate_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing directory", []string{"validate", "--dir", filepath.Join(os.TempDir(), "marketlint-missing-dir")}},
		{"unknown format", []string{"validate", "--dir", ".", "--format", "xml"}},
		{"parallelism out of range", []string{"validate", "--dir", ".", "--parallelism", "0"}},
		{"missing config file", []string{"validate", "--config", "does-not-exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Equal(t, batch.ExitUsage, exitCodeOf(err))
		})
	}
}

func TestValidate_FailFast(t *testing.T) {
	dir := datasetDir(t, map[string]string{"broken.json": "{"})

	out, err := run(t, "validate", "--dir", dir)
	assert.Equal(t, batch.ExitFailed, exitCodeOf(err))
	assert.Contains(t, out, "BROKEN: FAILED, document cannot be validated")

	_, err = run(t, "validate", "--dir", dir, "--fail-fast")
	assert.Equal(t, batch.ExitUsage, exitCodeOf(err))
}

func TestCheckHours(t *testing.T) {
	out, err := run(t, "check-hours", "Mo-Fr 08:00-18:00", "Sa 8:00-13:00")
	require.NoError(t, err)
	assert.Contains(t, out, `OK    "Mo-Fr 08:00-18:00"`)
	assert.Contains(t, out, `WARN  "Sa 8:00-13:00": Time '8:00' should use two-digit hours: '08:00'.`)

	out, err = run(t, "check-hours", "Mo-Fr 8-18")
	assert.Equal(t, batch.ExitFailed, exitCodeOf(err))
	assert.Contains(t, out, `ERROR "Mo-Fr 8-18"`)

	_, err = run(t, "check-hours")
	assert.Equal(t, batch.ExitUsage, exitCodeOf(err))
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "marketlint dev (commit: unknown")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, batch.ExitPassed, exitCode(nil))
	assert.Equal(t, batch.ExitFailed, exitCode(cli.Exit("", batch.ExitFailed)))
	assert.Equal(t, batch.ExitUsage, exitCode(errors.New("flag provided but not defined")))
}

func TestValidateCmd_CommandStructure(t *testing.T) {
	cmd := validateCmd()

	if cmd.Name != "validate" {
		t.Errorf("Name = %v, want validate", cmd.Name)
	}
	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}
	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"dir", "d", "config", "exclude", "check-map-init", "suggest-fields",
		"parallelism", "fail-fast", "no-color", "metrics-file", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}

func TestServe_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"port out of range", []string{"serve", "--port", "70000"}},
		{"zero rate limit", []string{"serve", "--rate-limit", "0"}},
		{"missing config file", []string{"serve", "--config", "does-not-exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			assert.Equal(t, batch.ExitUsage, exitCodeOf(err))
		})
	}
}

func TestServerConfig(t *testing.T) {
	t.Setenv("PORT", "")

	cfg := config.Default()
	sc := serverConfig(cfg)
	assert.Equal(t, 8080, sc.Port)
	assert.Equal(t, "", sc.Address)
	assert.InDelta(t, 50.0, float64(sc.RateLimit), 0.0001)
	assert.Equal(t, 100, sc.RateLimitBurst)

	cfg.ListenAddress = "127.0.0.1"
	cfg.Port = 9999
	cfg.RateLimit = 2
	cfg.RateLimitBurst = 4
	sc = serverConfig(cfg)
	assert.Equal(t, "127.0.0.1", sc.Address)
	assert.Equal(t, 9999, sc.Port)
	assert.InDelta(t, 2.0, float64(sc.RateLimit), 0.0001)
	assert.Equal(t, 4, sc.RateLimitBurst)
}

func TestServeCmd_CommandStructure(t *testing.T) {
	cmd := serveCmd()
	if cmd.Name != "serve" {
		t.Errorf("Name = %v, want serve", cmd.Name)
	}
	for _, flagName := range []string{"config", "address", "port", "p", "rate-limit", "rate-limit-burst",
		"check-map-init", "suggest-fields", "parallelism"} {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}
}

func TestCommandLister(t *testing.T) {
	assert.NoError(t, commandLister(context.Background(), nil))

	var buf bytes.Buffer
	rootCmd := &cli.Command{
		Name:   "root",
		Writer: &buf,
		Commands: []*cli.Command{
			{Name: "visible1", Usage: "first"},
			{Name: "hidden", Hidden: true},
			{Name: "visible2", Usage: "second"},
		},
	}
	require.NoError(t, commandLister(context.Background(), rootCmd))
	assert.Contains(t, buf.String(), "visible1")
	assert.Contains(t, buf.String(), "visible2")
	assert.NotContains(t, buf.String(), "hidden")
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}
