/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/marketlint/pkg/server"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

const name = "marketlint-api"

// Routes returns the API handlers keyed by path.
func Routes(h *Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/validate":      h.HandleValidate,
		"/v1/opening-hours": h.HandleOpeningHours,
	}
}

// Serve starts the API server and blocks until ctx is canceled.
func Serve(ctx context.Context, v *validator.Validator, cfg *server.Config, version string) error {
	slog.Info("starting",
		"name", name,
		"version", version,
		"check_map_init", v.MapInitializationEnabled(),
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithConfig(cfg),
		server.WithHandler(Routes(NewHandler(v))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
