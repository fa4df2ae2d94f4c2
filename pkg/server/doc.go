/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package server provides the HTTP server used by the marketlint API.
//
// # Overview
//
// Server wraps net/http with the pieces every endpoint needs: request IDs,
// a global token-bucket rate limiter, request body limits, JSON error
// responses derived from StructuredError codes, health and readiness
// probes, a Prometheus /metrics endpoint and graceful shutdown.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("marketlint"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/validate": h.HandleValidate,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. The HTTP
// status and the retryable flag are derived from the error code.
package server
