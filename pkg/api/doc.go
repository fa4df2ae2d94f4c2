/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package api exposes dataset validation over HTTP.
//
// Endpoints:
//
//	POST /v1/validate        validate one dataset document (JSON or YAML body)
//	GET  /v1/opening-hours   check an opening_hours expression (?expression=...)
//
// A document that validates returns 200 with a batch.DatasetReport whose
// status is passed or failed. A body that cannot be decoded, or that has no
// features array, returns 422 with code INVALID_DOCUMENT.
package api
