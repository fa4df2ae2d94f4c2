/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/marketlint/pkg/dataset"
	cnserrors "github.com/NVIDIA/marketlint/pkg/errors"
)

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func TestHTTPStatusFromCode(t *testing.T) {
	tests := []struct {
		code      cnserrors.ErrorCode
		status    int
		retryable bool
	}{
		{cnserrors.ErrCodeInvalidRequest, http.StatusBadRequest, false},
		{cnserrors.ErrCodeInvalidDocument, http.StatusUnprocessableEntity, false},
		{cnserrors.ErrCodeNotFound, http.StatusNotFound, false},
		{cnserrors.ErrCodeMethodNotAllowed, http.StatusMethodNotAllowed, false},
		{cnserrors.ErrCodeRateLimitExceeded, http.StatusTooManyRequests, true},
		{cnserrors.ErrCodeUnavailable, http.StatusServiceUnavailable, true},
		{cnserrors.ErrCodeTimeout, http.StatusGatewayTimeout, true},
		{cnserrors.ErrCodeInternal, http.StatusInternalServerError, true},
		{cnserrors.ErrorCode("UNMAPPED"), http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := HTTPStatusFromCode(tt.code); got != tt.status {
				t.Errorf("HTTPStatusFromCode(%s) = %d, want %d", tt.code, got, tt.status)
			}
			if got := retryableFromCode(tt.code); got != tt.retryable {
				t.Errorf("retryableFromCode(%s) = %v, want %v", tt.code, got, tt.retryable)
			}
		})
	}
}

func TestMergeDetails(t *testing.T) {
	assert.Nil(t, mergeDetails(nil, map[string]any{}))

	got := mergeDetails(map[string]any{"dataset": "berlin", "path": "a"}, map[string]any{"path": "b"})
	assert.Equal(t, map[string]any{"dataset": "berlin", "path": "b"}, got)
}

func TestWriteError_UsesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", nil)
	req = req.WithContext(context.WithValue(req.Context(), contextKeyRequestID, "4f1c8e9a"))
	w := httptest.NewRecorder()

	WriteError(w, req, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest, "expression is required", false,
		map[string]any{"param": "expression"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "expression is required", resp.Message)
	assert.Equal(t, "4f1c8e9a", resp.RequestID)
	assert.Equal(t, "expression", resp.Details["param"])
	assert.False(t, resp.Timestamp.IsZero())
}

func TestWriteErrorFromErr(t *testing.T) {
	docErr := &dataset.DocumentError{Path: "request", Reason: "field 'features' is missing"}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
		retryable  bool
		details    map[string]any
	}{
		{
			name: "undecodable document",
			err: cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidDocument, "dataset cannot be decoded", docErr,
				map[string]any{"dataset": "request"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_DOCUMENT",
			wantMsg:    "dataset cannot be decoded",
			details: map[string]any{
				"dataset": "request",
				"error":   docErr.Error(),
			},
		},
		{
			name:       "interrupted validation",
			err:        cnserrors.Wrap(cnserrors.ErrCodeTimeout, "feature validation interrupted", context.Canceled),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "TIMEOUT",
			wantMsg:    "feature validation interrupted",
			retryable:  true,
			details:    map[string]any{"error": "context canceled"},
		},
		{
			name:       "structured error wrapped by fmt",
			err:        fmt.Errorf("handler: %w", cnserrors.New(cnserrors.ErrCodeNotFound, "no such route")),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "no such route",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    "validation failed",
			retryable:  true,
			details:    map[string]any{"error": "boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteErrorFromErr(w, httptest.NewRequest(http.MethodPost, "/v1/validate", nil), tt.err, "validation failed", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.retryable, resp.Retryable)
			assert.Equal(t, tt.details, resp.Details)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestWriteErrorFromErr_BodyTooLarge(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(`{"features": []}`))
	body := http.MaxBytesReader(w, req.Body, 8)

	_, err := io.ReadAll(body)
	require.Error(t, err)

	wrapped := cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to read request body", err)
	WriteErrorFromErr(w, req, wrapped, "failed to read request body", map[string]any{"dataset": "request"})

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "INVALID_REQUEST", resp.Code)
	assert.Equal(t, "request body too large", resp.Message)
	assert.False(t, resp.Retryable)
	assert.Equal(t, "request", resp.Details["dataset"])
	assert.InDelta(t, 8, resp.Details["limit"], 0)
}
