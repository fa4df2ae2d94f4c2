/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/dataset"
	cnserrors "github.com/NVIDIA/marketlint/pkg/errors"
	"github.com/NVIDIA/marketlint/pkg/openinghours"
	"github.com/NVIDIA/marketlint/pkg/server"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

const defaultDocumentName = "request"

// Handler serves the validation endpoints.
type Handler struct {
	validator *validator.Validator
	hours     validator.HoursChecker
}

// NewHandler returns a Handler validating with v.
func NewHandler(v *validator.Validator) *Handler {
	return &Handler{validator: v, hours: openinghours.Checker{}}
}

// HoursResponse is the result of checking one opening_hours expression.
type HoursResponse struct {
	Expression string   `json:"expression" yaml:"expression"`
	Valid      bool     `json:"valid" yaml:"valid"`
	Warnings   []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// HandleValidate handles POST /v1/validate.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		server.WriteErrorFromErr(w, r, cnserrors.Wrap(cnserrors.ErrCodeInvalidRequest, "failed to read request body", err),
			"failed to read request body", nil)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = defaultDocumentName
	}

	doc, err := dataset.Decode(name, formatFromRequest(r), body)
	if err != nil {
		server.WriteErrorFromErr(w, r, cnserrors.WrapWithContext(cnserrors.ErrCodeInvalidDocument,
			"dataset cannot be decoded", err, map[string]any{"dataset": name}), "dataset cannot be decoded", nil)
		return
	}

	res, err := h.validator.ValidateDocument(r.Context(), doc)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "validation failed", map[string]any{"dataset": name})
		return
	}

	server.RespondJSON(w, http.StatusOK, batch.NewDatasetReport(res))
}

// HandleOpeningHours handles GET /v1/opening-hours?expression=...
func (h *Handler) HandleOpeningHours(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		server.WriteError(w, r, http.StatusMethodNotAllowed, cnserrors.ErrCodeMethodNotAllowed,
			"method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	q := r.URL.Query()
	if !q.Has("expression") {
		server.WriteError(w, r, http.StatusBadRequest, cnserrors.ErrCodeInvalidRequest,
			"query parameter 'expression' is required", false, nil)
		return
	}

	expr := q.Get("expression")
	resp := HoursResponse{Expression: expr, Valid: true}
	warnings, err := h.hours.Check(expr)
	if err != nil {
		resp.Valid = false
		resp.Error = err.Error()
	} else {
		resp.Warnings = warnings
	}

	server.RespondJSON(w, http.StatusOK, resp)
}

func formatFromRequest(r *http.Request) dataset.Format {
	ct := strings.ToLower(r.Header.Get("Content-Type"))
	if strings.Contains(ct, "yaml") {
		return dataset.FormatYAML
	}
	return dataset.FormatJSON
}
