/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/marketlint/pkg/batch"
	"github.com/NVIDIA/marketlint/pkg/server"
	"github.com/NVIDIA/marketlint/pkg/validator"
)

const validDataset = `{
  "features": [{
    "type": "Feature",
    "geometry": {"type": "Point", "coordinates": [13.40495, 52.520008]},
    "properties": {
      "title": "Wochenmarkt Kollwitzplatz",
      "location": "Kollwitzplatz",
      "opening_hours": "Sa 09:00-16:00",
      "opening_hours_unclassified": null
    }
  }],
  "metadata": {"data_source": {"title": "Stadt Berlin", "url": "https://example.org"}}
}`

const invalidDataset = `{
  "features": [{
    "type": "Feature",
    "geometry": {"type": "Point", "coordinates": [200, 52.5]},
    "properties": {"title": "Markt", "location": "Platz", "opening_hours": "Sa 9-16"}
  }],
  "metadata": {"data_source": {"title": "x", "url": "https://example.org"}}
}`

const yamlDataset = `
features:
  - type: Feature
    geometry:
      type: Point
      coordinates: [12.37, 51.34]
    properties:
      title: Markt
      location: null
      opening_hours: Mo-Fr 8:00-18:00
      opening_hours_unclassified: null
metadata:
  data_source:
    title: Stadt Leipzig
    url: https://example.org
`

func testHandler() http.Handler {
	return server.New(server.WithHandler(Routes(NewHandler(validator.New())))).Handler()
}

func TestHandleValidate(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		query       string
		body        string
		wantCode    int
		wantStatus  validator.Status
		wantName    string
	}{
		{
			name:       "valid dataset",
			body:       validDataset,
			query:      "?name=berlin",
			wantCode:   http.StatusOK,
			wantStatus: validator.StatusPassed,
			wantName:   "berlin",
		},
		{
			name:       "invalid dataset",
			body:       invalidDataset,
			wantCode:   http.StatusOK,
			wantStatus: validator.StatusFailed,
			wantName:   defaultDocumentName,
		},
		{
			name:        "yaml body with warnings",
			contentType: "application/yaml",
			body:        yamlDataset,
			wantCode:    http.StatusOK,
			wantStatus:  validator.StatusPassedWithWarnings,
			wantName:    defaultDocumentName,
		},
	}

	h := testHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/validate"+tt.query, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var report batch.DatasetReport
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
			assert.Equal(t, tt.wantStatus, report.Status)
			assert.Equal(t, tt.wantName, report.Name)
		})
	}
}

func TestHandleValidate_InvalidDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"features": [`},
		{"top-level array", `[]`},
		{"missing features", `{"metadata": {}}`},
		{"features not an array", `{"features": "x"}`},
	}

	h := testHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(tt.body)))

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
			var resp server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "INVALID_DOCUMENT", resp.Code)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHandleValidate_MethodNotAllowed(t *testing.T) {
	w := httptest.NewRecorder()
	testHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/validate", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodPost, w.Header().Get("Allow"))
}

func TestHandleValidate_BodyTooLarge(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.MaxBodyBytes = 16
	h := server.New(server.WithConfig(cfg), server.WithHandler(Routes(NewHandler(validator.New())))).Handler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/validate", strings.NewReader(validDataset)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleOpeningHours(t *testing.T) {
	tests := []struct {
		name      string
		expr      string
		wantValid bool
		wantWarn  int
	}{
		{"valid", "Mo-Fr 08:00-18:00", true, 0},
		{"warning", "Mo-Fr 8:00-18:00", true, 1},
		{"invalid", "Mo-Fr 8-18", false, 0},
		{"empty", "", false, 0},
	}

	h := testHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/v1/opening-hours?expression=" + url.QueryEscape(tt.expr)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var resp HoursResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expr, resp.Expression)
			assert.Equal(t, tt.wantValid, resp.Valid)
			assert.Len(t, resp.Warnings, tt.wantWarn)
			if !tt.wantValid {
				assert.NotEmpty(t, resp.Error)
			}
		})
	}
}

func TestHandleOpeningHours_BadRequest(t *testing.T) {
	h := testHandler()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/opening-hours", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/opening-hours", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRoutes(t *testing.T) {
	routes := Routes(NewHandler(validator.New()))
	assert.Len(t, routes, 2)
	assert.Contains(t, routes, "/v1/validate")
	assert.Contains(t, routes, "/v1/opening-hours")
}
