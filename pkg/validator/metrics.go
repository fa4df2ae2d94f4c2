/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package validator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Dataset validation metrics
	datasetValidationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "marketlint_dataset_validation_duration_seconds",
			Help:    "Time taken to validate a single dataset",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	datasetsValidatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketlint_datasets_validated_total",
			Help: "Total number of validated datasets",
		},
		[]string{"status"}, // passed, passed-with-warnings, failed or invalid-document
	)

	issuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "marketlint_issues_total",
			Help: "Total number of validation issues reported",
		},
		[]string{"severity"}, // error or warning
	)
)
