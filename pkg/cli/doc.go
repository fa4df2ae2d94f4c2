// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cli implements the command-line interface for marketlint.
//
// # Overview
//
// marketlint validates a directory of market datasets: feature collections
// of markets with coordinates, titles and opening hours, plus a metadata
// block describing the data source. It is meant to run in CI next to the
// datasets so that broken files never reach the map.
//
// # Commands
//
// validate - Validate every dataset in a directory:
//
//	marketlint validate --dir data
//	marketlint validate -d data --check-map-init --suggest-fields
//	marketlint validate -d data --format json --output summary.json
//	marketlint validate -d data --metrics-file /var/lib/node_exporter/marketlint.prom
//
// Prints, per dataset, the warnings and errors of every feature, then the
// metadata findings, then a summary line. With --format json, yaml or table
// the run summary is serialized instead.
//
// check-hours - Check opening_hours expressions:
//
//	marketlint check-hours "Mo-Fr 08:00-18:00" "Sa 8:00-13:00"
//
// serve - Serve dataset validation over HTTP:
//
//	marketlint serve --port 8080
//	curl -X POST --data-binary @data/berlin.json localhost:8080/v1/validate
//
// Exposes /v1/validate, /v1/opening-hours, /health, /ready and /metrics.
//
// version - Print version information.
//
// # Global Flags
//
//	--debug        Enable debug logging
//	--log-json     Output logs in JSON format
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Configuration
//
// validate and serve read marketlint.yaml (or the file named by --config or
// MARKETLINT_CONFIG) and MARKETLINT_* environment variables; flags set on
// the command line win.
//
// # Environment Variables
//
//	LOG_LEVEL              Set logging verbosity (debug, info, warn, error)
//	MARKETLINT_CONFIG      Path to the configuration file
//	MARKETLINT_DATA_DIR    Dataset directory
//	MARKETLINT_PORT        API listen port
//	PORT                   API listen port when none is configured
//	NO_COLOR               Disable colored output
//
// # Exit Codes
//
//	0  Every dataset passed (warnings allowed)
//	1  At least one dataset failed
//	2  Invalid arguments, configuration or I/O error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/marketlint/pkg/cli.version=1.0.0'"
package cli
