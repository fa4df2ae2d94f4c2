/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package dataset finds and decodes market dataset documents.
//
// # Overview
//
// A dataset is one file holding a feature collection plus a metadata block:
//
//	{
//	  "features": [ { "type": "Feature", "geometry": {...}, "properties": {...} } ],
//	  "metadata": { "data_source": { "title": "...", "url": "..." } }
//	}
//
// Documents are decoded into generic maps rather than typed structs so that a
// missing key, an explicit null and an empty value stay distinguishable; the
// validator reports each of them differently.
//
// # Formats
//
// Files ending in .yaml or .yml are decoded with gopkg.in/yaml.v3. Everything
// else is decoded as JSON with github.com/goccy/go-json, keeping numbers as
// json.Number so values are reported at their original precision.
//
// # Discovery
//
// Discover lists the regular files directly inside a directory, in the order
// the directory read returns them. Subdirectories are skipped and names
// matching an exclude pattern are dropped (see FilterOut).
package dataset
