/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package geo holds the coordinate and zoom bounds used when validating
// market datasets.
//
// Coordinates follow GeoJSON ordering, [longitude, latitude]. The latitude and
// longitude ranges are half-open: the lower bound is excluded and the upper
// bound is included, so -180 is rejected while 180 is accepted. Existing
// datasets were validated against these bounds and must keep passing.
package geo

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0

	MinZoomLevel = 1.0
	MaxZoomLevel = 18.0
)

// LatitudeInRange reports whether v lies in (-90, 90].
func LatitudeInRange(v float64) bool {
	return v > MinLatitude && v <= MaxLatitude
}

// LongitudeInRange reports whether v lies in (-180, 180].
func LongitudeInRange(v float64) bool {
	return v > MinLongitude && v <= MaxLongitude
}

// ZoomLevelInRange reports whether v lies in [1, 18].
func ZoomLevelInRange(v float64) bool {
	return v >= MinZoomLevel && v <= MaxZoomLevel
}
