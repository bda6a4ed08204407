// Copyright 2026 The PlotProof Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"fmt"
)

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// Centroid returns the arithmetic mean of the points, component by component.
// The second return value is false when the slice is empty.
func Centroid(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}

	var sumLat, sumLng float64

	for _, p := range points {
		sumLat += p.Lat
		sumLng += p.Lng
	}

	n := float64(len(points))

	return Point{Lat: sumLat / n, Lng: sumLng / n}, true
}
