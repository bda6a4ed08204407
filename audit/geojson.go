// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"github.com/lmendieta/plotproof/spatial"
)

// ExportFilename is the name suggested for the downloaded evidence file.
const ExportFilename = "EUDR_Final_Evidence.geojson"

// FeatureCollection is a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is a GeoJSON Feature with Polygon geometry.
type Feature struct {
	Type       string            `json:"type"`
	Geometry   PolygonGeometry   `json:"geometry"`
	Properties FeatureProperties `json:"properties"`
}

// PolygonGeometry holds the polygon rings as [lng, lat] pairs.
type PolygonGeometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// FeatureProperties carries the audit verdict alongside the geometry.
type FeatureProperties struct {
	Risk   string   `json:"risk"`
	Tribes []string `json:"tribes"`
}

// Export serializes the working set as a single-feature FeatureCollection.
// The ring is the ordered point list with the first point appended again at
// the end: GeoJSON polygons need the explicit closure that the map layer
// does implicitly.
func Export(points []spatial.Point, result *Result) FeatureCollection {
	ring := make([][2]float64, 0, len(points)+1)

	for _, p := range points {
		ring = append(ring, [2]float64{p.Lng, p.Lat})
	}

	if len(points) > 0 {
		ring = append(ring, [2]float64{points[0].Lng, points[0].Lat})
	}

	tribes := result.Territories
	if tribes == nil {
		tribes = []string{}
	}

	return FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			{
				Type: "Feature",
				Geometry: PolygonGeometry{
					Type:        "Polygon",
					Coordinates: [][][2]float64{ring},
				},
				Properties: FeatureProperties{
					Risk:   result.Risk,
					Tribes: tribes,
				},
			},
		},
	}
}
