// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"context"
	"errors"

	"github.com/uber/h3-go/v4"

	"github.com/lmendieta/plotproof/spatial"
)

// MinPoints is the smallest working set that yields a polygon worth
// auditing. Below it the system stays in the awaiting-input state.
const MinPoints = 3

// ErrInsufficientPoints is returned by Run when fewer than MinPoints are
// supplied. It marks a normal state, not a failure.
var ErrInsufficientPoints = errors.New("at least 3 points are required")

// locatorResolution is the H3 resolution of the plot locator (~0.7 km²
// cells, fine enough to identify a plot without leaking exact vertices).
const locatorResolution = 8

// Result is the outcome of one audit pass. It is derived from the current
// point collection and never cached; every render recomputes it.
type Result struct {
	Centroid    spatial.Point
	Territories []string
	Unavailable bool
	Locator     string
	Classification
}

// Auditor runs the audit pipeline against a territory index.
type Auditor struct {
	lookup TerritoryLookup
}

// NewAuditor creates an auditor backed by the given territory lookup.
func NewAuditor(lookup TerritoryLookup) *Auditor {
	return &Auditor{lookup: lookup}
}

// Run computes the centroid of the working set, queries the territory index
// for it, and classifies the plot. Lookup failures degrade to an empty
// territory list with Unavailable set; they never surface as errors.
func (a *Auditor) Run(ctx context.Context, points []spatial.Point) (*Result, error) {
	if len(points) < MinPoints {
		return nil, ErrInsufficientPoints
	}

	centroid, _ := spatial.Centroid(points)
	lookup := a.lookup.Lookup(ctx, centroid)

	return &Result{
		Centroid:       centroid,
		Territories:    lookup.Names,
		Unavailable:    lookup.Unavailable,
		Locator:        locatorCell(centroid),
		Classification: Classify(lookup.Names),
	}, nil
}

// locatorCell returns the H3 cell of the centroid as a printable plot
// locator. An empty string means the centroid is outside the H3 domain.
func locatorCell(p spatial.Point) string {
	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), locatorResolution)
	if err != nil {
		return ""
	}

	return cell.String()
}
