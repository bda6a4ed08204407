// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

// Package audit implements the EUDR plot due-diligence pipeline: session
// state, spreadsheet ingestion, centroid computation, indigenous-territory
// lookup, risk classification, the compliance report, and GeoJSON export.
package audit

import (
	"sync"

	"github.com/lmendieta/plotproof/spatial"
)

// Commodities is the fixed set of commodities covered by the regulation.
var Commodities = []string{"Wood", "Coffee", "Cocoa", "Rubber", "Soya", "Palm Oil", "Cattle"}

// ValidCommodity reports whether the commodity is one of the covered set.
func ValidCommodity(c string) bool {
	for _, v := range Commodities {
		if v == c {
			return true
		}
	}

	return false
}

// Session holds the scratch state of a single audit: the manually entered
// and the spreadsheet-imported coordinate sequences, plus the operator and
// commodity under review. It is process-scoped and intentionally ephemeral;
// nothing survives a restart.
type Session struct {
	mu       sync.RWMutex
	manual   []spatial.Point
	imported []spatial.Point

	operator  string
	commodity string
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{
		operator:  "Global Trade Corp",
		commodity: Commodities[0],
	}
}

// AddManual appends exactly one point to the manual sequence. Coordinates
// are taken as-is: no bounds check, no deduplication.
func (s *Session) AddManual(p spatial.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manual = append(s.manual, p)
}

// ReplaceImported overwrites the whole imported sequence. Re-importing the
// same workbook therefore replaces, never duplicates.
func (s *Session) ReplaceImported(points []spatial.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.imported = make([]spatial.Point, len(points))
	copy(s.imported, points)
}

// Reset clears both sequences atomically.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.manual = nil
	s.imported = nil
}

// Points returns the working set: imported points followed by manual points.
// Order is preserved; it determines the polygon winding.
func (s *Session) Points() []spatial.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]spatial.Point, 0, len(s.imported)+len(s.manual))
	out = append(out, s.imported...)
	out = append(out, s.manual...)

	return out
}

// Count returns the total number of points across both sequences.
func (s *Session) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.imported) + len(s.manual)
}

// SetEntity records the operator name and commodity. The commodity must be
// one of Commodities; callers validate before setting.
func (s *Session) SetEntity(operator, commodity string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.operator = operator
	s.commodity = commodity
}

// Entity returns the operator name and commodity under review.
func (s *Session) Entity() (operator, commodity string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.operator, s.commodity
}
