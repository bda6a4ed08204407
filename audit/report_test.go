// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"strings"
	"testing"
)

func TestBuildReportFourFixedRows(t *testing.T) {
	result := &Result{
		Territories:    []string{"Charrúa", "Guaraní"},
		Classification: Classify([]string{"Charrúa", "Guaraní"}),
	}

	rows := BuildReport(result, 7)

	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	wantPillars := []string{"Environmental Baseline", "Social Legality", "Traceability", "Data Integrity"}
	for i, pillar := range wantPillars {
		if rows[i].Pillar != pillar {
			t.Errorf("rows[%d].Pillar = %q, want %q", i, rows[i].Pillar, pillar)
		}
	}

	if rows[1].Reading != "Indigenous Index: Charrúa, Guaraní" {
		t.Errorf("social reading = %q", rows[1].Reading)
	}

	if rows[1].Finding != "Risk Flagged" {
		t.Errorf("social finding = %q, want \"Risk Flagged\"", rows[1].Finding)
	}

	if rows[2].Reading != "7 Survey Vertices" {
		t.Errorf("traceability reading = %q, want \"7 Survey Vertices\"", rows[2].Reading)
	}
}

func TestBuildReportClearWhenNoTerritories(t *testing.T) {
	result := &Result{Classification: Classify(nil)}

	rows := BuildReport(result, 3)

	if rows[1].Reading != "Indigenous Index: Clear" {
		t.Errorf("social reading = %q, want \"Indigenous Index: Clear\"", rows[1].Reading)
	}

	if rows[1].Finding != RiskNegligible {
		t.Errorf("social finding = %q, want %q", rows[1].Finding, RiskNegligible)
	}
}

func TestBuildReportLegalTextIsStatic(t *testing.T) {
	a := BuildReport(&Result{Classification: Classify(nil)}, 3)
	b := BuildReport(&Result{
		Territories:    []string{"X"},
		Classification: Classify([]string{"X"}),
	}, 99)

	for i := range a {
		if a[i].LegalNote != b[i].LegalNote {
			t.Errorf("row %d legal note varies with input", i)
		}

		if !strings.Contains(a[i].LegalNote, "Article") && !strings.Contains(a[i].LegalNote, "TRACES") {
			t.Errorf("row %d legal note lacks the regulation reference: %q", i, a[i].LegalNote)
		}
	}
}
