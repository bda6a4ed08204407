// Copyright 2026 The PlotProof Authors
// SPDX-License-Identifier: Apache-2.0

package audit

// Risk labels. The whole decision logic is the single branch in Classify;
// keep it that way.
const (
	RiskHigh       = "High Risk"
	RiskNegligible = "Negligible Risk"
)

// Classification maps a territory lookup onto the dashboard's visual and
// textual treatment.
type Classification struct {
	Risk    string
	Finding string // Social Legality finding cell
	Fill    [4]int // RGBA, translucent polygon fill
	Line    [4]int // RGBA, polygon outline
}

// Classify is a pure two-way function of "was any territory returned".
// Non-empty ⇒ High Risk with a red translucent fill; empty ⇒ Negligible
// Risk with a green one.
func Classify(territoryNames []string) Classification {
	if len(territoryNames) > 0 {
		return Classification{
			Risk:    RiskHigh,
			Finding: "Risk Flagged",
			Fill:    [4]int{255, 75, 75, 150},
			Line:    [4]int{0, 0, 0, 200},
		}
	}

	return Classification{
		Risk:    RiskNegligible,
		Finding: RiskNegligible,
		Fill:    [4]int{34, 139, 34, 150},
		Line:    [4]int{0, 0, 0, 200},
	}
}
