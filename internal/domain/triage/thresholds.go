// Package triage holds the confidence classifier and the review router.
//
// Both are pure functions over already-normalized claim data: no IO, no clocks, no globals.
package triage

// Thresholds centralizes every numeric cut-off used by the classifier and the router.
//
// Comparison semantics are part of the policy:
//   - HighScore / MediumScore are strict "greater than".
//   - AutoDamageConfidence / AutoAreaConfidence are "at least".
//   - MinAreaConfidence / MinDamageConfidence are strict "less than" triggers.
//   - MaxCostDeviation is a strict "greater than" trigger.
type Thresholds struct {
	HighScore            float64
	MediumScore          float64
	AutoDamageConfidence float64
	AutoAreaConfidence   float64
	MinAreaConfidence    float64
	MinDamageConfidence  float64
	MaxAffectedAreas     int
	MaxCostDeviation     float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighScore:            90,
		MediumScore:          80,
		AutoDamageConfidence: 85,
		AutoAreaConfidence:   85,
		MinAreaConfidence:    75,
		MinDamageConfidence:  70,
		MaxAffectedAreas:     2,
		MaxCostDeviation:     0.2,
	}
}
