package triage

import "claim_triage/internal/domain/entities"

// Classify maps a raw AI confidence score to a level using the default thresholds.
func Classify(score float64) entities.ConfidenceLevel {
	return DefaultThresholds().Classify(score)
}

// Classify maps score to high (> HighScore), medium (> MediumScore) or low.
// NaN fails both comparisons and lands on low.
func (t Thresholds) Classify(score float64) entities.ConfidenceLevel {
	switch {
	case score > t.HighScore:
		return entities.ConfidenceHigh
	case score > t.MediumScore:
		return entities.ConfidenceMedium
	default:
		return entities.ConfidenceLow
	}
}
