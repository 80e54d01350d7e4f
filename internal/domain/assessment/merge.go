// Package assessment combines the partial outputs of the vision analyzer and the
// language model into one claim input.
package assessment

import (
	"errors"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/estimate"
)

var ErrNoResults = errors.New("no assessment results to merge")

// VisionResult is what the image analyzer reports.
type VisionResult struct {
	Vehicle *entities.Vehicle `json:"vehicle,omitempty"`
	Damage  entities.Damage   `json:"damage"`
}

// LanguageResult is what the language model reports. Zero values mean "not provided".
type LanguageResult struct {
	Vehicle     *entities.Vehicle `json:"vehicle,omitempty"`
	Description string            `json:"description,omitempty"`
	Severity    entities.Severity `json:"severity,omitempty"`
	Score       *float64          `json:"score,omitempty"`
}

// Merge builds a claim input with explicit field precedence:
//   - vehicle: language model, then vision
//   - description and severity: language model when set, then vision
//   - affected areas and damage confidence: vision only
//   - score: language model when set, else vision damage confidence
//
// Repair cost and historical comparison are estimated from the merged damage.
func Merge(vision *VisionResult, lang *LanguageResult, region entities.RegionInfo) (entities.ClaimInput, error) {
	if vision == nil && lang == nil {
		return entities.ClaimInput{}, ErrNoResults
	}

	var in entities.ClaimInput
	if vision != nil {
		in.Damage = vision.Damage
		in.Damage.AffectedAreas = append([]entities.DamageArea(nil), vision.Damage.AffectedAreas...)
		in.Score = vision.Damage.Confidence
		if vision.Vehicle != nil {
			in.Vehicle = *vision.Vehicle
		}
	}

	if lang != nil {
		if lang.Vehicle != nil {
			in.Vehicle = *lang.Vehicle
		}
		if lang.Description != "" {
			in.Damage.Description = lang.Description
		}
		if lang.Severity.Valid() {
			in.Damage.Severity = lang.Severity
		}
		if lang.Score != nil {
			in.Score = *lang.Score
		}
	}

	if !in.Damage.Severity.Valid() {
		in.Damage.Severity = entities.SeverityModerate
	}

	in.RepairCost = estimate.Repair(in.Damage, region)
	in.HistoricalComparison = estimate.Historical(in.RepairCost.Total, in.Damage.Severity, in.RepairCost.Region)
	return in, nil
}
