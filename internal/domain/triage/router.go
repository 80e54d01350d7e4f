package triage

import (
	"math"

	"claim_triage/internal/domain/entities"
)

// ClaimSnapshot is the subset of a claim the router looks at.
type ClaimSnapshot struct {
	DamageConfidence float64
	Severity         entities.Severity
	AreaConfidences  []float64
	TotalCost        float64
	AverageCost      float64
}

// SnapshotOf extracts the routing inputs from claim parts. Nil slices become empty lists.
func SnapshotOf(damage entities.Damage, cost entities.RepairCost, hist entities.HistoricalComparison) ClaimSnapshot {
	areas := make([]float64, 0, len(damage.AffectedAreas))
	for _, a := range damage.AffectedAreas {
		areas = append(areas, a.Confidence)
	}
	return ClaimSnapshot{
		DamageConfidence: damage.Confidence,
		Severity:         damage.Severity,
		AreaConfidences:  areas,
		TotalCost:        cost.Total,
		AverageCost:      hist.AverageCost,
	}
}

// Decision is the router output. EscalationReason is nil for auto and quick.
type Decision struct {
	Type             entities.ReviewType
	EscalationReason *entities.EscalationReason
}

// Route decides the review tier with the default thresholds.
func Route(score float64, snap ClaimSnapshot) Decision {
	return DefaultThresholds().Route(score, snap)
}

// Route evaluates the escalation rules in priority order; the first match wins.
func (t Thresholds) Route(score float64, snap ClaimSnapshot) Decision {
	if t.autoApprovable(score, snap) {
		return Decision{Type: entities.ReviewTypeAuto}
	}

	for _, c := range snap.AreaConfidences {
		if c < t.MinAreaConfidence {
			return escalate(entities.ReviewTypeSpecialist, entities.EscalationDataQuality)
		}
	}
	if snap.DamageConfidence < t.MinDamageConfidence {
		return escalate(entities.ReviewTypeSpecialist, entities.EscalationDataQuality)
	}
	if snap.Severity == entities.SeveritySevere {
		return escalate(entities.ReviewTypeSpecialist, entities.EscalationStructuralDamage)
	}
	if len(snap.AreaConfidences) > t.MaxAffectedAreas {
		return escalate(entities.ReviewTypeSpecialist, entities.EscalationMultipleDamage)
	}
	if CostDeviation(snap.TotalCost, snap.AverageCost) > t.MaxCostDeviation {
		return escalate(entities.ReviewTypeDetailed, entities.EscalationCostAnomaly)
	}

	if score > t.MediumScore {
		return Decision{Type: entities.ReviewTypeQuick}
	}
	return Decision{Type: entities.ReviewTypeDetailed}
}

func (t Thresholds) autoApprovable(score float64, snap ClaimSnapshot) bool {
	if !(score > t.HighScore) || !(snap.DamageConfidence >= t.AutoDamageConfidence) {
		return false
	}
	for _, c := range snap.AreaConfidences {
		if !(c >= t.AutoAreaConfidence) {
			return false
		}
	}
	return true
}

// CostDeviation is |total-average|/average, or 0 when the average is not positive.
func CostDeviation(total, average float64) float64 {
	if average <= 0 || math.IsNaN(average) || math.IsNaN(total) {
		return 0
	}
	return math.Abs(total-average) / average
}

func escalate(t entities.ReviewType, reason entities.EscalationReason) Decision {
	return Decision{Type: t, EscalationReason: &reason}
}

var processingMinutes = map[entities.ReviewType]int{
	entities.ReviewTypeAuto:       1,
	entities.ReviewTypeQuick:      10,
	entities.ReviewTypeDetailed:   25,
	entities.ReviewTypeSpecialist: 40,
}

// ProcessingTime returns the expected review duration in minutes. Used for reporting only.
func ProcessingTime(rt entities.ReviewType) int {
	return processingMinutes[rt]
}

// DefaultStatus is the status a freshly routed claim starts with.
func DefaultStatus(rt entities.ReviewType) entities.ClaimStatus {
	if rt == entities.ReviewTypeAuto {
		return entities.ClaimStatusApproved
	}
	return entities.ClaimStatusPending
}

// Assess derives the full AIConfidence record for a score and snapshot.
func (t Thresholds) Assess(score float64, snap ClaimSnapshot) entities.AIConfidence {
	d := t.Route(score, snap)
	return entities.AIConfidence{
		Level:            t.Classify(score),
		Score:            score,
		NeedsHumanReview: d.Type != entities.ReviewTypeAuto,
		ReviewType:       d.Type,
		ProcessingTime:   ProcessingTime(d.Type),
		EscalationReason: d.EscalationReason,
	}
}
