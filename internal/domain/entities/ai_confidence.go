package entities

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

func (l ConfidenceLevel) Valid() bool {
	switch l {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow:
		return true
	}
	return false
}

// ReviewType is the human-oversight tier assigned to a claim.
type ReviewType string

const (
	ReviewTypeAuto       ReviewType = "auto"
	ReviewTypeQuick      ReviewType = "quick"
	ReviewTypeDetailed   ReviewType = "detailed"
	ReviewTypeSpecialist ReviewType = "specialist"
)

// EscalationReason is the condition that pushed a claim to detailed/specialist review.
//
// HighValue and FraudSuspicion are accepted for manual escalation only; the router never emits them.
type EscalationReason string

const (
	EscalationDataQuality      EscalationReason = "data_quality"
	EscalationStructuralDamage EscalationReason = "structural_damage"
	EscalationMultipleDamage   EscalationReason = "multiple_damage"
	EscalationCostAnomaly      EscalationReason = "cost_anomaly"
	EscalationHighValue        EscalationReason = "high_value"
	EscalationFraudSuspicion   EscalationReason = "fraud_suspicion"
)

// AIConfidence holds the derived routing outcome of a claim.
//
// Level, NeedsHumanReview and ProcessingTime are never set directly; they follow from
// Score and ReviewType.
type AIConfidence struct {
	Level            ConfidenceLevel   `json:"level"`
	Score            float64           `json:"score"`
	NeedsHumanReview bool              `json:"needs_human_review"`
	ReviewType       ReviewType        `json:"review_type"`
	ProcessingTime   int               `json:"processing_time"`
	EscalationReason *EscalationReason `json:"escalation_reason,omitempty"`
}
