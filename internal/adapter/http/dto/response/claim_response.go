package response

import (
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase"
)

type AIConfidenceResponse struct {
	Level            string  `json:"level"`
	Score            float64 `json:"score"`
	NeedsHumanReview bool    `json:"needs_human_review"`
	ReviewType       string  `json:"review_type"`
	ProcessingTime   int     `json:"processing_time_minutes"`
	EscalationReason string  `json:"escalation_reason,omitempty"`
}

type ClaimResponse struct {
	ID                   string                        `json:"id"`
	Timestamp            time.Time                     `json:"timestamp"`
	Vehicle              entities.Vehicle              `json:"vehicle"`
	Damage               entities.Damage               `json:"damage"`
	RepairCost           entities.RepairCost           `json:"repair_cost"`
	HistoricalComparison entities.HistoricalComparison `json:"historical_comparison"`
	Status               string                        `json:"status"`
	AIConfidence         AIConfidenceResponse          `json:"ai_confidence"`
	ReviewNotes          string                        `json:"review_notes,omitempty"`
	ReviewedAt           *time.Time                    `json:"reviewed_at,omitempty"`
}

type ClaimListResponse struct {
	Items []ClaimResponse `json:"items"`
	Count int             `json:"count"`
}

func FromClaim(c entities.Claim) ClaimResponse {
	c = c.Clone()
	if c.Damage.AffectedAreas == nil {
		c.Damage.AffectedAreas = []entities.DamageArea{}
	}
	if c.RepairCost.Breakdown == nil {
		c.RepairCost.Breakdown = []entities.CostItem{}
	}
	conf := AIConfidenceResponse{
		Level:            string(c.AIConfidence.Level),
		Score:            c.AIConfidence.Score,
		NeedsHumanReview: c.AIConfidence.NeedsHumanReview,
		ReviewType:       string(c.AIConfidence.ReviewType),
		ProcessingTime:   c.AIConfidence.ProcessingTime,
	}
	if c.AIConfidence.EscalationReason != nil {
		conf.EscalationReason = string(*c.AIConfidence.EscalationReason)
	}
	return ClaimResponse{
		ID:                   c.ID,
		Timestamp:            c.Timestamp,
		Vehicle:              c.Vehicle,
		Damage:               c.Damage,
		RepairCost:           c.RepairCost,
		HistoricalComparison: c.HistoricalComparison,
		Status:               string(c.Status),
		AIConfidence:         conf,
		ReviewNotes:          c.ReviewNotes,
		ReviewedAt:           c.ReviewedAt,
	}
}

func FromClaims(cs []entities.Claim) ClaimListResponse {
	items := make([]ClaimResponse, 0, len(cs))
	for _, c := range cs {
		items = append(items, FromClaim(c))
	}
	return ClaimListResponse{Items: items, Count: len(items)}
}

type StatsResponse struct {
	Total                 int            `json:"total"`
	ByStatus              map[string]int `json:"by_status"`
	ByReviewType          map[string]int `json:"by_review_type"`
	AutoApprovalRate      float64        `json:"auto_approval_rate"`
	AverageProcessingTime float64        `json:"average_processing_time_minutes"`
	AverageConfidence     float64        `json:"average_confidence"`
}

func FromStats(s usecase.ClaimStats) StatsResponse {
	out := StatsResponse{
		Total:                 s.Total,
		ByStatus:              make(map[string]int, len(s.ByStatus)),
		ByReviewType:          make(map[string]int, len(s.ByReviewType)),
		AutoApprovalRate:      s.AutoApprovalRate,
		AverageProcessingTime: s.AverageProcessingTime,
		AverageConfidence:     s.AverageConfidence,
	}
	for k, v := range s.ByStatus {
		out.ByStatus[string(k)] = v
	}
	for k, v := range s.ByReviewType {
		out.ByReviewType[string(k)] = v
	}
	return out
}
