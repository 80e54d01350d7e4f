package entities

import "time"

// ClaimStatus represents the lifecycle of a claim.
//
// Domain notes:
//   - The status is set once at creation from the routed review type.
//   - A completed review wizard may overwrite it exactly once with the reviewer decision.
type ClaimStatus string

const (
	ClaimStatusPending    ClaimStatus = "pending"
	ClaimStatusProcessing ClaimStatus = "processing"
	ClaimStatusApproved   ClaimStatus = "approved"
	ClaimStatusRejected   ClaimStatus = "rejected"
)

func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusProcessing, ClaimStatusApproved, ClaimStatusRejected:
		return true
	}
	return false
}

type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Vehicle is the identification record produced by the AI collaborators.
type Vehicle struct {
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence"`
}

// BoundingBox is a normalized box, every component in [0,100].
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Within reports whether the box stays inside [0,100] on both axes.
func (b BoundingBox) Within() bool {
	if b.X < 0 || b.Y < 0 || b.Width < 0 || b.Height < 0 {
		return false
	}
	return b.X+b.Width <= 100 && b.Y+b.Height <= 100
}

type DamageArea struct {
	Name        string      `json:"name"`
	Confidence  float64     `json:"confidence"`
	Coordinates BoundingBox `json:"coordinates"`
}

type Damage struct {
	Description   string       `json:"description"`
	Severity      Severity     `json:"severity"`
	Confidence    float64      `json:"confidence"`
	AffectedAreas []DamageArea `json:"affected_areas"`
}

type CostItem struct {
	Category    string  `json:"category"`
	Cost        float64 `json:"cost"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
}

// RegionInfo describes the pricing region the estimate was computed for.
type RegionInfo struct {
	Name           string  `json:"name"`
	LaborRate      float64 `json:"labor_rate"`
	CostMultiplier float64 `json:"cost_multiplier"`
}

type RepairCost struct {
	Total     float64    `json:"total"`
	Breakdown []CostItem `json:"breakdown"`
	Region    RegionInfo `json:"region"`
}

// SumBreakdown returns the sum of all breakdown line costs.
func SumBreakdown(items []CostItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Cost
	}
	return total
}

type HistoricalComparison struct {
	AverageCost    float64 `json:"average_cost"`
	PercentileRank float64 `json:"percentile_rank"`
	SimilarClaims  int     `json:"similar_claims"`
}

// Claim (assessment result) is the unit of work stored by the lifecycle store.
//
// ID and Timestamp are immutable once created. AIConfidence is derived exactly once,
// at creation, by the review router.
type Claim struct {
	ID                   string               `json:"id"`
	Timestamp            time.Time            `json:"timestamp"`
	Vehicle              Vehicle              `json:"vehicle"`
	Damage               Damage               `json:"damage"`
	RepairCost           RepairCost           `json:"repair_cost"`
	HistoricalComparison HistoricalComparison `json:"historical_comparison"`
	Status               ClaimStatus          `json:"status"`
	AIConfidence         AIConfidence         `json:"ai_confidence"`
	ReviewNotes          string               `json:"review_notes,omitempty"`
	ReviewedAt           *time.Time           `json:"reviewed_at,omitempty"`
}

// Reviewed reports whether a review decision was already committed.
func (c Claim) Reviewed() bool { return c.ReviewedAt != nil }

// Clone returns a deep copy so callers never share slices with the store.
func (c Claim) Clone() Claim {
	out := c
	if c.Damage.AffectedAreas != nil {
		out.Damage.AffectedAreas = append([]DamageArea(nil), c.Damage.AffectedAreas...)
	}
	if c.RepairCost.Breakdown != nil {
		out.RepairCost.Breakdown = append([]CostItem(nil), c.RepairCost.Breakdown...)
	}
	if c.AIConfidence.EscalationReason != nil {
		r := *c.AIConfidence.EscalationReason
		out.AIConfidence.EscalationReason = &r
	}
	if c.ReviewedAt != nil {
		at := *c.ReviewedAt
		out.ReviewedAt = &at
	}
	return out
}
