package entities

// ClaimInput is the normalized record handed over by the AI collaborators
// (real providers or the mock generator). Score is the overall AI confidence, 0-100.
type ClaimInput struct {
	Vehicle              Vehicle              `json:"vehicle"`
	Damage               Damage               `json:"damage"`
	RepairCost           RepairCost           `json:"repair_cost"`
	HistoricalComparison HistoricalComparison `json:"historical_comparison"`
	Score                float64              `json:"score"`
	StatusOverride       *ClaimStatus         `json:"status_override,omitempty"`
}
