package request

import (
	"errors"
	"strings"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase"
)

var (
	ErrInvalidSeverity = errors.New("invalid severity")
	ErrInvalidStatus   = errors.New("invalid status")
)

type VehicleRequest struct {
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year" binding:"omitempty,min=1886,max=2100"`
	Color      string  `json:"color"`
	Confidence float64 `json:"confidence" binding:"min=0,max=100"`
}

type BoundingBoxRequest struct {
	X      float64 `json:"x" binding:"min=0,max=100"`
	Y      float64 `json:"y" binding:"min=0,max=100"`
	Width  float64 `json:"width" binding:"min=0,max=100"`
	Height float64 `json:"height" binding:"min=0,max=100"`
}

type DamageAreaRequest struct {
	Name        string             `json:"name" binding:"required"`
	Confidence  float64            `json:"confidence" binding:"min=0,max=100"`
	Coordinates BoundingBoxRequest `json:"coordinates"`
}

type DamageRequest struct {
	Description   string              `json:"description"`
	Severity      string              `json:"severity" binding:"required"`
	Confidence    *float64            `json:"confidence" binding:"required,min=0,max=100"`
	AffectedAreas []DamageAreaRequest `json:"affected_areas" binding:"dive"`
}

type CostItemRequest struct {
	Category    string  `json:"category" binding:"required"`
	Cost        float64 `json:"cost" binding:"min=0"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
}

type RegionRequest struct {
	Name           string  `json:"name"`
	LaborRate      float64 `json:"labor_rate" binding:"min=0"`
	CostMultiplier float64 `json:"cost_multiplier" binding:"min=0"`
}

type RepairCostRequest struct {
	Total     float64           `json:"total" binding:"min=0"`
	Breakdown []CostItemRequest `json:"breakdown" binding:"dive"`
	Region    RegionRequest     `json:"region"`
}

type HistoricalComparisonRequest struct {
	AverageCost    float64 `json:"average_cost" binding:"min=0"`
	PercentileRank float64 `json:"percentile_rank" binding:"min=0,max=100"`
	SimilarClaims  int     `json:"similar_claims" binding:"min=0"`
}

// ClaimRequest is the payload of POST /claims: an already-assessed claim to be routed.
type ClaimRequest struct {
	Vehicle              VehicleRequest              `json:"vehicle"`
	Damage               DamageRequest               `json:"damage"`
	RepairCost           RepairCostRequest           `json:"repair_cost"`
	HistoricalComparison HistoricalComparisonRequest `json:"historical_comparison"`
	Score                *float64                    `json:"score" binding:"required,min=0,max=100"`
	Status               string                      `json:"status"`
}

// ToInput converts the payload to the domain input. Severity and status are matched case-insensitively.
func (r ClaimRequest) ToInput() (entities.ClaimInput, error) {
	severity, err := ParseSeverity(r.Damage.Severity)
	if err != nil {
		return entities.ClaimInput{}, err
	}

	in := entities.ClaimInput{
		Vehicle: entities.Vehicle{
			Make:       strings.TrimSpace(r.Vehicle.Make),
			Model:      strings.TrimSpace(r.Vehicle.Model),
			Year:       r.Vehicle.Year,
			Color:      strings.TrimSpace(r.Vehicle.Color),
			Confidence: r.Vehicle.Confidence,
		},
		Damage: entities.Damage{
			Description: strings.TrimSpace(r.Damage.Description),
			Severity:    severity,
			Confidence:  *r.Damage.Confidence,
		},
		RepairCost: entities.RepairCost{
			Total: r.RepairCost.Total,
			Region: entities.RegionInfo{
				Name:           r.RepairCost.Region.Name,
				LaborRate:      r.RepairCost.Region.LaborRate,
				CostMultiplier: r.RepairCost.Region.CostMultiplier,
			},
		},
		HistoricalComparison: entities.HistoricalComparison{
			AverageCost:    r.HistoricalComparison.AverageCost,
			PercentileRank: r.HistoricalComparison.PercentileRank,
			SimilarClaims:  r.HistoricalComparison.SimilarClaims,
		},
		Score: *r.Score,
	}
	for _, a := range r.Damage.AffectedAreas {
		in.Damage.AffectedAreas = append(in.Damage.AffectedAreas, a.toEntity())
	}
	for _, it := range r.RepairCost.Breakdown {
		in.RepairCost.Breakdown = append(in.RepairCost.Breakdown, it.toEntity())
	}

	if s := strings.TrimSpace(r.Status); s != "" {
		status, err := ParseStatus(s)
		if err != nil {
			return entities.ClaimInput{}, err
		}
		in.StatusOverride = &status
	}
	return in, nil
}

func (a DamageAreaRequest) toEntity() entities.DamageArea {
	return entities.DamageArea{
		Name:       strings.TrimSpace(a.Name),
		Confidence: a.Confidence,
		Coordinates: entities.BoundingBox{
			X:      a.Coordinates.X,
			Y:      a.Coordinates.Y,
			Width:  a.Coordinates.Width,
			Height: a.Coordinates.Height,
		},
	}
}

func (c CostItemRequest) toEntity() entities.CostItem {
	return entities.CostItem{
		Category:    strings.TrimSpace(c.Category),
		Cost:        c.Cost,
		Description: c.Description,
		Color:       c.Color,
	}
}

// ClaimListQuery holds the GET /claims query string.
type ClaimListQuery struct {
	Status     string   `form:"status"`
	Confidence string   `form:"confidence"`
	MinCost    *float64 `form:"min_cost"`
	MaxCost    *float64 `form:"max_cost"`
	Q          string   `form:"q"`
}

func (q ClaimListQuery) ToFilter() usecase.ClaimFilter {
	return usecase.ClaimFilter{
		Status:     entities.ClaimStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		Confidence: entities.ConfidenceLevel(strings.ToLower(strings.TrimSpace(q.Confidence))),
		MinCost:    q.MinCost,
		MaxCost:    q.MaxCost,
		Query:      q.Q,
	}
}

func ParseSeverity(s string) (entities.Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minor":
		return entities.SeverityMinor, nil
	case "moderate":
		return entities.SeverityModerate, nil
	case "severe":
		return entities.SeveritySevere, nil
	}
	return "", ErrInvalidSeverity
}

func ParseStatus(s string) (entities.ClaimStatus, error) {
	status := entities.ClaimStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
