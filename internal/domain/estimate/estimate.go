// Package estimate produces deterministic repair-cost estimates and historical comparisons.
package estimate

import (
	"math"

	"claim_triage/internal/domain/entities"
)

// DefaultRegion is used when no pricing region is configured.
func DefaultRegion() entities.RegionInfo {
	return entities.RegionInfo{Name: "national", LaborRate: 95, CostMultiplier: 1}
}

var baseCostPerArea = map[entities.Severity]float64{
	entities.SeverityMinor:    900,
	entities.SeverityModerate: 2400,
	entities.SeveritySevere:   6200,
}

var similarClaims = map[entities.Severity]int{
	entities.SeverityMinor:    1240,
	entities.SeverityModerate: 860,
	entities.SeveritySevere:   310,
}

type share struct {
	category    string
	ratio       float64
	description string
	color       string
}

var shares = []share{
	{category: "Parts", ratio: 0.45, description: "Replacement parts", color: "#3B82F6"},
	{category: "Labor", ratio: 0.35, description: "Body shop labor", color: "#10B981"},
	{category: "Paint", ratio: 0.15, description: "Paint and materials", color: "#F59E0B"},
	{category: "Other", ratio: 0.05, description: "Disposal and misc fees", color: "#6B7280"},
}

// additional areas add 35% of the per-area base each
const extraAreaFactor = 0.35

// Repair estimates the repair cost for the damage in region.
// Total is always the sum of the rounded breakdown lines.
func Repair(d entities.Damage, region entities.RegionInfo) entities.RepairCost {
	region = normalizeRegion(region)
	areas := len(d.AffectedAreas)
	if areas < 1 {
		areas = 1
	}
	subtotal := basePerArea(d.Severity) * (1 + extraAreaFactor*float64(areas-1)) * region.CostMultiplier

	breakdown := make([]entities.CostItem, 0, len(shares))
	for _, s := range shares {
		breakdown = append(breakdown, entities.CostItem{
			Category:    s.category,
			Cost:        roundCents(subtotal * s.ratio),
			Description: s.description,
			Color:       s.color,
		})
	}
	return entities.RepairCost{
		Total:     roundCents(entities.SumBreakdown(breakdown)),
		Breakdown: breakdown,
		Region:    region,
	}
}

// Historical returns the comparison against similar past claims of the same severity.
func Historical(total float64, severity entities.Severity, region entities.RegionInfo) entities.HistoricalComparison {
	region = normalizeRegion(region)
	avg := roundCents(basePerArea(severity) * region.CostMultiplier)
	pct := 50.0
	if avg > 0 {
		pct = 50 + 50*(total-avg)/avg
	}
	return entities.HistoricalComparison{
		AverageCost:    avg,
		PercentileRank: math.Round(clamp(pct, 0, 100)),
		SimilarClaims:  similarClaims[effectiveSeverity(severity)],
	}
}

func basePerArea(s entities.Severity) float64 {
	return baseCostPerArea[effectiveSeverity(s)]
}

func effectiveSeverity(s entities.Severity) entities.Severity {
	if s.Valid() {
		return s
	}
	return entities.SeverityModerate
}

func normalizeRegion(r entities.RegionInfo) entities.RegionInfo {
	d := DefaultRegion()
	if r.Name == "" {
		r.Name = d.Name
	}
	if r.LaborRate <= 0 {
		r.LaborRate = d.LaborRate
	}
	if r.CostMultiplier <= 0 {
		r.CostMultiplier = d.CostMultiplier
	}
	return r
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
