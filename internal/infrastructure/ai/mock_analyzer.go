package ai

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand/v2"

	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/domain/entities"
)

var mockVehicles = []entities.Vehicle{
	{Make: "Toyota", Model: "Corolla", Year: 2019, Color: "silver"},
	{Make: "Honda", Model: "Civic", Year: 2021, Color: "blue"},
	{Make: "Ford", Model: "F-150", Year: 2018, Color: "black"},
	{Make: "Volkswagen", Model: "Golf", Year: 2020, Color: "white"},
	{Make: "Hyundai", Model: "Tucson", Year: 2022, Color: "red"},
}

var mockAreas = []string{
	"front bumper", "rear bumper", "hood", "left front door", "right front door",
	"left rear door", "right rear door", "windshield", "left headlight", "trunk lid",
}

var mockSeverities = []entities.Severity{
	entities.SeverityMinor, entities.SeverityModerate, entities.SeveritySevere,
}

// MockAnalyzer produces plausible assessments without calling any provider.
// Output depends only on the image bytes, so the same photo yields the same claim.
type MockAnalyzer struct{}

func NewMockAnalyzer() MockAnalyzer { return MockAnalyzer{} }

func (MockAnalyzer) AnalyzeImage(ctx context.Context, image []byte, _ string) (assessment.VisionResult, error) {
	if err := ctx.Err(); err != nil {
		return assessment.VisionResult{}, err
	}
	rng := seededRand(image, 1)

	n := 1 + rng.IntN(4)
	picked := rng.Perm(len(mockAreas))[:n]
	areas := make([]entities.DamageArea, 0, n)
	for _, i := range picked {
		w := round1(10 + rng.Float64()*30)
		h := round1(10 + rng.Float64()*30)
		areas = append(areas, entities.DamageArea{
			Name:       mockAreas[i],
			Confidence: round1(65 + rng.Float64()*34),
			Coordinates: entities.BoundingBox{
				X:      floor1(rng.Float64() * (100 - w)),
				Y:      floor1(rng.Float64() * (100 - h)),
				Width:  w,
				Height: h,
			},
		})
	}

	severity := mockSeverities[rng.IntN(len(mockSeverities))]
	v := mockVehicles[rng.IntN(len(mockVehicles))]
	v.Confidence = round1(60 + rng.Float64()*30)

	return assessment.VisionResult{
		Vehicle: &v,
		Damage: entities.Damage{
			Description:   string(severity) + " damage detected on " + areas[0].Name,
			Severity:      severity,
			Confidence:    round1(65 + rng.Float64()*34),
			AffectedAreas: areas,
		},
	}, nil
}

func (MockAnalyzer) DescribeDamage(ctx context.Context, image []byte, _ string) (assessment.LanguageResult, error) {
	if err := ctx.Err(); err != nil {
		return assessment.LanguageResult{}, err
	}
	rng := seededRand(image, 2)

	v := mockVehicles[rng.IntN(len(mockVehicles))]
	v.Confidence = round1(80 + rng.Float64()*19)
	score := round1(70 + rng.Float64()*29)
	severity := mockSeverities[rng.IntN(len(mockSeverities))]

	return assessment.LanguageResult{
		Vehicle:     &v,
		Description: "The " + v.Color + " " + v.Make + " " + v.Model + " shows " + lower(severity) + " body damage.",
		Severity:    severity,
		Score:       &score,
	}, nil
}

func seededRand(image []byte, stream uint64) *rand.Rand {
	sum := sha256.Sum256(image)
	return rand.New(rand.NewPCG(binary.BigEndian.Uint64(sum[:8])^stream, binary.BigEndian.Uint64(sum[8:16])))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func floor1(v float64) float64 {
	return math.Floor(v*10) / 10
}

func lower(s entities.Severity) string {
	switch s {
	case entities.SeverityMinor:
		return "minor"
	case entities.SeveritySevere:
		return "severe"
	default:
		return "moderate"
	}
}
