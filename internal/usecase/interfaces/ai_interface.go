package interfaces

import (
	"context"

	"claim_triage/internal/domain/assessment"
)

// IVisionAnalyzer detects damaged areas on a vehicle photo.
type IVisionAnalyzer interface {
	AnalyzeImage(ctx context.Context, image []byte, mediaType string) (assessment.VisionResult, error)
}

// ILanguageModel identifies the vehicle and describes the damage on a photo.
type ILanguageModel interface {
	DescribeDamage(ctx context.Context, image []byte, mediaType string) (assessment.LanguageResult, error)
}
