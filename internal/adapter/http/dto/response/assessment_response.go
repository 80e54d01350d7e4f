package response

import (
	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/usecase"
)

type StageTimingResponse struct {
	Name       string `json:"name"`
	DurationMS int64  `json:"duration_ms"`
	Skipped    bool   `json:"skipped"`
}

type AssessmentResponse struct {
	Claim       ClaimResponse         `json:"claim"`
	Stages      []StageTimingResponse `json:"stages"`
	Cached      bool                  `json:"cached"`
	ImageDigest string                `json:"image_digest"`
}

func FromAssessment(r usecase.AssessmentResult) AssessmentResponse {
	stages := make([]StageTimingResponse, 0, len(r.Stages))
	for _, s := range r.Stages {
		stages = append(stages, StageTimingResponse{Name: string(s.Name), DurationMS: s.Duration.Milliseconds(), Skipped: s.Skipped})
	}
	return AssessmentResponse{Claim: FromClaim(r.Claim), Stages: stages, Cached: r.Cached, ImageDigest: r.ImageDigest}
}

type StageResponse struct {
	Order            int     `json:"order"`
	Name             string  `json:"name"`
	Label            string  `json:"label"`
	EstimatedSeconds float64 `json:"estimated_seconds"`
}

type StagesResponse struct {
	Stages                []StageResponse `json:"stages"`
	EstimatedTotalSeconds float64         `json:"estimated_total_seconds"`
}

func FromStages(stages []assessment.Stage) StagesResponse {
	out := StagesResponse{Stages: make([]StageResponse, 0, len(stages))}
	for i, s := range stages {
		out.Stages = append(out.Stages, StageResponse{
			Order:            i + 1,
			Name:             string(s.Name),
			Label:            s.Label,
			EstimatedSeconds: s.Estimated.Seconds(),
		})
		out.EstimatedTotalSeconds += s.Estimated.Seconds()
	}
	return out
}
