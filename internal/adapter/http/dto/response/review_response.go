package response

import (
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/usecase"
)

type ReviewSessionResponse struct {
	ID        string              `json:"id"`
	ClaimID   string              `json:"claim_id"`
	StartedAt time.Time           `json:"started_at"`
	Step      int                 `json:"step"`
	StepName  string              `json:"step_name"`
	Visited   []string            `json:"visited"`
	Finished  bool                `json:"finished"`
	Data      entities.ReviewData `json:"data"`
	Claim     *ClaimResponse      `json:"claim,omitempty"`
}

func FromReviewSession(s usecase.ReviewSession) ReviewSessionResponse {
	visited := make([]string, 0, len(s.State.Visited))
	for _, v := range s.State.Visited {
		visited = append(visited, v.String())
	}
	out := ReviewSessionResponse{
		ID:        s.ID,
		ClaimID:   s.ClaimID,
		StartedAt: s.StartedAt,
		Step:      int(s.State.Step),
		StepName:  s.State.Step.String(),
		Visited:   visited,
		Finished:  s.State.Finished,
		Data:      s.State.Data,
	}
	if s.Claim != nil {
		c := FromClaim(*s.Claim)
		out.Claim = &c
	}
	return out
}
