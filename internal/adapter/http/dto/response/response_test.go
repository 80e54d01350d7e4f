package response

import (
	"testing"
	"time"

	"claim_triage/internal/domain/assessment"
	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/wizard"
	"claim_triage/internal/usecase"
)

func TestFromClaim(t *testing.T) {
	reason := entities.EscalationCostAnomaly
	c := entities.Claim{
		ID:     "c-1",
		Status: entities.ClaimStatusPending,
		AIConfidence: entities.AIConfidence{
			Level:            entities.ConfidenceMedium,
			Score:            85,
			NeedsHumanReview: true,
			ReviewType:       entities.ReviewTypeDetailed,
			ProcessingTime:   25,
			EscalationReason: &reason,
		},
	}
	res := FromClaim(c)
	if res.Status != "pending" || res.AIConfidence.ReviewType != "detailed" || res.AIConfidence.EscalationReason != "cost_anomaly" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.Damage.AffectedAreas == nil || res.RepairCost.Breakdown == nil {
		t.Fatalf("nil lists must render as empty arrays")
	}

	list := FromClaims([]entities.Claim{c, c})
	if list.Count != 2 || len(list.Items) != 2 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestFromStats(t *testing.T) {
	res := FromStats(usecase.ClaimStats{
		Total:        2,
		ByStatus:     map[entities.ClaimStatus]int{entities.ClaimStatusApproved: 2},
		ByReviewType: map[entities.ReviewType]int{entities.ReviewTypeAuto: 2},
	})
	if res.ByStatus["approved"] != 2 || res.ByReviewType["auto"] != 2 {
		t.Fatalf("unexpected stats: %+v", res)
	}
}

func TestFromAssessmentAndStages(t *testing.T) {
	res := FromAssessment(usecase.AssessmentResult{
		Claim:  entities.Claim{ID: "c-1"},
		Stages: []assessment.StageTiming{{Name: assessment.StageUpload, Duration: 1500 * time.Millisecond}},
		Cached: true,
	})
	if res.Claim.ID != "c-1" || res.Stages[0].DurationMS != 1500 || !res.Cached {
		t.Fatalf("unexpected response: %+v", res)
	}

	st := FromStages(assessment.Stages())
	if len(st.Stages) != 5 || st.Stages[0].Order != 1 || st.Stages[4].Name != "routing" {
		t.Fatalf("unexpected stages: %+v", st)
	}
	if st.EstimatedTotalSeconds != assessment.EstimatedTotal().Seconds() {
		t.Fatalf("unexpected total %v", st.EstimatedTotalSeconds)
	}
}

func TestFromReviewSession(t *testing.T) {
	state := wizard.New(entities.Claim{ID: "c-1", Status: entities.ClaimStatusPending})
	state, _ = wizard.Complete(state, wizard.StepPayload{})

	res := FromReviewSession(usecase.ReviewSession{ID: "s-1", ClaimID: "c-1", State: state})
	if res.StepName != "images" || res.Step != 1 || len(res.Visited) != 1 || res.Visited[0] != "overview" {
		t.Fatalf("unexpected session response: %+v", res)
	}
	if res.Claim != nil {
		t.Fatalf("claim must be omitted before commit")
	}
}
