package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"claim_triage/internal/adapter/persistence/repository"
	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/wizard"
	mock_interfaces "claim_triage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingClaim() entities.Claim {
	return entities.Claim{
		ID:     "c-1",
		Status: entities.ClaimStatusPending,
		Damage: entities.Damage{Severity: entities.SeverityModerate},
		RepairCost: entities.RepairCost{
			Total:     1500,
			Breakdown: []entities.CostItem{{Category: "Parts", Cost: 1000}, {Category: "Labor", Cost: 500}},
		},
	}
}

// walkToSummary completes every step before Summary.
func walkToSummary(t *testing.T, uc *ReviewUseCase, sessionID string, decision entities.ReviewDecision) {
	t.Helper()
	payloads := []wizard.StepPayload{
		{Overview: &wizard.OverviewInput{Notes: "first look"}},
		{Images: &entities.ImageReview{ImagesVerified: true}},
		{},
		{},
		{Coverage: &entities.CoverageReview{Verified: true}},
		{Decision: &decision},
	}
	for i, p := range payloads {
		if _, err := uc.CompleteStep(context.Background(), sessionID, p); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
}

func TestReviewUseCase_Start(t *testing.T) {
	t.Run("blank claim id", func(t *testing.T) {
		uc := NewReviewUseCase(nil)
		if _, err := uc.Start(context.Background(), " "); !errors.Is(err, ErrInvalidClaimID) {
			t.Fatalf("expected ErrInvalidClaimID, got %v", err)
		}
	})

	t.Run("unknown claim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewReviewUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "c-404").Return(entities.Claim{}, nil)

		if _, err := uc.Start(context.Background(), "c-404"); !errors.Is(err, ErrClaimNotFound) {
			t.Fatalf("expected ErrClaimNotFound, got %v", err)
		}
	})

	t.Run("seeds wizard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewReviewUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil)

		s, err := uc.Start(context.Background(), "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.State.Step != entities.StepOverview || s.State.Data.Costs.Total != 1500 {
			t.Fatalf("unexpected session: %+v", s)
		}
		got, err := uc.Get(context.Background(), s.ID)
		if err != nil || got.ID != s.ID {
			t.Fatalf("expected stored session, got %+v err=%v", got, err)
		}
	})
}

func TestReviewUseCase_FullWalkCommits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	uc := NewReviewUseCase(repo)
	reviewedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return reviewedAt }

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), "c-1", gomock.AssignableToTypeOf(entities.Claim{})).DoAndReturn(
		func(_ context.Context, _ string, c entities.Claim) (bool, error) {
			if c.Status != entities.ClaimStatusApproved || c.ReviewNotes != "covered" {
				t.Fatalf("unexpected committed claim: %+v", c)
			}
			if c.RepairCost.Total != 1500 {
				t.Fatalf("commit must not touch costs, got %v", c.RepairCost.Total)
			}
			if c.ReviewedAt == nil || !c.ReviewedAt.Equal(reviewedAt) {
				t.Fatalf("expected reviewed_at %v, got %v", reviewedAt, c.ReviewedAt)
			}
			return true, nil
		},
	)

	s, _ := uc.Start(context.Background(), "c-1")
	walkToSummary(t, uc, s.ID, entities.ReviewDecision{Status: entities.ClaimStatusApproved, Notes: "covered"})

	done, err := uc.CompleteStep(context.Background(), s.ID, wizard.StepPayload{Summary: &wizard.SummaryInput{Notes: "ok"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done.State.Finished || done.Claim == nil || done.Claim.Status != entities.ClaimStatusApproved {
		t.Fatalf("expected committed claim, got %+v", done)
	}
	if _, err := uc.Get(context.Background(), s.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("finished session must be dropped, got %v", err)
	}
}

func TestReviewUseCase_CommitMissingClaimIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	uc := NewReviewUseCase(repo)

	gomock.InOrder(
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil),
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil),
		repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(false, nil),
	)

	s, _ := uc.Start(context.Background(), "c-1")
	walkToSummary(t, uc, s.ID, entities.ReviewDecision{Status: entities.ClaimStatusRejected})
	done, err := uc.CompleteStep(context.Background(), s.ID, wizard.StepPayload{})
	if err != nil {
		t.Fatalf("missing claim must not fail the review, got %v", err)
	}
	if done.Claim != nil || !done.State.Finished {
		t.Fatalf("unexpected session: %+v", done)
	}
}

func TestReviewUseCase_CommitStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	uc := NewReviewUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil).Times(2)
	repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(false, errors.New("db"))

	s, _ := uc.Start(context.Background(), "c-1")
	walkToSummary(t, uc, s.ID, entities.ReviewDecision{Status: entities.ClaimStatusApproved})
	if _, err := uc.CompleteStep(context.Background(), s.ID, wizard.StepPayload{}); !errors.Is(err, ErrReviewCommitStore) {
		t.Fatalf("expected ErrReviewCommitStore, got %v", err)
	}
	if _, err := uc.Get(context.Background(), s.ID); err != nil {
		t.Fatalf("failed commit must keep the session, got %v", err)
	}
}

func TestReviewUseCase_ImagesGateAndCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	uc := NewReviewUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil)

	s, _ := uc.Start(context.Background(), "c-1")
	if _, err := uc.CompleteStep(context.Background(), s.ID, wizard.StepPayload{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.CompleteStep(context.Background(), s.ID, wizard.StepPayload{Images: &entities.ImageReview{}}); !errors.Is(err, wizard.ErrImagesNotVerified) {
		t.Fatalf("expected ErrImagesNotVerified, got %v", err)
	}
	cur, _ := uc.Get(context.Background(), s.ID)
	if cur.State.Step != entities.StepImages {
		t.Fatalf("rejected step must not advance, at %s", cur.State.Step)
	}

	// no Update expectation: cancelling never writes
	if err := uc.Cancel(context.Background(), s.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Cancel(context.Background(), s.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("expected ErrReviewNotFound, got %v", err)
	}
}

func TestReviewUseCase_EditCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIClaimRepository(ctrl)
	uc := NewReviewUseCase(repo)
	repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil)

	s, _ := uc.Start(context.Background(), "c-1")
	if _, err := uc.EditCost(context.Background(), s.ID, 0, 10); !errors.Is(err, wizard.ErrStepMismatch) {
		t.Fatalf("expected ErrStepMismatch outside costs step, got %v", err)
	}

	for _, p := range []wizard.StepPayload{{}, {Images: &entities.ImageReview{ImagesVerified: true}}, {}} {
		if _, err := uc.CompleteStep(context.Background(), s.ID, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	got, err := uc.EditCost(context.Background(), s.ID, 1, 700)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State.Data.Costs.Total != 1700 {
		t.Fatalf("expected total 1700, got %v", got.State.Data.Costs.Total)
	}
	if _, err := uc.EditCost(context.Background(), s.ID, 5, 1); !errors.Is(err, wizard.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.EditCost(context.Background(), s.ID, 0, -1); !errors.Is(err, wizard.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestReviewUseCase_OneSessionPerClaim(t *testing.T) {
	ctx := context.Background()

	t.Run("second start is refused while a session is open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewReviewUseCase(repo)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil).Times(3)

		first, err := uc.Start(ctx, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Start(ctx, "c-1"); !errors.Is(err, ErrReviewInProgress) {
			t.Fatalf("expected ErrReviewInProgress, got %v", err)
		}

		if err := uc.Cancel(ctx, first.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Start(ctx, "c-1")
		if err != nil {
			t.Fatalf("cancel must release the claim, got %v", err)
		}
		if second.ID == first.ID {
			t.Fatalf("expected a fresh session, got %s again", second.ID)
		}
	})

	t.Run("other claims are not blocked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClaimRepository(ctrl)
		uc := NewReviewUseCase(repo)
		other := pendingClaim()
		other.ID = "c-2"
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(pendingClaim(), nil)
		repo.EXPECT().GetByID(gomock.Any(), "c-2").Return(other, nil)

		if _, err := uc.Start(ctx, "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.Start(ctx, "c-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reviewed claim cannot be reviewed again", func(t *testing.T) {
		store := repository.NewClaimMemoryRepository()
		if err := store.Add(ctx, pendingClaim()); err != nil {
			t.Fatalf("seed: %v", err)
		}
		uc := NewReviewUseCase(store)

		s, err := uc.Start(ctx, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		walkToSummary(t, uc, s.ID, entities.ReviewDecision{Status: entities.ClaimStatusApproved, Notes: "first"})
		if _, err := uc.CompleteStep(ctx, s.ID, wizard.StepPayload{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := uc.Start(ctx, "c-1"); !errors.Is(err, wizard.ErrAlreadyReviewed) {
			t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
		}
	})
}

func TestReviewUseCase_CommitKeepsFirstDecision(t *testing.T) {
	ctx := context.Background()
	store := repository.NewClaimMemoryRepository()
	if err := store.Add(ctx, pendingClaim()); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// two processes sharing one store each hold their own session index
	a := NewReviewUseCase(store)
	b := NewReviewUseCase(store)

	sa, err := a.Start(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sb, err := b.Start(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	walkToSummary(t, a, sa.ID, entities.ReviewDecision{Status: entities.ClaimStatusApproved, Notes: "first"})
	if _, err := a.CompleteStep(ctx, sa.ID, wizard.StepPayload{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	walkToSummary(t, b, sb.ID, entities.ReviewDecision{Status: entities.ClaimStatusRejected, Notes: "second"})
	if _, err := b.CompleteStep(ctx, sb.ID, wizard.StepPayload{}); !errors.Is(err, wizard.ErrAlreadyReviewed) {
		t.Fatalf("expected ErrAlreadyReviewed, got %v", err)
	}
	if _, err := b.Get(ctx, sb.ID); !errors.Is(err, ErrReviewNotFound) {
		t.Fatalf("refused commit must end the session, got %v", err)
	}

	got, err := store.GetByID(ctx, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != entities.ClaimStatusApproved || got.ReviewNotes != "first" || !got.Reviewed() {
		t.Fatalf("first decision must stand, got status=%s notes=%q", got.Status, got.ReviewNotes)
	}
}
