package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/triage"
	"claim_triage/internal/domain/wizard"
	"claim_triage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClaimNotFound     = errors.New("claim not found")
	ErrInvalidClaimID    = errors.New("invalid claim id")
	ErrInvalidClaimInput = errors.New("invalid claim input")
	ErrInvalidFilter     = errors.New("invalid claim filter")
)

// ClaimFilter narrows List. Zero fields are ignored; set fields are ANDed.
type ClaimFilter struct {
	Status     entities.ClaimStatus
	Confidence entities.ConfidenceLevel
	MinCost    *float64
	MaxCost    *float64
	Query      string
}

// ClaimStats summarizes the stored claims for the dashboard.
type ClaimStats struct {
	Total                 int                          `json:"total"`
	ByStatus              map[entities.ClaimStatus]int `json:"by_status"`
	ByReviewType          map[entities.ReviewType]int  `json:"by_review_type"`
	AutoApprovalRate      float64                      `json:"auto_approval_rate"`
	AverageProcessingTime float64                      `json:"average_processing_time"`
	AverageConfidence     float64                      `json:"average_confidence"`
}

// IClaimUseCase exposes the claim triage operations:
//   - CreateClaim classifies and routes a claim input, then stores it
//   - GetByID / List read the lifecycle store
//   - Stats aggregates the queue
type IClaimUseCase interface {
	CreateClaim(ctx context.Context, in entities.ClaimInput) (entities.Claim, error)
	GetByID(ctx context.Context, id string) (entities.Claim, error)
	List(ctx context.Context, f ClaimFilter) ([]entities.Claim, error)
	Stats(ctx context.Context) (ClaimStats, error)
}

type ClaimUseCase struct {
	repo       interfaces.IClaimRepository
	thresholds triage.Thresholds
	now        func() time.Time
}

var _ IClaimUseCase = (*ClaimUseCase)(nil)

func NewClaimUseCase(repo interfaces.IClaimRepository, thresholds triage.Thresholds) *ClaimUseCase {
	return &ClaimUseCase{repo: repo, thresholds: thresholds, now: func() time.Time { return time.Now().UTC() }}
}

func (u *ClaimUseCase) CreateClaim(ctx context.Context, in entities.ClaimInput) (entities.Claim, error) {
	if err := ValidateClaimInput(in); err != nil {
		log.Printf("[claim][usecase] create rejected err=%v", err)
		return entities.Claim{}, err
	}

	snap := triage.SnapshotOf(in.Damage, in.RepairCost, in.HistoricalComparison)
	conf := u.thresholds.Assess(in.Score, snap)

	status := triage.DefaultStatus(conf.ReviewType)
	if in.StatusOverride != nil {
		status = *in.StatusOverride
	}

	c := entities.Claim{
		ID:                   uuid.NewString(),
		Timestamp:            u.now(),
		Vehicle:              in.Vehicle,
		Damage:               in.Damage,
		RepairCost:           in.RepairCost,
		HistoricalComparison: in.HistoricalComparison,
		Status:               status,
		AIConfidence:         conf,
	}
	c = c.Clone()

	if err := u.repo.Add(ctx, c); err != nil {
		log.Printf("[claim][usecase] create store failed id=%s err=%v", c.ID, err)
		return entities.Claim{}, err
	}

	reason := ""
	if conf.EscalationReason != nil {
		reason = string(*conf.EscalationReason)
	}
	log.Printf("[claim][usecase] create success id=%s score=%.1f level=%s review_type=%s reason=%s status=%s",
		c.ID, conf.Score, conf.Level, conf.ReviewType, reason, c.Status)
	return c, nil
}

func (u *ClaimUseCase) GetByID(ctx context.Context, id string) (entities.Claim, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Claim{}, ErrInvalidClaimID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	if c.ID == "" {
		return entities.Claim{}, ErrClaimNotFound
	}
	return c, nil
}

func (u *ClaimUseCase) List(ctx context.Context, f ClaimFilter) ([]entities.Claim, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Claim, 0, len(all))
	for _, c := range all {
		if f.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (u *ClaimUseCase) Stats(ctx context.Context) (ClaimStats, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return ClaimStats{}, err
	}
	st := ClaimStats{
		Total:        len(all),
		ByStatus:     map[entities.ClaimStatus]int{},
		ByReviewType: map[entities.ReviewType]int{},
	}
	if len(all) == 0 {
		return st, nil
	}

	var minutes, score float64
	for _, c := range all {
		st.ByStatus[c.Status]++
		st.ByReviewType[c.AIConfidence.ReviewType]++
		minutes += float64(c.AIConfidence.ProcessingTime)
		score += c.AIConfidence.Score
	}
	n := float64(len(all))
	st.AutoApprovalRate = round2(float64(st.ByReviewType[entities.ReviewTypeAuto]) / n)
	st.AverageProcessingTime = round2(minutes / n)
	st.AverageConfidence = round2(score / n)
	return st, nil
}

// Match reports whether c satisfies every set criterion.
func (f ClaimFilter) Match(c entities.Claim) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Confidence != "" && c.AIConfidence.Level != f.Confidence {
		return false
	}
	if f.MinCost != nil && c.RepairCost.Total < *f.MinCost {
		return false
	}
	if f.MaxCost != nil && c.RepairCost.Total > *f.MaxCost {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		hay := strings.ToLower(c.ID + " " + c.Vehicle.Make + " " + c.Vehicle.Model)
		if !strings.Contains(hay, q) {
			return false
		}
	}
	return true
}

func (f ClaimFilter) validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("%w: status %q", ErrInvalidFilter, f.Status)
	}
	if f.Confidence != "" && !f.Confidence.Valid() {
		return fmt.Errorf("%w: confidence %q", ErrInvalidFilter, f.Confidence)
	}
	if f.MinCost != nil && f.MaxCost != nil && *f.MinCost > *f.MaxCost {
		return fmt.Errorf("%w: min_cost greater than max_cost", ErrInvalidFilter)
	}
	return nil
}

// ValidateClaimInput rejects values outside the documented ranges before routing.
func ValidateClaimInput(in entities.ClaimInput) error {
	if !validPercent(in.Score) {
		return fmt.Errorf("%w: score %v outside 0-100", ErrInvalidClaimInput, in.Score)
	}
	if !in.Damage.Severity.Valid() {
		return fmt.Errorf("%w: unknown severity %q", ErrInvalidClaimInput, in.Damage.Severity)
	}
	if !validPercent(in.Damage.Confidence) {
		return fmt.Errorf("%w: damage confidence %v outside 0-100", ErrInvalidClaimInput, in.Damage.Confidence)
	}
	for i, a := range in.Damage.AffectedAreas {
		if err := wizard.ValidateArea(a); err != nil {
			return fmt.Errorf("%w: area %d: %v", ErrInvalidClaimInput, i, err)
		}
	}
	costs := entities.CostReview{Breakdown: in.RepairCost.Breakdown, Total: in.RepairCost.Total}
	if err := wizard.ValidateCosts(costs); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidClaimInput, err)
	}
	if h := in.HistoricalComparison.AverageCost; math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return fmt.Errorf("%w: average cost %v", ErrInvalidClaimInput, h)
	}
	if in.StatusOverride != nil && !in.StatusOverride.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidClaimInput, *in.StatusOverride)
	}
	return nil
}

func validPercent(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 100
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
