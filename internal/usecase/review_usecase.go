package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/wizard"
	"claim_triage/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound    = errors.New("review session not found")
	ErrInvalidSessionID  = errors.New("invalid review session id")
	ErrReviewCommitStore = errors.New("review decision could not be stored")
	ErrReviewInProgress  = errors.New("a review is already in progress for this claim")
)

// ReviewSession is a wizard in progress for one claim.
// Claim is set once the Summary step committed the decision.
type ReviewSession struct {
	ID        string          `json:"id"`
	ClaimID   string          `json:"claim_id"`
	StartedAt time.Time       `json:"started_at"`
	State     wizard.State    `json:"state"`
	Claim     *entities.Claim `json:"claim,omitempty"`
}

// IReviewUseCase drives the human review wizard:
//   - Start opens a session seeded from a stored claim; one open session per claim,
//     and a claim that already carries a decision cannot be reviewed again
//   - CompleteStep advances it; the last step commits the decision to the store
//   - EditCost edits a breakdown line while on the costs step
//   - Cancel drops the session without touching the store
type IReviewUseCase interface {
	Start(ctx context.Context, claimID string) (ReviewSession, error)
	Get(ctx context.Context, sessionID string) (ReviewSession, error)
	CompleteStep(ctx context.Context, sessionID string, p wizard.StepPayload) (ReviewSession, error)
	EditCost(ctx context.Context, sessionID string, index int, cost float64) (ReviewSession, error)
	Cancel(ctx context.Context, sessionID string) error
}

type ReviewUseCase struct {
	repo interfaces.IClaimRepository

	mu       sync.Mutex
	sessions map[string]ReviewSession
	byClaim  map[string]string
	now      func() time.Time
}

var _ IReviewUseCase = (*ReviewUseCase)(nil)

func NewReviewUseCase(repo interfaces.IClaimRepository) *ReviewUseCase {
	return &ReviewUseCase{
		repo:     repo,
		sessions: make(map[string]ReviewSession),
		byClaim:  make(map[string]string),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *ReviewUseCase) Start(ctx context.Context, claimID string) (ReviewSession, error) {
	claimID = strings.TrimSpace(claimID)
	if claimID == "" {
		return ReviewSession{}, ErrInvalidClaimID
	}
	c, err := u.repo.GetByID(ctx, claimID)
	if err != nil {
		return ReviewSession{}, err
	}
	if c.ID == "" {
		return ReviewSession{}, ErrClaimNotFound
	}
	if c.Reviewed() {
		log.Printf("[review][usecase] start refused, already reviewed claim=%s", c.ID)
		return ReviewSession{}, wizard.ErrAlreadyReviewed
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if open, ok := u.byClaim[c.ID]; ok {
		log.Printf("[review][usecase] start refused, in progress claim=%s session=%s", c.ID, open)
		return ReviewSession{}, ErrReviewInProgress
	}

	s := ReviewSession{
		ID:        uuid.NewString(),
		ClaimID:   c.ID,
		StartedAt: u.now(),
		State:     wizard.New(c),
	}
	u.sessions[s.ID] = s
	u.byClaim[c.ID] = s.ID

	log.Printf("[review][usecase] start session=%s claim=%s", s.ID, c.ID)
	return s, nil
}

func (u *ReviewUseCase) Get(_ context.Context, sessionID string) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lookup(sessionID)
}

func (u *ReviewUseCase) CompleteStep(ctx context.Context, sessionID string, p wizard.StepPayload) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}

	from := s.State.Step
	next, err := wizard.Complete(s.State, p)
	if err != nil {
		log.Printf("[review][usecase] step rejected session=%s step=%s err=%v", s.ID, from, err)
		return ReviewSession{}, err
	}
	s.State = next

	if !next.Finished {
		u.sessions[s.ID] = s
		log.Printf("[review][usecase] step completed session=%s step=%s next=%s", s.ID, from, next.Step)
		return s, nil
	}

	committed, err := u.commit(ctx, s)
	if errors.Is(err, wizard.ErrAlreadyReviewed) {
		u.drop(s)
		return ReviewSession{}, err
	}
	if err != nil {
		return ReviewSession{}, err
	}
	s.Claim = committed
	u.drop(s)
	return s, nil
}

func (u *ReviewUseCase) EditCost(_ context.Context, sessionID string, index int, cost float64) (ReviewSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(sessionID)
	if err != nil {
		return ReviewSession{}, err
	}
	next, err := wizard.EditCost(s.State, index, cost)
	if err != nil {
		return ReviewSession{}, err
	}
	s.State = next
	u.sessions[s.ID] = s
	log.Printf("[review][usecase] cost edited session=%s index=%d total=%.2f", s.ID, index, next.Data.Costs.Total)
	return s, nil
}

func (u *ReviewUseCase) Cancel(_ context.Context, sessionID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.lookup(sessionID)
	if err != nil {
		return err
	}
	u.drop(s)
	log.Printf("[review][usecase] cancelled session=%s claim=%s step=%s", s.ID, s.ClaimID, s.State.Step)
	return nil
}

// commit writes the decision onto the stored claim. A claim that disappeared from
// the store is logged and skipped; the session still ends.
func (u *ReviewUseCase) commit(ctx context.Context, s ReviewSession) (*entities.Claim, error) {
	current, err := u.repo.GetByID(ctx, s.ClaimID)
	if err != nil {
		log.Printf("[review][usecase] commit load failed session=%s claim=%s err=%v", s.ID, s.ClaimID, err)
		return nil, errors.Join(ErrReviewCommitStore, err)
	}
	if current.ID == "" {
		log.Printf("[review][usecase] commit skipped, claim missing session=%s claim=%s", s.ID, s.ClaimID)
		return nil, nil
	}

	updated, err := wizard.Commit(current, s.State, u.now())
	if err != nil {
		log.Printf("[review][usecase] commit refused session=%s claim=%s err=%v", s.ID, s.ClaimID, err)
		return nil, err
	}
	ok, err := u.repo.Update(ctx, s.ClaimID, updated)
	if err != nil {
		log.Printf("[review][usecase] commit update failed session=%s claim=%s err=%v", s.ID, s.ClaimID, err)
		return nil, errors.Join(ErrReviewCommitStore, err)
	}
	if !ok {
		log.Printf("[review][usecase] commit skipped, claim missing session=%s claim=%s", s.ID, s.ClaimID)
		return nil, nil
	}

	log.Printf("[review][usecase] committed session=%s claim=%s status=%s", s.ID, s.ClaimID, updated.Status)
	return &updated, nil
}

// drop releases the session and its claim. Callers hold u.mu.
func (u *ReviewUseCase) drop(s ReviewSession) {
	delete(u.sessions, s.ID)
	if u.byClaim[s.ClaimID] == s.ID {
		delete(u.byClaim, s.ClaimID)
	}
}

func (u *ReviewUseCase) lookup(sessionID string) (ReviewSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ReviewSession{}, ErrInvalidSessionID
	}
	s, ok := u.sessions[sessionID]
	if !ok {
		return ReviewSession{}, ErrReviewNotFound
	}
	return s, nil
}
