// Package wizard implements the linear human review workflow as a pure reducer.
//
// A State is a value: every transition returns a new State and never mutates the input,
// so an abandoned review simply drops its last State.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"claim_triage/internal/domain/entities"
)

var (
	ErrImagesNotVerified = errors.New("images must be verified before completing the images step")
	ErrWizardFinished    = errors.New("review already finished")
	ErrWizardNotFinished = errors.New("review not finished")
	ErrStepMismatch      = errors.New("operation not allowed at the current step")
	ErrClaimMismatch     = errors.New("review belongs to another claim")
	ErrAlreadyReviewed   = errors.New("claim already carries a review decision")
)

// State is the wizard position plus the accumulated review data.
type State struct {
	ClaimID  string                `json:"claim_id"`
	Step     entities.ReviewStep   `json:"step"`
	Data     entities.ReviewData   `json:"data"`
	Visited  []entities.ReviewStep `json:"visited"`
	Finished bool                  `json:"finished"`
}

// StepPayload carries the input of a step completion. Only the field matching the
// current step is read; nil means "keep the seeded values".
type StepPayload struct {
	Overview *OverviewInput           `json:"overview,omitempty"`
	Images   *entities.ImageReview    `json:"images,omitempty"`
	Damage   *entities.DamageReview   `json:"damage,omitempty"`
	Costs    *entities.CostReview     `json:"costs,omitempty"`
	Coverage *entities.CoverageReview `json:"coverage,omitempty"`
	Decision *entities.ReviewDecision `json:"decision,omitempty"`
	Summary  *SummaryInput            `json:"summary,omitempty"`
}

type OverviewInput struct {
	Notes string `json:"notes"`
}

type SummaryInput struct {
	Notes string `json:"notes"`
}

// New seeds a wizard for claim at the Overview step.
func New(claim entities.Claim) State {
	c := claim.Clone()
	return State{
		ClaimID: c.ID,
		Step:    entities.StepOverview,
		Data: entities.ReviewData{
			Damage: entities.DamageReview{
				Areas:    c.Damage.AffectedAreas,
				Severity: c.Damage.Severity,
			},
			Costs: entities.CostReview{
				Breakdown: c.RepairCost.Breakdown,
				Total:     c.RepairCost.Total,
			},
			Decision: entities.ReviewDecision{Status: c.Status},
		},
	}
}

// Complete merges the payload for the current step and advances to the next one.
// Completing the Summary step finishes the wizard.
func Complete(s State, p StepPayload) (State, error) {
	if s.Finished {
		return s, ErrWizardFinished
	}

	next := s.clone()
	data := &next.Data

	switch s.Step {
	case entities.StepOverview:
		if p.Overview != nil {
			data.OverviewNotes = p.Overview.Notes
		}
	case entities.StepImages:
		img := data.Images
		if p.Images != nil {
			img = *p.Images
		}
		if !img.ImagesVerified {
			return s, ErrImagesNotVerified
		}
		data.Images = img
	case entities.StepDamage:
		if p.Damage != nil {
			if err := ValidateDamage(*p.Damage); err != nil {
				return s, err
			}
			d := *p.Damage
			d.Areas = append([]entities.DamageArea(nil), d.Areas...)
			if d.Severity == "" {
				d.Severity = data.Damage.Severity
			}
			data.Damage = d
		}
	case entities.StepCosts:
		if p.Costs != nil {
			if err := ValidateCosts(*p.Costs); err != nil {
				return s, err
			}
			data.Costs = normalizeCosts(*p.Costs)
		}
	case entities.StepCoverage:
		if p.Coverage != nil {
			cov := *p.Coverage
			cov.Exclusions = append([]string(nil), cov.Exclusions...)
			data.Coverage = cov
		}
	case entities.StepDecision:
		if p.Decision != nil {
			if err := ValidateDecision(*p.Decision); err != nil {
				return s, err
			}
			data.Decision = *p.Decision
		}
	case entities.StepSummary:
		if p.Summary != nil {
			data.SummaryNotes = p.Summary.Notes
		}
		next.Visited = append(next.Visited, s.Step)
		next.Finished = true
		return next, nil
	default:
		return s, fmt.Errorf("unknown review step %d", s.Step)
	}

	next.Visited = append(next.Visited, s.Step)
	next.Step = s.Step + 1
	return next, nil
}

// EditCost sets one breakdown line's cost and recomputes the total.
func EditCost(s State, index int, cost float64) (State, error) {
	if s.Finished || s.Step != entities.StepCosts {
		return s, ErrStepMismatch
	}
	if err := validateCost(cost); err != nil {
		return s, err
	}
	if index < 0 || index >= len(s.Data.Costs.Breakdown) {
		return s, fmt.Errorf("%w: breakdown index %d out of range", ErrInvalidInput, index)
	}

	next := s.clone()
	next.Data.Costs.Breakdown[index].Cost = cost
	next.Data.Costs.Total = entities.SumBreakdown(next.Data.Costs.Breakdown)
	return next, nil
}

// RecomputeTotal returns the costs with Total set to the sum of the breakdown.
func RecomputeTotal(c entities.CostReview) entities.CostReview {
	c.Total = entities.SumBreakdown(c.Breakdown)
	return c
}

// Commit applies the final decision to a copy of claim. Only status, review notes and
// the review time change. A claim is committed at most once.
func Commit(claim entities.Claim, s State, at time.Time) (entities.Claim, error) {
	if !s.Finished {
		return entities.Claim{}, ErrWizardNotFinished
	}
	if claim.ID != s.ClaimID {
		return entities.Claim{}, ErrClaimMismatch
	}
	if claim.Reviewed() {
		return entities.Claim{}, ErrAlreadyReviewed
	}
	updated := claim.Clone()
	updated.Status = s.Data.Decision.Status
	updated.ReviewNotes = s.Data.Decision.Notes
	updated.ReviewedAt = &at
	return updated, nil
}

func normalizeCosts(c entities.CostReview) entities.CostReview {
	c.Breakdown = append([]entities.CostItem(nil), c.Breakdown...)
	if len(c.Breakdown) > 0 {
		return RecomputeTotal(c)
	}
	return c
}

func (s State) clone() State {
	out := s
	d := &out.Data
	d.Damage.Areas = append([]entities.DamageArea(nil), s.Data.Damage.Areas...)
	d.Costs.Breakdown = append([]entities.CostItem(nil), s.Data.Costs.Breakdown...)
	d.Coverage.Exclusions = append([]string(nil), s.Data.Coverage.Exclusions...)
	out.Visited = append([]entities.ReviewStep(nil), s.Visited...)
	return out
}
