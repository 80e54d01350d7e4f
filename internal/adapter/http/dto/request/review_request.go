package request

import (
	"strings"

	"claim_triage/internal/domain/entities"
	"claim_triage/internal/domain/wizard"
)

type NotesRequest struct {
	Notes string `json:"notes"`
}

type ImagesRequest struct {
	ImagesVerified bool   `json:"images_verified"`
	QualityNotes   string `json:"quality_notes"`
}

type DamageReviewRequest struct {
	Areas    []DamageAreaRequest `json:"areas" binding:"dive"`
	Severity string              `json:"severity"`
	Notes    string              `json:"notes"`
}

type CostsRequest struct {
	Breakdown []CostItemRequest `json:"breakdown" binding:"dive"`
	Total     float64           `json:"total" binding:"min=0"`
	Notes     string            `json:"notes"`
}

type CoverageRequest struct {
	Verified   bool     `json:"verified"`
	Exclusions []string `json:"exclusions"`
	Notes      string   `json:"notes"`
}

type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
	Notes  string `json:"notes"`
}

// StepRequest completes the current wizard step. Only the section matching
// the session's step is read.
type StepRequest struct {
	Overview *NotesRequest        `json:"overview"`
	Images   *ImagesRequest       `json:"images"`
	Damage   *DamageReviewRequest `json:"damage"`
	Costs    *CostsRequest        `json:"costs"`
	Coverage *CoverageRequest     `json:"coverage"`
	Decision *DecisionRequest     `json:"decision"`
	Summary  *NotesRequest        `json:"summary"`
}

func (r StepRequest) ToPayload() (wizard.StepPayload, error) {
	var p wizard.StepPayload
	if r.Overview != nil {
		p.Overview = &wizard.OverviewInput{Notes: r.Overview.Notes}
	}
	if r.Images != nil {
		p.Images = &entities.ImageReview{ImagesVerified: r.Images.ImagesVerified, QualityNotes: r.Images.QualityNotes}
	}
	if r.Damage != nil {
		d := entities.DamageReview{Notes: r.Damage.Notes}
		if strings.TrimSpace(r.Damage.Severity) != "" {
			sev, err := ParseSeverity(r.Damage.Severity)
			if err != nil {
				return wizard.StepPayload{}, err
			}
			d.Severity = sev
		}
		for _, a := range r.Damage.Areas {
			d.Areas = append(d.Areas, a.toEntity())
		}
		p.Damage = &d
	}
	if r.Costs != nil {
		c := entities.CostReview{Total: r.Costs.Total, Notes: r.Costs.Notes}
		for _, it := range r.Costs.Breakdown {
			c.Breakdown = append(c.Breakdown, it.toEntity())
		}
		p.Costs = &c
	}
	if r.Coverage != nil {
		p.Coverage = &entities.CoverageReview{
			Verified:   r.Coverage.Verified,
			Exclusions: r.Coverage.Exclusions,
			Notes:      r.Coverage.Notes,
		}
	}
	if r.Decision != nil {
		status, err := ParseStatus(r.Decision.Status)
		if err != nil {
			return wizard.StepPayload{}, err
		}
		p.Decision = &entities.ReviewDecision{Status: status, Reason: r.Decision.Reason, Notes: r.Decision.Notes}
	}
	if r.Summary != nil {
		p.Summary = &wizard.SummaryInput{Notes: r.Summary.Notes}
	}
	return p, nil
}

// CostEditRequest edits one breakdown line while the session is on the costs step.
type CostEditRequest struct {
	Cost *float64 `json:"cost" binding:"required,min=0"`
}
