package entities

// ReviewStep identifies a step of the review wizard.
type ReviewStep int

const (
	StepOverview ReviewStep = iota
	StepImages
	StepDamage
	StepCosts
	StepCoverage
	StepDecision
	StepSummary
)

var reviewStepNames = [...]string{"overview", "images", "damage", "costs", "coverage", "decision", "summary"}

func (s ReviewStep) String() string {
	if s < StepOverview || s > StepSummary {
		return "unknown"
	}
	return reviewStepNames[s]
}

type ImageReview struct {
	ImagesVerified bool   `json:"images_verified"`
	QualityNotes   string `json:"quality_notes"`
}

type DamageReview struct {
	Areas    []DamageArea `json:"areas"`
	Severity Severity     `json:"severity"`
	Notes    string       `json:"notes"`
}

type CostReview struct {
	Breakdown []CostItem `json:"breakdown"`
	Total     float64    `json:"total"`
	Notes     string     `json:"notes"`
}

type CoverageReview struct {
	Verified   bool     `json:"verified"`
	Exclusions []string `json:"exclusions"`
	Notes      string   `json:"notes"`
}

type ReviewDecision struct {
	Status ClaimStatus `json:"status"`
	Reason string      `json:"reason"`
	Notes  string      `json:"notes"`
}

// ReviewData is the aggregate accumulated across the wizard steps.
type ReviewData struct {
	OverviewNotes string         `json:"overview_notes"`
	Images        ImageReview    `json:"images"`
	Damage        DamageReview   `json:"damage"`
	Costs         CostReview     `json:"costs"`
	Coverage      CoverageReview `json:"coverage"`
	Decision      ReviewDecision `json:"decision"`
	SummaryNotes  string         `json:"summary_notes"`
}
