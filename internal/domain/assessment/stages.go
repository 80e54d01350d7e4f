package assessment

import "time"

type StageName string

const (
	StageUpload                StageName = "upload"
	StageVisionAnalysis        StageName = "vision_analysis"
	StageVehicleIdentification StageName = "vehicle_identification"
	StageCostEstimation        StageName = "cost_estimation"
	StageRouting               StageName = "routing"
)

// Stage is one named step of the assessment pipeline with its expected duration.
type Stage struct {
	Name      StageName     `json:"name"`
	Label     string        `json:"label"`
	Estimated time.Duration `json:"estimated"`
}

// StageTiming records how long a stage actually took in one run.
type StageTiming struct {
	Name     StageName     `json:"name"`
	Duration time.Duration `json:"duration"`
	Skipped  bool          `json:"skipped,omitempty"`
}

var stages = []Stage{
	{Name: StageUpload, Label: "Receive photo", Estimated: 1 * time.Second},
	{Name: StageVisionAnalysis, Label: "Detect damaged areas", Estimated: 4 * time.Second},
	{Name: StageVehicleIdentification, Label: "Identify vehicle and describe damage", Estimated: 6 * time.Second},
	{Name: StageCostEstimation, Label: "Estimate repair cost", Estimated: 2 * time.Second},
	{Name: StageRouting, Label: "Route to review tier", Estimated: 500 * time.Millisecond},
}

// Stages returns the fixed pipeline order.
func Stages() []Stage {
	return append([]Stage(nil), stages...)
}

// EstimatedTotal is the sum of all stage estimates.
func EstimatedTotal() time.Duration {
	var total time.Duration
	for _, s := range stages {
		total += s.Estimated
	}
	return total
}
