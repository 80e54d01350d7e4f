package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	request "claim_triage/internal/adapter/http/dto/request"
	"claim_triage/internal/domain/triage"
	"claim_triage/internal/usecase"
)

var routeFlags struct {
	file    string
	jsonOut bool
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Route a claim file and print the review tier",
	RunE:  runRoute,
}

func init() {
	f := routeCmd.Flags()
	f.StringVarP(&routeFlags.file, "file", "f", "", "Claim JSON file, same shape as POST /v1/claims (\"-\" for stdin)")
	f.BoolVar(&routeFlags.jsonOut, "json", false, "Print the AI confidence as JSON")

	_ = routeCmd.MarkFlagRequired("file")
}

type routeResult struct {
	Level            string  `json:"level"`
	Score            float64 `json:"score"`
	ReviewType       string  `json:"review_type"`
	NeedsHumanReview bool    `json:"needs_human_review"`
	ProcessingTime   int     `json:"processing_time_minutes"`
	EscalationReason string  `json:"escalation_reason,omitempty"`
	Status           string  `json:"status"`
}

func runRoute(cmd *cobra.Command, _ []string) error {
	data, err := readClaimFile(cmd, routeFlags.file)
	if err != nil {
		return err
	}
	res, err := routeClaim(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if routeFlags.jsonOut {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintf(out, "Confidence:  %s (%.1f)\n", res.Level, res.Score)
	fmt.Fprintf(out, "Review:      %s\n", res.ReviewType)
	if res.EscalationReason != "" {
		fmt.Fprintf(out, "Escalation:  %s\n", res.EscalationReason)
	}
	fmt.Fprintf(out, "Est. time:   %d min\n", res.ProcessingTime)
	fmt.Fprintf(out, "Status:      %s\n", res.Status)
	return nil
}

func readClaimFile(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claim: %w", err)
	}
	return data, nil
}

func routeClaim(data []byte) (routeResult, error) {
	var req request.ClaimRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return routeResult{}, fmt.Errorf("parse claim: %w", err)
	}
	if req.Score == nil || req.Damage.Confidence == nil {
		return routeResult{}, fmt.Errorf("%w: score and damage.confidence are required", usecase.ErrInvalidClaimInput)
	}
	in, err := req.ToInput()
	if err != nil {
		return routeResult{}, fmt.Errorf("%w: %v", usecase.ErrInvalidClaimInput, err)
	}
	if err := usecase.ValidateClaimInput(in); err != nil {
		return routeResult{}, err
	}

	snap := triage.SnapshotOf(in.Damage, in.RepairCost, in.HistoricalComparison)
	conf := triage.DefaultThresholds().Assess(in.Score, snap)
	status := triage.DefaultStatus(conf.ReviewType)
	if in.StatusOverride != nil {
		status = *in.StatusOverride
	}

	res := routeResult{
		Level:            string(conf.Level),
		Score:            conf.Score,
		ReviewType:       string(conf.ReviewType),
		NeedsHumanReview: conf.NeedsHumanReview,
		ProcessingTime:   conf.ProcessingTime,
		Status:           string(status),
	}
	if conf.EscalationReason != nil {
		res.EscalationReason = string(*conf.EscalationReason)
	}
	return res, nil
}
