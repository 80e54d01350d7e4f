package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"claim_triage/internal/usecase"

	"github.com/google/go-cmp/cmp"
)

func TestRouteClaim(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		expected routeResult
	}{
		{
			name:     "auto approved",
			body:     `{"damage": {"severity": "Minor", "confidence": 92, "affected_areas": [{"name": "bumper", "confidence": 90}]}, "score": 95}`,
			expected: routeResult{Level: "high", Score: 95, ReviewType: "auto", ProcessingTime: 1, Status: "approved"},
		},
		{
			name:     "severe damage goes to specialist",
			body:     `{"damage": {"severity": "severe", "confidence": 80}, "score": 85}`,
			expected: routeResult{
				Level: "medium", Score: 85, ReviewType: "specialist", NeedsHumanReview: true,
				ProcessingTime: 40, EscalationReason: "structural_damage", Status: "pending",
			},
		},
		{
			name:     "cost anomaly",
			body:     `{"damage": {"severity": "Moderate", "confidence": 80}, "repair_cost": {"total": 3000}, "historical_comparison": {"average_cost": 2000}, "score": 85}`,
			expected: routeResult{
				Level: "medium", Score: 85, ReviewType: "detailed", NeedsHumanReview: true,
				ProcessingTime: 25, EscalationReason: "cost_anomaly", Status: "pending",
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := routeClaim([]byte(tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("route mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRouteClaim_Invalid(t *testing.T) {
	for _, body := range []string{
		`{"damage": {"severity": "Minor", "confidence": 90}}`,
		`{"damage": {"severity": "cosmetic", "confidence": 90}, "score": 50}`,
		`{"damage": {"severity": "Minor", "confidence": 90}, "score": 101}`,
	} {
		if _, err := routeClaim([]byte(body)); !errors.Is(err, usecase.ErrInvalidClaimInput) {
			t.Errorf("body %s: expected invalid input, got %v", body, err)
		}
	}
	if _, err := routeClaim([]byte("{")); err == nil {
		t.Error("expected parse error")
	}
}

func TestRouteCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claim.json")
	body := `{"damage": {"severity": "Minor", "confidence": 92}, "score": 95}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"route", "-f", path})
	t.Cleanup(func() { rootCmd.SetArgs(nil); routeFlags.jsonOut = false })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "Review:      auto") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestStagesCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"stages"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "vision_analysis") || !strings.Contains(out.String(), "Total: ~13.5s") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}
