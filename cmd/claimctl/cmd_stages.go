package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"claim_triage/internal/domain/assessment"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Print the assessment pipeline stages",
	RunE:  runStages,
}

func runStages(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	var total float64
	for i, s := range assessment.Stages() {
		fmt.Fprintf(out, "%d. %-24s %-40s ~%.1fs\n", i+1, s.Name, s.Label, s.Estimated.Seconds())
		total += s.Estimated.Seconds()
	}
	fmt.Fprintf(out, "Total: ~%.1fs\n", total)
	return nil
}
