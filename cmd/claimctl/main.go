package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "claimctl",
	Short: "Offline tools for the claim triage service",
	Long:  "claimctl routes claim files with the same thresholds as the API\nand prints the assessment pipeline timeline.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
