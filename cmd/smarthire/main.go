// Package main provides the smarthire command line: ranking, team selection,
// analytics and the dashboard API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smarthire",
		Short:         "SmartHire candidate ranking and team selection",
		Long:          "SmartHire classifies and scores job candidates, filters them, and assembles a diverse five-person team. It runs as a CLI or as an HTTP API for the dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRankCmd(),
		newSelectTeamCmd(),
		newAnalyticsCmd(),
		newValidateCmd(),
		newServeCmd(),
		newHashPasswordCmd(),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
