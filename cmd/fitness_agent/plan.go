package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/observability"
	"github.com/jonathan/fitness-roadmap/internal/planner"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the weekly split for a training frequency",
	Long:  "Maps a weekly training frequency (1-6 days) to its fixed split: Full Body for 1-3 days, Upper/Lower for 4, a push/pull/legs hybrid for 5 and push/pull/legs twice for 6.",
	RunE:  runPlan,
}

var (
	planDays int
	planJSON bool
)

func init() {
	planCmd.Flags().IntVarP(&planDays, "days", "d", 0, "Training days per week (required)")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the structure as a JSON array")

	if err := planCmd.MarkFlagRequired("days"); err != nil {
		panic(fmt.Sprintf("failed to mark days flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	structure, err := planner.Plan(planDays)
	if err != nil {
		return err
	}

	if planJSON {
		return writeJSON(cmd.OutOrStdout(), "", structure)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintWeeklyStructure(structure, false)
	return nil
}
