package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/health"
	"github.com/jonathan/fitness-roadmap/internal/observability"
)

var bmiCmd = &cobra.Command{
	Use:   "bmi",
	Short: "Calculate body mass index",
	Long:  "Calculates BMI from height in centimetres and weight in kilograms, rounded to two decimals, with its WHO category. Missing or non-positive inputs report the metrics as unavailable.",
	RunE:  runBMI,
}

var (
	bmiHeight float64
	bmiWeight float64
	bmiJSON   bool
)

func init() {
	bmiCmd.Flags().Float64Var(&bmiHeight, "height", 0, "Height in centimetres")
	bmiCmd.Flags().Float64Var(&bmiWeight, "weight", 0, "Weight in kilograms")
	bmiCmd.Flags().BoolVar(&bmiJSON, "json", false, "Print metrics as JSON (null when unavailable)")

	rootCmd.AddCommand(bmiCmd)
}

func runBMI(cmd *cobra.Command, _ []string) error {
	var height, weight *float64
	if cmd.Flags().Changed("height") {
		height = &bmiHeight
	}
	if cmd.Flags().Changed("weight") {
		weight = &bmiWeight
	}

	metrics := health.Calculate(height, weight)
	if bmiJSON {
		return writeJSON(cmd.OutOrStdout(), "", metrics)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintHealthMetrics(metrics)
	return nil
}
