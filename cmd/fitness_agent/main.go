// Package main implements the fitness_agent CLI for personalized training roadmaps.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "fitness_agent",
	Short:         "Personalized fitness roadmap engine",
	Long:          "fitness_agent plans weekly training splits, computes health metrics and recommends catalog workouts for gym members, from profile files or a PostgreSQL member store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootConfigPath  string
	rootCatalogPath string
	rootDatabaseURL string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootCatalogPath, "catalog", "", "Workout catalog JSON file (default: built-in library)")
	rootCmd.PersistentFlags().StringVar(&rootDatabaseURL, "db-url", "", "Database URL (default: DATABASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Log progress to stderr")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
