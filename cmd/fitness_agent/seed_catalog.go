package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var seedCatalogCmd = &cobra.Command{
	Use:   "seed-catalog",
	Short: "Load the workout catalog into the database",
	Long:  "Upserts every workout from --catalog (or the built-in library) into the database in one transaction. Existing workouts are updated and their exercise lists rebuilt, so running it twice is safe.",
	RunE:  runSeedCatalog,
}

func init() {
	rootCmd.AddCommand(seedCatalogCmd)
}

func runSeedCatalog(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	result, err := database.UpsertCatalog(ctx, c)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d workouts (%d created, %d updated)\n",
		len(c.Entries), result.Created, result.Updated)
	return err
}
