package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or revert database migrations",
	Long:      "Applies (up) or reverts (down) the SQL migrations for the member and workout tables. Being at the target version already is not an error.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{db.MigrateUp, db.MigrateDown},
	RunE:      runMigrate,
}

var migrateDir string

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Migrations directory (default: search for ./migrations)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}

	dir := migrateDir
	if dir == "" {
		dir, err = db.FindMigrationsDir()
		if err != nil {
			return err
		}
	}

	if err := db.Migrate(cfg.DatabaseURL, dir, args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Migrations %s complete (%s)\n", args[0], dir)
	return err
}
