package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/catalog"
	"github.com/jonathan/fitness-roadmap/internal/config"
	"github.com/jonathan/fitness-roadmap/internal/db"
	"github.com/jonathan/fitness-roadmap/internal/logging"
	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	internalschemas "github.com/jonathan/fitness-roadmap/internal/schemas"
	"github.com/jonathan/fitness-roadmap/internal/types"
	"github.com/jonathan/fitness-roadmap/schemas"
)

// loadSettings resolves configuration. Flags win over the config file, which
// wins over the environment.
func loadSettings() (config.Config, error) {
	envCfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	var fileCfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	if rootCatalogPath != "" {
		fileCfg.CatalogPath = rootCatalogPath
	}
	if rootDatabaseURL != "" {
		fileCfg.DatabaseURL = rootDatabaseURL
	}

	cfg := fileCfg.MergeWithDefaults(envCfg)
	cfg.Verbose = cfg.Verbose || rootVerbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newLogger logs to stderr in verbose mode and discards otherwise.
func newLogger(cmd *cobra.Command, cfg config.Config) *slog.Logger {
	if !cfg.Verbose {
		return logging.Discard()
	}
	return logging.New(cmd.ErrOrStderr(), true)
}

func roadmapOptions(cfg config.Config) roadmap.Options {
	opts := roadmap.DefaultOptions()
	opts.RecommendationLimit = cfg.RecommendationLimit
	opts.DayPlanLimit = cfg.DayPlanLimit
	return opts
}

// loadCatalog reads the configured catalog file, or the built-in library.
func loadCatalog(cfg config.Config) (*types.Catalog, error) {
	c, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// connectDB opens the member store named by the configuration.
func connectDB(ctx context.Context, cfg config.Config) (*db.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set (set DATABASE_URL environment variable or use --db-url flag)")
	}
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return database, nil
}

// readProfile loads a profile JSON file, checking it against the profile schema
// and the struct validation rules.
func readProfile(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := internalschemas.Validate(schemas.Profile, data); err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}

	var profile types.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return &profile, nil
}

// writeProfile rewrites a profile file in place.
func writeProfile(path string, profile *types.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	return nil
}

// writeJSON encodes v to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := w.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// writeRoadmap checks r against the roadmap schema before writing it like writeJSON.
func writeRoadmap(w io.Writer, path string, r *types.Roadmap) error {
	if err := internalschemas.ValidateValue(schemas.Roadmap, r); err != nil {
		return fmt.Errorf("roadmap for member %s: %w", r.MemberID, err)
	}
	return writeJSON(w, path, r)
}

func parseMemberID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid member ID %q: %w", value, err)
	}
	return id, nil
}

// memberTarget is where a mutating command applies its change: a profile
// file or a stored member.
type memberTarget struct {
	profilePath string
	memberID    string
}

func (t memberTarget) validate() error {
	if (t.profilePath == "") == (t.memberID == "") {
		return fmt.Errorf("exactly one of --profile or --member-id is required")
	}
	return nil
}

// withService runs fn against a Service backed by the database.
func withService(ctx context.Context, cmd *cobra.Command, cfg config.Config, fn func(*roadmap.Service) error) error {
	database, err := connectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(roadmap.NewService(database, database, newLogger(cmd, cfg), roadmapOptions(cfg)))
}
