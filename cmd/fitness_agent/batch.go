package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/catalog"
	"github.com/jonathan/fitness-roadmap/internal/observability"
	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate roadmaps for many members in parallel",
	Long:  "Generates roadmaps for every profile file in --profiles-dir, or for every stored member (or the --member-ids subset) when no directory is given. All roadmaps use one catalog snapshot. The first failure stops the batch.",
	RunE:  runBatch,
}

var (
	batchProfilesDir string
	batchMemberIDs   string
	batchConcurrency int
	batchOutDir      string
)

func init() {
	batchCmd.Flags().StringVar(&batchProfilesDir, "profiles-dir", "", "Directory of profile JSON files")
	batchCmd.Flags().StringVar(&batchMemberIDs, "member-ids", "", "Comma-separated stored member IDs (default: all members)")
	batchCmd.Flags().IntVarP(&batchConcurrency, "concurrency", "c", 4, "Roadmaps generated at once")
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Write one <member_id>.json per roadmap to this directory")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	if batchConcurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", batchConcurrency)
	}
	if batchProfilesDir != "" && batchMemberIDs != "" {
		return fmt.Errorf("--profiles-dir and --member-ids cannot be combined")
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var roadmaps []*types.Roadmap
	if batchProfilesDir != "" {
		profiles, err := readProfileDir(batchProfilesDir)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		svc := roadmap.NewService(roadmap.NewMemoryStore(profiles...), catalog.NewStatic(c), newLogger(cmd, cfg), roadmapOptions(cfg))
		roadmaps, err = generateAll(ctx, svc, nil)
		if err != nil {
			return err
		}
	} else {
		ids, err := parseMemberIDs(batchMemberIDs)
		if err != nil {
			return err
		}
		err = withService(ctx, cmd, cfg, func(svc *roadmap.Service) error {
			var genErr error
			roadmaps, genErr = generateAll(ctx, svc, ids)
			return genErr
		})
		if err != nil {
			return err
		}
	}

	if batchOutDir != "" {
		for _, r := range roadmaps {
			path := filepath.Join(batchOutDir, r.MemberID.String()+".json")
			if err := writeRoadmap(cmd.OutOrStdout(), path, r); err != nil {
				return err
			}
		}
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintBatchSummary(roadmaps)
	return nil
}

// generateAll runs the batch for ids, or for every member the service knows
// when ids is empty.
func generateAll(ctx context.Context, svc *roadmap.Service, ids []uuid.UUID) ([]*types.Roadmap, error) {
	if len(ids) == 0 {
		all, err := svc.MemberIDs(ctx)
		if err != nil {
			return nil, err
		}
		ids = all
	}
	roadmaps, err := svc.GenerateMany(ctx, ids, batchConcurrency)
	if err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}
	return roadmaps, nil
}

// readProfileDir loads every *.json file in dir, in file name order. Member
// IDs must be unique.
func readProfileDir(dir string) ([]*types.Profile, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, fmt.Errorf("failed to read profiles directory: %w", statErr)
		}
		return nil, fmt.Errorf("no profile files found in %s", dir)
	}
	sort.Strings(paths)

	seen := make(map[uuid.UUID]string, len(paths))
	profiles := make([]*types.Profile, 0, len(paths))
	for _, path := range paths {
		profile, err := readProfile(path)
		if err != nil {
			return nil, err
		}
		if profile.MemberID == uuid.Nil {
			return nil, fmt.Errorf("profile %s has no member_id", path)
		}
		if first, ok := seen[profile.MemberID]; ok {
			return nil, fmt.Errorf("profiles %s and %s share member_id %s", first, path, profile.MemberID)
		}
		seen[profile.MemberID] = path
		profiles = append(profiles, profile)
	}
	return profiles, nil
}

func parseMemberIDs(value string) ([]uuid.UUID, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	var ids []uuid.UUID
	for _, part := range strings.Split(value, ",") {
		id, err := parseMemberID(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
