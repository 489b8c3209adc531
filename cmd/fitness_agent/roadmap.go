package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/catalog"
	"github.com/jonathan/fitness-roadmap/internal/observability"
	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a member's fitness roadmap",
	Long:  "Builds the roadmap for a member: weekly structure (override or planned split), objective, health metrics, recommended workouts and per-day plans. Reads the profile from --profile, or loads member --member-id from the database.",
	RunE:  runRoadmap,
}

var (
	roadmapProfilePath string
	roadmapMemberID    string
	roadmapOutput      string
	roadmapJSON        bool
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapProfilePath, "profile", "p", "", "Profile JSON file")
	roadmapCmd.Flags().StringVar(&roadmapMemberID, "member-id", "", "Stored member ID")
	roadmapCmd.Flags().StringVarP(&roadmapOutput, "out", "o", "", "Write roadmap JSON to this file")
	roadmapCmd.Flags().BoolVar(&roadmapJSON, "json", false, "Print roadmap JSON instead of the summary")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	target := memberTarget{profilePath: roadmapProfilePath, memberID: roadmapMemberID}
	if err := target.validate(); err != nil {
		return err
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	ctx := context.Background()

	var result *types.Roadmap
	if target.profilePath != "" {
		profile, err := readProfile(target.profilePath)
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg)
		if err != nil {
			return err
		}
		svc := roadmap.NewService(roadmap.NewMemoryStore(), catalog.NewStatic(c), newLogger(cmd, cfg), roadmapOptions(cfg))
		result, err = svc.Preview(ctx, profile)
		if err != nil {
			return fmt.Errorf("failed to generate roadmap: %w", err)
		}
	} else {
		memberID, err := parseMemberID(target.memberID)
		if err != nil {
			return err
		}
		err = withService(ctx, cmd, cfg, func(svc *roadmap.Service) error {
			var genErr error
			result, genErr = svc.Generate(ctx, memberID)
			return genErr
		})
		if err != nil {
			return fmt.Errorf("failed to generate roadmap: %w", err)
		}
	}

	if roadmapOutput != "" {
		if err := writeRoadmap(cmd.OutOrStdout(), roadmapOutput, result); err != nil {
			return err
		}
	}
	if roadmapJSON {
		return writeJSON(cmd.OutOrStdout(), "", result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintRoadmap(result)
	return nil
}
