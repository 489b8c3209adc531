package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/fitness-roadmap/internal/observability"
	"github.com/jonathan/fitness-roadmap/internal/recommend"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend catalog workouts for a level and goal",
	Long:  "Filters the workout catalog to entries accessible at the experience level and ranks them by goal affinity. When nothing matches the goal, every accessible workout is returned. With --day, the list is narrowed to workouts that train that day's focus.",
	RunE:  runRecommend,
}

var (
	recommendLevel string
	recommendGoal  string
	recommendDay   string
	recommendLimit int
	recommendJSON  bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendLevel, "level", "l", "", "Experience level: beginner, intermediate or advanced (required)")
	recommendCmd.Flags().StringVarP(&recommendGoal, "goal", "g", "", "Primary goal (required)")
	recommendCmd.Flags().StringVar(&recommendDay, "day", "", "Day label to focus on, e.g. Push or Legs")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum workouts (0 = all)")
	recommendCmd.Flags().BoolVar(&recommendJSON, "json", false, "Print the result as JSON")

	if err := recommendCmd.MarkFlagRequired("level"); err != nil {
		panic(fmt.Sprintf("failed to mark level flag as required: %v", err))
	}
	if err := recommendCmd.MarkFlagRequired("goal"); err != nil {
		panic(fmt.Sprintf("failed to mark goal flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	level := types.ExperienceLevel(recommendLevel)
	if !level.Valid() {
		return fmt.Errorf("invalid level %q (expected beginner, intermediate or advanced)", recommendLevel)
	}
	if recommendLimit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", recommendLimit)
	}

	cfg, err := loadSettings()
	if err != nil {
		return err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	var result recommend.Result
	if recommendDay != "" {
		day, ok := types.ParseDayLabel(recommendDay)
		if !ok {
			return fmt.Errorf("unknown day label %q", recommendDay)
		}
		result = recommend.ForDay(c, level, types.Goal(recommendGoal), day, recommendLimit)
	} else {
		result = recommend.Recommend(c, level, types.Goal(recommendGoal), recommendLimit)
	}

	if recommendJSON {
		return writeJSON(cmd.OutOrStdout(), "", result)
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintRecommendations(result.Workouts, result.GoalRelaxed)
	return nil
}
