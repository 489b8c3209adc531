package roadmap

import (
	"fmt"
	"time"

	"github.com/jonathan/fitness-roadmap/internal/health"
	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/planner"
	"github.com/jonathan/fitness-roadmap/internal/recommend"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// Options tunes roadmap generation.
type Options struct {
	// RecommendationLimit caps the recommended workouts; zero or less means no cap.
	RecommendationLimit int
	// IncludeDayPlans adds per-day workout suggestions to the roadmap.
	IncludeDayPlans bool
	// DayPlanLimit caps the workouts suggested for each day; zero or less means no cap.
	DayPlanLimit int
	// Now stamps GeneratedAt. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options used by Generate.
func DefaultOptions() Options {
	return Options{
		IncludeDayPlans: true,
		DayPlanLimit:    3,
	}
}

// Generate builds the roadmap for a profile against a catalog snapshot.
func Generate(profile *types.Profile, catalog *types.Catalog) (*types.Roadmap, error) {
	return GenerateWithOptions(profile, catalog, DefaultOptions())
}

// GenerateWithOptions builds the roadmap for a profile against a catalog snapshot.
//
// Health metrics are computed whether or not personalization is enabled. When it
// is disabled the structure, objective and recommendations are left empty. Any
// failure returns a nil roadmap.
func GenerateWithOptions(profile *types.Profile, catalog *types.Catalog, opts Options) (*types.Roadmap, error) {
	if profile == nil {
		return nil, ErrNilProfile
	}

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	metrics := health.Calculate(profile.HeightCM, profile.WeightKG)
	roadmap := &types.Roadmap{
		MemberID:               profile.MemberID,
		PersonalizationEnabled: profile.PersonalizationEnabled,
		WeeklyStructure:        types.WeeklyStructure{},
		HealthStatus:           health.Status(metrics),
		HealthMetrics:          metrics,
		RecommendedWorkouts:    []types.WorkoutRef{},
		GeneratedAt:            now().UTC(),
	}

	if !profile.PersonalizationEnabled {
		return roadmap, nil
	}

	structure, overridden, err := weeklyStructure(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to plan weekly structure: %w", err)
	}

	objective := objectives.Generate(profile.PrimaryGoal, profile.ExperienceLevel)
	recommended := recommend.Recommend(catalog, profile.ExperienceLevel, profile.PrimaryGoal, opts.RecommendationLimit)

	roadmap.WeeklyStructure = structure
	roadmap.OverrideApplied = overridden
	roadmap.Objective = &objective
	roadmap.RecommendedWorkouts = recommended.Workouts
	roadmap.GoalRelaxed = recommended.GoalRelaxed

	if opts.IncludeDayPlans {
		roadmap.DayPlans = dayPlans(profile, catalog, structure, opts.DayPlanLimit)
	}

	return roadmap, nil
}

// weeklyStructure returns the override when one is set, else the planner's split.
func weeklyStructure(profile *types.Profile) (types.WeeklyStructure, bool, error) {
	if profile.HasOverride() {
		return profile.WeeklyStructureOverride.Clone(), true, nil
	}
	structure, err := planner.Plan(profile.TrainingDaysPerWeek)
	if err != nil {
		return nil, false, err
	}
	return structure, false, nil
}

func dayPlans(profile *types.Profile, catalog *types.Catalog, structure types.WeeklyStructure, limit int) []types.DayPlan {
	plans := make([]types.DayPlan, 0, len(structure))
	for i, label := range structure {
		day := recommend.ForDay(catalog, profile.ExperienceLevel, profile.PrimaryGoal, label, limit)
		plans = append(plans, types.DayPlan{
			Day:      i + 1,
			Label:    label,
			Workouts: day.Workouts,
		})
	}
	return plans
}
