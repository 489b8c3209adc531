package db

import (
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// memberColumns is the column list read by every profile query, in scan order.
const memberColumns = `id, name, age, gender, experience_level, training_days_per_week, primary_goal,
	height_cm, weight_kg, personalization_enabled, weekly_structure_override`

// memberRow mirrors a members row before conversion to types.Profile.
type memberRow struct {
	profile  types.Profile
	override []string
}

func (r *memberRow) scanTargets() []any {
	p := &r.profile
	return []any{
		&p.MemberID, &p.Name, &p.Age, &p.Gender, &p.ExperienceLevel, &p.TrainingDaysPerWeek, &p.PrimaryGoal,
		&p.HeightCM, &p.WeightKG, &p.PersonalizationEnabled, &r.override,
	}
}

func (r *memberRow) toProfile() *types.Profile {
	p := r.profile
	p.WeeklyStructureOverride = structureFromStrings(r.override)
	return &p
}

// structureFromStrings converts a stored text[] into a weekly structure. NULL stays nil.
func structureFromStrings(values []string) types.WeeklyStructure {
	if values == nil {
		return nil
	}
	out := make(types.WeeklyStructure, len(values))
	for i, v := range values {
		out[i] = types.DayLabel(v)
	}
	return out
}

func levelsToStrings(levels []types.ExperienceLevel) []string {
	out := make([]string, len(levels))
	for i, l := range levels {
		out[i] = string(l)
	}
	return out
}

func levelsFromStrings(values []string) []types.ExperienceLevel {
	out := make([]types.ExperienceLevel, len(values))
	for i, v := range values {
		out[i] = types.ExperienceLevel(v)
	}
	return out
}

func goalsToStrings(goals []types.Goal) []string {
	out := make([]string, len(goals))
	for i, g := range goals {
		out[i] = string(g)
	}
	return out
}

func goalsFromStrings(values []string) []types.Goal {
	out := make([]types.Goal, len(values))
	for i, v := range values {
		out[i] = types.Goal(v)
	}
	return out
}

// SeedResult counts the workouts written by UpsertCatalog.
type SeedResult struct {
	Created int
	Updated int
}
