package recommend

import (
	"testing"

	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *types.Catalog {
	return &types.Catalog{Entries: []types.CatalogEntry{
		{
			ID:               3,
			Name:             "Intermediate Legs & Core",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceIntermediate},
			GoalTags:         []types.Goal{"muscle_gain"},
			MuscleGroups:     []string{"Legs", "Core"},
			Difficulty:       types.ExperienceIntermediate,
		},
		{
			ID:               1,
			Name:             "Beginner Full Body A",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceBeginner},
			GoalTags:         []types.Goal{"general"},
			MuscleGroups:     []string{"Full Body"},
			Difficulty:       types.ExperienceBeginner,
		},
		{
			ID:               2,
			Name:             "Intermediate Upper Body Push/Pull",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceIntermediate},
			GoalTags:         []types.Goal{"muscle_gain"},
			MuscleGroups:     []string{"Chest", "Back", "Shoulders", "Arms"},
			Difficulty:       types.ExperienceIntermediate,
		},
		{
			ID:               4,
			Name:             "HIIT Cardio Blaster",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceIntermediate},
			GoalTags:         []types.Goal{"fat_loss", "endurance"},
			MuscleGroups:     []string{"Full Body"},
			Difficulty:       types.ExperienceIntermediate,
		},
		{
			ID:               5,
			Name:             "Advanced Chest Destruction",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceAdvanced},
			GoalTags:         []types.Goal{"muscle_gain", "strength"},
			MuscleGroups:     []string{"Chest", "Triceps"},
			Difficulty:       types.ExperienceAdvanced,
		},
		{
			ID:               6,
			Name:             "Foundational Strength",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceBeginner, types.ExperienceIntermediate},
			GoalTags:         []types.Goal{"Strength", "Hypertrophy"},
			MuscleGroups:     []string{"Legs", "Back"},
			Difficulty:       types.ExperienceBeginner,
		},
		{
			// Duplicate ID; only the first occurrence counts.
			ID:               2,
			Name:             "Duplicate Push/Pull",
			ExperienceLevels: []types.ExperienceLevel{types.ExperienceBeginner},
			GoalTags:         []types.Goal{"muscle_gain"},
			MuscleGroups:     []string{"Chest"},
			Difficulty:       types.ExperienceBeginner,
		},
	}}
}

func ids(result Result) []int {
	out := make([]int, 0, len(result.Workouts))
	for _, w := range result.Workouts {
		out = append(out, w.ID)
	}
	return out
}

func TestRecommend_Ordering(t *testing.T) {
	tests := []struct {
		name  string
		level types.ExperienceLevel
		goal  types.Goal
		want  []int
	}{
		{"beginner muscle gain", types.ExperienceBeginner, "muscle_gain", []int{6}},
		{"intermediate muscle gain", types.ExperienceIntermediate, "muscle_gain", []int{6, 2, 3}},
		{"advanced muscle gain", types.ExperienceAdvanced, "muscle_gain", []int{5, 6, 2, 3}},
		{"alias goal", types.ExperienceAdvanced, "hypertrophy", []int{5, 6, 2, 3}},
		{"intermediate fat loss", types.ExperienceIntermediate, "fat_loss", []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Recommend(testCatalog(), tt.level, tt.goal, 0)
			assert.Equal(t, tt.want, ids(got))
			assert.False(t, got.GoalRelaxed)
		})
	}
}

func TestRecommend_GoalMatchCount(t *testing.T) {
	got := Recommend(testCatalog(), types.ExperienceAdvanced, "muscle_gain", 0)
	require.Len(t, got.Workouts, 4)

	assert.Equal(t, 2, got.Workouts[0].GoalMatchCount)
	assert.Equal(t, "Advanced Chest Destruction", got.Workouts[0].Name)
	assert.Equal(t, types.ExperienceAdvanced, got.Workouts[0].Difficulty)
	assert.Equal(t, 1, got.Workouts[3].GoalMatchCount)
}

func TestRecommend_BeginnerNeverSeesHigherLevels(t *testing.T) {
	catalog := testCatalog()
	goals := append([]types.Goal{"yoga", ""}, objectives.KnownGoals...)

	for _, goal := range goals {
		got := Recommend(catalog, types.ExperienceBeginner, goal, 0)
		for _, w := range got.Workouts {
			entry, ok := catalog.Get(w.ID)
			require.True(t, ok)
			assert.Equal(t, types.ExperienceBeginner, entry.MinLevel(), "goal %q returned %s", goal, w.Name)
		}
	}
}

func TestRecommend_RelaxesGoalBeforeReturningEmpty(t *testing.T) {
	got := Recommend(testCatalog(), types.ExperienceBeginner, "fat_loss", 0)

	assert.True(t, got.GoalRelaxed)
	// general_fitness is related to fat_loss, so entry 1 outranks entry 6.
	assert.Equal(t, []int{1, 6}, ids(got))
}

func TestRecommend_UnknownGoalRelaxes(t *testing.T) {
	got := Recommend(testCatalog(), types.ExperienceIntermediate, "yoga", 0)

	assert.True(t, got.GoalRelaxed)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, ids(got))
}

func TestRecommend_Limit(t *testing.T) {
	catalog := testCatalog()

	assert.Equal(t, []int{6, 2}, ids(Recommend(catalog, types.ExperienceIntermediate, "muscle_gain", 2)))
	assert.Equal(t, []int{6, 2, 3}, ids(Recommend(catalog, types.ExperienceIntermediate, "muscle_gain", 0)))
	assert.Equal(t, []int{6, 2, 3}, ids(Recommend(catalog, types.ExperienceIntermediate, "muscle_gain", -1)))
	assert.Equal(t, []int{6, 2, 3}, ids(Recommend(catalog, types.ExperienceIntermediate, "muscle_gain", 10)))
}

func TestRecommend_Deduplicates(t *testing.T) {
	got := Recommend(testCatalog(), types.ExperienceAdvanced, "muscle_gain", 0)

	seen := map[int]bool{}
	for _, w := range got.Workouts {
		assert.False(t, seen[w.ID], "duplicate workout %d", w.ID)
		seen[w.ID] = true
	}
	for _, w := range got.Workouts {
		assert.NotEqual(t, "Duplicate Push/Pull", w.Name)
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	catalog := testCatalog()
	first := Recommend(catalog, types.ExperienceIntermediate, "general_fitness", 0)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Recommend(catalog, types.ExperienceIntermediate, "general_fitness", 0))
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	got := Recommend(nil, types.ExperienceAdvanced, "muscle_gain", 0)
	assert.Empty(t, got.Workouts)
	assert.False(t, got.GoalRelaxed)

	got = Recommend(&types.Catalog{}, types.ExperienceAdvanced, "muscle_gain", 0)
	assert.Empty(t, got.Workouts)
	assert.False(t, got.GoalRelaxed)
}

func TestForDay(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name string
		day  types.DayLabel
		want []int
	}{
		{"push", types.DayPush, []int{2}},
		{"pull", types.DayPull, []int{6, 2}},
		{"legs", types.DayLegs, []int{6, 3}},
		{"upper", types.DayUpper, []int{6, 2}},
		{"full body", types.DayFullBody, []int{6, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForDay(catalog, types.ExperienceIntermediate, "muscle_gain", tt.day, 0)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestForDay_FallsBackWhenNothingTrainsFocus(t *testing.T) {
	got := ForDay(testCatalog(), types.ExperienceBeginner, "muscle_gain", types.DayPush, 0)
	assert.Equal(t, []int{6}, ids(got))
}

func TestForDay_FullBodyWorkoutsFitEveryDay(t *testing.T) {
	got := ForDay(testCatalog(), types.ExperienceIntermediate, "fat_loss", types.DayPull, 1)
	assert.Equal(t, []int{4}, ids(got))
	assert.False(t, got.GoalRelaxed)
}

func TestForDay_KeepsRelaxation(t *testing.T) {
	got := ForDay(testCatalog(), types.ExperienceBeginner, "fat_loss", types.DayLegs, 0)
	assert.True(t, got.GoalRelaxed)
	assert.Equal(t, []int{1, 6}, ids(got))
}
