package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/fitness-roadmap/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleRoadmap() *types.Roadmap {
	return &types.Roadmap{
		MemberID:               uuid.MustParse("5b1f0c9e-7a2d-4e3f-8c1b-9d0e6f4a2b7c"),
		PersonalizationEnabled: true,
		WeeklyStructure:        types.WeeklyStructure{types.DayPush, types.DayPull, types.DayLegs},
		OverrideApplied:        true,
		Objective: &types.Objective{
			Goal:     "muscle_gain",
			Guidance: []string{"Train each muscle twice a week"},
		},
		HealthStatus:  types.HealthAvailable,
		HealthMetrics: &types.HealthMetrics{BMI: 24.22, Category: "normal"},
		RecommendedWorkouts: []types.WorkoutRef{
			{ID: 3, Name: "Intermediate Upper Body Push", Difficulty: types.ExperienceIntermediate, GoalMatchCount: 1},
		},
		DayPlans: []types.DayPlan{
			{Day: 1, Label: types.DayPush, Workouts: []types.WorkoutRef{{ID: 3, Name: "Intermediate Upper Body Push"}}},
			{Day: 2, Label: types.DayPull},
		},
		GeneratedAt: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC),
	}
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoadmap(sampleRoadmap())
	output := buf.String()

	assert.Contains(t, output, "5b1f0c9e-7a2d-4e3f-8c1b-9d0e6f4a2b7c")
	assert.Contains(t, output, "WEEKLY STRUCTURE (3 DAYS)")
	assert.Contains(t, output, "Day 2: Pull")
	assert.Contains(t, output, "(manual override)")
	assert.Contains(t, output, "Goal: muscle_gain")
	assert.Contains(t, output, "BMI:       24.22")
	assert.Contains(t, output, "#1  Intermediate Upper Body Push")
	assert.Contains(t, output, "Day 2 (Pull)")
	assert.Contains(t, output, "rest or free training")
}

func TestPrintRoadmap_Disabled(t *testing.T) {
	var buf bytes.Buffer
	r := sampleRoadmap()
	r.PersonalizationEnabled = false
	r.HealthMetrics = nil

	NewPrinter(&buf).PrintRoadmap(r)
	output := buf.String()

	assert.Contains(t, output, "Disabled")
	assert.Contains(t, output, "Unavailable")
	assert.NotContains(t, output, "WEEKLY STRUCTURE")
	assert.NotContains(t, output, "RECOMMENDED WORKOUTS")
}

func TestPrintRoadmap_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRoadmap(nil)
	assert.Empty(t, buf.String())
}

func TestPrintRecommendations_TruncatesList(t *testing.T) {
	var buf bytes.Buffer
	workouts := make([]types.WorkoutRef, maxItemsToShow+2)
	for i := range workouts {
		workouts[i] = types.WorkoutRef{ID: i + 1, Name: "Workout"}
	}

	NewPrinter(&buf).PrintRecommendations(workouts, true)
	output := buf.String()

	assert.Contains(t, output, "showing all accessible")
	assert.Contains(t, output, "... and 2 more")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", boxWidth*2))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), line)
	}
}

func TestPrintBatchSummary(t *testing.T) {
	var buf bytes.Buffer
	off := sampleRoadmap()
	off.MemberID = uuid.MustParse("0c7e4d1a-3b9f-4a2e-b6d8-5f1c2e9a7b30")
	off.PersonalizationEnabled = false

	NewPrinter(&buf).PrintBatchSummary([]*types.Roadmap{sampleRoadmap(), off})
	output := buf.String()

	assert.Contains(t, output, "Members: 2")
	assert.Contains(t, output, "5b1f0c9e  3 days  1 workouts")
	assert.Contains(t, output, "0c7e4d1a  personalization off")
}
