// Package types provides type definitions for structured data used throughout the fitness roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// Objective is a goal tag with its ordered guidance bullets.
type Objective struct {
	Goal     Goal     `json:"goal"`
	Guidance []string `json:"guidance"`
	// Fallback is set when the goal was not recognised and generic guidance was used.
	Fallback bool `json:"fallback,omitempty"`
}

// BMICategory is the WHO weight band for a BMI value.
type BMICategory string

// BMICategory values
const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// HealthMetrics holds the computed body mass index and its category.
type HealthMetrics struct {
	BMI      float64     `json:"bmi"`
	Category BMICategory `json:"category"`
}

// HealthStatus marks whether health metrics could be computed.
type HealthStatus string

// HealthStatus values
const (
	HealthAvailable   HealthStatus = "available"
	HealthUnavailable HealthStatus = "unavailable"
)

// WorkoutRef references a catalog workout selected for a member.
type WorkoutRef struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	Difficulty     ExperienceLevel `json:"difficulty"`
	GoalMatchCount int             `json:"goal_match_count"`
}

// DayPlan pairs one day of the weekly structure with workouts suited to its focus.
type DayPlan struct {
	Day      int          `json:"day"`
	Label    DayLabel     `json:"label"`
	Workouts []WorkoutRef `json:"workouts"`
}

// Roadmap is the composed personalization output for one member. It is built
// on demand and never stored.
type Roadmap struct {
	MemberID               uuid.UUID       `json:"member_id"`
	PersonalizationEnabled bool            `json:"personalization_enabled"`
	WeeklyStructure        WeeklyStructure `json:"weekly_structure"`
	OverrideApplied        bool            `json:"override_applied"`
	Objective              *Objective      `json:"objective"`
	HealthStatus           HealthStatus    `json:"health_status"`
	HealthMetrics          *HealthMetrics  `json:"health_metrics"`
	RecommendedWorkouts    []WorkoutRef    `json:"recommended_workouts"`
	// GoalRelaxed is set when no workout matched the goal and experience-matched workouts were returned instead.
	GoalRelaxed bool      `json:"goal_relaxed"`
	DayPlans    []DayPlan `json:"day_plans,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// MetricsAvailable reports whether the roadmap carries computed health metrics.
func (r *Roadmap) MetricsAvailable() bool {
	return r.HealthMetrics != nil
}
