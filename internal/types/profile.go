// Package types provides type definitions for structured data used throughout the fitness roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Gender of a member as recorded in their profile.
type Gender string

// Gender values
const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ExperienceLevel is a member's training experience, also used to tag catalog workouts.
type ExperienceLevel string

// ExperienceLevel values, ordered from least to most experienced
const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// Rank returns the ordinal position of the level (beginner=1 … advanced=3), or 0 when unknown.
func (l ExperienceLevel) Rank() int {
	switch l {
	case ExperienceBeginner:
		return 1
	case ExperienceIntermediate:
		return 2
	case ExperienceAdvanced:
		return 3
	default:
		return 0
	}
}

// Valid reports whether l is one of the known experience levels.
func (l ExperienceLevel) Valid() bool {
	return l.Rank() > 0
}

// Goal is a primary training goal tag. The set is open: unknown tags are
// carried through and handled by fallback rules downstream.
type Goal string

// Training frequency bounds accepted at the profile boundary
const (
	MinTrainingDays = 1
	MaxTrainingDays = 6
)

// Profile holds the member attributes the personalization engine reads.
type Profile struct {
	MemberID               uuid.UUID       `json:"member_id"`
	Name                   string          `json:"name,omitempty"`
	Age                    int             `json:"age" validate:"required,gt=0,lte=120"`
	Gender                 Gender          `json:"gender" validate:"required,oneof=male female"`
	ExperienceLevel        ExperienceLevel `json:"experience_level" validate:"required,oneof=beginner intermediate advanced"`
	TrainingDaysPerWeek    int             `json:"training_days_per_week" validate:"min=1,max=6"`
	PrimaryGoal            Goal            `json:"primary_goal" validate:"required"`
	HeightCM               *float64        `json:"height_cm,omitempty" validate:"omitempty,gt=0"`
	WeightKG               *float64        `json:"weight_kg,omitempty" validate:"omitempty,gt=0"`
	PersonalizationEnabled bool            `json:"personalization_enabled"`
	// WeeklyStructureOverride supersedes the planner's split while non-nil.
	WeeklyStructureOverride WeeklyStructure `json:"weekly_structure_override,omitempty"`
}

// ErrIncompleteMeasurements is returned when only one of height and weight is set.
var ErrIncompleteMeasurements = errors.New("height_cm and weight_kg must be provided together")

// NewProfile returns a profile with personalization enabled, which is the default for new members.
func NewProfile(memberID uuid.UUID) *Profile {
	return &Profile{
		MemberID:               memberID,
		PersonalizationEnabled: true,
	}
}

// UnmarshalJSON decodes a profile. An omitted personalization_enabled keeps the
// default of true.
func (p *Profile) UnmarshalJSON(data []byte) error {
	type profileJSON Profile
	decoded := profileJSON(*NewProfile(uuid.Nil))
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*p = Profile(decoded)
	return nil
}

// HasOverride reports whether a manual weekly structure is in effect.
func (p *Profile) HasOverride() bool {
	return p.WeeklyStructureOverride != nil
}

// Validate validates the Profile using the validator.
// Height and weight must be supplied together or not at all.
func (p *Profile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return err
	}
	if (p.HeightCM == nil) != (p.WeightKG == nil) {
		return ErrIncompleteMeasurements
	}
	return nil
}
