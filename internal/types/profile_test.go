//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func validProfile() Profile {
	return Profile{
		MemberID:               uuid.New(),
		Age:                    29,
		Gender:                 GenderFemale,
		ExperienceLevel:        ExperienceIntermediate,
		TrainingDaysPerWeek:    3,
		PrimaryGoal:            "muscle_gain",
		HeightCM:               floatPtr(170),
		WeightKG:               floatPtr(70),
		PersonalizationEnabled: true,
	}
}

func TestProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{
			name:    "valid profile",
			mutate:  func(_ *Profile) {},
			wantErr: false,
		},
		{
			name: "valid without height and weight",
			mutate: func(p *Profile) {
				p.HeightCM = nil
				p.WeightKG = nil
			},
			wantErr: false,
		},
		{
			name:    "missing age",
			mutate:  func(p *Profile) { p.Age = 0 },
			wantErr: true,
		},
		{
			name:    "age too high",
			mutate:  func(p *Profile) { p.Age = 150 },
			wantErr: true,
		},
		{
			name:    "unknown gender",
			mutate:  func(p *Profile) { p.Gender = "other" },
			wantErr: true,
		},
		{
			name:    "unknown experience level",
			mutate:  func(p *Profile) { p.ExperienceLevel = "expert" },
			wantErr: true,
		},
		{
			name:    "zero training days",
			mutate:  func(p *Profile) { p.TrainingDaysPerWeek = 0 },
			wantErr: true,
		},
		{
			name:    "seven training days",
			mutate:  func(p *Profile) { p.TrainingDaysPerWeek = 7 },
			wantErr: true,
		},
		{
			name:    "missing goal",
			mutate:  func(p *Profile) { p.PrimaryGoal = "" },
			wantErr: true,
		},
		{
			name:    "negative height",
			mutate:  func(p *Profile) { p.HeightCM = floatPtr(-1) },
			wantErr: true,
		},
		{
			name:    "height without weight",
			mutate:  func(p *Profile) { p.WeightKG = nil },
			wantErr: true,
		},
		{
			name:    "weight without height",
			mutate:  func(p *Profile) { p.HeightCM = nil },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewProfile(t *testing.T) {
	id := uuid.New()
	p := NewProfile(id)

	require.NotNil(t, p)
	assert.Equal(t, id, p.MemberID)
	assert.True(t, p.PersonalizationEnabled)
	assert.False(t, p.HasOverride())
}

func TestProfile_HasOverride(t *testing.T) {
	p := validProfile()
	assert.False(t, p.HasOverride())

	p.WeeklyStructureOverride = WeeklyStructure{DayUpper, DayLower, DayFullBody}
	assert.True(t, p.HasOverride())
}

func TestExperienceLevel_Rank(t *testing.T) {
	assert.Equal(t, 1, ExperienceBeginner.Rank())
	assert.Equal(t, 2, ExperienceIntermediate.Rank())
	assert.Equal(t, 3, ExperienceAdvanced.Rank())
	assert.Equal(t, 0, ExperienceLevel("expert").Rank())

	assert.True(t, ExperienceAdvanced.Valid())
	assert.False(t, ExperienceLevel("").Valid())
}

func TestProfile_Validate_IncompleteMeasurements(t *testing.T) {
	p := validProfile()
	p.WeightKG = nil
	assert.ErrorIs(t, p.Validate(), ErrIncompleteMeasurements)
}

func TestProfile_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		enabled bool
	}{
		{name: "omitted defaults to enabled", input: `{"age": 29, "primary_goal": "strength"}`, enabled: true},
		{name: "explicit false", input: `{"age": 29, "personalization_enabled": false}`, enabled: false},
		{name: "explicit true", input: `{"personalization_enabled": true}`, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Profile
			require.NoError(t, json.Unmarshal([]byte(tt.input), &p))
			assert.Equal(t, tt.enabled, p.PersonalizationEnabled)
		})
	}
}

func TestProfile_UnmarshalJSON_KeepsFields(t *testing.T) {
	id := uuid.New()
	input := `{"member_id": "` + id.String() + `", "age": 40, "height_cm": 180, "weekly_structure_override": ["Upper", "Lower"]}`

	var p Profile
	require.NoError(t, json.Unmarshal([]byte(input), &p))
	assert.Equal(t, id, p.MemberID)
	assert.Equal(t, 40, p.Age)
	require.NotNil(t, p.HeightCM)
	assert.InDelta(t, 180.0, *p.HeightCM, 0.001)
	assert.Equal(t, WeeklyStructure{DayUpper, DayLower}, p.WeeklyStructureOverride)

	assert.Error(t, json.Unmarshal([]byte(`{"age": "old"}`), &p))
}
