package roadmap

import (
	"github.com/jonathan/fitness-roadmap/internal/planner"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// ValidateOverride checks a proposed weekly structure against the profile's
// training frequency and returns it with every label in canonical form.
func ValidateOverride(trainingDays int, structure types.WeeklyStructure) (types.WeeklyStructure, error) {
	if trainingDays < types.MinTrainingDays || trainingDays > types.MaxTrainingDays {
		return nil, &planner.InvalidFrequencyError{Days: trainingDays}
	}
	if len(structure) != trainingDays {
		return nil, &StructureLengthMismatchError{Expected: trainingDays, Actual: len(structure)}
	}

	canonical := make(types.WeeklyStructure, len(structure))
	for i, label := range structure {
		parsed, ok := types.ParseDayLabel(string(label))
		if !ok {
			return nil, &InvalidDayLabelError{Position: i, Label: label}
		}
		canonical[i] = parsed
	}
	return canonical, nil
}

// SetWeeklyStructureOverride stores a copy of structure as the profile's
// override. On error the profile is left unchanged.
func SetWeeklyStructureOverride(profile *types.Profile, structure types.WeeklyStructure) error {
	if profile == nil {
		return ErrNilProfile
	}
	canonical, err := ValidateOverride(profile.TrainingDaysPerWeek, structure)
	if err != nil {
		return err
	}
	profile.WeeklyStructureOverride = canonical
	return nil
}

// ClearOverride removes the override so future roadmaps use the planner's split.
func ClearOverride(profile *types.Profile) error {
	if profile == nil {
		return ErrNilProfile
	}
	profile.WeeklyStructureOverride = nil
	return nil
}

// SetPersonalizationEnabled sets the personalization flag. Repeating a value is a no-op.
func SetPersonalizationEnabled(profile *types.Profile, enabled bool) error {
	if profile == nil {
		return ErrNilProfile
	}
	profile.PersonalizationEnabled = enabled
	return nil
}
