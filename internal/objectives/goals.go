// Package objectives derives training objectives and guidance from a member's goal and experience.
package objectives

import (
	"strings"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

// Recognised goal tags
const (
	GoalMuscleGain     types.Goal = "muscle_gain"
	GoalFatLoss        types.Goal = "fat_loss"
	GoalGeneralFitness types.Goal = "general_fitness"
	GoalStrength       types.Goal = "strength"
	GoalEndurance      types.Goal = "endurance"
)

// KnownGoals lists the recognised goals in display order.
var KnownGoals = []types.Goal{GoalMuscleGain, GoalFatLoss, GoalGeneralFitness, GoalStrength, GoalEndurance}

// goalAliases maps alternate spellings onto recognised goals. Keys are normalised.
var goalAliases = map[string]types.Goal{
	"muscle_gain":     GoalMuscleGain,
	"muscle":          GoalMuscleGain,
	"hypertrophy":     GoalMuscleGain,
	"bulk":            GoalMuscleGain,
	"fat_loss":        GoalFatLoss,
	"weight_loss":     GoalFatLoss,
	"cut":             GoalFatLoss,
	"general_fitness": GoalGeneralFitness,
	"general":         GoalGeneralFitness,
	"fitness":         GoalGeneralFitness,
	"strength":        GoalStrength,
	"powerlifting":    GoalStrength,
	"endurance":       GoalEndurance,
	"cardio":          GoalEndurance,
	"conditioning":    GoalEndurance,
}

// relatedGoals lists goals whose workouts also serve the key goal. Used to
// weigh catalog entries carrying several goal tags.
var relatedGoals = map[types.Goal][]types.Goal{
	GoalMuscleGain:     {GoalStrength},
	GoalFatLoss:        {GoalEndurance, GoalGeneralFitness},
	GoalGeneralFitness: {GoalEndurance, GoalFatLoss},
	GoalStrength:       {GoalMuscleGain},
	GoalEndurance:      {GoalFatLoss, GoalGeneralFitness},
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

// NormalizeGoal maps a free-form goal tag onto a recognised goal. The second
// return value is false for unrecognised tags, in which case the input is
// returned trimmed and lower-cased so it can still be compared against catalog tags.
func NormalizeGoal(goal types.Goal) (types.Goal, bool) {
	key := normalizeKey(string(goal))
	if known, ok := goalAliases[key]; ok {
		return known, true
	}
	return types.Goal(key), false
}

// Affinity returns the normalised goal followed by its related goals.
// Unknown goals have an affinity of just themselves.
func Affinity(goal types.Goal) []types.Goal {
	normalized, _ := NormalizeGoal(goal)
	out := []types.Goal{normalized}
	out = append(out, relatedGoals[normalized]...)
	return out
}
