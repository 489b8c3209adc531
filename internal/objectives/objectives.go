// Package objectives derives training objectives and guidance from a member's goal and experience.
package objectives

import "github.com/jonathan/fitness-roadmap/internal/types"

// guidanceSet holds the ordered bullets for one goal. Beginners receive the
// first foundation bullets only; advanced members also get the advanced bullet.
type guidanceSet struct {
	core       []string
	foundation int
	advanced   string
}

var guidance = map[types.Goal]guidanceSet{
	GoalMuscleGain: {
		core: []string{
			"Apply progressive overload: add reps or load every week",
			"Prioritize compound lifts before isolation work",
			"Train each muscle group at least twice per week",
			"Eat in a slight caloric surplus with 1.6-2.2 g protein per kg",
			"Keep most working sets within 1-3 reps of failure",
		},
		foundation: 3,
		advanced:   "Periodize volume in 4-6 week blocks followed by a deload",
	},
	GoalFatLoss: {
		core: []string{
			"Maintain a moderate caloric deficit of 300-500 kcal per day",
			"Keep resistance training in the plan to preserve muscle",
			"Add 2-3 conditioning or HIIT sessions per week",
			"Track daily steps and aim for a consistent baseline",
			"Keep protein high to support satiety and recovery",
		},
		foundation: 3,
		advanced:   "Use diet breaks and refeed days to manage long deficits",
	},
	GoalGeneralFitness: {
		core: []string{
			"Build a consistent weekly routine before adding intensity",
			"Balance strength, cardio and mobility work",
			"Cover every major movement pattern each week",
			"Progress gradually and track sessions to stay accountable",
		},
		foundation: 2,
		advanced:   "Set quarterly performance targets across strength and conditioning",
	},
	GoalStrength: {
		core: []string{
			"Center each session on a main barbell lift",
			"Work in low rep ranges (3-6) with full rest between sets",
			"Practice the main lifts frequently to build skill",
			"Strengthen weak points with targeted accessory work",
			"Log top sets to monitor estimated one-rep max",
		},
		foundation: 3,
		advanced:   "Run peaking cycles and test maxes no more than once per block",
	},
	GoalEndurance: {
		core: []string{
			"Build an aerobic base with mostly low-intensity sessions",
			"Increase weekly volume by no more than about 10%",
			"Include one interval or tempo session per week",
			"Keep two strength sessions to support joints and economy",
		},
		foundation: 2,
		advanced:   "Polarize training with roughly 80% easy and 20% hard work",
	},
}

const beginnerTechnique = "Focus on technique and controlled tempo before adding load"

var fallbackGuidance = []string{
	"Train consistently on your scheduled days",
	"Combine resistance training with regular cardio",
	"Progress gradually and prioritize recovery and sleep",
}

// Generate returns the objective for a goal and experience level. Unknown
// goals receive a generic fallback set instead of an error so that roadmap
// generation never blocks on an unrecognised tag.
func Generate(goal types.Goal, experience types.ExperienceLevel) types.Objective {
	normalized, known := NormalizeGoal(goal)
	set, ok := guidance[normalized]
	if !known || !ok {
		return types.Objective{
			Goal:     normalized,
			Guidance: append([]string(nil), fallbackGuidance...),
			Fallback: true,
		}
	}

	var bullets []string
	switch experience {
	case types.ExperienceBeginner:
		bullets = make([]string, 0, set.foundation+1)
		bullets = append(bullets, set.core[:set.foundation]...)
		bullets = append(bullets, beginnerTechnique)
	case types.ExperienceAdvanced:
		bullets = make([]string, 0, len(set.core)+1)
		bullets = append(bullets, set.core...)
		bullets = append(bullets, set.advanced)
	default:
		bullets = append([]string(nil), set.core...)
	}

	return types.Objective{
		Goal:     normalized,
		Guidance: bullets,
	}
}
