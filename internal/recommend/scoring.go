package recommend

import (
	"strings"

	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// accessible reports whether a member at the given level may be shown the entry.
// Members see entries at or below their own level, so beginners never see
// intermediate-only or advanced-only workouts.
func accessible(entry *types.CatalogEntry, level types.ExperienceLevel) bool {
	rank := level.Rank()
	if rank == 0 {
		// Unknown member level is treated as beginner.
		rank = types.ExperienceBeginner.Rank()
	}
	return entry.MinLevel().Rank() <= rank
}

// normalizedTags returns the entry's goal tags normalised and deduplicated.
func normalizedTags(entry *types.CatalogEntry) map[types.Goal]bool {
	tags := make(map[types.Goal]bool, len(entry.GoalTags))
	for _, tag := range entry.GoalTags {
		normalized, _ := objectives.NormalizeGoal(tag)
		if normalized != "" {
			tags[normalized] = true
		}
	}
	return tags
}

// goalMatchCount counts how many of the entry's goal tags fall in the goal's affinity set.
func goalMatchCount(tags map[types.Goal]bool, affinity []types.Goal) int {
	count := 0
	for _, goal := range affinity {
		if tags[goal] {
			count++
		}
	}
	return count
}

// dayFocus lists the muscle groups each day label trains. Full Body has no
// entry and matches every workout.
var dayFocus = map[types.DayLabel][]string{
	types.DayPush:  {"chest", "shoulders", "triceps", "arms"},
	types.DayPull:  {"back", "biceps", "forearms", "arms"},
	types.DayLegs:  {"legs", "glutes", "quads", "hamstrings", "calves", "core"},
	types.DayLower: {"legs", "glutes", "quads", "hamstrings", "calves", "core"},
	types.DayUpper: {"chest", "shoulders", "triceps", "back", "biceps", "arms"},
}

const fullBodyMuscleGroup = "full body"

// trainsFocus reports whether the entry's muscle groups overlap the day's focus.
func trainsFocus(entry *types.CatalogEntry, day types.DayLabel) bool {
	focus, ok := dayFocus[day]
	if !ok {
		return true
	}
	for _, group := range entry.MuscleGroups {
		normalized := strings.ToLower(strings.TrimSpace(group))
		if normalized == fullBodyMuscleGroup {
			return true
		}
		for _, target := range focus {
			if normalized == target {
				return true
			}
		}
	}
	return false
}
