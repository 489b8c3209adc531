// Package recommend filters and ranks catalog workouts for a member.
package recommend

import (
	"sort"

	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// Result is an ordered, deduplicated list of recommended workouts.
type Result struct {
	Workouts []types.WorkoutRef `json:"workouts"`
	// GoalRelaxed is set when no workout matched both level and goal, so the
	// goal filter was dropped and level-matched workouts were returned.
	GoalRelaxed bool `json:"goal_relaxed"`
}

type candidate struct {
	entry      *types.CatalogEntry
	matchCount int
	goalMatch  bool
}

// Recommend selects catalog workouts for the given level and goal.
//
// Entries must be accessible at the member's level and carry the member's goal
// tag. They are ordered by goal-tag match count (descending) and then by
// catalog ID (ascending). When nothing matches both criteria the goal filter is
// relaxed before an empty result is returned. A limit of zero or less means no limit.
func Recommend(catalog *types.Catalog, level types.ExperienceLevel, goal types.Goal, limit int) Result {
	chosen, relaxed := choose(rank(catalog, level, goal))
	return build(chosen, relaxed, limit)
}

// ForDay narrows the recommendation to workouts that train the day's focus.
// If none do, the unfiltered recommendation is returned.
func ForDay(
	catalog *types.Catalog,
	level types.ExperienceLevel,
	goal types.Goal,
	day types.DayLabel,
	limit int,
) Result {
	chosen, relaxed := choose(rank(catalog, level, goal))

	focused := make([]candidate, 0, len(chosen))
	for _, c := range chosen {
		if trainsFocus(c.entry, day) {
			focused = append(focused, c)
		}
	}
	if len(focused) == 0 {
		focused = chosen
	}
	return build(focused, relaxed, limit)
}

// rank scores every accessible entry once, deduplicated by ID, in output order.
func rank(catalog *types.Catalog, level types.ExperienceLevel, goal types.Goal) []candidate {
	if catalog == nil {
		return nil
	}

	memberGoal, _ := objectives.NormalizeGoal(goal)
	affinity := objectives.Affinity(goal)

	seen := make(map[int]bool, len(catalog.Entries))
	candidates := make([]candidate, 0, len(catalog.Entries))
	for i := range catalog.Entries {
		entry := &catalog.Entries[i]
		if seen[entry.ID] {
			continue
		}
		seen[entry.ID] = true

		if !accessible(entry, level) {
			continue
		}

		tags := normalizedTags(entry)
		candidates = append(candidates, candidate{
			entry:      entry,
			matchCount: goalMatchCount(tags, affinity),
			goalMatch:  memberGoal != "" && tags[memberGoal],
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].matchCount != candidates[j].matchCount {
			return candidates[i].matchCount > candidates[j].matchCount
		}
		return candidates[i].entry.ID < candidates[j].entry.ID
	})

	return candidates
}

// choose keeps goal-matched candidates, relaxing to all candidates when none match.
func choose(candidates []candidate) ([]candidate, bool) {
	matched := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.goalMatch {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 && len(candidates) > 0 {
		return candidates, true
	}
	return matched, false
}

func build(chosen []candidate, relaxed bool, limit int) Result {
	if limit > 0 && len(chosen) > limit {
		chosen = chosen[:limit]
	}

	result := Result{
		Workouts:    make([]types.WorkoutRef, 0, len(chosen)),
		GoalRelaxed: relaxed,
	}
	for _, c := range chosen {
		result.Workouts = append(result.Workouts, c.entry.Ref(c.matchCount))
	}
	return result
}
