package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// Normalize applies all normalization steps to a catalog in place.
func Normalize(catalog *types.Catalog) error {
	seen := make(map[int]bool, len(catalog.Entries))
	for i := range catalog.Entries {
		entry := &catalog.Entries[i]
		if seen[entry.ID] {
			return &NormalizationError{EntryID: entry.ID, Message: "duplicate id"}
		}
		seen[entry.ID] = true

		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			return &NormalizationError{EntryID: entry.ID, Message: "name is required"}
		}

		if err := normalizeLevels(entry); err != nil {
			return err
		}
		entry.GoalTags = NormalizeGoalTags(entry.GoalTags)
		entry.MuscleGroups = normalizeMuscleGroups(entry.MuscleGroups)
		normalizeExercises(entry)
	}
	return nil
}

// NormalizeGoalTags maps tags onto recognised goals, dropping blanks and duplicates.
func NormalizeGoalTags(tags []types.Goal) []types.Goal {
	out := make([]types.Goal, 0, len(tags))
	seen := make(map[types.Goal]bool, len(tags))
	for _, tag := range tags {
		normalized, _ := objectives.NormalizeGoal(tag)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}
	return out
}

// normalizeLevels lower-cases, deduplicates and sorts the experience levels.
// Difficulty defaults to the lowest level.
func normalizeLevels(entry *types.CatalogEntry) error {
	levels := make([]types.ExperienceLevel, 0, len(entry.ExperienceLevels))
	seen := make(map[types.ExperienceLevel]bool, len(entry.ExperienceLevels))
	for _, level := range entry.ExperienceLevels {
		level = types.ExperienceLevel(strings.ToLower(strings.TrimSpace(string(level))))
		if !level.Valid() {
			return &NormalizationError{EntryID: entry.ID, Message: "invalid experience level '" + string(level) + "'"}
		}
		if !seen[level] {
			seen[level] = true
			levels = append(levels, level)
		}
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i].Rank() < levels[j].Rank() })
	entry.ExperienceLevels = levels

	entry.Difficulty = types.ExperienceLevel(strings.ToLower(strings.TrimSpace(string(entry.Difficulty))))
	if entry.Difficulty == "" {
		entry.Difficulty = entry.MinLevel()
	}
	if !entry.Difficulty.Valid() {
		return &NormalizationError{EntryID: entry.ID, Message: "invalid difficulty '" + string(entry.Difficulty) + "'"}
	}
	return nil
}

func normalizeMuscleGroups(groups []string) []string {
	out := make([]string, 0, len(groups))
	seen := make(map[string]bool, len(groups))
	for _, group := range groups {
		group = strings.TrimSpace(group)
		key := strings.ToLower(group)
		if group == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, group)
	}
	return out
}

// normalizeExercises orders exercises and fills in missing positions.
func normalizeExercises(entry *types.CatalogEntry) {
	for i := range entry.Exercises {
		if entry.Exercises[i].Order == 0 {
			entry.Exercises[i].Order = i + 1
		}
	}
	sort.SliceStable(entry.Exercises, func(i, j int) bool {
		return entry.Exercises[i].Order < entry.Exercises[j].Order
	})
}
