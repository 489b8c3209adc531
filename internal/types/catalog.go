// Package types provides type definitions for structured data used throughout the fitness roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CatalogExercise is one movement inside a catalog workout.
type CatalogExercise struct {
	Name        string `json:"name"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds"`
	IsWarmup    bool   `json:"is_warmup,omitempty"`
	Order       int    `json:"order"`
}

// CatalogEntry is a read-only workout definition from the workout library.
type CatalogEntry struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	ExperienceLevels []ExperienceLevel `json:"experience_levels"`
	GoalTags         []Goal            `json:"goal_tags"`
	MuscleGroups     []string          `json:"muscle_groups"`
	Difficulty       ExperienceLevel   `json:"difficulty"`
	DurationMinutes  int               `json:"duration_minutes,omitempty"`
	Exercises        []CatalogExercise `json:"exercises,omitempty"`
}

// MinLevel returns the least experienced level the entry is tagged with.
// Untagged entries count as beginner-accessible.
func (e *CatalogEntry) MinLevel() ExperienceLevel {
	minLevel := ExperienceLevel("")
	for _, level := range e.ExperienceLevels {
		if !level.Valid() {
			continue
		}
		if minLevel == "" || level.Rank() < minLevel.Rank() {
			minLevel = level
		}
	}
	if minLevel == "" {
		return ExperienceBeginner
	}
	return minLevel
}

// Ref converts the entry into a roadmap reference.
func (e *CatalogEntry) Ref(goalMatchCount int) WorkoutRef {
	return WorkoutRef{
		ID:             e.ID,
		Name:           e.Name,
		Difficulty:     e.Difficulty,
		GoalMatchCount: goalMatchCount,
	}
}

// Catalog is a snapshot of the workout library.
type Catalog struct {
	Entries []CatalogEntry `json:"entries"`
}

// Get returns the entry with the given ID.
func (c *Catalog) Get(id int) (*CatalogEntry, bool) {
	for i := range c.Entries {
		if c.Entries[i].ID == id {
			return &c.Entries[i], true
		}
	}
	return nil, false
}
