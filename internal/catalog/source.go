package catalog

import (
	"context"

	"github.com/jonathan/fitness-roadmap/internal/objectives"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// Static serves a fixed catalog snapshot.
type Static struct {
	catalog *types.Catalog
}

// NewStatic returns a source that always serves c.
func NewStatic(c *types.Catalog) *Static {
	return &Static{catalog: c}
}

// ListCatalog returns the snapshot.
func (s *Static) ListCatalog(context.Context) (*types.Catalog, error) {
	return s.catalog, nil
}

// Filter returns the entries tagged with level and goal. Empty arguments match everything.
func Filter(c *types.Catalog, level types.ExperienceLevel, goal types.Goal) []types.CatalogEntry {
	if c == nil {
		return nil
	}
	wantGoal, _ := objectives.NormalizeGoal(goal)

	out := make([]types.CatalogEntry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		if level != "" && !hasLevel(entry, level) {
			continue
		}
		if wantGoal != "" && !hasGoal(entry, wantGoal) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func hasLevel(entry types.CatalogEntry, level types.ExperienceLevel) bool {
	for _, l := range entry.ExperienceLevels {
		if l == level {
			return true
		}
	}
	return false
}

func hasGoal(entry types.CatalogEntry, goal types.Goal) bool {
	for _, tag := range entry.GoalTags {
		if normalized, _ := objectives.NormalizeGoal(tag); normalized == goal {
			return true
		}
	}
	return false
}
