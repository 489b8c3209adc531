// Package types provides type definitions for structured data used throughout the fitness roadmap system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// DayLabel names the training focus of one scheduled workout day.
type DayLabel string

// Known day labels
const (
	DayFullBody DayLabel = "Full Body"
	DayUpper    DayLabel = "Upper"
	DayLower    DayLabel = "Lower"
	DayPush     DayLabel = "Push"
	DayPull     DayLabel = "Pull"
	DayLegs     DayLabel = "Legs"
)

// KnownDayLabels lists every label a weekly structure may contain.
var KnownDayLabels = []DayLabel{DayFullBody, DayUpper, DayLower, DayPush, DayPull, DayLegs}

// ParseDayLabel matches s against the known labels ignoring case, dashes and underscores.
func ParseDayLabel(s string) (DayLabel, bool) {
	key := normalizeLabelKey(s)
	for _, label := range KnownDayLabels {
		if normalizeLabelKey(string(label)) == key {
			return label, true
		}
	}
	return "", false
}

func normalizeLabelKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	return s
}

// WeeklyStructure is the ordered sequence of day labels for one training week.
// It is treated as an immutable value: producers hand out copies.
type WeeklyStructure []DayLabel

// Clone returns an independent copy. A nil structure stays nil.
func (w WeeklyStructure) Clone() WeeklyStructure {
	if w == nil {
		return nil
	}
	out := make(WeeklyStructure, len(w))
	copy(out, w)
	return out
}

// Strings returns the labels as plain strings.
func (w WeeklyStructure) Strings() []string {
	out := make([]string, len(w))
	for i, label := range w {
		out[i] = string(label)
	}
	return out
}

// String joins the labels with " / " for display.
func (w WeeklyStructure) String() string {
	return strings.Join(w.Strings(), " / ")
}
