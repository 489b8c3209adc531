// Package observability provides formatted output utilities for CLI commands.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for humans
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintWeeklyStructure outputs one line per training day.
func (p *Printer) PrintWeeklyStructure(structure types.WeeklyStructure, overridden bool) {
	if len(structure) == 0 {
		return
	}

	var sb strings.Builder
	for i, label := range structure {
		sb.WriteString(fmt.Sprintf("Day %d: %s\n", i+1, label))
	}
	if overridden {
		sb.WriteString("\n(manual override)\n")
	}

	p.printBox(fmt.Sprintf("WEEKLY STRUCTURE (%d DAYS)", len(structure)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHealthMetrics outputs BMI and its category, or a note that height and
// weight are missing.
func (p *Printer) PrintHealthMetrics(metrics *types.HealthMetrics) {
	if metrics == nil {
		p.printBox("HEALTH METRICS", "Unavailable: height and weight not recorded")
		return
	}
	p.printBox("HEALTH METRICS", fmt.Sprintf("BMI:       %.2f\nCategory:  %s", metrics.BMI, metrics.Category))
}

// PrintObjective outputs the goal and its guidance lines.
func (p *Printer) PrintObjective(objective *types.Objective) {
	if objective == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Goal: %s", objective.Goal))
	if objective.Fallback {
		sb.WriteString(" (general guidance)")
	}
	sb.WriteString("\n\n")
	for _, line := range objective.Guidance {
		sb.WriteString(fmt.Sprintf("  • %s\n", line))
	}

	p.printBox("OBJECTIVE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs the top recommended workouts.
func (p *Printer) PrintRecommendations(workouts []types.WorkoutRef, goalRelaxed bool) {
	var sb strings.Builder
	if len(workouts) == 0 {
		sb.WriteString("No accessible workouts in the catalog")
	}
	if goalRelaxed {
		sb.WriteString("No workouts match the goal; showing all accessible\n\n")
	}

	count := min(len(workouts), maxItemsToShow)
	for i := 0; i < count; i++ {
		w := workouts[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, w.Name))
		sb.WriteString(fmt.Sprintf("    Level: %s  Goal matches: %d\n", w.Difficulty, w.GoalMatchCount))
	}
	if len(workouts) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(workouts)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED WORKOUTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDayPlans outputs the workouts suggested for each training day.
func (p *Printer) PrintDayPlans(plans []types.DayPlan) {
	if len(plans) == 0 {
		return
	}

	var sb strings.Builder
	for _, plan := range plans {
		sb.WriteString(fmt.Sprintf("Day %d (%s)\n", plan.Day, plan.Label))
		if len(plan.Workouts) == 0 {
			sb.WriteString("    rest or free training\n")
		}
		for _, w := range plan.Workouts {
			sb.WriteString(fmt.Sprintf("    • %s\n", w.Name))
		}
	}

	p.printBox("DAY PLANS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs every section of a roadmap.
func (p *Printer) PrintRoadmap(roadmap *types.Roadmap) {
	if roadmap == nil {
		return
	}

	//nolint:errcheck // writing to stdout; errors are not recoverable
	fmt.Fprintf(p.out, "Roadmap for member %s (generated %s)\n", roadmap.MemberID, roadmap.GeneratedAt.Format("2006-01-02 15:04 MST"))

	if !roadmap.PersonalizationEnabled {
		p.printBox("PERSONALIZATION", "Disabled: no structure, objective or workouts")
		p.PrintHealthMetrics(roadmap.HealthMetrics)
		return
	}

	p.PrintWeeklyStructure(roadmap.WeeklyStructure, roadmap.OverrideApplied)
	p.PrintObjective(roadmap.Objective)
	p.PrintHealthMetrics(roadmap.HealthMetrics)
	p.PrintRecommendations(roadmap.RecommendedWorkouts, roadmap.GoalRelaxed)
	p.PrintDayPlans(roadmap.DayPlans)
}

// PrintBatchSummary outputs one line per roadmap.
func (p *Printer) PrintBatchSummary(roadmaps []*types.Roadmap) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Members: %d\n\n", len(roadmaps)))
	for _, r := range roadmaps {
		if r == nil {
			continue
		}
		id := r.MemberID.String()[:8]
		if !r.PersonalizationEnabled {
			sb.WriteString(fmt.Sprintf("%s  personalization off\n", id))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s  %d days  %d workouts\n", id, len(r.WeeklyStructure), len(r.RecommendedWorkouts)))
	}

	p.printBox("BATCH SUMMARY", strings.TrimSuffix(sb.String(), "\n"))
}
