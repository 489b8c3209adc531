// Package planner maps a member's weekly training frequency to a canonical workout split.
package planner

import (
	"fmt"

	"github.com/jonathan/fitness-roadmap/internal/types"
)

const (
	minDays = types.MinTrainingDays
	maxDays = types.MaxTrainingDays
)

// splits is indexed by days per week. Index 0 is unused.
var splits = [maxDays + 1]types.WeeklyStructure{
	1: {types.DayFullBody},
	2: {types.DayUpper, types.DayLower},
	3: {types.DayFullBody, types.DayFullBody, types.DayFullBody},
	4: {types.DayUpper, types.DayLower, types.DayUpper, types.DayLower},
	5: {types.DayPush, types.DayPull, types.DayLegs, types.DayUpper, types.DayLower},
	6: {types.DayPush, types.DayPull, types.DayLegs, types.DayPush, types.DayPull, types.DayLegs},
}

func init() {
	if err := Verify(); err != nil {
		panic(err)
	}
}

// Plan returns the weekly structure for the given number of training days.
// Days outside [1,6] yield an *InvalidFrequencyError; the value is never clamped.
func Plan(days int) (types.WeeklyStructure, error) {
	if days < minDays || days > maxDays {
		return nil, &InvalidFrequencyError{Days: days}
	}
	return splits[days].Clone(), nil
}

// Verify checks that the split table covers every supported frequency with a
// structure of exactly that many known day labels.
func Verify() error {
	for _, days := range Frequencies() {
		structure := splits[days]
		if len(structure) != days {
			return fmt.Errorf("split table: %d days maps to %d labels", days, len(structure))
		}
		for _, label := range structure {
			if _, ok := types.ParseDayLabel(string(label)); !ok {
				return fmt.Errorf("split table: %d days contains unknown label %q", days, label)
			}
		}
	}
	return nil
}

// Frequencies lists the supported training frequencies in ascending order.
func Frequencies() []int {
	out := make([]int, 0, maxDays-minDays+1)
	for days := minDays; days <= maxDays; days++ {
		out = append(out, days)
	}
	return out
}
