// Package planner maps a member's weekly training frequency to a canonical workout split.
package planner

import (
	"errors"
	"fmt"
)

// ErrInvalidFrequency is matched by every InvalidFrequencyError through errors.Is.
var ErrInvalidFrequency = errors.New("invalid training frequency")

// InvalidFrequencyError is returned when the number of training days falls outside the supported range.
type InvalidFrequencyError struct {
	Days int
}

func (e *InvalidFrequencyError) Error() string {
	return fmt.Sprintf("invalid training frequency: %d days per week (supported: %d-%d)", e.Days, minDays, maxDays)
}

// Is lets errors.Is(err, ErrInvalidFrequency) match.
func (e *InvalidFrequencyError) Is(target error) bool {
	return target == ErrInvalidFrequency
}
