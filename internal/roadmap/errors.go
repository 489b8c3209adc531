// Package roadmap composes a member's personalized fitness roadmap and manages
// the profile fields that steer it.
package roadmap

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// ErrStructureLengthMismatch is matched by every StructureLengthMismatchError.
var ErrStructureLengthMismatch = errors.New("weekly structure length does not match training days")

// ErrNilProfile is returned when an operation is handed no profile.
var ErrNilProfile = errors.New("profile is required")

// ErrMemberNotFound is returned by a ProfileStore when no profile exists for the member.
var ErrMemberNotFound = errors.New("member not found")

// ErrConcurrentUpdate is returned when a guarded profile write keeps losing to
// concurrent changes although the profile still matches.
var ErrConcurrentUpdate = errors.New("profile changed concurrently")

// StructureLengthMismatchError is returned when an override does not have one
// label per configured training day.
type StructureLengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *StructureLengthMismatchError) Error() string {
	return fmt.Sprintf("weekly structure has %d days, profile trains %d days per week", e.Actual, e.Expected)
}

// Is reports whether target is ErrStructureLengthMismatch.
func (e *StructureLengthMismatchError) Is(target error) bool {
	return target == ErrStructureLengthMismatch
}

// InvalidDayLabelError is returned when an override contains an unknown day label.
type InvalidDayLabelError struct {
	Position int
	Label    types.DayLabel
}

func (e *InvalidDayLabelError) Error() string {
	return fmt.Sprintf("unknown day label %q at position %d", e.Label, e.Position+1)
}

// MemberError ties a store or generation failure to the member it concerns.
type MemberError struct {
	MemberID uuid.UUID
	Op       string
	Cause    error
}

func (e *MemberError) Error() string {
	return fmt.Sprintf("%s for member %s: %v", e.Op, e.MemberID, e.Cause)
}

func (e *MemberError) Unwrap() error {
	return e.Cause
}
