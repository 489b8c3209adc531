// Package server provides the HTTP REST API for member fitness roadmaps.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/fitness-roadmap/internal/planner"
	"github.com/jonathan/fitness-roadmap/internal/roadmap"
	"github.com/jonathan/fitness-roadmap/internal/schemas"
	"github.com/jonathan/fitness-roadmap/internal/types"
)

// ErrForbiddenMember indicates the caller's token belongs to another member
type ErrForbiddenMember struct {
	MemberID uuid.UUID
}

func (e *ErrForbiddenMember) Error() string {
	return fmt.Sprintf("not allowed to access member %s", e.MemberID)
}

// ErrWorkoutNotFound indicates no catalog entry has the requested ID
type ErrWorkoutNotFound struct {
	ID int
}

func (e *ErrWorkoutNotFound) Error() string {
	return fmt.Sprintf("workout %d not found", e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		forbidden    *ErrForbiddenMember
		workout      *ErrWorkoutNotFound
		validation   *ErrValidation
		invalidLabel *roadmap.InvalidDayLabelError
		fieldErrors  validator.ValidationErrors
		schemaErrors *schemas.ValidationError
	)

	switch {
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	case roadmap.IsNotFound(err), errors.As(err, &workout):
		return http.StatusNotFound
	case errors.Is(err, roadmap.ErrConcurrentUpdate):
		return http.StatusConflict
	case errors.As(err, &validation),
		errors.As(err, &invalidLabel),
		errors.As(err, &fieldErrors),
		errors.As(err, &schemaErrors),
		errors.Is(err, planner.ErrInvalidFrequency),
		errors.Is(err, roadmap.ErrStructureLengthMismatch),
		errors.Is(err, roadmap.ErrNilProfile),
		errors.Is(err, types.ErrIncompleteMeasurements):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
