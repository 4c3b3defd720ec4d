package application

import (
	"errors"
	"fmt"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/timeslot"
)

var (
	// ErrUnauthorized is returned when the acting principal lacks permission for an operation.
	ErrUnauthorized = errors.New("application: unauthorized")
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("application: not found")
	// ErrInvalidCredentials is returned when a login attempt fails.
	ErrInvalidCredentials = errors.New("application: invalid credentials")
	// ErrSessionExpired is returned when a presented session token has lapsed.
	ErrSessionExpired = errors.New("application: session expired")

	// ErrMalformedTimeslot aliases the timeslot parser's sentinel so both the
	// core's and the parser's errors match under errors.Is.
	ErrMalformedTimeslot = timeslot.ErrMalformed

	// ErrRoomUnavailable is returned when the requested room is already booked
	// for an overlapping timeslot.
	ErrRoomUnavailable = errors.New("application: room is not available at the desired timeslot")
	// ErrInsufficientCapacity is returned when the room cannot seat the
	// expected headcount.
	ErrInsufficientCapacity = errors.New("application: room does not have enough capacity")
	// ErrAccessibilityMismatch is returned when the room does not cover the
	// instructor's accessibility needs.
	ErrAccessibilityMismatch = errors.New("application: room does not meet the instructor's accessibility needs")
	// ErrInvalidCapacityValue is returned when a stored room capacity cannot
	// be read as a non-negative integer; capacity checks fail closed.
	ErrInvalidCapacityValue = errors.New("application: room capacity is not a valid number")
)

// NotFoundError mirrors persistence lookup misses so transports can name
// the missing entity kind.
type NotFoundError struct {
	Kind persistence.EntityKind
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("application: %s %q not found", e.Kind, e.ID)
}

// Is makes NotFoundError match ErrNotFound under errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError captures field level validation issues that callers can surface to users.
type ValidationError struct {
	FieldErrors map[string]string
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if v == nil {
		return ""
	}
	return "validation failed"
}

// HasErrors reports whether any field level issues were recorded.
func (v *ValidationError) HasErrors() bool {
	return v != nil && len(v.FieldErrors) > 0
}

// add records a field level validation error.
func (v *ValidationError) add(field, message string) {
	if v.FieldErrors == nil {
		v.FieldErrors = make(map[string]string)
	}
	v.FieldErrors[field] = message
}

// mapStoreError converts persistence errors into the application's error
// vocabulary; unrecognised errors pass through unchanged.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	var nf *persistence.NotFoundError
	if errors.As(err, &nf) {
		return &NotFoundError{Kind: nf.Kind, ID: nf.ID}
	}
	if errors.Is(err, persistence.ErrNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, persistence.ErrInvalidCapacity) {
		return fmt.Errorf("%w: %v", ErrInvalidCapacityValue, err)
	}
	return err
}
