package persistence

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrInvalidCapacity is returned when a stored room capacity cannot be
	// read as a non-negative integer.
	ErrInvalidCapacity = errors.New("persistence: invalid capacity value")
)

// EntityKind names the class of entity a lookup failed to resolve.
type EntityKind string

const (
	KindUniversity EntityKind = "university"
	KindRoom       EntityKind = "room"
	KindPersonnel  EntityKind = "personnel"
	KindClass      EntityKind = "class"
)

// NotFoundError reports which entity kind a lookup missed so callers can
// produce precise error messages.
type NotFoundError struct {
	Kind EntityKind
	ID   string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("persistence: %s %q not found", e.Kind, e.ID)
}

// Is makes NotFoundError match ErrNotFound under errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
