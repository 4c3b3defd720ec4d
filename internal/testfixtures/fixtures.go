// Package testfixtures provides deterministic building blocks shared by
// tests across packages.
package testfixtures

import (
	"github.com/example/campus-scheduler/internal/persistence"
)

// CampusOption customises the document built by NewCampus.
type CampusOption func(*persistence.University)

// NewCampus builds a document with a single university holding one
// accessible lecture hall and one instructor, the smallest fixture that
// can host a scheduling attempt.
func NewCampus(opts ...CampusOption) *persistence.Campus {
	campus := persistence.NewCampus()
	university := campus.AddUniversity("State University")
	university.AddRoom("Main Hall", "lecture_hall", persistence.NewCapacity(50), []string{"wheelchair_access"})
	university.AddPersonnel("Dr. Reyes", "instructor", []string{"databases"}, []string{"wheelchair_access"})
	for _, opt := range opts {
		opt(university)
	}
	return campus
}

// WithRoom adds an extra room to the fixture university.
func WithRoom(name, roomType string, capacity int, features ...string) CampusOption {
	return func(u *persistence.University) {
		u.AddRoom(name, roomType, persistence.NewCapacity(capacity), features)
	}
}

// WithInstructor adds an extra instructor to the fixture university.
func WithInstructor(name string, needs ...string) CampusOption {
	return func(u *persistence.University) {
		u.AddPersonnel(name, "instructor", nil, needs)
	}
}

// WithClass books a class directly into the fixture university, bypassing
// the scheduling checks.
func WithClass(title, roomID, slot, instructorID string) CampusOption {
	return func(u *persistence.University) {
		u.AddClass(title, roomID, slot, instructorID)
	}
}
