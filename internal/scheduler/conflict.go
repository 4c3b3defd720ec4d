// Package scheduler holds the pure scheduling rules: room conflict
// detection over parsed timeslots, capacity checks, and accessibility
// matching. It has no knowledge of persistence or transport.
package scheduler

import (
	"github.com/samber/lo"

	"github.com/example/campus-scheduler/internal/timeslot"
)

// Booking pairs a scheduled class with the room it occupies.
type Booking struct {
	ClassID string
	RoomID  string
	Slot    timeslot.Timeslot
}

// Conflict details an overlapping booking that callers can present to users.
type Conflict struct {
	WithClassID string
	RoomID      string
	Slot        timeslot.Timeslot
}

// DetectConflicts identifies existing bookings in the candidate's room whose
// timeslot overlaps the candidate's. Bookings in other rooms are ignored.
func DetectConflicts(existing []Booking, candidate Booking) []Conflict {
	var conflicts []Conflict
	for _, booked := range existing {
		if booked.RoomID != candidate.RoomID {
			continue
		}
		if !booked.Slot.Overlaps(candidate.Slot) {
			continue
		}
		conflicts = append(conflicts, Conflict{
			WithClassID: booked.ClassID,
			RoomID:      booked.RoomID,
			Slot:        booked.Slot,
		})
	}
	return conflicts
}

// HasCapacity reports whether a room seating capacity attendees can host the
// expected headcount. The boundary is inclusive.
func HasCapacity(capacity, expected int) bool {
	return capacity >= expected
}

// MeetsAccessibilityNeeds reports whether every accessibility need is covered
// by the room's feature set. An empty needs list is trivially satisfied.
func MeetsAccessibilityNeeds(features, needs []string) bool {
	return lo.Every(features, needs)
}
