package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/campus-scheduler/internal/persistence"
	"github.com/example/campus-scheduler/internal/scheduler"
	"github.com/example/campus-scheduler/internal/timeslot"
)

// ScheduleService books classes into rooms. Checks run in a fixed order
// for every request: entity resolution, timeslot parsing, room
// availability, capacity, then accessibility. The first failure wins even
// when later checks would also fail.
type ScheduleService struct {
	guard  *DocumentGuard
	logger *slog.Logger
}

// NewScheduleService constructs a ScheduleService over a guarded store.
func NewScheduleService(guard *DocumentGuard, logger *slog.Logger) *ScheduleService {
	return &ScheduleService{guard: guard, logger: defaultLogger(logger)}
}

// ScheduleClass validates the request against the university's current
// bookings and, when every check passes, records the class and returns it
// with its assigned identifier.
func (s *ScheduleService) ScheduleClass(ctx context.Context, input ScheduleClassInput) (result Class, err error) {
	logger := serviceLogger(ctx, s.logger, "ScheduleService", "ScheduleClass",
		slog.String("university_id", input.UniversityID),
		slog.String("room_id", input.RoomID))
	defer func() {
		if err != nil {
			logger.Error("schedule class failed", slog.String("error_kind", ErrorKind(err)))
			return
		}
		logger.Info("class scheduled", slog.String("class_id", result.ID), slog.String("timeslot", result.Timeslot))
	}()

	vErr := &ValidationError{}
	if strings.TrimSpace(input.UniversityID) == "" {
		vErr.add("university_id", "university_id is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		vErr.add("title", "title is required")
	}
	if strings.TrimSpace(input.RoomID) == "" {
		vErr.add("room_id", "room_id is required")
	}
	if strings.TrimSpace(input.Timeslot) == "" {
		vErr.add("timeslot", "timeslot is required")
	}
	if strings.TrimSpace(input.InstructorID) == "" {
		vErr.add("instructor_id", "instructor_id is required")
	}
	if input.ExpectedHeadcount < 0 {
		vErr.add("expected_capacity", "expected_capacity must not be negative")
	}
	if vErr.HasErrors() {
		return Class{}, vErr
	}

	err = s.guard.Update(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(input.UniversityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		room, lookupErr := university.Room(input.RoomID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		instructor, lookupErr := university.Instructor(input.InstructorID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}

		slot, parseErr := timeslot.Parse(input.Timeslot)
		if parseErr != nil {
			return parseErr
		}

		bookings, bookingsErr := roomBookings(university, room.ID)
		if bookingsErr != nil {
			return bookingsErr
		}
		candidate := scheduler.Booking{RoomID: room.ID, Slot: slot}
		if conflicts := scheduler.DetectConflicts(bookings, candidate); len(conflicts) > 0 {
			return fmt.Errorf("%w: conflicts with %s", ErrRoomUnavailable, conflicts[0].WithClassID)
		}

		capacity, capErr := room.Capacity.Int()
		if capErr != nil {
			return mapStoreError(capErr)
		}
		if !scheduler.HasCapacity(capacity, input.ExpectedHeadcount) {
			return ErrInsufficientCapacity
		}

		if !scheduler.MeetsAccessibilityNeeds(room.AccessibilityFeatures, instructor.AccessibilityNeeds) {
			return ErrAccessibilityMismatch
		}

		result = toClass(*university.AddClass(input.Title, room.ID, slot.String(), instructor.ID))
		return nil
	})
	if err != nil {
		return Class{}, err
	}
	return result, nil
}

// IsRoomAvailable reports whether the room is free of overlapping
// bookings for the given timeslot. It does not check capacity or
// accessibility.
func (s *ScheduleService) IsRoomAvailable(ctx context.Context, universityID, roomID, rawSlot string) (available bool, err error) {
	logger := serviceLogger(ctx, s.logger, "ScheduleService", "IsRoomAvailable",
		slog.String("university_id", universityID),
		slog.String("room_id", roomID))
	defer func() {
		if err != nil {
			logger.Error("availability check failed", slog.String("error_kind", ErrorKind(err)))
		}
	}()

	slot, parseErr := timeslot.Parse(rawSlot)
	if parseErr != nil {
		return false, parseErr
	}

	err = s.guard.View(ctx, func(campus *persistence.Campus) error {
		university, lookupErr := campus.University(universityID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		room, lookupErr := university.Room(roomID)
		if lookupErr != nil {
			return mapStoreError(lookupErr)
		}
		bookings, bookingsErr := roomBookings(university, room.ID)
		if bookingsErr != nil {
			return bookingsErr
		}
		candidate := scheduler.Booking{RoomID: room.ID, Slot: slot}
		available = len(scheduler.DetectConflicts(bookings, candidate)) == 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return available, nil
}

// roomBookings collects the existing bookings for a room. A stored class
// with an unparseable timeslot aborts the operation rather than being
// skipped, so a corrupt record cannot silently open a double booking.
func roomBookings(university *persistence.University, roomID string) ([]scheduler.Booking, error) {
	bookings := make([]scheduler.Booking, 0, len(university.Classes))
	for _, class := range university.Classes {
		if class.RoomID != roomID {
			continue
		}
		slot, err := timeslot.Parse(class.Timeslot)
		if err != nil {
			return nil, fmt.Errorf("stored class %s: %w", class.ID, err)
		}
		bookings = append(bookings, scheduler.Booking{
			ClassID: class.ID,
			RoomID:  class.RoomID,
			Slot:    slot,
		})
	}
	return bookings, nil
}
