package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/campus-scheduler/internal/timeslot"
)

func mustParse(t *testing.T, value string) timeslot.Timeslot {
	t.Helper()
	slot, err := timeslot.Parse(value)
	require.NoError(t, err)
	return slot
}

func TestDetectConflicts(t *testing.T) {
	existing := []Booking{
		{ClassID: "class_id_1", RoomID: "room_id_1", Slot: mustParse(t, "Monday 09:00-10:00")},
		{ClassID: "class_id_2", RoomID: "room_id_1", Slot: mustParse(t, "Monday 10:00-11:00")},
		{ClassID: "class_id_3", RoomID: "room_id_2", Slot: mustParse(t, "Monday 09:00-17:00")},
	}

	t.Run("reports overlapping bookings in the same room", func(t *testing.T) {
		conflicts := DetectConflicts(existing, Booking{
			RoomID: "room_id_1",
			Slot:   mustParse(t, "Monday 09:30-10:30"),
		})

		require.Len(t, conflicts, 2)
		assert.Equal(t, "class_id_1", conflicts[0].WithClassID)
		assert.Equal(t, "class_id_2", conflicts[1].WithClassID)
		assert.Equal(t, "room_id_1", conflicts[0].RoomID)
	})

	t.Run("ignores other rooms", func(t *testing.T) {
		conflicts := DetectConflicts(existing, Booking{
			RoomID: "room_id_3",
			Slot:   mustParse(t, "Monday 09:00-17:00"),
		})
		assert.Empty(t, conflicts)
	})

	t.Run("ignores abutting and other-day bookings", func(t *testing.T) {
		conflicts := DetectConflicts(existing, Booking{
			RoomID: "room_id_1",
			Slot:   mustParse(t, "Monday 11:00-12:00"),
		})
		assert.Empty(t, conflicts)

		conflicts = DetectConflicts(existing, Booking{
			RoomID: "room_id_1",
			Slot:   mustParse(t, "Tuesday 09:00-10:00"),
		})
		assert.Empty(t, conflicts)
	})
}

func TestHasCapacity(t *testing.T) {
	assert.True(t, HasCapacity(40, 40))
	assert.False(t, HasCapacity(40, 41))
	assert.True(t, HasCapacity(40, 0))
	assert.True(t, HasCapacity(0, 0))
	assert.False(t, HasCapacity(0, 1))
}

func TestMeetsAccessibilityNeeds(t *testing.T) {
	features := []string{"wheelchair", "hearing_loop", "elevator"}

	assert.True(t, MeetsAccessibilityNeeds(features, nil))
	assert.True(t, MeetsAccessibilityNeeds(features, []string{}))
	assert.True(t, MeetsAccessibilityNeeds(features, []string{"wheelchair"}))
	assert.True(t, MeetsAccessibilityNeeds(features, []string{"wheelchair", "elevator"}))
	assert.False(t, MeetsAccessibilityNeeds(features, []string{"braille_signage"}))
	assert.False(t, MeetsAccessibilityNeeds(features, []string{"wheelchair", "braille_signage"}))
	assert.False(t, MeetsAccessibilityNeeds(nil, []string{"wheelchair"}))
	assert.True(t, MeetsAccessibilityNeeds(nil, nil))
}
