package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("accepts well-formed slots", func(t *testing.T) {
		cases := []struct {
			value string
			day   string
			start TimeOfDay
			end   TimeOfDay
		}{
			{"Monday 09:00-10:00", "Monday", 9 * 60, 10 * 60},
			{"Friday 00:00-23:59", "Friday", 0, 23*60 + 59},
			{"Tuesday 23:00-00:30", "Tuesday", 23 * 60, 30},
			{"Sunday 12:05-12:06", "Sunday", 12*60 + 5, 12*60 + 6},
		}

		for _, tc := range cases {
			slot, err := Parse(tc.value)
			require.NoError(t, err, tc.value)
			assert.Equal(t, tc.day, slot.Day)
			assert.Equal(t, tc.start, slot.Start)
			assert.Equal(t, tc.end, slot.End)
		}
	})

	t.Run("round-trips through String", func(t *testing.T) {
		values := []string{
			"Monday 09:00-10:00",
			"Wednesday 08:15-09:45",
			"Saturday 23:30-01:00",
			"Sunday 00:00-00:00",
		}

		for _, value := range values {
			slot, err := Parse(value)
			require.NoError(t, err, value)
			assert.Equal(t, value, slot.String())
		}
	})

	t.Run("rejects malformed slots", func(t *testing.T) {
		values := []string{
			"",
			"Monday",
			"Monday 9:00-10:00",
			"Monday 09:0-10:00",
			"monday 09:00-10:00",
			"MONDAY 09:00-10:00",
			"Funday 09:00-10:00",
			"Monday 09:00 - 10:00",
			"Monday 09:00–10:00",
			"Monday  09:00-10:00",
			"Monday 09:00-10:00 ",
			" Monday 09:00-10:00",
			"Monday 09.00-10.00",
			"Monday 09:00-10:00 extra",
			"Monday 0x:00-10:00",
		}

		for _, value := range values {
			_, err := Parse(value)
			assert.ErrorIs(t, err, ErrMalformed, "value %q", value)
		}
	})

	t.Run("rejects out-of-range times", func(t *testing.T) {
		values := []string{
			"Monday 24:00-25:00",
			"Monday 25:00-26:00",
			"Monday 09:60-10:00",
			"Monday 09:00-10:60",
			"InvalidDay 12:00-25:00",
		}

		for _, value := range values {
			_, err := Parse(value)
			assert.ErrorIs(t, err, ErrMalformed, "value %q", value)
		}
	})

	t.Run("marks midnight-crossing slots", func(t *testing.T) {
		slot, err := Parse("Monday 23:00-01:00")
		require.NoError(t, err)

		assert.Equal(t, "Monday", slot.Day)
		assert.Equal(t, TimeOfDay(23*60), slot.Start)
		assert.Equal(t, TimeOfDay(60), slot.End)
		assert.True(t, slot.End < slot.Start)
		assert.True(t, slot.WrapsMidnight())

		same, err := Parse("Monday 10:00-10:00")
		require.NoError(t, err)
		assert.True(t, same.WrapsMidnight())

		plain, err := Parse("Monday 10:00-11:00")
		require.NoError(t, err)
		assert.False(t, plain.WrapsMidnight())
	})
}

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(23, 59)
	require.NoError(t, err)
	assert.Equal(t, "23:59", tod.String())
	assert.Equal(t, 23, tod.Hour())
	assert.Equal(t, 59, tod.Minute())

	_, err = NewTimeOfDay(24, 0)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = NewTimeOfDay(0, 60)
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = NewTimeOfDay(-1, 0)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestOverlaps(t *testing.T) {
	parse := func(t *testing.T, value string) Timeslot {
		t.Helper()
		slot, err := Parse(value)
		require.NoError(t, err)
		return slot
	}

	t.Run("detects overlap within a day", func(t *testing.T) {
		cases := []struct {
			a, b    string
			overlap bool
		}{
			{"Monday 09:00-10:00", "Monday 09:30-10:30", true},
			{"Monday 09:00-10:00", "Monday 09:59-11:00", true},
			{"Monday 09:00-12:00", "Monday 10:00-11:00", true},
			{"Monday 09:00-10:00", "Monday 09:00-10:00", true},
			{"Monday 09:00-10:00", "Monday 10:00-11:00", false},
			{"Monday 10:00-11:00", "Monday 09:00-10:00", false},
			{"Monday 09:00-10:00", "Monday 11:00-12:00", false},
		}

		for _, tc := range cases {
			a, b := parse(t, tc.a), parse(t, tc.b)
			assert.Equal(t, tc.overlap, a.Overlaps(b), "%s vs %s", tc.a, tc.b)
			assert.Equal(t, tc.overlap, b.Overlaps(a), "%s vs %s (symmetric)", tc.b, tc.a)
		}
	})

	t.Run("different days never overlap", func(t *testing.T) {
		a := parse(t, "Monday 09:00-10:00")
		b := parse(t, "Tuesday 09:00-10:00")
		assert.False(t, a.Overlaps(b))
		assert.False(t, b.Overlaps(a))

		// A midnight-crossing tail never reaches into the next nominal day.
		late := parse(t, "Monday 23:00-01:00")
		early := parse(t, "Tuesday 00:30-02:00")
		assert.False(t, late.Overlaps(early))
		assert.False(t, early.Overlaps(late))
	})

	t.Run("shifting an abutting slot inward creates overlap", func(t *testing.T) {
		a := parse(t, "Monday 09:00-10:00")
		assert.False(t, a.Overlaps(parse(t, "Monday 10:00-11:00")))
		assert.True(t, a.Overlaps(parse(t, "Monday 09:59-11:00")))
		assert.True(t, parse(t, "Monday 09:00-10:01").Overlaps(parse(t, "Monday 10:00-11:00")))
	})

	t.Run("midnight-crossing slots on the same day", func(t *testing.T) {
		wrapped := parse(t, "Monday 23:00-01:00")

		assert.True(t, wrapped.Overlaps(wrapped))
		assert.True(t, wrapped.Overlaps(parse(t, "Monday 23:30-23:45")))
		assert.False(t, wrapped.Overlaps(parse(t, "Monday 21:00-22:00")))
		assert.False(t, wrapped.Overlaps(parse(t, "Monday 21:00-23:00")))
		assert.True(t, wrapped.Overlaps(parse(t, "Monday 22:00-23:30")))
	})
}
