// Package timeslot implements the textual "Day HH:MM-HH:MM" timeslot
// format used by class schedules, and overlap detection between slots.
package timeslot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed is returned when a timeslot string does not satisfy the
// expected grammar or names an impossible time of day.
var ErrMalformed = errors.New("timeslot: malformed timeslot")

// Exactly the seven capitalized English day names, two-digit zero-padded
// hours and minutes, a single space and a single hyphen. Anything else is
// rejected.
var pattern = regexp.MustCompile(`^(Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday) (\d{2}):(\d{2})-(\d{2}):(\d{2})$`)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time expressed as minutes since midnight.
type TimeOfDay int

// NewTimeOfDay validates hour and minute and returns the corresponding
// time of day.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour %02d out of range", ErrMalformed, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: minute %02d out of range", ErrMalformed, minute)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// Hour returns the hour component in [0,23].
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component in [0,59].
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String renders the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Timeslot is a parsed class slot. Day always names the start day; when
// End <= Start the slot crosses midnight into the following calendar day.
type Timeslot struct {
	Day   string
	Start TimeOfDay
	End   TimeOfDay
}

// Parse converts a "Day HH:MM-HH:MM" string into a Timeslot. The grammar
// is strict: unknown day names, missing zero padding, out-of-range times,
// or stray characters all fail with ErrMalformed.
func Parse(value string) (Timeslot, error) {
	match := pattern.FindStringSubmatch(value)
	if match == nil {
		return Timeslot{}, fmt.Errorf("%w: %q", ErrMalformed, value)
	}

	start, err := NewTimeOfDay(mustAtoi(match[2]), mustAtoi(match[3]))
	if err != nil {
		return Timeslot{}, err
	}
	end, err := NewTimeOfDay(mustAtoi(match[4]), mustAtoi(match[5]))
	if err != nil {
		return Timeslot{}, err
	}

	return Timeslot{Day: match[1], Start: start, End: end}, nil
}

// String renders the slot in its canonical textual form. Parsing the
// result yields the same Timeslot.
func (ts Timeslot) String() string {
	return fmt.Sprintf("%s %s-%s", ts.Day, ts.Start, ts.End)
}

// WrapsMidnight reports whether the slot ends on the following calendar
// day. The reported Day stays the start day either way.
func (ts Timeslot) WrapsMidnight() bool {
	return ts.End <= ts.Start
}

// Overlaps reports whether two slots share any instant. Slots on
// different nominal days never overlap, even when one of them wraps past
// midnight; within a day the comparison treats slots as closed-open
// intervals, so slots that merely abut do not overlap.
func (ts Timeslot) Overlaps(other Timeslot) bool {
	if ts.Day != other.Day {
		return false
	}
	s1, e1 := ts.window()
	s2, e2 := other.window()
	return !(e1 <= s2 || e2 <= s1)
}

// window returns the slot as start/end minute offsets where a wrapped end
// is ordered after its own start.
func (ts Timeslot) window() (int, int) {
	start := int(ts.Start)
	end := int(ts.End)
	if end <= start {
		end += minutesPerDay
	}
	return start, end
}

// mustAtoi converts a digits-only submatch. The pattern guarantees the
// input is numeric.
func mustAtoi(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("timeslot: non-numeric submatch %q", value))
	}
	return n
}
