package persistence

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Capacity holds a room capacity exactly as it appeared in the source
// document. Legacy documents store capacities both as JSON numbers and as
// numeric strings; comparisons always go through Int, which fails closed
// on anything that is not a non-negative integer.
type Capacity struct {
	raw    string
	quoted bool
}

// NewCapacity returns the capacity for a normalized integer value.
func NewCapacity(n int) Capacity {
	return Capacity{raw: strconv.Itoa(n)}
}

// CapacityFromString wraps a raw stored value without validating it.
// Validation happens at comparison time via Int.
func CapacityFromString(raw string) Capacity {
	_, err := strconv.Atoi(strings.TrimSpace(raw))
	return Capacity{raw: raw, quoted: err != nil}
}

// Int returns the capacity as a non-negative integer, or ErrInvalidCapacity
// when the stored value cannot be interpreted as one.
func (c Capacity) Int() (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(c.raw))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCapacity, c.raw)
	}
	return n, nil
}

// String returns the raw stored value.
func (c Capacity) String() string {
	return c.raw
}

// UnmarshalJSON accepts both a JSON number and a JSON string.
func (c *Capacity) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		c.raw = text
		c.quoted = true
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		c.raw = number.String()
		c.quoted = false
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidCapacity, string(data))
}

// MarshalJSON re-emits the value in the shape it arrived: quoted values
// stay strings, numeric values stay JSON numbers.
func (c Capacity) MarshalJSON() ([]byte, error) {
	if c.quoted {
		return json.Marshal(c.raw)
	}
	trimmed := strings.TrimSpace(c.raw)
	if _, err := strconv.Atoi(trimmed); err == nil {
		return []byte(trimmed), nil
	}
	return json.Marshal(c.raw)
}
