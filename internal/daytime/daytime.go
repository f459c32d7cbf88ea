// Package daytime provides minute-of-day time types that marshal as HH:MM.
package daytime

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"
)

// MinutesPerDay is the number of minutes in a planning day.
const MinutesPerDay = 1440

// Clock is a minute offset from midnight (0..1440).
// 1440 ("24:00") is valid only as a window end.
type Clock int

// New creates a Clock from an hour and minute.
func New(hour, minute int) Clock {
	return Clock(hour*60 + minute)
}

// Parse parses a Clock from either an "HH:MM" string or a raw minute count.
func Parse(s string) (Clock, error) {
	text := strings.TrimSpace(s)
	if h, m, ok := strings.Cut(text, ":"); ok {
		hours, err1 := strconv.Atoi(h)
		mins, err2 := strconv.Atoi(m)
		if err1 != nil || err2 != nil || hours < 0 || mins < 0 || mins > 59 {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
		}
		c := New(hours, mins)
		if c > MinutesPerDay {
			return 0, fmt.Errorf("invalid time %q: past end of day", s)
		}
		return c, nil
	}
	mins, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM or minutes", s)
	}
	if mins < 0 || mins > MinutesPerDay {
		return 0, fmt.Errorf("invalid time %q: minutes must be in 0..%d", s, MinutesPerDay)
	}
	return Clock(mins), nil
}

// Minutes returns the clock value as an int minute offset.
func (c Clock) Minutes() int { return int(c) }

// String returns the clock as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// MarshalYAML implements yaml.Marshaler.
func (c Clock) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler. Accepts both "HH:MM"
// strings and raw minute integers for compatibility with hand-edited files.
func (c *Clock) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (c Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var n int
		if errInt := json.Unmarshal(data, &n); errInt != nil {
			return err
		}
		s = strconv.Itoa(n)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
