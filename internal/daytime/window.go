package daytime

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Window is a half-open [Start, End) interval within a single day.
type Window struct {
	Start Clock
	End   Clock
}

// FullDay covers the entire planning day.
var FullDay = Window{Start: 0, End: MinutesPerDay}

// NewWindow creates a Window from start and end minute offsets.
func NewWindow(start, end Clock) Window {
	return Window{Start: start, End: end}
}

// ParseWindow parses a Window from "HH:MM-HH:MM" (or raw minute pairs).
func ParseWindow(s string) (Window, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Window{}, fmt.Errorf("invalid window %q: expected HH:MM-HH:MM", s)
	}
	start, err := Parse(from)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := Parse(to)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window end: %w", err)
	}
	w := Window{Start: start, End: end}
	if !w.Valid() {
		return Window{}, fmt.Errorf("invalid window %q: start must be before end", s)
	}
	return w, nil
}

// Valid reports whether the window lies within the day and has positive length.
func (w Window) Valid() bool {
	return w.Start >= 0 && w.End <= MinutesPerDay && w.Start < w.End
}

// IsZero reports whether the window is the zero value.
func (w Window) IsZero() bool {
	return w.Start == 0 && w.End == 0
}

// Duration returns the window length in minutes.
func (w Window) Duration() int {
	return int(w.End - w.Start)
}

// Contains reports whether an interval of the given duration starting at
// start lies entirely inside the window.
func (w Window) Contains(start Clock, durationMinutes int) bool {
	return start >= w.Start && int(start)+durationMinutes <= int(w.End)
}

// Intersect returns the overlap of two windows and whether it is non-empty.
func (w Window) Intersect(o Window) (Window, bool) {
	start := max(w.Start, o.Start)
	end := min(w.End, o.End)
	if start >= end {
		return Window{}, false
	}
	return Window{Start: start, End: end}, true
}

// String returns the window as "HH:MM-HH:MM".
func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// MarshalYAML implements yaml.Marshaler.
func (w Window) MarshalYAML() (interface{}, error) {
	return w.String(), nil
}

// UnmarshalYAML implements yaml.v3 Unmarshaler.
func (w *Window) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseWindow(value.Value)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (w Window) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (w *Window) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseWindow(s)
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
