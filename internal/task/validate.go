package task

import (
	"strings"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/daytime"
)

// Duration bounds in minutes. A task must fit inside one day.
const (
	MinDurationMinutes = 1
	MaxDurationMinutes = daytime.MinutesPerDay
)

// Valid reports whether the task satisfies every field invariant. This is the
// admission gate: the planner never accepts a task for which Valid is false.
func (t *Task) Valid() bool {
	return t.Validate() == nil
}

// Validate checks every field invariant and returns a structured error for
// the first violation found, or nil. Pure; never mutates the task.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return clierr.New(clierr.InvalidInput, "task title is required")
	}
	if t.DurationMinutes < MinDurationMinutes || t.DurationMinutes > MaxDurationMinutes {
		return clierr.Newf(clierr.InvalidDuration,
			"duration %d out of range [%d, %d]", t.DurationMinutes, MinDurationMinutes, MaxDurationMinutes).
			WithDetails(map[string]any{"duration_minutes": t.DurationMinutes})
	}
	if err := ValidatePriority(t.Priority, Priorities); err != nil {
		return err
	}
	if !t.Window.Valid() {
		return clierr.Newf(clierr.InvalidWindow, "window %q: start must be before end", t.Window.String()).
			WithDetails(map[string]any{"window": t.Window.String()})
	}
	if t.StartTime != nil {
		st := *t.StartTime
		if st < 0 || st >= daytime.MinutesPerDay {
			return clierr.Newf(clierr.InvalidTime, "start time %d out of range [0, %d)", int(st), daytime.MinutesPerDay).
				WithDetails(map[string]any{"start_time": int(st)})
		}
	}
	if err := ValidateFrequency(t.Frequency); err != nil {
		return err
	}
	if t.DependsOn != "" && t.DependsOn == t.Title {
		return clierr.Newf(clierr.SelfReference, "task %q cannot depend on itself", t.Title).
			WithDetails(map[string]any{"title": t.Title})
	}
	return nil
}

// ValidatePriority checks that a priority is in the allowed list.
func ValidatePriority(priority string, allowed []string) error {
	for _, p := range allowed {
		if p == priority {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidPriority, "invalid priority %q", priority).
		WithDetails(map[string]any{
			"priority": priority,
			"allowed":  allowed,
		})
}

// ValidateFrequency checks that a frequency is empty or in the allowed list.
func ValidateFrequency(frequency string) error {
	if frequency == "" {
		return nil
	}
	for _, f := range Frequencies {
		if f == frequency {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidFrequency, "invalid frequency %q", frequency).
		WithDetails(map[string]any{
			"frequency": frequency,
			"allowed":   Frequencies,
		})
}

// ValidateTaskID returns a structured error for invalid task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}

// ValidateDependencyTitle checks that a dependency title refers to an
// existing task and is not the task's own title.
func ValidateDependencyTitle(tasks []*Task, selfTitle, dep string) error {
	if dep == "" {
		return nil
	}
	if dep == selfTitle {
		return clierr.Newf(clierr.SelfReference, "task %q cannot depend on itself", selfTitle).
			WithDetails(map[string]any{"title": selfTitle})
	}
	for _, t := range tasks {
		if t.Title == dep {
			return nil
		}
	}
	return clierr.Newf(clierr.DependencyNotFound, "dependency task %q not found", dep).
		WithDetails(map[string]any{"depends_on": dep})
}
