package task

import (
	"time"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/daytime"
)

// MarkComplete marks the task completed and stamps Updated.
// Completing an already-completed task is a no-op.
func (t *Task) MarkComplete(now time.Time) {
	if t.Completed {
		return
	}
	t.Completed = true
	t.Updated = now
}

// Reschedule fixes the task at a new start time. The time must lie in
// [0, 1440) and the resulting interval must stay inside the task's window.
func (t *Task) Reschedule(start daytime.Clock, now time.Time) error {
	if start < 0 || start >= daytime.MinutesPerDay {
		return clierr.Newf(clierr.InvalidTime, "start time %d out of range [0, %d)", int(start), daytime.MinutesPerDay)
	}
	if !t.Window.Contains(start, t.DurationMinutes) {
		return clierr.Newf(clierr.InvalidTime,
			"start %s puts the task outside its window %s", start, t.Window).
			WithDetails(map[string]any{
				"start_time": start.String(),
				"window":     t.Window.String(),
			})
	}
	t.StartTime = &start
	t.Updated = now
	return nil
}

// NextOccurrence clones a completed recurring task into a fresh successor:
// same activity and constraints, completed=false, a new ID, fresh timestamps.
// Returns nil if the task is not completed or not recurring.
func NextOccurrence(t *Task, id int, now time.Time) *Task {
	if !t.Completed || !t.IsRecurring() {
		return nil
	}
	next := *t
	next.ID = id
	next.Completed = false
	next.Created = now
	next.Updated = now
	next.File = ""
	if t.StartTime != nil {
		st := *t.StartTime
		next.StartTime = &st
	}
	return &next
}
