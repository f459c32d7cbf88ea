// Package schedule implements the daily care planning engine: it turns an
// unordered task list plus caregiver constraints into a time-ordered plan,
// detects conflicts between fixed-time tasks, and explains its decisions.
package schedule

import (
	"encoding/json"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// Unscheduled is the sentinel scheduled-time for items without a placement.
// It is distinct from minute 0, which is a real midnight placement.
const Unscheduled daytime.Clock = -1

// Outcome is the terminal state a task reaches during one planning pass.
// Each task lands in exactly one outcome per pass; there are no retries.
type Outcome string

// Planning outcomes.
const (
	OutcomeScheduled        Outcome = "scheduled"
	OutcomeGapFilled        Outcome = "gap-filled"
	OutcomeBlocked          Outcome = "blocked-by-dependency"
	OutcomeWindowInfeasible Outcome = "window-infeasible"
	OutcomeNoSlot           Outcome = "no-slot-found"
)

// PlanItem pairs a task snapshot with one scheduling decision. The embedded
// task is a copy taken at decision time; later edits to the source task do
// not reach into an already-produced plan. Items are never mutated after
// creation.
type PlanItem struct {
	Task            task.Task
	ScheduledTime   daytime.Clock // Unscheduled when no placement was found
	DurationMinutes int
	Outcome         Outcome
	Reason          string
}

// IsScheduled reports whether the item carries a concrete placement.
func (p PlanItem) IsScheduled() bool {
	return p.ScheduledTime >= 0
}

// End returns the exclusive end minute of the placed interval.
// Only meaningful for scheduled items.
func (p PlanItem) End() daytime.Clock {
	return p.ScheduledTime + daytime.Clock(p.DurationMinutes)
}

// MarshalJSON implements json.Marshaler. The sentinel time is emitted as
// null rather than a bogus clock value.
func (p PlanItem) MarshalJSON() ([]byte, error) {
	var scheduled *daytime.Clock
	if p.IsScheduled() {
		scheduled = &p.ScheduledTime
	}
	return json.Marshal(struct {
		Task            task.Task      `json:"task"`
		ScheduledTime   *daytime.Clock `json:"scheduled_time"`
		DurationMinutes int            `json:"duration_minutes"`
		Outcome         Outcome        `json:"outcome"`
		Reason          string         `json:"reason"`
	}{p.Task, scheduled, p.DurationMinutes, p.Outcome, p.Reason})
}

// Plan is the ordered result of one planning pass: scheduled items in
// ascending time order, followed by unscheduled items.
type Plan []PlanItem

// Scheduled returns the items that received a placement.
func (p Plan) Scheduled() []PlanItem {
	var result []PlanItem
	for _, item := range p {
		if item.IsScheduled() {
			result = append(result, item)
		}
	}
	return result
}

// Unscheduled returns the items that did not receive a placement.
func (p Plan) Unscheduled() []PlanItem {
	var result []PlanItem
	for _, item := range p {
		if !item.IsScheduled() {
			result = append(result, item)
		}
	}
	return result
}
