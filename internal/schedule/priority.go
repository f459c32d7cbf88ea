package schedule

import (
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// urgencyHorizonMinutes is how close a task's window end must be before the
// planner adds an urgency boost on top of the base priority.
const urgencyHorizonMinutes = 120

var priorityBase = map[string]float64{
	"low":    1.0,
	"medium": 2.0,
	"high":   3.0,
}

// Score computes the ranking score of a task at a given reference minute.
// The base score follows the task's priority; an urgency boost is added when
// the task's window closes between 1 and 119 minutes from now. A window that
// closes exactly now (or has already closed) gets no boost, and neither does
// a far-off deadline. Unknown priorities score as low.
func Score(t *task.Task, now daytime.Clock) float64 {
	score, ok := priorityBase[t.Priority]
	if !ok {
		score = priorityBase["low"]
	}

	toDeadline := int(t.Window.End - now)
	if toDeadline >= 1 && toDeadline < urgencyHorizonMinutes {
		score += 1.0 - float64(toDeadline)/float64(urgencyHorizonMinutes)
	}
	return score
}
