package schedule

import (
	"fmt"
	"sort"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// gap is one idle interval of the planned day, in chronological order.
type gap struct {
	start, end daytime.Clock
}

func (g gap) length() int {
	return int(g.end - g.start)
}

// idleGaps computes the idle intervals of a day: before the first scheduled
// item, between consecutive items (past the trailing break of the earlier
// one), and after the last item. Gaps shorter than minGapMinutes are
// discarded. The scheduled slice may be in any order.
func idleGaps(scheduled []PlanItem, availability daytime.Window, breakMinutes, minGapMinutes int) []gap {
	if len(scheduled) == 0 {
		g := gap{start: availability.Start, end: availability.End}
		if g.length() >= minGapMinutes {
			return []gap{g}
		}
		return nil
	}

	items := make([]PlanItem, len(scheduled))
	copy(items, scheduled)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScheduledTime < items[j].ScheduledTime
	})

	var gaps []gap
	appendGap := func(start, end daytime.Clock) {
		g := gap{start: start, end: end}
		if g.length() >= minGapMinutes {
			gaps = append(gaps, g)
		}
	}

	appendGap(availability.Start, items[0].ScheduledTime)
	for i := 0; i < len(items)-1; i++ {
		appendGap(items[i].End()+daytime.Clock(breakMinutes), items[i+1].ScheduledTime)
	}
	appendGap(items[len(items)-1].End()+daytime.Clock(breakMinutes), availability.End)
	return gaps
}

// fillGaps places flexible tasks into the day's idle gaps, first fit in
// chronological order. A task fits a gap when its duration fits the gap
// length and its own window contains the whole candidate interval, which
// always begins at the gap start. At most one task is placed per gap, and a
// placed task is out of the running for later gaps.
//
// The returned placements cover only the tasks that found a gap; leftovers
// stay in the flexible slice untouched.
func fillGaps(scheduled []PlanItem, flexible []task.Task, availability daytime.Window, breakMinutes, minGapMinutes int) ([]PlanItem, []task.Task) {
	remaining := make([]task.Task, len(flexible))
	copy(remaining, flexible)

	var placed []PlanItem
	for _, g := range idleGaps(scheduled, availability, breakMinutes, minGapMinutes) {
		for i, t := range remaining {
			if t.DurationMinutes > g.length() {
				continue
			}
			if !t.Window.Contains(g.start, t.DurationMinutes) {
				continue
			}
			placed = append(placed, PlanItem{
				Task:            t,
				ScheduledTime:   g.start,
				DurationMinutes: t.DurationMinutes,
				Outcome:         OutcomeGapFilled,
				Reason:          fmt.Sprintf("fits the %s-%s gap", g.start, g.end),
			})
			remaining = append(remaining[:i], remaining[i+1:]...)
			break
		}
	}
	return placed, remaining
}
