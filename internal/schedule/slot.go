package schedule

import "github.com/pawpal-dev/pawpal/internal/daytime"

// span is one occupied interval [start, end) on the day's timeline. The end
// already includes the post-task break, so back-to-back placements keep
// their breathing room.
type span struct {
	start, end daytime.Clock
}

func (s span) overlaps(start, end daytime.Clock) bool {
	return start < s.end && s.start < end
}

// slotFinder searches for the earliest free start for a task. It probes the
// earliest permitted start first and then walks forward in fixed steps,
// giving up once the search depth is exhausted or a candidate would run past
// the latest permitted end.
type slotFinder struct {
	stepMinutes   int
	searchMinutes int
}

// find returns the earliest start at which a task of the given duration fits
// between earliest and latestEnd without touching an occupied span. The
// boolean is false when no probe produced a fit.
func (f slotFinder) find(durationMinutes int, earliest, latestEnd daytime.Clock, occupied []span) (daytime.Clock, bool) {
	for offset := 0; offset <= f.searchMinutes; offset += f.stepMinutes {
		start := earliest + daytime.Clock(offset)
		end := start + daytime.Clock(durationMinutes)
		if end > latestEnd {
			return 0, false
		}
		if !overlapsAny(start, end, occupied) {
			return start, true
		}
	}
	return 0, false
}

func overlapsAny(start, end daytime.Clock, occupied []span) bool {
	for _, s := range occupied {
		if s.overlaps(start, end) {
			return true
		}
	}
	return false
}
