package schedule

import (
	"fmt"
	"sort"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// Conflict reports a temporal overlap between two fixed-time tasks. The
// earlier-starting task is always TitleA; ties break on task ID so the same
// input set yields the same report regardless of input order.
type Conflict struct {
	TitleA         string        `json:"title_a"`
	TitleB         string        `json:"title_b"`
	StartA         daytime.Clock `json:"start_a"`
	EndA           daytime.Clock `json:"end_a"`
	StartB         daytime.Clock `json:"start_b"`
	EndB           daytime.Clock `json:"end_b"`
	OverlapMinutes int           `json:"overlap_minutes"`
}

// String renders the conflict with both time ranges and the overlap size.
func (c Conflict) String() string {
	return fmt.Sprintf("%q (%s-%s) overlaps %q (%s-%s) by %d minutes",
		c.TitleA, c.StartA, c.EndA, c.TitleB, c.StartB, c.EndB, c.OverlapMinutes)
}

// DetectConflicts finds every pairwise overlap among tasks that carry a
// concrete start time. Tasks without a start time cannot conflict and are
// ignored. The result lists each conflicting pair exactly once.
func DetectConflicts(tasks []*task.Task) []Conflict {
	var fixed []*task.Task
	for _, t := range tasks {
		if t.StartTime != nil {
			fixed = append(fixed, t)
		}
	}

	sort.SliceStable(fixed, func(i, j int) bool {
		if *fixed[i].StartTime != *fixed[j].StartTime {
			return *fixed[i].StartTime < *fixed[j].StartTime
		}
		return fixed[i].ID < fixed[j].ID
	})

	var conflicts []Conflict
	for i, a := range fixed {
		for j := i + 1; j < len(fixed); j++ {
			b := fixed[j]
			if *b.StartTime >= a.End() {
				break
			}
			overlap := min(a.End(), b.End()) - *b.StartTime
			conflicts = append(conflicts, Conflict{
				TitleA:         a.Title,
				TitleB:         b.Title,
				StartA:         *a.StartTime,
				EndA:           a.End(),
				StartB:         *b.StartTime,
				EndB:           b.End(),
				OverlapMinutes: overlap.Minutes(),
			})
		}
	}
	return conflicts
}
