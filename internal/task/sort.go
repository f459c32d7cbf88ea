package task

import (
	"sort"

	"github.com/pawpal-dev/pawpal/internal/config"
)

// Sort sorts tasks by the given field. For priority, the profile's
// configured order is used (not alphabetical).
func Sort(tasks []*Task, field string, reverse bool, cfg *config.Config) {
	sort.SliceStable(tasks, func(i, j int) bool {
		less := compareTasks(tasks[i], tasks[j], field, cfg)
		if reverse {
			return !less
		}
		return less
	})
}

func compareTasks(a, b *Task, field string, cfg *config.Config) bool {
	switch field {
	case "id":
		return a.ID < b.ID
	case "title":
		return a.Title < b.Title
	case "priority":
		// Higher priority first under the default (non-reversed) order.
		return cfg.PriorityIndex(a.Priority) > cfg.PriorityIndex(b.Priority)
	case "duration":
		return a.DurationMinutes < b.DurationMinutes
	case "start":
		return compareStart(a, b)
	case "created":
		return a.Created.Before(b.Created)
	default:
		return a.ID < b.ID
	}
}

func compareStart(a, b *Task) bool {
	if a.StartTime == nil && b.StartTime == nil {
		return false
	}
	if a.StartTime == nil {
		return false // nil sorts last
	}
	if b.StartTime == nil {
		return true
	}
	return *a.StartTime < *b.StartTime
}

// ValidSortFields returns the list of valid --sort field names.
func ValidSortFields() []string {
	return []string{"id", "title", "priority", "duration", "start", "created"}
}
