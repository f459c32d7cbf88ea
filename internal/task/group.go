package task

import (
	"sort"

	"github.com/pawpal-dev/pawpal/internal/config"
)

// GroupedSummary holds tasks grouped by a field.
type GroupedSummary struct {
	Groups []GroupSummary `json:"groups"`
}

// GroupSummary is one group within a grouped view.
type GroupSummary struct {
	Key       string `json:"key"`
	Total     int    `json:"total"`
	Completed int    `json:"completed"`
	Flexible  int    `json:"flexible"`
}

// GroupBy groups tasks by the specified field and returns summaries per group.
func GroupBy(tasks []*Task, field string, cfg *config.Config) GroupedSummary {
	groups := make(map[string][]*Task)

	for _, t := range tasks {
		key := groupKey(t, field)
		groups[key] = append(groups[key], t)
	}

	sortedKeys := sortGroupKeys(groups, field, cfg)

	result := GroupedSummary{
		Groups: make([]GroupSummary, 0, len(sortedKeys)),
	}
	for _, key := range sortedKeys {
		groupTasks := groups[key]
		g := GroupSummary{Key: key, Total: len(groupTasks)}
		for _, t := range groupTasks {
			if t.Completed {
				g.Completed++
			}
			if t.Flexible {
				g.Flexible++
			}
		}
		result.Groups = append(result.Groups, g)
	}
	return result
}

func groupKey(t *Task, field string) string {
	switch field {
	case "priority":
		return t.Priority
	case "type":
		if t.Type == "" {
			return "(untyped)"
		}
		return t.Type
	case "frequency":
		if t.Frequency == "" {
			return FrequencyNone
		}
		return t.Frequency
	default:
		return "(all)"
	}
}

func sortGroupKeys(groups map[string][]*Task, field string, cfg *config.Config) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	switch field {
	case "priority":
		sort.SliceStable(keys, func(i, j int) bool {
			return cfg.PriorityIndex(keys[i]) > cfg.PriorityIndex(keys[j])
		})
	case "frequency":
		sort.SliceStable(keys, func(i, j int) bool {
			return config.IndexOf(Frequencies, keys[i]) < config.IndexOf(Frequencies, keys[j])
		})
	default:
		sort.Strings(keys)
	}
	return keys
}

// ValidGroupByFields returns the list of valid --group-by field names.
func ValidGroupByFields() []string {
	return []string{"priority", "type", "frequency"}
}
