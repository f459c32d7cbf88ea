package task

import "strings"

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Priorities []string
	Types      []string
	Flexible   *bool  // nil=no filter, true=only flexible, false=only rigid
	Completed  *bool  // nil=no filter
	Search     string // case-insensitive substring match across title, notes, and type
}

// Filter returns tasks matching all specified criteria (AND logic).
func Filter(tasks []*Task, opts FilterOptions) []*Task {
	var result []*Task
	for _, t := range tasks {
		if matchesFilter(t, opts) {
			result = append(result, t)
		}
	}
	return result
}

func matchesFilter(t *Task, opts FilterOptions) bool {
	if len(opts.Priorities) > 0 && !containsStr(opts.Priorities, t.Priority) {
		return false
	}
	if len(opts.Types) > 0 && !containsStr(opts.Types, t.Type) {
		return false
	}
	if opts.Flexible != nil && t.Flexible != *opts.Flexible {
		return false
	}
	if opts.Completed != nil && t.Completed != *opts.Completed {
		return false
	}
	if opts.Search != "" && !matchesSearch(t, opts.Search) {
		return false
	}
	return true
}

// matchesSearch performs case-insensitive substring matching across title, notes, and type.
func matchesSearch(t *Task, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Notes), q) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Type), q)
}

func containsStr(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
