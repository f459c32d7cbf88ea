// Package task handles care task files and their frontmatter.
package task

import (
	"time"

	"github.com/pawpal-dev/pawpal/internal/daytime"
)

// Task represents one candidate care activity parsed from a markdown file.
//
// Rigid tasks (Flexible=false) must be placed inside Window; flexible tasks
// are deferred to gap-filling. StartTime, when set, is a caller-suggested or
// already-fixed time; only tasks with a concrete StartTime participate in
// conflict detection.
type Task struct {
	ID              int            `yaml:"id" json:"id"`
	Title           string         `yaml:"title" json:"title"`
	Type            string         `yaml:"type" json:"type"`
	DurationMinutes int            `yaml:"duration_minutes" json:"duration_minutes"`
	Priority        string         `yaml:"priority" json:"priority"`
	Window          daytime.Window `yaml:"window" json:"window"`
	StartTime       *daytime.Clock `yaml:"start_time,omitempty" json:"start_time,omitempty"`
	DependsOn       string         `yaml:"depends_on,omitempty" json:"depends_on,omitempty"`
	Flexible        bool           `yaml:"flexible,omitempty" json:"flexible,omitempty"`
	Completed       bool           `yaml:"completed,omitempty" json:"completed,omitempty"`
	Frequency       string         `yaml:"frequency,omitempty" json:"frequency,omitempty"`
	Created         time.Time      `yaml:"created" json:"created"`
	Updated         time.Time      `yaml:"updated" json:"updated"`

	// Notes is the markdown content below the frontmatter (not in YAML).
	Notes string `yaml:"-" json:"notes,omitempty"`

	// File is the path to the task file (not in YAML).
	File string `yaml:"-" json:"file,omitempty"`
}

// Priority levels in ascending order of importance.
var Priorities = []string{"low", "medium", "high"}

// Frequency values. FrequencyNone (or empty) means a one-off task.
const (
	FrequencyNone   = "none"
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

// Frequencies lists the recognized recurrence values.
var Frequencies = []string{FrequencyNone, FrequencyDaily, FrequencyWeekly}

// End returns the exclusive end minute of the task's fixed interval.
// Only meaningful when StartTime is set.
func (t *Task) End() daytime.Clock {
	if t.StartTime == nil {
		return 0
	}
	return *t.StartTime + daytime.Clock(t.DurationMinutes)
}

// IsRecurring reports whether the task recurs daily or weekly.
func (t *Task) IsRecurring() bool {
	return t.Frequency == FrequencyDaily || t.Frequency == FrequencyWeekly
}
