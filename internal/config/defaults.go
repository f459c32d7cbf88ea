// Package config handles the pet care profile configuration.
package config

import "github.com/pawpal-dev/pawpal/internal/daytime"

const (
	// DefaultDir is the default profile directory name.
	DefaultDir = "pawpal"
	// DefaultTasksDir is the default tasks subdirectory name.
	DefaultTasksDir = "tasks"
	// DefaultPriority is the default priority for new tasks.
	DefaultPriority = "medium"
	// DefaultType is the default category for new tasks.
	DefaultType = "other"

	// ConfigFileName is the name of the profile file within the profile directory.
	ConfigFileName = "profile.yml"

	// CurrentVersion is the current profile schema version.
	CurrentVersion = 1

	// DefaultBreakMinutes is the rest padding appended after each placed task.
	DefaultBreakMinutes = 5
	// DefaultSlotStepMinutes is the probe increment of the slot search.
	DefaultSlotStepMinutes = 15
	// DefaultSlotSearchMinutes caps how far past the earliest start the slot
	// search probes before giving up.
	DefaultSlotSearchMinutes = 120
	// DefaultMinGapMinutes is the smallest idle interval considered for
	// gap-filling flexible tasks.
	DefaultMinGapMinutes = 15
)

// Default slice and struct values for a new profile (cannot be const).
var (
	DefaultPriorities = []string{
		"low",
		"medium",
		"high",
	}

	DefaultFrequencies = []string{
		"none",
		"daily",
		"weekly",
	}

	DefaultTaskTypes = []string{
		"walk",
		"feed",
		"groom",
		"play",
		"other",
	}

	// DefaultAvailability is 08:00-22:00, matching a typical waking day.
	DefaultAvailability = daytime.NewWindow(daytime.New(8, 0), daytime.New(22, 0))
)
