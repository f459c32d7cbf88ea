// Package output renders CLI results as tables, compact lines, or JSON.
package output

import "os"

// Format selects how command results are rendered.
type Format int

const (
	// FormatAuto defers to the environment, falling back to table.
	FormatAuto Format = iota
	// FormatJSON emits indented JSON for scripts and agents.
	FormatJSON
	// FormatTable emits a human-readable aligned table.
	FormatTable
	// FormatCompact emits one line per record.
	FormatCompact
)

// envVar overrides the default format when no flag is set.
const envVar = "PAWPAL_OUTPUT"

// Detect resolves the output format from the explicit flags, then the
// PAWPAL_OUTPUT environment variable, then the table default.
func Detect(jsonFlag, tableFlag, compactFlag bool) Format {
	switch {
	case jsonFlag:
		return FormatJSON
	case compactFlag:
		return FormatCompact
	case tableFlag:
		return FormatTable
	}

	switch os.Getenv(envVar) {
	case "json":
		return FormatJSON
	case "compact", "oneline":
		return FormatCompact
	}
	return FormatTable
}
