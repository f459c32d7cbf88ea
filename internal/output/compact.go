package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pawpal-dev/pawpal/internal/schedule"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// TaskDetailCompact renders a single task with detail in compact format.
func TaskDetailCompact(w io.Writer, t *task.Task) {
	line := formatTaskLine(t)
	if t.DependsOn != "" {
		line += " after:" + t.DependsOn
	}
	fmt.Fprintln(w, line)

	// Timestamps line.
	ts := "  created:" + t.Created.Format("2006-01-02") +
		" updated:" + t.Updated.Format("2006-01-02")
	fmt.Fprintln(w, ts)

	if t.Notes != "" {
		for _, noteLine := range strings.Split(t.Notes, "\n") {
			fmt.Fprintln(w, "  "+noteLine)
		}
	}
}

// PlanCompact renders a generated day plan in compact format.
func PlanCompact(w io.Writer, plan schedule.Plan) {
	if len(plan) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to plan.")
		return
	}

	for _, item := range plan {
		line := "-- "
		if item.IsScheduled() {
			line = item.ScheduledTime.String() + "-" + item.End().String() + " "
		}
		line += item.Task.Title + " [" + string(item.Outcome) + "]"
		if item.Reason != "" {
			line += " " + item.Reason
		}
		fmt.Fprintln(w, line)
	}
}

// ConflictCompact renders conflict reports, one per line without styling.
func ConflictCompact(w io.Writer, conflicts []schedule.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No conflicts found.")
		return
	}
	for _, c := range conflicts {
		fmt.Fprintln(w, c.String())
	}
}

// GroupedCompact renders a grouped task view in compact format.
func GroupedCompact(w io.Writer, gs task.GroupedSummary) {
	for _, g := range gs.Groups {
		line := g.Key + ": " + strconv.Itoa(g.Total)
		var annotations []string
		if g.Completed > 0 {
			annotations = append(annotations, strconv.Itoa(g.Completed)+" done")
		}
		if g.Flexible > 0 {
			annotations = append(annotations, strconv.Itoa(g.Flexible)+" flexible")
		}
		if len(annotations) > 0 {
			line += " (" + strings.Join(annotations, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// formatTaskLine builds the one-line representation of a task.
func formatTaskLine(t *task.Task) string {
	line := "#" + strconv.Itoa(t.ID) + " [" + t.Priority + "/" + t.Type + "] " + t.Title

	line += " " + t.Window.String()
	if t.StartTime != nil {
		line += " @" + t.StartTime.String()
	}
	line += " " + strconv.Itoa(t.DurationMinutes) + "m"
	if t.Flexible {
		line += " flex"
	}
	if t.Completed {
		line += " done"
	}

	return line
}
