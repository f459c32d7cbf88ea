package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawpal-dev/pawpal/internal/schedule"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Priority colors aligned with the TUI timeline palette.
	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}

	// Outcome colors matching the TUI agenda palette.
	outcomeStyles = map[string]lipgloss.Style{
		string(schedule.OutcomeScheduled):        lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		string(schedule.OutcomeGapFilled):        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		string(schedule.OutcomeBlocked):          lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		string(schedule.OutcomeWindowInfeasible): lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		string(schedule.OutcomeNoSlot):           lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	typeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	doneStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	priorityStyles = map[string]lipgloss.Style{}
	outcomeStyles = map[string]lipgloss.Style{}
	typeStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	warnStyle = lipgloss.NewStyle()
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	// Calculate column widths.
	const pad = 2
	idW, prioW, typeW, titleW, windowW, startW := 4, 10, 6, 7, 13, 7
	for _, t := range tasks {
		idW = max(idW, len(strconv.Itoa(t.ID))+pad)
		prioW = max(prioW, len(t.Priority)+pad)
		typeW = max(typeW, len(t.Type)+pad)
		titleW = max(titleW, min(len(t.Title)+pad, 50)) //nolint:mnd // max title column width
	}

	// Print header.
	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %-*s %-5s %-6s",
		idW, "ID", prioW, "PRIORITY", typeW, "TYPE",
		titleW, "TITLE", windowW, "WINDOW", startW, "START", "DUR", "STATUS")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	// Print rows.
	for _, t := range tasks {
		title := t.Title
		const maxTitle = 48
		if len(title) > maxTitle {
			title = title[:maxTitle-3] + "..."
		}
		start := "--"
		if t.StartTime != nil {
			start = t.StartTime.String()
		} else {
			start = dimStyle.Render(start)
		}
		status := "open"
		if t.Completed {
			status = doneStyle.Render("done")
		} else if t.Flexible {
			status = typeStyle.Render("flex")
		}

		row := fmt.Sprintf("%-*d %s %s %s %-*s %s %-5d %s",
			idW, t.ID,
			padRight(styledValue(t.Priority, priorityStyles), prioW),
			padRight(typeStyle.Render(t.Type), typeW),
			padRight(title, titleW),
			windowW, t.Window.String(),
			padRight(start, startW),
			t.DurationMinutes,
			status)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single task with full detail. Notes are rendered as
// markdown when a terminal style is available.
func TaskDetail(w io.Writer, t *task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.ID, t.Title)
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	printField(w, "Priority", styledValue(t.Priority, priorityStyles))
	printField(w, "Type", typeStyle.Render(t.Type))
	printField(w, "Window", t.Window.String())
	if t.StartTime != nil {
		printField(w, "Start", t.StartTime.String())
	} else {
		printField(w, "Start", dimStyle.Render("--"))
	}
	printField(w, "Duration", strconv.Itoa(t.DurationMinutes)+" min")
	if t.DependsOn != "" {
		printField(w, "Depends on", t.DependsOn)
	}
	if t.Flexible {
		printField(w, "Flexible", "yes")
	}
	if t.IsRecurring() {
		printField(w, "Frequency", t.Frequency)
	}
	if t.Completed {
		printField(w, "Completed", doneStyle.Render("yes"))
	}
	printField(w, "Created", t.Created.Format("2006-01-02 15:04"))
	printField(w, "Updated", t.Updated.Format("2006-01-02 15:04"))

	if t.Notes != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, renderNotes(t.Notes))
	}
}

// renderNotes renders markdown notes for the terminal, falling back to the
// raw text when the renderer is unavailable.
func renderNotes(notes string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80), //nolint:mnd // detail view wrap width
	)
	if err != nil {
		return notes
	}
	out, err := r.Render(notes)
	if err != nil {
		return notes
	}
	return out
}

// PlanTable renders a generated day plan as a formatted table.
func PlanTable(w io.Writer, plan schedule.Plan) {
	if len(plan) == 0 {
		fmt.Fprintln(os.Stderr, "Nothing to plan.")
		return
	}

	const pad = 2
	timeW, titleW, typeW := 13, 7, 6
	for _, item := range plan {
		titleW = max(titleW, min(len(item.Task.Title)+pad, 50)) //nolint:mnd // max title column width
		typeW = max(typeW, len(item.Task.Type)+pad)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %-5s %-20s %s",
		timeW, "TIME", titleW, "TITLE", typeW, "TYPE", "DUR", "OUTCOME", "REASON")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, item := range plan {
		timeRange := dimStyle.Render("--")
		if item.IsScheduled() {
			timeRange = item.ScheduledTime.String() + "-" + item.End().String()
		}

		row := fmt.Sprintf("%s %-*s %s %-5d %s %s",
			padRight(timeRange, timeW),
			titleW, item.Task.Title,
			padRight(typeStyle.Render(item.Task.Type), typeW),
			item.DurationMinutes,
			padRight(styledValue(string(item.Outcome), outcomeStyles), 20), //nolint:mnd // outcome column width
			item.Reason)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// ConflictTable renders conflict reports, one per line.
func ConflictTable(w io.Writer, conflicts []schedule.Conflict) {
	if len(conflicts) == 0 {
		fmt.Fprintln(w, "No conflicts found.")
		return
	}

	fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("%d conflict(s) found:", len(conflicts))))
	for _, c := range conflicts {
		fmt.Fprintln(w, "  "+c.String())
	}
}

// GroupedTable renders a grouped task view with per-group counts.
func GroupedTable(w io.Writer, gs task.GroupedSummary) {
	if len(gs.Groups) == 0 {
		fmt.Fprintln(os.Stderr, "No groups found.")
		return
	}

	for i, g := range gs.Groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		title := fmt.Sprintf("%s (%d tasks)", g.Key, g.Total)
		fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(title))
		if g.Completed > 0 {
			fmt.Fprintf(w, "  %s %d\n", padRight(doneStyle.Render("done"), 10), g.Completed) //nolint:mnd // label width
		}
		if g.Flexible > 0 {
			fmt.Fprintf(w, "  %s %d\n", padRight(typeStyle.Render("flexible"), 10), g.Flexible) //nolint:mnd // label width
		}
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}
