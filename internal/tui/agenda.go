// Package tui implements a terminal UI for the day's care agenda.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pawpal-dev/pawpal/internal/activity"
	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/schedule"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// view represents the current screen state.
type view int

const (
	viewAgenda view = iota
	viewConfirmComplete
)

// Key and layout constants.
const (
	keyEsc = "esc"

	agendaChrome = 2                // blank line + status bar below the item area
	errorChrome  = 1                // extra line when error toast is displayed
	tickInterval = 30 * time.Second // how often the now marker refreshes
)

// Agenda is the top-level bubbletea model. It shows the generated plan for
// the day: scheduled items as a timeline, unscheduled items below, with the
// current time highlighted.
type Agenda struct {
	cfg       *config.Config
	plan      schedule.Plan
	conflicts []schedule.Conflict
	selected  int
	view      view
	width     int
	height    int
	scrollOff int
	err       error
	now       func() time.Time // clock for the now marker; defaults to time.Now

	// Complete confirmation.
	completeID    int
	completeTitle string
}

// New creates a new Agenda model from a config.
func New(cfg *config.Config) *Agenda {
	a := &Agenda{cfg: cfg, now: time.Now}
	a.loadPlan()
	return a
}

// SetNow overrides the clock function used for the now marker (for testing).
func (a *Agenda) SetNow(fn func() time.Time) {
	a.now = fn
}

// Init implements tea.Model.
func (a *Agenda) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (a *Agenda) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil
	case ReloadMsg:
		a.loadPlan()
		return a, nil
	case TickMsg:
		return a, tickCmd()
	case errMsg:
		a.err = msg.err
		return a, nil
	}
	return a, nil
}

// View implements tea.Model.
func (a *Agenda) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	if a.view == viewConfirmComplete {
		return a.viewCompleteConfirm()
	}
	return a.viewAgenda()
}

func (a *Agenda) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys.
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return a, tea.Quit
	}

	if a.view == viewConfirmComplete {
		return a.handleCompleteKey(msg)
	}
	return a.handleAgendaKey(msg)
}

func (a *Agenda) handleAgendaKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", keyEsc:
		return a, tea.Quit
	case "j", "down":
		if a.selected < len(a.plan)-1 {
			a.selected++
			a.ensureVisible()
		}
	case "k", "up":
		if a.selected > 0 {
			a.selected--
			a.ensureVisible()
		}
	case "c":
		a.handleCompleteStart()
	case "r":
		a.loadPlan()
	}
	return a, nil
}

func (a *Agenda) handleCompleteStart() {
	if item := a.selectedItem(); item != nil && !item.Task.Completed {
		a.completeID = item.Task.ID
		a.completeTitle = item.Task.Title
		a.view = viewConfirmComplete
	}
}

func (a *Agenda) handleCompleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		return a.executeComplete()
	case "n", "N", keyEsc, "q":
		a.view = viewAgenda
	}
	return a, nil
}

func (a *Agenda) executeComplete() (tea.Model, tea.Cmd) {
	path, err := task.FindByID(a.cfg.TasksPath(), a.completeID)
	if err != nil {
		a.err = fmt.Errorf("finding task #%d: %w", a.completeID, err)
		a.view = viewAgenda
		return a, nil
	}

	t, err := task.Read(path)
	if err != nil {
		a.err = fmt.Errorf("reading task #%d: %w", a.completeID, err)
		a.view = viewAgenda
		return a, nil
	}

	t.MarkComplete(a.now())
	if err := task.Write(path, t); err != nil {
		a.err = fmt.Errorf("completing task #%d: %w", a.completeID, err)
	} else {
		activity.Record(a.cfg.Dir(), "complete", a.completeID, a.completeTitle)
	}

	a.view = viewAgenda
	a.loadPlan()
	return a, nil
}

// loadPlan reads all tasks and regenerates the day plan.
func (a *Agenda) loadPlan() {
	tasks, _, err := task.ReadAllLenient(a.cfg.TasksPath())
	if err != nil {
		a.err = err
		return
	}
	a.err = nil

	s := schedule.New(schedule.OptionsFromConfig(a.cfg))
	s.SetPet(schedule.Pet{Name: a.cfg.Pet.Name, Species: a.cfg.Pet.Species})
	s.SetCaregiver(schedule.Caregiver{
		Name:         a.cfg.Caregiver.Name,
		Availability: a.cfg.Caregiver.Availability,
	})
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		s.AddTask(*t)
	}

	plan, err := s.GeneratePlan()
	if err != nil {
		a.err = err
		return
	}
	a.plan = plan
	a.conflicts = schedule.DetectConflicts(tasks)

	if a.selected >= len(a.plan) {
		a.selected = max(len(a.plan)-1, 0)
	}
	a.ensureVisible()
}

func (a *Agenda) selectedItem() *schedule.PlanItem {
	if a.selected >= 0 && a.selected < len(a.plan) {
		return &a.plan[a.selected]
	}
	return nil
}

// chromeHeight returns the number of lines consumed by non-item elements:
// title + blank line + status bar (+ error line when an error is shown).
func (a *Agenda) chromeHeight() int {
	h := agendaChrome + 1
	if a.err != nil {
		h += errorChrome
	}
	if len(a.conflicts) > 0 {
		h += len(a.conflicts)
	}
	return h
}

func (a *Agenda) visibleRows() int {
	rows := a.height - a.chromeHeight()
	if rows < 1 {
		return 1
	}
	return rows
}

// ensureVisible adjusts the scroll offset so the selected row is within the
// visible window.
func (a *Agenda) ensureVisible() {
	maxVis := a.visibleRows()
	switch {
	case a.selected >= a.scrollOff+maxVis:
		a.scrollOff = a.selected - maxVis + 1
	case a.selected < a.scrollOff:
		a.scrollOff = a.selected
	}
}

// WatchPaths returns the paths that should be watched for file changes.
func (a *Agenda) WatchPaths() []string {
	paths := []string{a.cfg.TasksPath()}
	if a.cfg.Dir() != a.cfg.TasksPath() {
		paths = append(paths, a.cfg.Dir())
	}
	return paths
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a plan refresh.
type ReloadMsg struct{}

type errMsg struct{ err error }

// TickMsg is sent periodically to refresh the now marker.
type TickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg { return TickMsg{} })
}

// --- Styles ---

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("237"))

	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	nowMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	gapFillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	unschedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	dialogPadY = 1
	dialogPadX = 2

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(dialogPadY, dialogPadX)
)

// --- View rendering ---

func (a *Agenda) viewAgenda() string {
	header := titleStyle.Render(fmt.Sprintf("%s's day  %s",
		a.cfg.Pet.Name, a.cfg.Caregiver.Availability))

	var lines []string
	if len(a.plan) == 0 {
		lines = append(lines, dimStyle.Render("  (no tasks)"))
	}

	start := a.scrollOff
	end := min(start+a.visibleRows(), len(a.plan))
	for i := start; i < end; i++ {
		lines = append(lines, a.renderItem(i))
	}

	body := strings.Join(lines, "\n")
	parts := []string{header, body}

	for _, c := range a.conflicts {
		parts = append(parts, conflictStyle.Render("! "+truncate(c.String(), a.width-2)))
	}

	parts = append(parts, "", a.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *Agenda) renderItem(i int) string {
	item := a.plan[i]

	timeCol := "--         " // same width as "08:00-08:30"
	if item.IsScheduled() {
		timeCol = fmt.Sprintf("%s-%s", item.ScheduledTime, item.End())
	}

	marker := "  "
	if item.IsScheduled() && a.isNow(item) {
		marker = nowMarkStyle.Render("> ")
	}

	label := fmt.Sprintf("%s %s (%dm)", timeCol, item.Task.Title, item.DurationMinutes)
	switch item.Outcome {
	case schedule.OutcomeGapFilled:
		label = gapFillStyle.Render(label)
	case schedule.OutcomeScheduled:
		label = timeStyle.Render(label)
	default:
		label = unschedStyle.Render(label + "  " + item.Reason)
	}

	line := marker + label
	if i == a.selected {
		line = selectedStyle.Render(marker + stripAnsiLabel(item, timeCol))
	}
	return truncate(line, a.width)
}

// stripAnsiLabel rebuilds the plain label for the selected row so the
// selection background is not broken up by foreground escapes.
func stripAnsiLabel(item schedule.PlanItem, timeCol string) string {
	label := fmt.Sprintf("%s %s (%dm)", timeCol, item.Task.Title, item.DurationMinutes)
	if !item.IsScheduled() {
		label += "  " + item.Reason
	}
	return label
}

// isNow reports whether the current wall-clock minute falls inside the
// item's scheduled interval.
func (a *Agenda) isNow(item schedule.PlanItem) bool {
	now := a.now()
	minute := daytime.Clock(now.Hour()*60 + now.Minute())
	return minute >= item.ScheduledTime && minute < item.End()
}

func (a *Agenda) renderStatusBar() string {
	scheduled := len(a.plan.Scheduled())
	status := fmt.Sprintf(" %s | %d/%d scheduled | c:done r:replan q:quit",
		a.cfg.Pet.Name, scheduled, len(a.plan))
	status = truncate(status, a.width)

	if a.err != nil {
		errStr := errorStyle.Render(truncate("Error: "+a.err.Error(), a.width))
		return errStr + "\n" + statusBarStyle.Render(status)
	}

	return statusBarStyle.Render(status)
}

func (a *Agenda) viewCompleteConfirm() string {
	content := nowMarkStyle.Render("Mark task done?") + "\n\n" +
		fmt.Sprintf("  #%d: %s", a.completeID, a.completeTitle) + "\n\n" +
		dimStyle.Render("y:yes  n:no")

	return dialogStyle.Render(content)
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := maxLen - 3 //nolint:mnd // room for "..."
	if target > len(runes) {
		target = len(runes)
	}
	// Trim runes from the end until the display width fits.
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
