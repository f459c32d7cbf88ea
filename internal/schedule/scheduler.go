package schedule

import (
	"fmt"
	"sort"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

// earlyWalkCutoff is the minute before which a dog walk earns its note.
const earlyWalkCutoff daytime.Clock = 600 // 10:00

// Pet identifies the animal a plan is built for.
type Pet struct {
	Name    string
	Species string
}

// Caregiver identifies who supervises the day and when they are around.
type Caregiver struct {
	Name         string
	Availability daytime.Window
}

// Options carries the planner's tuning knobs.
type Options struct {
	// BreakMinutes is the rest padding appended after each placed task.
	BreakMinutes int
	// SlotStepMinutes is the probe increment of the slot search.
	SlotStepMinutes int
	// SlotSearchMinutes caps how far past the earliest start the slot
	// search probes before giving up.
	SlotSearchMinutes int
	// MinGapMinutes is the smallest idle interval considered for
	// gap-filling flexible tasks.
	MinGapMinutes int
}

// DefaultOptions returns the stock tuning values.
func DefaultOptions() Options {
	return Options{
		BreakMinutes:      config.DefaultBreakMinutes,
		SlotStepMinutes:   config.DefaultSlotStepMinutes,
		SlotSearchMinutes: config.DefaultSlotSearchMinutes,
		MinGapMinutes:     config.DefaultMinGapMinutes,
	}
}

// OptionsFromConfig lifts the scheduling knobs out of a loaded profile.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BreakMinutes:      cfg.Scheduling.BreakMinutes,
		SlotStepMinutes:   cfg.Scheduling.SlotStepMinutes,
		SlotSearchMinutes: cfg.Scheduling.SlotSearchMinutes,
		MinGapMinutes:     cfg.Scheduling.MinGapMinutes,
	}
}

// Scheduler accumulates tasks and context, then produces a plan on demand.
// It is a greedy planner: tasks are ranked once, placed one at a time at the
// earliest workable minute, and never revisited. A pass neither mutates the
// accumulated tasks nor carries state into the next pass, so repeated calls
// over the same inputs yield the same plan.
//
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	opts      Options
	pet       *Pet
	caregiver *Caregiver
	tasks     []task.Task
}

// New creates a Scheduler with the given tuning knobs.
func New(opts Options) *Scheduler {
	return &Scheduler{opts: opts}
}

// SetPet records the pet context for subsequent plans.
func (s *Scheduler) SetPet(p Pet) {
	s.pet = &p
}

// SetCaregiver records the caregiver context for subsequent plans.
func (s *Scheduler) SetCaregiver(c Caregiver) {
	s.caregiver = &c
}

// AddTask validates and stores a snapshot of the task. It reports whether
// the task was accepted; invalid tasks are rejected and leave the scheduler
// unchanged.
func (s *Scheduler) AddTask(t task.Task) bool {
	if t.Validate() != nil {
		return false
	}
	s.tasks = append(s.tasks, t)
	return true
}

// Tasks returns a copy of the accumulated task snapshots.
func (s *Scheduler) Tasks() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// GeneratePlan runs one planning pass over the accumulated tasks.
//
// Rigid tasks are ranked by score (then by duration, longer first) and
// placed greedily with a bounded forward slot search; flexible tasks are
// deferred to gap-filling afterwards. Every accumulated task appears in the
// returned plan exactly once, scheduled or not. Planning fails only when the
// pet or caregiver context has not been set.
func (s *Scheduler) GeneratePlan() (Plan, error) {
	if s.pet == nil || s.caregiver == nil {
		return nil, clierr.New(clierr.MissingContext,
			"pet and caregiver must be set before planning")
	}

	availability := s.caregiver.Availability
	now := availability.Start
	finder := slotFinder{
		stepMinutes:   s.opts.SlotStepMinutes,
		searchMinutes: s.opts.SlotSearchMinutes,
	}

	var rigid, flexible []task.Task
	for _, t := range s.tasks {
		if t.Flexible {
			flexible = append(flexible, t)
		} else {
			rigid = append(rigid, t)
		}
	}

	// Rank once against the start of availability; scores do not shift as
	// the cursor advances through the day.
	sort.SliceStable(rigid, func(i, j int) bool {
		si, sj := Score(&rigid[i], now), Score(&rigid[j], now)
		if si != sj {
			return si > sj
		}
		return rigid[i].DurationMinutes > rigid[j].DurationMinutes
	})

	var (
		scheduled   []PlanItem
		unscheduled []PlanItem
		occupied    []span
		placed      = make(map[string]bool)
		cursor      = now
	)

	for _, t := range rigid {
		if t.DependsOn != "" && !placed[t.DependsOn] {
			unscheduled = append(unscheduled, unscheduledItem(t, OutcomeBlocked,
				fmt.Sprintf("waiting on %q, which has not been scheduled", t.DependsOn)))
			continue
		}

		earliest := max(t.Window.Start, availability.Start, cursor)
		latestEnd := min(t.Window.End, availability.End)
		if earliest+daytime.Clock(t.DurationMinutes) > latestEnd {
			unscheduled = append(unscheduled, unscheduledItem(t, OutcomeWindowInfeasible,
				fmt.Sprintf("window %s does not fit availability %s", t.Window, availability)))
			continue
		}

		start, ok := finder.find(t.DurationMinutes, earliest, latestEnd, occupied)
		if !ok {
			unscheduled = append(unscheduled, unscheduledItem(t, OutcomeNoSlot,
				noSlotReason(t.DurationMinutes)))
			continue
		}

		reason := fmt.Sprintf("placed at %s (earliest available)", start)
		if start != earliest {
			reason = fmt.Sprintf("shifted to %s to avoid a conflict", start)
		}
		if s.pet.Species == "dog" && t.Type == "walk" && start < earlyWalkCutoff {
			reason += "; morning walks suit dogs"
		}

		end := start + daytime.Clock(t.DurationMinutes)
		scheduled = append(scheduled, PlanItem{
			Task:            t,
			ScheduledTime:   start,
			DurationMinutes: t.DurationMinutes,
			Outcome:         OutcomeScheduled,
			Reason:          reason,
		})
		occupied = append(occupied, span{start: start, end: end + daytime.Clock(s.opts.BreakMinutes)})
		cursor = end + daytime.Clock(s.opts.BreakMinutes)
		placed[t.Title] = true
	}

	// Flexible tasks go into the day's remaining gaps, measured against the
	// full availability rather than the advanced cursor.
	filled, leftover := fillGaps(scheduled, flexible, availability, s.opts.BreakMinutes, s.opts.MinGapMinutes)
	scheduled = append(scheduled, filled...)
	for _, t := range leftover {
		unscheduled = append(unscheduled, unscheduledItem(t, OutcomeNoSlot,
			noSlotReason(t.DurationMinutes)))
	}

	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledTime < scheduled[j].ScheduledTime
	})

	plan := make(Plan, 0, len(scheduled)+len(unscheduled))
	plan = append(plan, scheduled...)
	plan = append(plan, unscheduled...)
	return plan, nil
}

func noSlotReason(durationMinutes int) string {
	return fmt.Sprintf("no available slot for %.1f-hour task", float64(durationMinutes)/60)
}

func unscheduledItem(t task.Task, outcome Outcome, reason string) PlanItem {
	return PlanItem{
		Task:            t,
		ScheduledTime:   Unscheduled,
		DurationMinutes: t.DurationMinutes,
		Outcome:         outcome,
		Reason:          reason,
	}
}
