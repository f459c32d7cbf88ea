package schedule

import (
	"testing"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

func scheduledItem(title string, start daytime.Clock, duration int) PlanItem {
	return PlanItem{
		Task:            task.Task{Title: title, DurationMinutes: duration},
		ScheduledTime:   start,
		DurationMinutes: duration,
		Outcome:         OutcomeScheduled,
	}
}

func TestIdleGapsEmptyDay(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 600}

	gaps := idleGaps(nil, availability, 5, 15)
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps, want 1", len(gaps))
	}
	if gaps[0].start != 480 || gaps[0].end != 600 {
		t.Errorf("gap = [%v,%v), want the whole availability", gaps[0].start, gaps[0].end)
	}
}

func TestIdleGaps(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 720}
	scheduled := []PlanItem{
		scheduledItem("Walk", 510, 30),
		scheduledItem("Feed", 600, 20),
	}

	// Leading 480-510, between 545-600 (past the 5-minute break), trailing
	// 625-720.
	gaps := idleGaps(scheduled, availability, 5, 15)
	want := []gap{
		{start: 480, end: 510},
		{start: 545, end: 600},
		{start: 625, end: 720},
	}
	if len(gaps) != len(want) {
		t.Fatalf("got %d gaps %v, want %d", len(gaps), gaps, len(want))
	}
	for i := range want {
		if gaps[i] != want[i] {
			t.Errorf("gap[%d] = %v, want %v", i, gaps[i], want[i])
		}
	}
}

func TestIdleGapsDropsShortGaps(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 620}
	scheduled := []PlanItem{
		scheduledItem("Walk", 490, 30), // leading gap only 10 minutes
		scheduledItem("Feed", 530, 30), // between gap only 5 minutes
	}

	gaps := idleGaps(scheduled, availability, 5, 15)
	if len(gaps) != 1 {
		t.Fatalf("got %d gaps %v, want 1", len(gaps), gaps)
	}
	if gaps[0].start != 565 || gaps[0].end != 620 {
		t.Errorf("gap = [%v,%v), want [565,620)", gaps[0].start, gaps[0].end)
	}
}

func TestFillGapsFirstFit(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 720}
	scheduled := []PlanItem{scheduledItem("Walk", 540, 60)}

	flexible := []task.Task{
		{Title: "Play", DurationMinutes: 30, Window: daytime.FullDay, Flexible: true},
		{Title: "Brush", DurationMinutes: 20, Window: daytime.FullDay, Flexible: true},
	}

	placed, leftover := fillGaps(scheduled, flexible, availability, 5, 15)
	if len(placed) != 2 || len(leftover) != 0 {
		t.Fatalf("placed %d, leftover %d, want 2 and 0", len(placed), len(leftover))
	}
	// One task per gap: Play takes the leading gap, Brush the trailing one.
	if placed[0].Task.Title != "Play" || placed[0].ScheduledTime != 480 {
		t.Errorf("first placement = %q at %v", placed[0].Task.Title, placed[0].ScheduledTime)
	}
	if placed[1].Task.Title != "Brush" || placed[1].ScheduledTime != 605 {
		t.Errorf("second placement = %q at %v", placed[1].Task.Title, placed[1].ScheduledTime)
	}
}

func TestFillGapsHonorsTaskWindow(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 720}
	scheduled := []PlanItem{scheduledItem("Walk", 540, 60)}

	// Fits the leading gap by size but its window starts later.
	evening := []task.Task{
		{Title: "Dinner", DurationMinutes: 30, Window: daytime.Window{Start: 600, End: 720}, Flexible: true},
	}

	placed, leftover := fillGaps(scheduled, evening, availability, 5, 15)
	if len(placed) != 1 || len(leftover) != 0 {
		t.Fatalf("placed %d, leftover %d, want 1 and 0", len(placed), len(leftover))
	}
	if placed[0].ScheduledTime != 605 {
		t.Errorf("Dinner placed at %v, want 10:05", placed[0].ScheduledTime)
	}
}

func TestFillGapsLeftover(t *testing.T) {
	availability := daytime.Window{Start: 480, End: 540}

	big := []task.Task{
		{Title: "Long play", DurationMinutes: 90, Window: daytime.FullDay, Flexible: true},
	}

	placed, leftover := fillGaps(nil, big, availability, 5, 15)
	if len(placed) != 0 {
		t.Fatalf("placed %d, want 0", len(placed))
	}
	if len(leftover) != 1 || leftover[0].Title != "Long play" {
		t.Errorf("leftover = %v", leftover)
	}
}
