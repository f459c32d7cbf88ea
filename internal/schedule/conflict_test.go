package schedule

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

func fixedTask(id int, title string, start daytime.Clock, duration int) *task.Task {
	return &task.Task{
		ID:              id,
		Title:           title,
		Type:            "other",
		DurationMinutes: duration,
		Priority:        "medium",
		Window:          daytime.FullDay,
		StartTime:       clockPtr(start),
	}
}

func TestDetectConflictsSinglePair(t *testing.T) {
	tasks := []*task.Task{
		fixedTask(1, "Walk", 510, 20),
		fixedTask(2, "Feed", 520, 20),
	}

	conflicts := DetectConflicts(tasks)
	if len(conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1: %v", len(conflicts), conflicts)
	}
	c := conflicts[0]
	if c.OverlapMinutes != 10 {
		t.Errorf("overlap = %d, want 10", c.OverlapMinutes)
	}
	if c.TitleA != "Walk" || c.TitleB != "Feed" {
		t.Errorf("pair = %q/%q, want Walk/Feed", c.TitleA, c.TitleB)
	}
}

func TestDetectConflictsOrderIndependent(t *testing.T) {
	a := fixedTask(1, "Walk", 510, 20)
	b := fixedTask(2, "Feed", 520, 20)
	c := fixedTask(3, "Groom", 600, 30)

	forward := DetectConflicts([]*task.Task{a, b, c})
	reversed := DetectConflicts([]*task.Task{c, b, a})
	if !reflect.DeepEqual(forward, reversed) {
		t.Errorf("conflict sets differ:\nforward:  %v\nreversed: %v", forward, reversed)
	}
}

func TestDetectConflictsIgnoresUnfixedTasks(t *testing.T) {
	floating := &task.Task{
		ID:              1,
		Title:           "Play",
		DurationMinutes: 30,
		Priority:        "low",
		Window:          daytime.FullDay,
	}
	tasks := []*task.Task{floating, fixedTask(2, "Walk", 510, 20)}

	if conflicts := DetectConflicts(tasks); len(conflicts) != 0 {
		t.Errorf("got %d conflicts, want 0", len(conflicts))
	}
}

func TestDetectConflictsAdjacentIntervals(t *testing.T) {
	// [480,510) and [510,540) touch but do not overlap.
	tasks := []*task.Task{
		fixedTask(1, "Walk", 480, 30),
		fixedTask(2, "Feed", 510, 30),
	}

	if conflicts := DetectConflicts(tasks); len(conflicts) != 0 {
		t.Errorf("adjacent intervals reported as conflict: %v", conflicts)
	}
}

func TestDetectConflictsMultipleOverlaps(t *testing.T) {
	// One long task overlapping two later ones.
	tasks := []*task.Task{
		fixedTask(1, "Vet visit", 480, 120),
		fixedTask(2, "Walk", 500, 30),
		fixedTask(3, "Feed", 560, 30),
	}

	conflicts := DetectConflicts(tasks)
	if len(conflicts) != 2 {
		t.Fatalf("got %d conflicts, want 2: %v", len(conflicts), conflicts)
	}
}

func TestConflictString(t *testing.T) {
	c := Conflict{
		TitleA: "Walk", TitleB: "Feed",
		StartA: 510, EndA: 530,
		StartB: 520, EndB: 540,
		OverlapMinutes: 10,
	}
	s := c.String()
	for _, want := range []string{"Walk", "Feed", "08:30", "08:40", "09:00", "10 minutes"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
