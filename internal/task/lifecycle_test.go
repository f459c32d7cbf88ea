package task

import (
	"testing"
	"time"

	"github.com/pawpal-dev/pawpal/internal/daytime"
)

func TestMarkComplete(t *testing.T) {
	tk := validTask()
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	if tk.Completed {
		t.Fatal("new task should not be completed")
	}
	tk.MarkComplete(now)
	if !tk.Completed {
		t.Error("task should be completed after MarkComplete")
	}
	if !tk.Updated.Equal(now) {
		t.Errorf("Updated = %v, want %v", tk.Updated, now)
	}

	// Completing again must not bump Updated.
	later := now.Add(time.Hour)
	tk.MarkComplete(later)
	if !tk.Updated.Equal(now) {
		t.Errorf("second MarkComplete changed Updated to %v", tk.Updated)
	}
}

func TestReschedule(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   daytime.Clock
		wantErr bool
	}{
		{name: "inside window", start: 510},
		{name: "at window start", start: 480},
		{name: "ends exactly at window end", start: 570},
		{name: "overruns window", start: 580, wantErr: true},
		{name: "before window", start: 400, wantErr: true},
		{name: "past end of day", start: 1440, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTask() // window 08:00-10:00, 30 minutes
			err := tk.Reschedule(tt.start, now)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Reschedule succeeded, want error")
				}
				if tk.StartTime != nil {
					t.Error("failed Reschedule should not set StartTime")
				}
				return
			}
			if err != nil {
				t.Fatalf("Reschedule: %v", err)
			}
			if tk.StartTime == nil || *tk.StartTime != tt.start {
				t.Errorf("StartTime = %v, want %d", tk.StartTime, tt.start)
			}
		})
	}
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, 8, 25, 21, 0, 0, 0, time.UTC)

	t.Run("completed daily task rolls forward", func(t *testing.T) {
		tk := validTask()
		tk.Frequency = FrequencyDaily
		tk.StartTime = clockPtr(480)
		tk.MarkComplete(now)

		next := NextOccurrence(tk, 42, now)
		if next == nil {
			t.Fatal("expected a successor task")
		}
		if next.ID != 42 {
			t.Errorf("successor ID = %d, want 42", next.ID)
		}
		if next.Completed {
			t.Error("successor should not be completed")
		}
		if next.Title != tk.Title || next.DurationMinutes != tk.DurationMinutes {
			t.Error("successor should carry the same activity")
		}
		if next.StartTime == tk.StartTime {
			t.Error("successor must not share the StartTime pointer")
		}
		if next.StartTime == nil || *next.StartTime != *tk.StartTime {
			t.Error("successor should keep the same start time value")
		}
	})

	t.Run("one-off task does not roll", func(t *testing.T) {
		tk := validTask()
		tk.MarkComplete(now)
		if next := NextOccurrence(tk, 42, now); next != nil {
			t.Errorf("one-off task produced successor %+v", next)
		}
	})

	t.Run("incomplete recurring task does not roll", func(t *testing.T) {
		tk := validTask()
		tk.Frequency = FrequencyWeekly
		if next := NextOccurrence(tk, 42, now); next != nil {
			t.Errorf("incomplete task produced successor %+v", next)
		}
	})
}
