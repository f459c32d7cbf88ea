package task

import (
	"errors"
	"testing"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/daytime"
)

func clockPtr(c daytime.Clock) *daytime.Clock { return &c }

func validTask() *Task {
	return &Task{
		ID:              1,
		Title:           "Morning walk",
		Type:            "walk",
		DurationMinutes: 30,
		Priority:        "high",
		Window:          daytime.Window{Start: 480, End: 600},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Task)
		wantCode string // empty means valid
	}{
		{name: "valid", mutate: func(*Task) {}},
		{name: "valid with start time", mutate: func(tk *Task) { tk.StartTime = clockPtr(480) }},
		{name: "valid full day window", mutate: func(tk *Task) { tk.Window = daytime.FullDay }},
		{name: "empty title", mutate: func(tk *Task) { tk.Title = "" }, wantCode: clierr.InvalidInput},
		{name: "whitespace title", mutate: func(tk *Task) { tk.Title = "   " }, wantCode: clierr.InvalidInput},
		{name: "zero duration", mutate: func(tk *Task) { tk.DurationMinutes = 0 }, wantCode: clierr.InvalidDuration},
		{name: "duration past a day", mutate: func(tk *Task) { tk.DurationMinutes = 1441 }, wantCode: clierr.InvalidDuration},
		{name: "unknown priority", mutate: func(tk *Task) { tk.Priority = "urgent" }, wantCode: clierr.InvalidPriority},
		{name: "inverted window", mutate: func(tk *Task) {
			tk.Window = daytime.Window{Start: 600, End: 480}
		}, wantCode: clierr.InvalidWindow},
		{name: "empty window", mutate: func(tk *Task) {
			tk.Window = daytime.Window{Start: 480, End: 480}
		}, wantCode: clierr.InvalidWindow},
		{name: "start time at day end", mutate: func(tk *Task) {
			tk.StartTime = clockPtr(1440)
		}, wantCode: clierr.InvalidTime},
		{name: "unknown frequency", mutate: func(tk *Task) { tk.Frequency = "hourly" }, wantCode: clierr.InvalidFrequency},
		{name: "self dependency", mutate: func(tk *Task) { tk.DependsOn = tk.Title }, wantCode: clierr.SelfReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := validTask()
			tt.mutate(tk)

			err := tk.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() error: %v", err)
				}
				if !tk.Valid() {
					t.Error("Valid() = false for valid task")
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			var cliErr *clierr.Error
			if !errors.As(err, &cliErr) {
				t.Fatalf("error is not a clierr.Error: %v", err)
			}
			if cliErr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", cliErr.Code, tt.wantCode)
			}
			if tk.Valid() {
				t.Error("Valid() = true for invalid task")
			}
		})
	}
}

func TestValidateDependencyTitle(t *testing.T) {
	tasks := []*Task{
		{ID: 1, Title: "Breakfast"},
		{ID: 2, Title: "Morning walk"},
	}

	if err := ValidateDependencyTitle(tasks, "Morning walk", ""); err != nil {
		t.Errorf("empty dependency should pass: %v", err)
	}
	if err := ValidateDependencyTitle(tasks, "Morning walk", "Breakfast"); err != nil {
		t.Errorf("existing dependency should pass: %v", err)
	}
	if err := ValidateDependencyTitle(tasks, "Morning walk", "Morning walk"); err == nil {
		t.Error("self reference should fail")
	}
	if err := ValidateDependencyTitle(tasks, "Morning walk", "Vet visit"); err == nil {
		t.Error("missing dependency should fail")
	}
}
