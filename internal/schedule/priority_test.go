package schedule

import (
	"math"
	"testing"

	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/task"
)

func scoredTask(priority string, windowEnd daytime.Clock) *task.Task {
	return &task.Task{
		Title:           "Walk",
		DurationMinutes: 30,
		Priority:        priority,
		Window:          daytime.Window{Start: 0, End: windowEnd},
	}
}

func TestScore(t *testing.T) {
	const now daytime.Clock = 480

	tests := []struct {
		name      string
		priority  string
		windowEnd daytime.Clock
		want      float64
	}{
		{name: "high base", priority: "high", windowEnd: 1440, want: 3.0},
		{name: "medium base", priority: "medium", windowEnd: 1440, want: 2.0},
		{name: "low base", priority: "low", windowEnd: 1440, want: 1.0},
		{name: "unknown scores as low", priority: "urgent", windowEnd: 1440, want: 1.0},
		{name: "deadline in 1 minute", priority: "low", windowEnd: 481, want: 1.0 + 1.0 - 1.0/120},
		{name: "deadline in 60 minutes", priority: "medium", windowEnd: 540, want: 2.0 + 0.5},
		{name: "deadline in 119 minutes", priority: "high", windowEnd: 599, want: 3.0 + 1.0 - 119.0/120},
		{name: "deadline exactly 120 away", priority: "high", windowEnd: 600, want: 3.0},
		{name: "deadline right now", priority: "high", windowEnd: 480, want: 3.0},
		{name: "window already closed", priority: "high", windowEnd: 400, want: 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(scoredTask(tt.priority, tt.windowEnd), now)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score = %v, want %v", got, tt.want)
			}
		})
	}
}
