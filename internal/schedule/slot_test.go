package schedule

import (
	"testing"

	"github.com/pawpal-dev/pawpal/internal/daytime"
)

func defaultFinder() slotFinder {
	return slotFinder{stepMinutes: 15, searchMinutes: 120}
}

func TestSlotFinderFirstProbe(t *testing.T) {
	start, ok := defaultFinder().find(30, 480, 600, nil)
	if !ok || start != 480 {
		t.Errorf("find = %v,%v, want 480,true", start, ok)
	}
}

func TestSlotFinderStepsPastOccupied(t *testing.T) {
	occupied := []span{{start: 480, end: 500}}

	// 480 collides, 495 still collides, 510 is free.
	start, ok := defaultFinder().find(30, 480, 600, occupied)
	if !ok || start != 510 {
		t.Errorf("find = %v,%v, want 510,true", start, ok)
	}
}

func TestSlotFinderRespectsLatestEnd(t *testing.T) {
	occupied := []span{{start: 480, end: 550}}

	// The only free start past the span would end beyond 580.
	if start, ok := defaultFinder().find(30, 480, 580, occupied); ok {
		t.Errorf("find = %v, want no slot", start)
	}
}

func TestSlotFinderSearchDepthCap(t *testing.T) {
	// A wall of occupied time longer than the search depth: probes at
	// 480..600 all collide and the search gives up even though 720 is free.
	occupied := []span{{start: 480, end: 720}}

	if start, ok := defaultFinder().find(30, 480, 1320, occupied); ok {
		t.Errorf("find = %v, want no slot within the capped search", start)
	}

	// The last probe within the cap is exactly earliest+120.
	occupied = []span{{start: 480, end: 600}}
	start, ok := defaultFinder().find(30, 480, 1320, occupied)
	if !ok || start != 600 {
		t.Errorf("find = %v,%v, want 600,true", start, ok)
	}
}

func TestSlotFinderZeroLengthDayEdge(t *testing.T) {
	// A task exactly filling the remaining room is accepted.
	start, ok := defaultFinder().find(30, 570, 600, nil)
	if !ok || start != 570 {
		t.Errorf("find = %v,%v, want 570,true", start, ok)
	}

	// One minute too long is not.
	if start, ok := defaultFinder().find(31, 570, 600, nil); ok {
		t.Errorf("find = %v, want no slot", start)
	}
}

func TestSpanOverlaps(t *testing.T) {
	s := span{start: 480, end: 510}

	tests := []struct {
		name       string
		start, end daytime.Clock
		want       bool
	}{
		{name: "inside", start: 490, end: 500, want: true},
		{name: "covers", start: 470, end: 520, want: true},
		{name: "left edge touch", start: 450, end: 480, want: false},
		{name: "right edge touch", start: 510, end: 540, want: false},
		{name: "partial left", start: 470, end: 490, want: true},
		{name: "partial right", start: 500, end: 520, want: true},
		{name: "disjoint", start: 600, end: 630, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.overlaps(tt.start, tt.end); got != tt.want {
				t.Errorf("overlaps(%v,%v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
