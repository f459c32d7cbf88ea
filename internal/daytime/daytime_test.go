package daytime

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Clock
		wantErr bool
	}{
		{name: "morning", input: "08:00", want: 480},
		{name: "with spaces", input: " 21:30 ", want: 1290},
		{name: "midnight", input: "00:00", want: 0},
		{name: "end of day", input: "24:00", want: 1440},
		{name: "raw minutes", input: "510", want: 510},
		{name: "minutes past day end", input: "1441", wantErr: true},
		{name: "bad minutes field", input: "08:75", wantErr: true},
		{name: "not a time", input: "noonish", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestClockString(t *testing.T) {
	if got := New(8, 5).String(); got != "08:05" {
		t.Errorf("String() = %q, want %q", got, "08:05")
	}
	if got := Clock(1439).String(); got != "23:59" {
		t.Errorf("String() = %q, want %q", got, "23:59")
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Window
		wantErr bool
	}{
		{name: "business day", input: "08:00-22:00", want: Window{480, 1320}},
		{name: "full day", input: "00:00-24:00", want: FullDay},
		{name: "raw minutes", input: "480-600", want: Window{480, 600}},
		{name: "inverted", input: "22:00-08:00", wantErr: true},
		{name: "empty interval", input: "08:00-08:00", wantErr: true},
		{name: "missing separator", input: "08:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseWindow(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseWindow(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseWindow(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Start: 480, End: 600}

	if !w.Contains(480, 30) {
		t.Error("expected interval at window start to fit")
	}
	if !w.Contains(570, 30) {
		t.Error("expected interval ending exactly at window end to fit")
	}
	if w.Contains(571, 30) {
		t.Error("interval overrunning window end should not fit")
	}
	if w.Contains(450, 30) {
		t.Error("interval before window start should not fit")
	}
}

func TestWindowIntersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Window
		want   Window
		wantOK bool
	}{
		{name: "partial overlap", a: Window{480, 600}, b: Window{540, 720}, want: Window{540, 600}, wantOK: true},
		{name: "contained", a: Window{0, 1440}, b: Window{480, 600}, want: Window{480, 600}, wantOK: true},
		{name: "touching edges", a: Window{480, 600}, b: Window{600, 720}, wantOK: false},
		{name: "disjoint", a: Window{480, 540}, b: Window{600, 720}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if ok != tt.wantOK {
				t.Fatalf("Intersect ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Intersect = %v, want %v", got, tt.want)
			}
		})
	}
}
