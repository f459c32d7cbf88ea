package config

import (
	"path/filepath"
	"testing"

	"github.com/pawpal-dev/pawpal/internal/daytime"
)

func validConfig() *Config {
	return NewDefault("Mochi", "dog", "Jordan")
}

func TestNewDefault(t *testing.T) {
	cfg := validConfig()

	if cfg.Pet.Name != "Mochi" || cfg.Pet.Species != "dog" {
		t.Errorf("pet not set: %+v", cfg.Pet)
	}
	if cfg.Caregiver.Name != "Jordan" {
		t.Errorf("caregiver not set: %+v", cfg.Caregiver)
	}
	if cfg.Caregiver.Availability != DefaultAvailability {
		t.Errorf("availability = %v, want %v", cfg.Caregiver.Availability, DefaultAvailability)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "wrong version", mutate: func(c *Config) { c.Version = 99 }, wantErr: true},
		{name: "missing pet name", mutate: func(c *Config) { c.Pet.Name = "" }, wantErr: true},
		{name: "missing species", mutate: func(c *Config) { c.Pet.Species = "" }, wantErr: true},
		{name: "inverted availability", mutate: func(c *Config) {
			c.Caregiver.Availability = daytime.Window{Start: 1320, End: 480}
		}, wantErr: true},
		{name: "empty tasks dir", mutate: func(c *Config) { c.TasksDir = "" }, wantErr: true},
		{name: "duplicate priorities", mutate: func(c *Config) {
			c.Priorities = []string{"low", "low", "high"}
		}, wantErr: true},
		{name: "default priority not listed", mutate: func(c *Config) { c.Defaults.Priority = "urgent" }, wantErr: true},
		{name: "negative break", mutate: func(c *Config) { c.Scheduling.BreakMinutes = -1 }, wantErr: true},
		{name: "zero slot step", mutate: func(c *Config) { c.Scheduling.SlotStepMinutes = 0 }, wantErr: true},
		{name: "zero min gap", mutate: func(c *Config) { c.Scheduling.MinGapMinutes = 0 }, wantErr: true},
		{name: "zero next id", mutate: func(c *Config) { c.NextID = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() succeeded, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestInitLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pawpal")

	cfg := validConfig()
	cfg.Caregiver.Availability = daytime.Window{Start: 540, End: 1200}

	if _, err := Init(dir, cfg); err != nil {
		t.Fatalf("Init: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Pet.Name != "Mochi" {
		t.Errorf("pet name = %q, want %q", loaded.Pet.Name, "Mochi")
	}
	if loaded.Caregiver.Availability != (daytime.Window{Start: 540, End: 1200}) {
		t.Errorf("availability = %v", loaded.Caregiver.Availability)
	}
	if loaded.Scheduling.BreakMinutes != DefaultBreakMinutes {
		t.Errorf("break minutes = %d, want %d", loaded.Scheduling.BreakMinutes, DefaultBreakMinutes)
	}

	// Re-init over an existing profile must fail.
	if _, err := Init(dir, validConfig()); err == nil {
		t.Error("Init over existing profile should fail")
	}
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	profileDir := filepath.Join(root, DefaultDir)
	if _, err := Init(profileDir, validConfig()); err != nil {
		t.Fatalf("Init: %v", err)
	}

	// From the root that contains the profile directory.
	found, err := FindDir(root)
	if err != nil {
		t.Fatalf("FindDir: %v", err)
	}
	if found != profileDir {
		t.Errorf("FindDir = %q, want %q", found, profileDir)
	}

	// From inside the profile directory itself.
	found, err = FindDir(profileDir)
	if err != nil {
		t.Fatalf("FindDir from inside: %v", err)
	}
	if found != profileDir {
		t.Errorf("FindDir = %q, want %q", found, profileDir)
	}
}
