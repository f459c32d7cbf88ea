package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/daytime"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no care profile found (run 'pawpal init' to create one)")
	ErrInvalid  = errors.New("invalid profile")
)

// Config represents a pet care profile: the pet, the caregiver, and the
// scheduling defaults the planner runs with.
type Config struct {
	Version    int              `yaml:"version"`
	Pet        PetConfig        `yaml:"pet"`
	Caregiver  CaregiverConfig  `yaml:"caregiver"`
	TasksDir   string           `yaml:"tasks_dir"`
	Priorities []string         `yaml:"priorities"`
	Defaults   DefaultsConfig   `yaml:"defaults"`
	Scheduling SchedulingConfig `yaml:"scheduling"`
	NextID     int              `yaml:"next_id"`

	// dir is the absolute path to the profile directory (not serialized).
	dir string `yaml:"-"`
}

// PetConfig holds the pet's identity and care preferences.
type PetConfig struct {
	Name        string            `yaml:"name"`
	Species     string            `yaml:"species"`
	Needs       []string          `yaml:"needs,omitempty"`
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

// CaregiverConfig holds the caregiver's identity and supervision window.
type CaregiverConfig struct {
	Name         string            `yaml:"name"`
	Availability daytime.Window    `yaml:"availability"`
	Preferences  map[string]string `yaml:"preferences,omitempty"`
}

// DefaultsConfig holds default values for new tasks.
type DefaultsConfig struct {
	Priority string `yaml:"priority"`
	Type     string `yaml:"type"`
	Flexible bool   `yaml:"flexible,omitempty"`
}

// SchedulingConfig holds the planner's tuning knobs. All values are minutes.
type SchedulingConfig struct {
	BreakMinutes      int `yaml:"break_minutes"`
	SlotStepMinutes   int `yaml:"slot_step_minutes"`
	SlotSearchMinutes int `yaml:"slot_search_minutes"`
	MinGapMinutes     int `yaml:"min_gap_minutes"`
}

// Dir returns the absolute path to the profile directory.
func (c *Config) Dir() string {
	return c.dir
}

// TasksPath returns the absolute path to the tasks directory.
func (c *Config) TasksPath() string {
	return filepath.Join(c.dir, c.TasksDir)
}

// ConfigPath returns the absolute path to the profile file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// SetDir sets the profile directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// NewDefault creates a Config with default values for the given pet and caregiver.
func NewDefault(petName, species, caregiverName string) *Config {
	return &Config{
		Version: CurrentVersion,
		Pet: PetConfig{
			Name:    petName,
			Species: species,
		},
		Caregiver: CaregiverConfig{
			Name:         caregiverName,
			Availability: DefaultAvailability,
		},
		TasksDir:   DefaultTasksDir,
		Priorities: append([]string{}, DefaultPriorities...),
		Defaults: DefaultsConfig{
			Priority: DefaultPriority,
			Type:     DefaultType,
		},
		Scheduling: SchedulingConfig{
			BreakMinutes:      DefaultBreakMinutes,
			SlotStepMinutes:   DefaultSlotStepMinutes,
			SlotSearchMinutes: DefaultSlotSearchMinutes,
			MinGapMinutes:     DefaultMinGapMinutes,
		},
		NextID: 1,
	}
}

// PriorityIndex returns the index of a priority in the configured order, or -1.
func (c *Config) PriorityIndex(priority string) int {
	return IndexOf(c.Priorities, priority)
}

// Validate checks the profile for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.Pet.Name == "" {
		return fmt.Errorf("%w: pet.name is required", ErrInvalid)
	}
	if c.Pet.Species == "" {
		return fmt.Errorf("%w: pet.species is required", ErrInvalid)
	}
	if !c.Caregiver.Availability.Valid() {
		return fmt.Errorf("%w: caregiver.availability %q is not a valid window", ErrInvalid, c.Caregiver.Availability)
	}
	if c.TasksDir == "" {
		return fmt.Errorf("%w: tasks_dir is required", ErrInvalid)
	}
	if len(c.Priorities) < 1 {
		return fmt.Errorf("%w: at least 1 priority is required", ErrInvalid)
	}
	if hasDuplicates(c.Priorities) {
		return fmt.Errorf("%w: priorities contain duplicates", ErrInvalid)
	}
	if !contains(c.Priorities, c.Defaults.Priority) {
		return fmt.Errorf("%w: default priority %q not in priorities list", ErrInvalid, c.Defaults.Priority)
	}
	if err := c.validateScheduling(); err != nil {
		return err
	}
	if c.NextID < 1 {
		return fmt.Errorf("%w: next_id must be >= 1", ErrInvalid)
	}
	return nil
}

func (c *Config) validateScheduling() error {
	s := c.Scheduling
	if s.BreakMinutes < 0 {
		return fmt.Errorf("%w: scheduling.break_minutes must be >= 0", ErrInvalid)
	}
	if s.SlotStepMinutes < 1 {
		return fmt.Errorf("%w: scheduling.slot_step_minutes must be >= 1", ErrInvalid)
	}
	if s.SlotSearchMinutes < 0 {
		return fmt.Errorf("%w: scheduling.slot_search_minutes must be >= 0", ErrInvalid)
	}
	if s.MinGapMinutes < 1 {
		return fmt.Errorf("%w: scheduling.min_gap_minutes must be >= 1", ErrInvalid)
	}
	return nil
}

// Init creates a new care profile in the given directory.
// It creates the profile directory, tasks subdirectory, and profile file.
func Init(dir string, cfg *Config) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	cfg.SetDir(absDir)

	if _, err := os.Stat(cfg.ConfigPath()); err == nil {
		return nil, clierr.Newf(clierr.ProfileAlreadyExists,
			"profile already exists at %s", cfg.ConfigPath())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.TasksPath(), dirMode); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing profile: %w", err)
	}

	return cfg, nil
}

// Save writes the profile to its file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a profile from the given directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // profile path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindDir walks upward from startDir looking for a profile directory
// containing profile.yml. Returns the absolute path to the profile directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the profile directory itself.
		candidate = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.ProfileNotFound,
				"no care profile found (run 'pawpal init' to create one)")
		}
		dir = parent
	}
}

func contains(slice []string, item string) bool {
	return IndexOf(slice, item) >= 0
}

// IndexOf returns the index of item in slice, or -1 if not found.
func IndexOf(slice []string, item string) int {
	for i, s := range slice {
		if s == item {
			return i
		}
	}
	return -1
}

func hasDuplicates(slice []string) bool {
	seen := make(map[string]bool, len(slice))
	for _, s := range slice {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}
