package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/filelock"
	"github.com/pawpal-dev/pawpal/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update the care profile",
	Long: `Without flags, shows the current care profile. With flags, updates
the named fields and saves the profile.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().String("pet-name", "", "rename the pet")
	profileCmd.Flags().String("species", "", "change the pet's species")
	profileCmd.Flags().String("caregiver", "", "rename the caregiver")
	profileCmd.Flags().String("availability", "", "caregiver availability window (HH:MM-HH:MM)")
	profileCmd.Flags().Int("break", 0, "minutes of rest after each scheduled task")
	profileCmd.Flags().Int("slot-step", 0, "slot search probe increment in minutes")
	profileCmd.Flags().Int("slot-search", 0, "slot search depth cap in minutes")
	profileCmd.Flags().Int("min-gap", 0, "smallest idle gap considered for flexible tasks")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	if !profileFlagsChanged(cmd) {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return showProfile(cfg)
	}

	dir, err := resolveDir()
	if err != nil {
		return err
	}
	unlock, err := filelock.Lock(filepath.Join(dir, ".lock"))
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	changed, err := applyProfileFlags(cmd, cfg)
	if err != nil {
		return err
	}
	if !changed {
		return clierr.New(clierr.NoChanges, "no changes to apply")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	logActivity(cfg, "profile", 0, "updated")

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status": "updated",
		})
	}
	output.Messagef(os.Stdout, "Profile updated")
	return nil
}

func profileFlagsChanged(cmd *cobra.Command) bool {
	flags := []string{
		"pet-name", "species", "caregiver", "availability",
		"break", "slot-step", "slot-search", "min-gap",
	}
	for _, f := range flags {
		if cmd.Flags().Changed(f) {
			return true
		}
	}
	return false
}

// applyProfileFlags mutates cfg from the set flags and reports whether any
// field actually changed value.
func applyProfileFlags(cmd *cobra.Command, cfg *config.Config) (bool, error) {
	changed := false

	setString := func(flag string, target *string) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetString(flag)
			if v != "" && v != *target {
				*target = v
				changed = true
			}
		}
	}
	setInt := func(flag string, target *int) {
		if cmd.Flags().Changed(flag) {
			v, _ := cmd.Flags().GetInt(flag)
			if v != *target {
				*target = v
				changed = true
			}
		}
	}

	setString("pet-name", &cfg.Pet.Name)
	setString("species", &cfg.Pet.Species)
	setString("caregiver", &cfg.Caregiver.Name)

	if cmd.Flags().Changed("availability") {
		v, _ := cmd.Flags().GetString("availability")
		w, err := daytime.ParseWindow(v)
		if err != nil {
			return false, clierr.Newf(clierr.InvalidWindow, "invalid availability: %v", err)
		}
		if w != cfg.Caregiver.Availability {
			cfg.Caregiver.Availability = w
			changed = true
		}
	}

	setInt("break", &cfg.Scheduling.BreakMinutes)
	setInt("slot-step", &cfg.Scheduling.SlotStepMinutes)
	setInt("slot-search", &cfg.Scheduling.SlotSearchMinutes)
	setInt("min-gap", &cfg.Scheduling.MinGapMinutes)

	return changed, nil
}

func showProfile(cfg *config.Config) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"pet": map[string]interface{}{
				"name":    cfg.Pet.Name,
				"species": cfg.Pet.Species,
			},
			"caregiver": map[string]interface{}{
				"name":         cfg.Caregiver.Name,
				"availability": cfg.Caregiver.Availability.String(),
			},
			"defaults": map[string]interface{}{
				"priority": cfg.Defaults.Priority,
				"type":     cfg.Defaults.Type,
			},
			"scheduling": map[string]interface{}{
				"break_minutes":       cfg.Scheduling.BreakMinutes,
				"slot_step_minutes":   cfg.Scheduling.SlotStepMinutes,
				"slot_search_minutes": cfg.Scheduling.SlotSearchMinutes,
				"min_gap_minutes":     cfg.Scheduling.MinGapMinutes,
			},
			"next_id": cfg.NextID,
			"dir":     cfg.Dir(),
		})
	}

	output.Messagef(os.Stdout, "Pet:          %s (%s)", cfg.Pet.Name, cfg.Pet.Species)
	caregiver := cfg.Caregiver.Name
	if caregiver == "" {
		caregiver = "(unset)"
	}
	output.Messagef(os.Stdout, "Caregiver:    %s", caregiver)
	output.Messagef(os.Stdout, "Availability: %s", cfg.Caregiver.Availability)
	output.Messagef(os.Stdout, "Defaults:     priority=%s type=%s", cfg.Defaults.Priority, cfg.Defaults.Type)
	output.Messagef(os.Stdout, "Scheduling:   break=%dm step=%dm search=%dm min-gap=%dm",
		cfg.Scheduling.BreakMinutes, cfg.Scheduling.SlotStepMinutes,
		cfg.Scheduling.SlotSearchMinutes, cfg.Scheduling.MinGapMinutes)
	output.Messagef(os.Stdout, "Profile:      %s", cfg.ConfigPath())
	return nil
}
