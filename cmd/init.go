package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init PET_NAME",
	Short: "Initialize a new care profile",
	Long:  `Creates a profile directory with profile.yml and a tasks/ subdirectory.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().String("species", "dog", "pet species (dog, cat, ...)")
	initCmd.Flags().String("caregiver", "", "caregiver name")
	initCmd.Flags().String("availability", "", "caregiver availability (HH:MM-HH:MM, default 08:00-22:00)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := flagDir
	if dir == "" {
		dir = config.DefaultDir
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	species, _ := cmd.Flags().GetString("species")
	caregiver, _ := cmd.Flags().GetString("caregiver")

	cfg := config.NewDefault(args[0], species, caregiver)

	if v, _ := cmd.Flags().GetString("availability"); v != "" {
		w, err := daytime.ParseWindow(v)
		if err != nil {
			return err
		}
		cfg.Caregiver.Availability = w
	}

	cfg, err = config.Init(absDir, cfg)
	if err != nil {
		return err
	}

	// Output result.
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{
			"status":       "initialized",
			"dir":          absDir,
			"pet":          cfg.Pet.Name,
			"species":      cfg.Pet.Species,
			"availability": cfg.Caregiver.Availability.String(),
			"profile":      cfg.ConfigPath(),
			"tasks":        cfg.TasksPath(),
		})
	}

	output.Messagef(os.Stdout, "Initialized profile for %q in %s", cfg.Pet.Name, absDir)
	output.Messagef(os.Stdout, "  Profile:      %s", cfg.ConfigPath())
	output.Messagef(os.Stdout, "  Tasks:        %s", cfg.TasksPath())
	output.Messagef(os.Stdout, "  Availability: %s", cfg.Caregiver.Availability)
	return nil
}
