package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/filelock"
	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add [TITLE]",
	Aliases: []string{"create"},
	Short:   "Add a new care task",
	Long: `Creates a new task file with the given title and optional fields.

Title can be provided as a positional argument or via --title flag.
Notes can be provided via --notes or --description flag.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("title", "", "task title (alternative to positional argument)")
	addCmd.Flags().String("type", "", "task type ("+strings.Join(config.DefaultTaskTypes, ", ")+")")
	addCmd.Flags().String("priority", "", "task priority (default from profile)")
	addCmd.Flags().IntP("duration", "d", 30, "duration in minutes") //nolint:mnd // default duration
	addCmd.Flags().String("window", "", "allowed time window (HH:MM-HH:MM, default full day)")
	addCmd.Flags().String("start", "", "fixed start time (HH:MM or minutes)")
	addCmd.Flags().String("depends-on", "", "title of a task that must be scheduled first")
	addCmd.Flags().Bool("flexible", false, "defer to gap-filling instead of a fixed window")
	addCmd.Flags().String("frequency", "", "recurrence ("+strings.Join(config.DefaultFrequencies, ", ")+")")
	addCmd.Flags().String("notes", "", "task notes (markdown)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "description" {
			name = "notes"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Acquire an exclusive lock to prevent concurrent adds from reading the
	// same next_id and generating duplicate task IDs.
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

	title, err := resolveAddTitle(cmd, args)
	if err != nil {
		return err
	}
	now := time.Now()

	t := &task.Task{
		ID:       cfg.NextID,
		Title:    title,
		Type:     cfg.Defaults.Type,
		Priority: cfg.Defaults.Priority,
		Window:   daytime.FullDay,
		Flexible: cfg.Defaults.Flexible,
		Created:  now,
		Updated:  now,
	}

	if err := applyAddFlags(cmd, t, cfg); err != nil {
		return err
	}

	if err := t.Validate(); err != nil {
		return err
	}

	// Validate the dependency reference against existing tasks.
	if t.DependsOn != "" {
		existing, _, err := task.ReadAllLenient(cfg.TasksPath())
		if err != nil {
			return err
		}
		if err := task.ValidateDependencyTitle(existing, t.Title, t.DependsOn); err != nil {
			return err
		}
	}

	// Generate filename and write.
	slug := task.GenerateSlug(title)
	filename := task.GenerateFilename(t.ID, slug)
	path := filepath.Join(cfg.TasksPath(), filename)
	t.File = path

	if err := task.Write(path, t); err != nil {
		return fmt.Errorf("writing task: %w", err)
	}

	// Increment next_id and save config.
	cfg.NextID++
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	logActivity(cfg, "add", t.ID, t.Title)

	return outputAddResult(t, path)
}

func outputAddResult(t *task.Task, path string) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added task #%d: %s", t.ID, t.Title)
	output.Messagef(os.Stdout, "  File: %s", path)
	output.Messagef(os.Stdout, "  Priority: %s | Type: %s | Duration: %dm | Window: %s",
		t.Priority, t.Type, t.DurationMinutes, t.Window)
	if t.DependsOn != "" {
		output.Messagef(os.Stdout, "  Depends on: %s", t.DependsOn)
	}
	return nil
}

// resolveAddTitle returns the task title from either the positional arg or --title flag.
func resolveAddTitle(cmd *cobra.Command, args []string) (string, error) {
	flagTitle, _ := cmd.Flags().GetString("title")
	hasPositional := len(args) > 0
	hasFlag := flagTitle != ""

	switch {
	case hasPositional && hasFlag:
		return "", clierr.New(clierr.InvalidInput,
			"title provided both as argument and --title flag; use one or the other")
	case hasPositional:
		return args[0], nil
	case hasFlag:
		return flagTitle, nil
	default:
		return "", errors.New("title is required: provide it as an argument or with --title")
	}
}

func applyAddFlags(cmd *cobra.Command, t *task.Task, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("type"); v != "" {
		t.Type = v
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		if err := task.ValidatePriority(v, cfg.Priorities); err != nil {
			return err
		}
		t.Priority = v
	}
	if v, _ := cmd.Flags().GetInt("duration"); v > 0 {
		t.DurationMinutes = v
	}
	if v, _ := cmd.Flags().GetString("window"); v != "" {
		w, err := daytime.ParseWindow(v)
		if err != nil {
			return clierr.Newf(clierr.InvalidWindow, "%v", err)
		}
		t.Window = w
	}
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		c, err := daytime.Parse(v)
		if err != nil {
			return clierr.Newf(clierr.InvalidTime, "%v", err)
		}
		t.StartTime = &c
	}
	if v, _ := cmd.Flags().GetString("depends-on"); v != "" {
		t.DependsOn = v
	}
	if v, _ := cmd.Flags().GetBool("flexible"); cmd.Flags().Changed("flexible") {
		t.Flexible = v
	}
	if v, _ := cmd.Flags().GetString("frequency"); v != "" {
		if err := task.ValidateFrequency(v); err != nil {
			return err
		}
		t.Frequency = v
	}
	if v, _ := cmd.Flags().GetString("notes"); v != "" {
		t.Notes = v
	}
	return nil
}
