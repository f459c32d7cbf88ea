package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/daytime"
	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule ID TIME",
	Short: "Fix a task at a new start time",
	Long: `Pins a task to a fixed start time (HH:MM or minutes since midnight).
The new interval must stay inside the task's time window.`,
	Args: cobra.ExactArgs(2),
	RunE: runReschedule,
}

func init() {
	rootCmd.AddCommand(rescheduleCmd)
}

func runReschedule(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}
	if len(ids) != 1 {
		return clierr.New(clierr.InvalidTaskID, "reschedule takes a single task ID")
	}

	start, err := daytime.Parse(args[1])
	if err != nil {
		return clierr.Newf(clierr.InvalidTime, "invalid start time: %v", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := task.FindByID(cfg.TasksPath(), ids[0])
	if err != nil {
		return err
	}
	t, err := task.Read(path)
	if err != nil {
		return err
	}

	if err := t.Reschedule(start, time.Now()); err != nil {
		return err
	}
	if err := task.Write(path, t); err != nil {
		return fmt.Errorf("writing task: %w", err)
	}
	logActivity(cfg, "reschedule", t.ID, start.String())

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status":     "rescheduled",
			"id":         t.ID,
			"title":      t.Title,
			"start_time": start.String(),
		})
	}
	output.Messagef(os.Stdout, "Rescheduled task #%d to %s: %s", t.ID, start, t.Title)
	return nil
}
