package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/schedule"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Report overlaps between fixed-time tasks",
	Long: `Checks every task that carries a fixed start time against the others
and reports each overlapping pair. Tasks without a start time cannot conflict.`,
	RunE: runConflicts,
}

func init() {
	conflictsCmd.Flags().Bool("all", false, "include completed tasks")
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	includeCompleted, _ := cmd.Flags().GetBool("all")

	tasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return err
	}
	printWarnings(warnings)

	if !includeCompleted {
		open := false
		tasks = task.Filter(tasks, task.FilterOptions{Completed: &open})
	}

	conflicts := schedule.DetectConflicts(tasks)

	format := outputFormat()
	if format == output.FormatJSON {
		if conflicts == nil {
			conflicts = []schedule.Conflict{}
		}
		return output.JSON(os.Stdout, conflicts)
	}
	if format == output.FormatCompact {
		output.ConflictCompact(os.Stdout, conflicts)
		return nil
	}
	output.ConflictTable(os.Stdout, conflicts)
	return nil
}
