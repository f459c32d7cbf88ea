package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a task's details",
	Long:  `Shows full task detail including notes rendered as markdown.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tasks := make([]*task.Task, 0, len(ids))
	for _, id := range ids {
		path, err := task.FindByID(cfg.TasksPath(), id)
		if err != nil {
			return err
		}
		t, err := task.Read(path)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
	}

	format := outputFormat()
	if format == output.FormatJSON {
		if len(tasks) == 1 {
			return output.JSON(os.Stdout, tasks[0])
		}
		return output.JSON(os.Stdout, tasks)
	}

	for i, t := range tasks {
		if i > 0 {
			output.Messagef(os.Stdout, "")
		}
		if format == output.FormatCompact {
			output.TaskDetailCompact(os.Stdout, t)
		} else {
			output.TaskDetail(os.Stdout, t)
		}
	}
	return nil
}
