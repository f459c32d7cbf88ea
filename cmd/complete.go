package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/filelock"
	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var completeCmd = &cobra.Command{
	Use:     "complete ID[,ID,...]",
	Aliases: []string{"done"},
	Short:   "Mark tasks as completed",
	Long: `Marks tasks as completed. A completed daily or weekly task is rolled
into a fresh open task with a new ID, carrying the same activity.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	// Recurrence rollover allocates task IDs, so the whole batch runs under
	// the profile lock.
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

	if len(ids) == 1 {
		return completeSingleTask(cfg, ids[0])
	}

	return runBatch(ids, func(id int) error {
		_, _, err := executeComplete(cfg, id)
		return err
	})
}

func completeSingleTask(cfg *config.Config, id int) error {
	t, next, err := executeComplete(cfg, id)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		result := map[string]interface{}{
			"status": "completed",
			"id":     t.ID,
			"title":  t.Title,
		}
		if next != nil {
			result["next_id"] = next.ID
		}
		return output.JSON(os.Stdout, result)
	}

	output.Messagef(os.Stdout, "Completed task #%d: %s", t.ID, t.Title)
	if next != nil {
		output.Messagef(os.Stdout, "  Recurring %s: rolled into task #%d", t.Frequency, next.ID)
	}
	return nil
}

// executeComplete marks the task completed and, for recurring tasks, writes
// the successor. Completing an already-completed task is a no-op.
func executeComplete(cfg *config.Config, id int) (*task.Task, *task.Task, error) {
	path, err := task.FindByID(cfg.TasksPath(), id)
	if err != nil {
		return nil, nil, err
	}

	t, err := task.Read(path)
	if err != nil {
		return nil, nil, err
	}

	alreadyDone := t.Completed
	now := time.Now()
	t.MarkComplete(now)

	if err := task.Write(path, t); err != nil {
		return nil, nil, fmt.Errorf("writing task: %w", err)
	}

	var next *task.Task
	if !alreadyDone {
		if next = task.NextOccurrence(t, cfg.NextID, now); next != nil {
			slug := task.GenerateSlug(next.Title)
			nextPath := filepath.Join(cfg.TasksPath(), task.GenerateFilename(next.ID, slug))
			next.File = nextPath
			if err := task.Write(nextPath, next); err != nil {
				return nil, nil, fmt.Errorf("writing successor task: %w", err)
			}
			cfg.NextID++
			if err := cfg.Save(); err != nil {
				return nil, nil, fmt.Errorf("saving profile: %w", err)
			}
			logActivity(cfg, "roll", next.ID, next.Title)
		}
		logActivity(cfg, "complete", t.ID, t.Title)
	}

	return t, next, nil
}
