package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/schedule"
	"github.com/pawpal-dev/pawpal/internal/task"
	"github.com/pawpal-dev/pawpal/internal/watcher"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate the day's care plan",
	Long: `Ranks open tasks by priority and urgency, places them inside the
caregiver's availability, and fills idle gaps with flexible tasks. Completed
tasks are left out; pass --all to plan them anyway.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().Bool("all", false, "include completed tasks in the plan")
	planCmd.Flags().BoolP("watch", "w", false, "re-plan and re-print whenever task files change")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	includeCompleted, _ := cmd.Flags().GetBool("all")
	watch, _ := cmd.Flags().GetBool("watch")

	if watch {
		return watchPlan(cfg, includeCompleted)
	}
	return printPlan(cfg, includeCompleted)
}

func printPlan(cfg *config.Config, includeCompleted bool) error {
	plan, err := buildPlan(cfg, includeCompleted)
	if err != nil {
		return err
	}

	format := outputFormat()
	if format == output.FormatJSON {
		if plan == nil {
			plan = schedule.Plan{}
		}
		return output.JSON(os.Stdout, plan)
	}
	if format == output.FormatCompact {
		output.PlanCompact(os.Stdout, plan)
		return nil
	}
	output.PlanTable(os.Stdout, plan)
	return nil
}

func buildPlan(cfg *config.Config, includeCompleted bool) (schedule.Plan, error) {
	tasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return nil, err
	}
	printWarnings(warnings)

	s := newScheduler(cfg)
	for _, t := range tasks {
		if t.Completed && !includeCompleted {
			continue
		}
		if !s.AddTask(*t) {
			fmt.Fprintf(os.Stderr, "Warning: skipping invalid task #%d (%s)\n", t.ID, t.Title)
		}
	}

	return s.GeneratePlan()
}

// watchPlan re-plans and re-prints whenever the profile's files change,
// until interrupted.
func watchPlan(cfg *config.Config, includeCompleted bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := printPlan(cfg, includeCompleted); err != nil {
		return err
	}

	paths := []string{cfg.TasksPath()}
	if cfg.Dir() != cfg.TasksPath() {
		paths = append(paths, cfg.Dir())
	}

	w, err := watcher.New(paths, func() {
		fmt.Fprintln(os.Stdout)
		if err := printPlan(cfg, includeCompleted); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	})
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	w.Run(ctx, func(err error) {
		fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
	})
	return nil
}
