package cmd

import (
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pawpal-dev/pawpal/internal/clierr"
	"github.com/pawpal-dev/pawpal/internal/config"
	"github.com/pawpal-dev/pawpal/internal/output"
	"github.com/pawpal-dev/pawpal/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long:    `Lists tasks with optional filtering, sorting, and output format control.`,
	RunE:    runList,
}

func init() {
	listCmd.Flags().StringSlice("priority", nil, "filter by priority (comma-separated)")
	listCmd.Flags().StringSlice("type", nil, "filter by type (comma-separated)")
	listCmd.Flags().Bool("flexible", false, "show only flexible tasks")
	listCmd.Flags().Bool("rigid", false, "show only rigid tasks")
	listCmd.Flags().Bool("done", false, "show only completed tasks")
	listCmd.Flags().Bool("open", false, "show only open tasks")
	listCmd.Flags().String("sort", "id", "sort field ("+strings.Join(task.ValidSortFields(), ", ")+")")
	listCmd.Flags().BoolP("reverse", "r", false, "reverse sort order")
	listCmd.Flags().IntP("limit", "n", 0, "limit number of results")
	listCmd.Flags().StringP("search", "s", "", "search tasks by title, notes, or type (case-insensitive)")
	listCmd.Flags().String("group-by", "", "group results by field ("+strings.Join(task.ValidGroupByFields(), ", ")+")")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	priorities, _ := cmd.Flags().GetStringSlice("priority")
	types, _ := cmd.Flags().GetStringSlice("type")
	flexible, _ := cmd.Flags().GetBool("flexible")
	rigid, _ := cmd.Flags().GetBool("rigid")
	done, _ := cmd.Flags().GetBool("done")
	open, _ := cmd.Flags().GetBool("open")
	sortBy, _ := cmd.Flags().GetString("sort")
	reverse, _ := cmd.Flags().GetBool("reverse")
	limit, _ := cmd.Flags().GetInt("limit")
	search, _ := cmd.Flags().GetString("search")
	groupBy, _ := cmd.Flags().GetString("group-by")

	if groupBy != "" && !slices.Contains(task.ValidGroupByFields(), groupBy) {
		return clierr.Newf(clierr.InvalidGroupBy, "invalid --group-by field %q; valid: %s",
			groupBy, strings.Join(task.ValidGroupByFields(), ", "))
	}
	if !slices.Contains(task.ValidSortFields(), sortBy) {
		return clierr.Newf(clierr.InvalidInput, "invalid --sort field %q; valid: %s",
			sortBy, strings.Join(task.ValidSortFields(), ", "))
	}

	filter := task.FilterOptions{
		Priorities: priorities,
		Types:      types,
		Search:     search,
	}
	if flexible {
		v := true
		filter.Flexible = &v
	} else if rigid {
		v := false
		filter.Flexible = &v
	}
	if done {
		v := true
		filter.Completed = &v
	} else if open {
		v := false
		filter.Completed = &v
	}

	tasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return err
	}
	printWarnings(warnings)

	tasks = task.Filter(tasks, filter)
	task.Sort(tasks, sortBy, reverse, cfg)
	if limit > 0 && limit < len(tasks) {
		tasks = tasks[:limit]
	}

	if groupBy != "" {
		return outputGroupedList(tasks, groupBy, cfg)
	}

	return outputTaskList(tasks)
}

func outputGroupedList(tasks []*task.Task, groupBy string, cfg *config.Config) error {
	grouped := task.GroupBy(tasks, groupBy, cfg)
	format := outputFormat()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, grouped)
	}
	if format == output.FormatCompact {
		output.GroupedCompact(os.Stdout, grouped)
		return nil
	}
	output.GroupedTable(os.Stdout, grouped)
	return nil
}

func outputTaskList(tasks []*task.Task) error {
	format := outputFormat()
	if format == output.FormatJSON {
		if tasks == nil {
			tasks = []*task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	}
	if format == output.FormatCompact {
		output.TaskCompact(os.Stdout, tasks)
		return nil
	}

	output.TaskTable(os.Stdout, tasks)
	return nil
}
