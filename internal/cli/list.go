package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/store"
	"github.com/avdeev/taskdeck/internal/task"
)

var (
	listSort    string
	listDeleted bool
)

var listCmd = &cobra.Command{
	Use:   "list [status]",
	Short: "List tasks, optionally filtered by status",
	RunE:  runList,
}

var searchCmd = &cobra.Command{
	Use:   "search [substring]",
	Short: "Search active tasks by title substring",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by: title, created, due, difficulty")
	listCmd.Flags().BoolVar(&listDeleted, "deleted", false, "Show soft-deleted tasks instead")
}

func runList(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	var tasks []task.Task
	switch {
	case listDeleted:
		tasks = env.Store.ListDeleted()
	case len(args) > 0:
		status, err := task.ParseStatus(args[0])
		if err != nil {
			return err
		}
		tasks = env.Store.ListByStatus(status)
	case listSort != "":
		tasks, err = env.Store.Sort(store.SortBy(listSort))
		if err != nil {
			return err
		}
	default:
		tasks = env.Store.ListActive()
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	for _, t := range tasks {
		printTaskLine(t)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	tasks := env.Store.SearchTitle(strings.Join(args, " "))
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}
	for _, t := range tasks {
		printTaskLine(t)
	}
	return nil
}
