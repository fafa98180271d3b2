package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/task"
)

var (
	addDescription string
	addStatus      string
	addDifficulty  string
	addPriority    string
	addDue         string
)

var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Task description")
	addCmd.Flags().StringVarP(&addStatus, "status", "s", "pending", "Status: pending, in_progress, done, cancelled")
	addCmd.Flags().StringVar(&addDifficulty, "difficulty", "easy", "Difficulty: hard, medium, easy")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority: low, medium, high, urgent")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")")
}

func runAdd(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	status, err := task.ParseStatus(addStatus)
	if err != nil {
		return err
	}
	difficulty, err := task.ParseDifficulty(addDifficulty)
	if err != nil {
		return err
	}
	priority, err := task.ParsePriority(addPriority)
	if err != nil {
		return err
	}

	var due *time.Time
	if addDue != "" {
		parsed, err := parseDue(addDue)
		if err != nil {
			return err
		}
		due = parsed
	}

	title := strings.Join(args, " ")
	t, err := env.Store.Add(title, addDescription, status, difficulty, priority, due)
	if err != nil {
		return err
	}
	if err := env.save(); err != nil {
		return err
	}

	fmt.Printf("Added %s: %s [%s]\n", shortID(t.ID), t.Title, t.Priority)
	return nil
}

func parseDue(s string) (*time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: unrecognized date %q", task.ErrValidation, s)
}
