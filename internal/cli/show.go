package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/task"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show task details",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	id, err := resolveID(env.Store, args[0])
	if err != nil {
		return err
	}
	t, found := env.Store.FindByID(id)
	if !found {
		// Soft-deleted tasks are reachable by listing, not by lookup.
		return fmt.Errorf("%w: %s", task.ErrNotFound, args[0])
	}

	fmt.Printf("%s\n", t.Title)
	fmt.Printf("  ID:         %s\n", t.ID)
	if t.Description != "" {
		fmt.Printf("  Desc:       %s\n", t.Description)
	}
	fmt.Printf("  Status:     %s\n", t.Status.Label())
	fmt.Printf("  Difficulty: %s\n", t.Difficulty.Label())
	fmt.Printf("  Priority:   %s\n", t.Priority.Label())
	fmt.Printf("  Due:        %s\n", task.FormatInstant(t.DueAt))
	fmt.Printf("  Created:    %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  Edited:     %s\n", t.LastEditedAt.Local().Format("2006-01-02 15:04"))

	related, err := env.Store.ListRelated(t.ID)
	if err == nil && len(related) > 0 {
		fmt.Println("  Related:")
		for _, r := range related {
			fmt.Printf("    %s  %s\n", shortID(r.ID), r.Title)
		}
	}
	return nil
}
