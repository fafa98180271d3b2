package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/task"
)

var doneCmd = &cobra.Command{
	Use:   "done [id]",
	Short: "Mark a task as done",
	Args:  cobra.ExactArgs(1),
	RunE:  runDone,
}

var rmCmd = &cobra.Command{
	Use:   "rm [id]",
	Short: "Soft-delete a task",
	Long:  "Flags a task as deleted without removing the record. Use restore to bring it back.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

var restoreCmd = &cobra.Command{
	Use:   "restore [id]",
	Short: "Restore a soft-deleted task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRestore,
}

var relateCmd = &cobra.Command{
	Use:   "relate [id] [id]",
	Short: "Relate two tasks to each other",
	Args:  cobra.ExactArgs(2),
	RunE:  runRelate,
}

func runDone(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	id, err := resolveID(env.Store, args[0])
	if err != nil {
		return err
	}
	t, err := env.Store.SetStatus(id, task.StatusDone)
	if err != nil {
		return err
	}
	if err := env.save(); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", t.Title)
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	id, err := resolveID(env.Store, args[0])
	if err != nil {
		return err
	}
	t, err := env.Store.SoftDelete(id)
	if err != nil {
		return err
	}
	if err := env.save(); err != nil {
		return err
	}
	fmt.Printf("Deleted: %s (restore with: taskdeck restore %s)\n", t.Title, shortID(t.ID))
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	id, err := resolveID(env.Store, args[0])
	if err != nil {
		return err
	}
	t, err := env.Store.Restore(id)
	if err != nil {
		return err
	}
	if err := env.save(); err != nil {
		return err
	}
	fmt.Printf("Restored: %s\n", t.Title)
	return nil
}

func runRelate(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	idA, err := resolveID(env.Store, args[0])
	if err != nil {
		return err
	}
	idB, err := resolveID(env.Store, args[1])
	if err != nil {
		return err
	}
	if err := env.Store.Relate(idA, idB); err != nil {
		return err
	}
	if err := env.save(); err != nil {
		return err
	}
	fmt.Printf("Related %s and %s\n", shortID(idA), shortID(idB))
	return nil
}
