package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/console"
)

var rootCmd = &cobra.Command{
	Use:   "taskdeck",
	Short: "A single-user task manager",
	Long:  "taskdeck — manage tasks from a text console, persisted to a local JSON file.\nRun without arguments for the interactive menu.",
	RunE:  runMenu,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(relateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(criticalCmd)
	rootCmd.AddCommand(backupCmd)
}

// runMenu starts the interactive console; final state is persisted on
// the way out.
func runMenu(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	c := console.New(env.Store, env.Gateway, os.Stdin, os.Stdout)
	if err := c.Run(); err != nil {
		return err
	}
	return env.Gateway.Save(env.Store.All())
}
