package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the task file to a timestamped backup",
	RunE:  runBackup,
}

func runBackup(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	dest, err := env.Gateway.Backup()
	if err != nil {
		return err
	}
	if dest == "" {
		fmt.Println("No task file yet; nothing to back up.")
		return nil
	}
	fmt.Printf("Backed up to %s\n", dest)
	return nil
}
