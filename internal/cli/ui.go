package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse tasks in an interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv()
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.New(env.Store, env.Gateway), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("ui: %w", err)
		}
		return env.save()
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
