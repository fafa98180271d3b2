package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdeev/taskdeck/internal/task"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	RunE:  runStats,
}

var criticalCmd = &cobra.Command{
	Use:   "critical",
	Short: "List critical tasks",
	Long:  "A task is critical when it is not done, has High or Urgent priority, and is overdue or exactly Urgent.",
	RunE:  runCritical,
}

func runStats(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	st := env.Store.Statistics()
	fmt.Printf("Active tasks: %d\n", st.Total)
	for status := task.StatusPending; status <= task.StatusCancelled; status++ {
		b := st.ByStatus[status]
		fmt.Printf("  %-12s %3d  (%d%%)\n", status.Label()+":", b.Count, b.Percent)
	}
	fmt.Println()
	for difficulty := task.DifficultyHard; difficulty <= task.DifficultyEasy; difficulty++ {
		b := st.ByDifficulty[difficulty]
		fmt.Printf("  %-12s %3d  (%d%%)\n", difficulty.Label()+":", b.Count, b.Percent)
	}
	fmt.Printf("\nDeleted: %d   High priority: %d   Overdue: %d\n",
		st.Deleted, st.HighPriority, st.Overdue)
	return nil
}

func runCritical(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}

	tasks := env.Store.ListCritical()
	if len(tasks) == 0 {
		fmt.Println("No critical tasks.")
		return nil
	}
	for _, t := range tasks {
		printTaskLine(t)
	}
	return nil
}
