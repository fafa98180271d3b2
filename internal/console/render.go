package console

import (
	"time"

	"github.com/avdeev/taskdeck/internal/task"
)

// ANSI color codes.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

func priorityColor(p task.Priority) string {
	switch p {
	case task.PriorityUrgent:
		return colorRed + colorBold
	case task.PriorityHigh:
		return colorRed
	case task.PriorityMedium:
		return colorYellow
	default:
		return colorDim
	}
}

func statusColor(s task.Status) string {
	switch s {
	case task.StatusDone:
		return colorGreen
	case task.StatusInProgress:
		return colorBlue
	case task.StatusCancelled:
		return colorDim
	default:
		return ""
	}
}

// printTaskLine renders one numbered row of a task list.
func (c *Console) printTaskLine(n int, t task.Task) {
	marker := " "
	if t.IsOverdue(time.Now()) {
		marker = colorRed + "!" + colorReset
	}
	c.printf("%3d) %s %s%-12s%s %s%-7s%s %s",
		n, marker,
		statusColor(t.Status), t.Status.Label(), colorReset,
		priorityColor(t.Priority), t.Priority.Label(), colorReset,
		truncate(t.Title, 48))
	if t.DueAt != nil {
		c.printf("  %sdue %s%s", colorDim, task.FormatInstant(t.DueAt), colorReset)
	}
	c.printf("\n")
}

// printTaskDetail renders the full field view of one task.
func (c *Console) printTaskDetail(t task.Task) {
	c.printf("\n%s%s%s\n", colorBold, t.Title, colorReset)
	c.printf("  ID:         %s%s%s\n", colorDim, t.ID, colorReset)
	if t.Description != "" {
		c.printf("  Desc:       %s\n", t.Description)
	}
	c.printf("  Status:     %s%s%s\n", statusColor(t.Status), t.Status.Label(), colorReset)
	c.printf("  Difficulty: %s\n", t.Difficulty.Label())
	c.printf("  Priority:   %s%s%s\n", priorityColor(t.Priority), t.Priority.Label(), colorReset)
	c.printf("  Due:        %s\n", task.FormatInstant(t.DueAt))
	c.printf("  Created:    %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	c.printf("  Edited:     %s\n", t.LastEditedAt.Local().Format("2006-01-02 15:04"))
	if len(t.RelatedIDs) > 0 {
		c.printf("  Relations:  %d\n", len(t.RelatedIDs))
	}
	if t.IsCritical(time.Now()) {
		c.printf("  %s%sCRITICAL%s\n", colorBold, colorRed, colorReset)
	}
}

// showStatistics renders the aggregate summary.
func (c *Console) showStatistics() {
	st := c.store.Statistics()

	c.printf("\n%sStatistics%s\n", colorBold, colorReset)
	c.printf("  Active tasks: %d\n\n", st.Total)

	c.printf("  %sBy status%s\n", colorBold, colorReset)
	for status := task.StatusPending; status <= task.StatusCancelled; status++ {
		b := st.ByStatus[status]
		c.printf("    %-12s %3d  (%d%%)\n", status.Label()+":", b.Count, b.Percent)
	}

	c.printf("\n  %sBy difficulty%s\n", colorBold, colorReset)
	for difficulty := task.DifficultyHard; difficulty <= task.DifficultyEasy; difficulty++ {
		b := st.ByDifficulty[difficulty]
		c.printf("    %-12s %3d  (%d%%)\n", difficulty.Label()+":", b.Count, b.Percent)
	}

	c.printf("\n  Deleted:       %d\n", st.Deleted)
	c.printf("  High priority: %s%d%s\n", colorYellow, st.HighPriority, colorReset)
	c.printf("  Overdue:       %s%d%s\n", colorRed, st.Overdue, colorReset)
}

// truncate caps s at maxLen runes, never splitting a multibyte rune.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
