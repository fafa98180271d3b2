package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/avdeev/taskdeck/internal/task"
)

// --- Color palette ---
var (
	clrSubtle    = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#666666"}
	clrHighlight = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	clrGreen     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	clrYellow    = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F59E0B"}
	clrRed       = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	clrBlue      = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	clrDim       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"}
)

// --- Styles ---
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(clrHighlight)
	dimStyle    = lipgloss.NewStyle().Foreground(clrDim)
	subtleStyle = lipgloss.NewStyle().Foreground(clrSubtle)

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(clrHighlight).
			Padding(1, 2).
			Width(64)

	statusStyle = lipgloss.NewStyle().Foreground(clrGreen).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(clrRed).Bold(true)

	footerKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(clrHighlight)
	footerDescStyle = lipgloss.NewStyle().Foreground(clrSubtle)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case screenDetail:
		return m.viewDetail()
	case screenCreate:
		return m.viewCreate()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder

	header := titleStyle.Render("taskdeck")
	if m.filter != nil {
		header += dimStyle.Render(fmt.Sprintf(" — %s (%d)", m.filter.Label(), len(m.tasks)))
	} else {
		header += dimStyle.Render(fmt.Sprintf(" — %d active", len(m.tasks)))
	}
	b.WriteString(header + "\n\n")

	if len(m.tasks) == 0 {
		b.WriteString(dimStyle.Render("  No tasks. Press ") +
			footerKeyStyle.Render("c") +
			dimStyle.Render(" to create one.") + "\n")
	}

	now := time.Now()
	for i, t := range m.tasks {
		b.WriteString(m.renderTaskRow(t, i == m.cursor, now) + "\n")
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		if strings.HasPrefix(m.statusMsg, "Save failed") {
			b.WriteString(errorStyle.Render("  " + m.statusMsg))
		} else {
			b.WriteString(statusStyle.Render("  " + m.statusMsg))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderFooter([]struct{ key, desc string }{
		{"↑↓", "navigate"},
		{"enter", "open"},
		{"c", "create"},
		{"d", "done"},
		{"x", "delete"},
		{"f", "filter"},
		{"q", "quit"},
	}))

	return b.String()
}

func (m Model) renderTaskRow(t task.Task, selected bool, now time.Time) string {
	cursor := "  "
	if selected {
		cursor = lipgloss.NewStyle().Foreground(clrHighlight).Render("▸ ")
	}

	var dot string
	switch t.Status {
	case task.StatusDone:
		dot = lipgloss.NewStyle().Foreground(clrGreen).Render("●")
	case task.StatusInProgress:
		dot = lipgloss.NewStyle().Foreground(clrBlue).Render("◉")
	case task.StatusCancelled:
		dot = dimStyle.Render("—")
	default:
		dot = dimStyle.Render("○")
	}

	priStyle := dimStyle
	switch t.Priority {
	case task.PriorityUrgent:
		priStyle = lipgloss.NewStyle().Foreground(clrRed).Bold(true)
	case task.PriorityHigh:
		priStyle = lipgloss.NewStyle().Foreground(clrRed)
	case task.PriorityMedium:
		priStyle = lipgloss.NewStyle().Foreground(clrYellow)
	}

	title := truncate(t.Title, 40)
	if selected {
		title = lipgloss.NewStyle().Bold(true).Render(title)
	}

	row := fmt.Sprintf("%s%s %s %-42s %s", cursor, dot, priStyle.Render(fmt.Sprintf("%-7s", t.Priority.Label())), title, subtleStyle.Render(t.Difficulty.Label()))

	if t.IsOverdue(now) {
		row += lipgloss.NewStyle().Foreground(clrRed).Render("  overdue")
	} else if t.DueAt != nil {
		row += dimStyle.Render("  due " + t.DueAt.Local().Format("2006-01-02"))
	}
	if t.IsCritical(now) {
		row += lipgloss.NewStyle().Foreground(clrRed).Bold(true).Render("  ⚠")
	}

	return row
}

func (m Model) viewDetail() string {
	t, ok := m.store.FindByID(m.selectedID)
	if !ok {
		return dimStyle.Render("Task is gone.") + "\n\n" + renderFooter([]struct{ key, desc string }{{"esc", "back"}})
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(t.Title) + "\n\n")
	if t.Description != "" {
		b.WriteString(t.Description + "\n\n")
	}
	b.WriteString(fmt.Sprintf("Status:     %s\n", t.Status.Label()))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", t.Difficulty.Label()))
	b.WriteString(fmt.Sprintf("Priority:   %s\n", t.Priority.Label()))
	b.WriteString(fmt.Sprintf("Due:        %s\n", task.FormatInstant(t.DueAt)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("Created %s · edited %s",
		t.CreatedAt.Local().Format("2006-01-02 15:04"),
		t.LastEditedAt.Local().Format("2006-01-02 15:04"))) + "\n")

	if related, err := m.store.ListRelated(t.ID); err == nil && len(related) > 0 {
		b.WriteString("\nRelated:\n")
		for _, r := range related {
			b.WriteString("  · " + truncate(r.Title, 50) + "\n")
		}
	}

	content := detailBoxStyle.Render(b.String())
	footer := renderFooter([]struct{ key, desc string }{
		{"d", "toggle done"},
		{"p", "cycle priority"},
		{"x", "delete"},
		{"esc", "back"},
	})
	return content + "\n" + footer
}

func (m Model) viewCreate() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("New task") + "\n\n")
	b.WriteString("Title:\n" + m.titleInput.View() + "\n\n")
	b.WriteString("Description:\n" + m.descInput.View() + "\n\n")
	b.WriteString("Due date:\n" + m.dueInput.View() + "\n\n")

	priStyle := lipgloss.NewStyle().Bold(true)
	switch m.createPriority {
	case task.PriorityUrgent, task.PriorityHigh:
		priStyle = priStyle.Foreground(clrRed)
	case task.PriorityMedium:
		priStyle = priStyle.Foreground(clrYellow)
	default:
		priStyle = priStyle.Foreground(clrSubtle)
	}
	b.WriteString(fmt.Sprintf("Priority: %s\n\n", priStyle.Render(m.createPriority.Label())))

	if m.statusMsg != "" {
		b.WriteString(errorStyle.Render(m.statusMsg) + "\n\n")
	}

	b.WriteString(footerDescStyle.Render("enter create • tab switch field • ctrl+p priority • esc cancel"))
	return detailBoxStyle.Render(b.String())
}

func renderFooter(keys []struct{ key, desc string }) string {
	var parts []string
	for _, k := range keys {
		parts = append(parts, footerKeyStyle.Render(k.key)+" "+footerDescStyle.Render(k.desc))
	}
	return "  " + strings.Join(parts, "  ")
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
