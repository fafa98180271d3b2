package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/taskdeck/internal/task"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.currentScreen {
		case screenCreate:
			return m.handleCreateKey(msg)
		case screenDetail:
			return m.handleDetailKey(msg)
		default:
			return m.handleListKey(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.statusMsg = ""

	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()

	case "enter":
		if t := m.selectedTask(); t != nil {
			m.selectedID = t.ID
			m.currentScreen = screenDetail
		}

	case "c":
		m.currentScreen = screenCreate
		m.inputFocused = 0
		m.createPriority = task.PriorityMedium
		m.titleInput.Reset()
		m.descInput.Reset()
		m.dueInput.Reset()
		m.titleInput.Focus()
		return m, textinput.Blink

	case "d":
		if t := m.selectedTask(); t != nil {
			m.toggleDone(t)
		}

	case "x":
		if t := m.selectedTask(); t != nil {
			if _, err := m.store.SoftDelete(t.ID); err == nil {
				m.persist()
				m.statusMsg = "Deleted: " + t.Title
				m.refresh()
			}
		}

	case "f":
		m.cycleFilter()
	}

	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.currentScreen = screenList
		m.refresh()
		return m, nil

	case "d":
		if t, ok := m.store.FindByID(m.selectedID); ok {
			m.toggleDone(&t)
		}

	case "p":
		// Cycle priority in place.
		if t, ok := m.store.FindByID(m.selectedID); ok {
			next := t.Priority + 1
			if next > task.PriorityUrgent {
				next = task.PriorityLow
			}
			if _, err := m.store.SetPriority(t.ID, next); err == nil {
				m.persist()
			}
		}

	case "x":
		if _, err := m.store.SoftDelete(m.selectedID); err == nil {
			m.persist()
			m.currentScreen = screenList
			m.refresh()
		}
	}

	return m, nil
}

func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.currentScreen = screenList
		return m, nil

	case "tab", "shift+tab":
		m.inputFocused = (m.inputFocused + 1) % 3
		m.titleInput.Blur()
		m.descInput.Blur()
		m.dueInput.Blur()
		switch m.inputFocused {
		case 0:
			m.titleInput.Focus()
		case 1:
			m.descInput.Focus()
		case 2:
			m.dueInput.Focus()
		}
		return m, textinput.Blink

	case "ctrl+p":
		m.createPriority++
		if m.createPriority > task.PriorityUrgent {
			m.createPriority = task.PriorityLow
		}
		return m, nil

	case "enter":
		return m.submitCreate()
	}

	var cmd tea.Cmd
	switch m.inputFocused {
	case 0:
		m.titleInput, cmd = m.titleInput.Update(msg)
	case 1:
		m.descInput, cmd = m.descInput.Update(msg)
	case 2:
		m.dueInput, cmd = m.dueInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitCreate() (tea.Model, tea.Cmd) {
	var due *time.Time
	if v := m.dueInput.Value(); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			m.statusMsg = "Unrecognized due date: " + v
			return m, nil
		}
		due = &parsed
	}

	t, err := m.store.Add(
		m.titleInput.Value(), m.descInput.Value(),
		task.StatusPending, task.DifficultyEasy, m.createPriority, due,
	)
	if err != nil {
		m.statusMsg = err.Error()
		return m, nil
	}

	m.persist()
	m.statusMsg = "Added: " + t.Title
	m.currentScreen = screenList
	m.refresh()
	return m, nil
}

// toggleDone flips between Done and Pending.
func (m *Model) toggleDone(t *task.Task) {
	next := task.StatusDone
	if t.Status == task.StatusDone {
		next = task.StatusPending
	}
	if _, err := m.store.SetStatus(t.ID, next); err == nil {
		m.persist()
		m.refresh()
	}
}
