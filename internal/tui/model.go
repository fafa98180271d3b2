// Package tui is an interactive task browser built on bubbletea:
// a filterable list, a detail panel, and a create form. Every mutation
// goes through the store and is persisted immediately.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdeev/taskdeck/internal/storage"
	"github.com/avdeev/taskdeck/internal/store"
	"github.com/avdeev/taskdeck/internal/task"
)

// screen represents which view the TUI is in.
type screen int

const (
	screenList   screen = iota // task list (main)
	screenDetail               // single-task panel
	screenCreate               // new-task form
)

// Model is the top-level bubbletea model.
type Model struct {
	store   *store.Store
	gateway *storage.Gateway
	width   int
	height  int

	currentScreen screen

	// List state. filter == nil shows all active tasks.
	tasks  []task.Task
	cursor int
	filter *task.Status

	// Create form inputs.
	titleInput     textinput.Model
	descInput      textinput.Model
	dueInput       textinput.Model
	inputFocused   int
	createPriority task.Priority

	// Selected task id for the detail screen.
	selectedID string

	statusMsg string
	quitting  bool
}

// New creates the TUI model over an already-loaded store.
func New(s *store.Store, g *storage.Gateway) Model {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 120
	ti.Width = 50

	di := textinput.New()
	di.Placeholder = "Description (optional)..."
	di.CharLimit = 500
	di.Width = 50

	du := textinput.New()
	du.Placeholder = "Due YYYY-MM-DD (optional)..."
	du.CharLimit = 16
	du.Width = 50

	m := Model{
		store:          s,
		gateway:        g,
		currentScreen:  screenList,
		titleInput:     ti,
		descInput:      di,
		dueInput:       du,
		createPriority: task.PriorityMedium,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible task slice from the store.
func (m *Model) refresh() {
	if m.filter != nil {
		m.tasks = m.store.ListByStatus(*m.filter)
	} else {
		m.tasks = m.store.ListActive()
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selectedTask() *task.Task {
	if m.cursor < len(m.tasks) {
		t := m.tasks[m.cursor]
		return &t
	}
	return nil
}

// persist saves the snapshot; failures surface in the status line.
func (m *Model) persist() {
	if err := m.gateway.Save(m.store.All()); err != nil {
		m.statusMsg = "Save failed: " + err.Error()
	}
}

// cycleFilter walks nil -> Pending -> InProgress -> Done -> Cancelled -> nil.
func (m *Model) cycleFilter() {
	switch {
	case m.filter == nil:
		st := task.StatusPending
		m.filter = &st
	case *m.filter == task.StatusCancelled:
		m.filter = nil
	default:
		st := *m.filter + 1
		m.filter = &st
	}
	m.cursor = 0
	m.refresh()
}
