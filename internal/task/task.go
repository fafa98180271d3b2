// Package task defines the immutable task record and its pure
// transformation functions. Nothing here touches the store or the disk:
// every update returns a fresh value with lastEditedAt stamped.
package task

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents where a task sits in its lifecycle.
// The underlying ordinal is the persisted wire value.
type Status int

const (
	StatusPending Status = iota
	StatusInProgress
	StatusDone
	StatusCancelled
)

// Valid checks if the status is one of the declared values.
func (s Status) Valid() bool {
	return s >= StatusPending && s <= StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Label returns the human-readable form used by the console.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	case StatusCancelled:
		return "Cancelled"
	default:
		return s.String()
	}
}

// ParseStatus converts a machine name ("pending", "done", ...) to a Status.
func ParseStatus(s string) (Status, error) {
	for st := StatusPending; st <= StatusCancelled; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown status %q", ErrValidation, s)
}

// Difficulty ranks how hard a task is. Ordinals ascend from hardest,
// so sorting by the raw value puts the hardest work first.
type Difficulty int

const (
	DifficultyHard Difficulty = iota
	DifficultyMedium
	DifficultyEasy
)

// Valid checks if the difficulty is one of the declared values.
func (d Difficulty) Valid() bool {
	return d >= DifficultyHard && d <= DifficultyEasy
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyHard:
		return "hard"
	case DifficultyMedium:
		return "medium"
	case DifficultyEasy:
		return "easy"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Label returns the human-readable form used by the console.
func (d Difficulty) Label() string {
	switch d {
	case DifficultyHard:
		return "Hard"
	case DifficultyMedium:
		return "Medium"
	case DifficultyEasy:
		return "Easy"
	default:
		return d.String()
	}
}

// ParseDifficulty converts a machine name ("hard", "easy", ...) to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for d := DifficultyHard; d <= DifficultyEasy; d++ {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, s)
}

// Priority ranks how urgently a task needs attention.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityUrgent
)

// Valid checks if the priority is one of the declared values.
func (p Priority) Valid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	case PriorityUrgent:
		return "urgent"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Label returns the human-readable form used by the console.
func (p Priority) Label() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return p.String()
	}
}

// ParsePriority converts a machine name ("low", "urgent", ...) to a Priority.
func ParsePriority(s string) (Priority, error) {
	for p := PriorityLow; p <= PriorityUrgent; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown priority %q", ErrValidation, s)
}

// Task is one unit of work. Values are immutable once constructed:
// ID and CreatedAt never change, and every other field changes only by
// producing a new Task through one of the With*/relation functions,
// which also refresh LastEditedAt.
type Task struct {
	ID           string
	Title        string
	Description  string
	Status       Status
	Difficulty   Difficulty
	Priority     Priority
	CreatedAt    time.Time
	LastEditedAt time.Time
	DueAt        *time.Time
	RelatedIDs   []string
	Deleted      bool
}

// New constructs a task with a fresh UUIDv4 id and both timestamps set
// to the same instant. No field validation happens here; that is the
// store's job before it calls New.
func New(title, description string, status Status, difficulty Difficulty, priority Priority, dueAt *time.Time) Task {
	now := time.Now().UTC()
	return Task{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  description,
		Status:       status,
		Difficulty:   difficulty,
		Priority:     priority,
		CreatedAt:    now,
		LastEditedAt: now,
		DueAt:        dueAt,
	}
}

// touch returns a copy with LastEditedAt refreshed.
func (t Task) touch() Task {
	t.LastEditedAt = time.Now().UTC()
	return t
}

// WithTitle returns a copy with the title replaced.
func (t Task) WithTitle(title string) Task {
	t.Title = title
	return t.touch()
}

// WithDescription returns a copy with the description replaced.
func (t Task) WithDescription(description string) Task {
	t.Description = description
	return t.touch()
}

// WithStatus returns a copy with the status replaced.
func (t Task) WithStatus(status Status) Task {
	t.Status = status
	return t.touch()
}

// WithDifficulty returns a copy with the difficulty replaced.
func (t Task) WithDifficulty(difficulty Difficulty) Task {
	t.Difficulty = difficulty
	return t.touch()
}

// WithPriority returns a copy with the priority replaced.
func (t Task) WithPriority(priority Priority) Task {
	t.Priority = priority
	return t.touch()
}

// WithDueAt returns a copy with the due instant replaced (nil clears it).
func (t Task) WithDueAt(dueAt *time.Time) Task {
	t.DueAt = dueAt
	return t.touch()
}

// MarkDeleted returns a copy flagged as soft-deleted.
func (t Task) MarkDeleted() Task {
	t.Deleted = true
	return t.touch()
}

// Restore returns a copy with the soft-delete flag cleared.
func (t Task) Restore() Task {
	t.Deleted = false
	return t.touch()
}

// AddRelation returns a copy with otherId appended to the relation set.
// Idempotent: if the relation already exists the task is returned as-is,
// without a timestamp refresh.
func (t Task) AddRelation(otherID string) Task {
	for _, id := range t.RelatedIDs {
		if id == otherID {
			return t
		}
	}
	related := make([]string, len(t.RelatedIDs), len(t.RelatedIDs)+1)
	copy(related, t.RelatedIDs)
	t.RelatedIDs = append(related, otherID)
	return t.touch()
}

// RemoveRelation returns a copy with otherId removed from the relation
// set. LastEditedAt is refreshed even when the relation was absent.
func (t Task) RemoveRelation(otherID string) Task {
	related := make([]string, 0, len(t.RelatedIDs))
	for _, id := range t.RelatedIDs {
		if id != otherID {
			related = append(related, id)
		}
	}
	t.RelatedIDs = related
	return t.touch()
}

// IsDone reports whether the task reached the Done status.
func (t Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsDeleted reports whether the task is soft-deleted.
func (t Task) IsDeleted() bool {
	return t.Deleted
}

// IsOverdue reports whether a due instant exists, the task is not done,
// and now is past the due instant.
func (t Task) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.Status != StatusDone && now.After(*t.DueAt)
}

// IsHighPriority is true for High and Urgent tasks regardless of status.
func (t Task) IsHighPriority() bool {
	return t.Priority == PriorityHigh || t.Priority == PriorityUrgent
}

// IsCritical combines priority, completion state, and due-date status:
// not done, high priority, and either overdue or exactly Urgent.
// Derived on every call, never stored.
func (t Task) IsCritical(now time.Time) bool {
	if t.IsDone() || !t.IsHighPriority() {
		return false
	}
	return t.IsOverdue(now) || t.Priority == PriorityUrgent
}

// instantLayout is the display format for timestamps.
const instantLayout = "2006-01-02 15:04"

// NoDuePlaceholder is rendered in place of an absent due instant.
const NoDuePlaceholder = "—"

// FormatInstant renders an optional instant for display, or the
// placeholder when absent.
func FormatInstant(t *time.Time) string {
	if t == nil {
		return NoDuePlaceholder
	}
	return t.Local().Format(instantLayout)
}
