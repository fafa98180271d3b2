// Package store owns the authoritative in-memory task collection for
// the process lifetime. All operations are linear scans over the
// ordered sequence; inputs pass through internal/validate before any
// mutation happens.
package store

import (
	"fmt"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/avdeev/taskdeck/internal/task"
	"github.com/avdeev/taskdeck/internal/validate"
)

// Store holds the ordered task sequence. It is single-owner state:
// exactly one logical thread of control touches it, so there is no
// locking discipline.
type Store struct {
	tasks    []task.Task
	collator *collate.Collator
}

// New creates an empty store. The locale tag drives title collation.
func New(loc language.Tag) *Store {
	return &Store{collator: collate.New(loc)}
}

// Add validates every field, constructs the task, and appends it.
// A failed validation leaves the store untouched.
func (s *Store) Add(title, description string, status task.Status, difficulty task.Difficulty, priority task.Priority, dueAt *time.Time) (task.Task, error) {
	if err := validate.Title(title); err != nil {
		return task.Task{}, err
	}
	if err := validate.Status(status); err != nil {
		return task.Task{}, err
	}
	if err := validate.Difficulty(difficulty); err != nil {
		return task.Task{}, err
	}
	if err := validate.Priority(priority); err != nil {
		return task.Task{}, err
	}
	if err := validate.DueDate(dueAt, time.Now()); err != nil {
		return task.Task{}, err
	}

	t := task.New(title, description, status, difficulty, priority, dueAt)
	s.tasks = append(s.tasks, t)
	return t, nil
}

// FindByID returns the non-deleted task with the given id. Soft-deleted
// tasks are invisible here; they remain reachable via ListDeleted.
func (s *Store) FindByID(id string) (task.Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id && !s.tasks[i].Deleted {
			return s.tasks[i], true
		}
	}
	return task.Task{}, false
}

// update validates the id shape, locates the task among ALL tasks
// (mutation is not gated by deletion state), replaces it in place, and
// returns the new value.
func (s *Store) update(id string, fn func(task.Task) task.Task) (task.Task, error) {
	if err := validate.ID(id); err != nil {
		return task.Task{}, err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = fn(s.tasks[i])
			return s.tasks[i], nil
		}
	}
	return task.Task{}, fmt.Errorf("%w: %s", task.ErrNotFound, id)
}

// SetTitle replaces a task's title.
func (s *Store) SetTitle(id, title string) (task.Task, error) {
	if err := validate.Title(title); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t task.Task) task.Task { return t.WithTitle(title) })
}

// SetDescription replaces a task's description. Descriptions may be empty.
func (s *Store) SetDescription(id, description string) (task.Task, error) {
	return s.update(id, func(t task.Task) task.Task { return t.WithDescription(description) })
}

// SetStatus moves a task to any status; there is no transition graph
// and no terminal lock, so a done task can be reopened.
func (s *Store) SetStatus(id string, status task.Status) (task.Task, error) {
	if err := validate.Status(status); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t task.Task) task.Task { return t.WithStatus(status) })
}

// SetDifficulty replaces a task's difficulty.
func (s *Store) SetDifficulty(id string, difficulty task.Difficulty) (task.Task, error) {
	if err := validate.Difficulty(difficulty); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t task.Task) task.Task { return t.WithDifficulty(difficulty) })
}

// SetPriority replaces a task's priority.
func (s *Store) SetPriority(id string, priority task.Priority) (task.Task, error) {
	if err := validate.Priority(priority); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t task.Task) task.Task { return t.WithPriority(priority) })
}

// SetDueDate replaces a task's due instant (nil clears it). A concrete
// instant must not be in the past at the moment it is set.
func (s *Store) SetDueDate(id string, dueAt *time.Time) (task.Task, error) {
	if err := validate.DueDate(dueAt, time.Now()); err != nil {
		return task.Task{}, err
	}
	return s.update(id, func(t task.Task) task.Task { return t.WithDueAt(dueAt) })
}

// SoftDelete flags a task as deleted, keeping the record.
func (s *Store) SoftDelete(id string) (task.Task, error) {
	return s.update(id, task.Task.MarkDeleted)
}

// Restore clears a task's soft-delete flag.
func (s *Store) Restore(id string) (task.Task, error) {
	return s.update(id, task.Task.Restore)
}

// HardDelete removes the record permanently and reports whether a
// removal occurred. Relation ids pointing at the removed task are left
// dangling; lookups skip them silently.
func (s *Store) HardDelete(id string) bool {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Relate adds the symmetric relation between two tasks. Both must be
// existing non-deleted tasks and distinct; if either lookup fails,
// neither task is mutated.
func (s *Store) Relate(idA, idB string) error {
	if err := validate.ID(idA); err != nil {
		return err
	}
	if err := validate.ID(idB); err != nil {
		return err
	}
	if idA == idB {
		return fmt.Errorf("%w: a task cannot relate to itself", task.ErrValidation)
	}

	ia := s.activeIndex(idA)
	ib := s.activeIndex(idB)
	if ia < 0 {
		return fmt.Errorf("%w: %s", task.ErrNotFound, idA)
	}
	if ib < 0 {
		return fmt.Errorf("%w: %s", task.ErrNotFound, idB)
	}

	s.tasks[ia] = s.tasks[ia].AddRelation(idB)
	s.tasks[ib] = s.tasks[ib].AddRelation(idA)
	return nil
}

// Unrelate removes the relation from both sides. An absent relation or
// an unknown task is a no-op, not a failure.
func (s *Store) Unrelate(idA, idB string) error {
	if err := validate.ID(idA); err != nil {
		return err
	}
	if err := validate.ID(idB); err != nil {
		return err
	}
	for i := range s.tasks {
		if s.tasks[i].ID == idA {
			s.tasks[i] = s.tasks[i].RemoveRelation(idB)
		}
		if s.tasks[i].ID == idB {
			s.tasks[i] = s.tasks[i].RemoveRelation(idA)
		}
	}
	return nil
}

// activeIndex returns the position of a non-deleted task, or -1.
func (s *Store) activeIndex(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id && !s.tasks[i].Deleted {
			return i
		}
	}
	return -1
}

// Load replaces the whole sequence wholesale. Used when restoring from
// persisted storage; persisted data is trusted and skips per-field
// validation.
func (s *Store) Load(tasks []task.Task) {
	s.tasks = make([]task.Task, len(tasks))
	copy(s.tasks, tasks)
}

// Count returns the number of tasks, soft-deleted included.
func (s *Store) Count() int {
	return len(s.tasks)
}

// All returns a snapshot of every task, soft-deleted included.
func (s *Store) All() []task.Task {
	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Clear empties the store.
func (s *Store) Clear() {
	s.tasks = nil
}
