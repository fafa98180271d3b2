package store

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avdeev/taskdeck/internal/task"
	"github.com/avdeev/taskdeck/internal/validate"
)

// SortBy names a sort criterion over active tasks.
type SortBy string

const (
	SortByTitle      SortBy = "title"      // lexicographic ascending, locale-aware
	SortByCreated    SortBy = "created"    // newest first
	SortByDue        SortBy = "due"        // soonest first, no due date last
	SortByDifficulty SortBy = "difficulty" // hardest first
)

// Sort returns a new sequence of active tasks ordered by the criterion.
// The store's own order is never mutated.
func (s *Store) Sort(by SortBy) ([]task.Task, error) {
	tasks := s.ListActive()

	switch by {
	case SortByTitle:
		sort.SliceStable(tasks, func(i, j int) bool {
			return s.collator.CompareString(tasks[i].Title, tasks[j].Title) < 0
		})
	case SortByCreated:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
		})
	case SortByDue:
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueAt, tasks[j].DueAt
			switch {
			case a == nil:
				// Missing due dates always sort after present ones.
				return false
			case b == nil:
				return true
			default:
				return a.Before(*b)
			}
		})
	case SortByDifficulty:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Difficulty < tasks[j].Difficulty
		})
	default:
		return nil, fmt.Errorf("%w: unknown sort criterion %q", task.ErrValidation, by)
	}

	return tasks, nil
}

// Filter returns the active tasks matching an arbitrary predicate.
func (s *Store) Filter(pred func(task.Task) bool) []task.Task {
	var out []task.Task
	for i := range s.tasks {
		if !s.tasks[i].Deleted && pred(s.tasks[i]) {
			out = append(out, s.tasks[i])
		}
	}
	return out
}

// ListActive returns every non-deleted task in store order.
func (s *Store) ListActive() []task.Task {
	return s.Filter(func(task.Task) bool { return true })
}

// ListDeleted returns every soft-deleted task in store order.
func (s *Store) ListDeleted() []task.Task {
	var out []task.Task
	for i := range s.tasks {
		if s.tasks[i].Deleted {
			out = append(out, s.tasks[i])
		}
	}
	return out
}

// ListHighPriority returns active tasks with High or Urgent priority.
func (s *Store) ListHighPriority() []task.Task {
	return s.Filter(task.Task.IsHighPriority)
}

// ListOverdue returns active tasks whose due instant has passed.
func (s *Store) ListOverdue() []task.Task {
	now := time.Now()
	return s.Filter(func(t task.Task) bool { return t.IsOverdue(now) })
}

// ListCritical returns active tasks matching the criticality rule,
// evaluated freshly against the current instant.
func (s *Store) ListCritical() []task.Task {
	now := time.Now()
	return s.Filter(func(t task.Task) bool { return t.IsCritical(now) })
}

// ListByStatus returns active tasks with the given status.
func (s *Store) ListByStatus(status task.Status) []task.Task {
	return s.Filter(func(t task.Task) bool { return t.Status == status })
}

// ListByDifficulty returns active tasks with the given difficulty.
func (s *Store) ListByDifficulty(difficulty task.Difficulty) []task.Task {
	return s.Filter(func(t task.Task) bool { return t.Difficulty == difficulty })
}

// SearchTitle returns active tasks whose title contains the substring,
// case-insensitively.
func (s *Store) SearchTitle(substr string) []task.Task {
	needle := strings.ToLower(substr)
	return s.Filter(func(t task.Task) bool {
		return strings.Contains(strings.ToLower(t.Title), needle)
	})
}

// ListRelated returns the resolvable relations of a task. Dangling ids
// (hard-deleted counterparts) and soft-deleted counterparts are skipped
// silently.
func (s *Store) ListRelated(id string) ([]task.Task, error) {
	if err := validate.ID(id); err != nil {
		return nil, err
	}
	var origin *task.Task
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			origin = &s.tasks[i]
			break
		}
	}
	if origin == nil {
		return nil, fmt.Errorf("%w: %s", task.ErrNotFound, id)
	}

	var out []task.Task
	for _, rid := range origin.RelatedIDs {
		if t, ok := s.FindByID(rid); ok {
			out = append(out, t)
		}
	}
	return out, nil
}
