package cli

import (
	"errors"
	"testing"

	"golang.org/x/text/language"

	"github.com/avdeev/taskdeck/internal/store"
	"github.com/avdeev/taskdeck/internal/task"
)

func TestResolveID(t *testing.T) {
	s := store.New(language.English)
	a, err := s.Add("First task", "", task.StatusPending, task.DifficultyEasy, task.PriorityLow, nil)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := resolveID(s, a.ID)
	if err != nil || got != a.ID {
		t.Errorf("exact match: %q, %v", got, err)
	}

	got, err = resolveID(s, a.ID[:8])
	if err != nil || got != a.ID {
		t.Errorf("prefix match: %q, %v", got, err)
	}

	if _, err := resolveID(s, "ffffffff"); !errors.Is(err, task.ErrNotFound) {
		t.Errorf("absent prefix: expected ErrNotFound, got %v", err)
	}
}

func TestResolveID_AmbiguousPrefix(t *testing.T) {
	s := store.New(language.English)
	a := task.New("One", "", task.StatusPending, task.DifficultyEasy, task.PriorityLow, nil)
	b := task.New("Two", "", task.StatusPending, task.DifficultyEasy, task.PriorityLow, nil)
	a.ID = "11111111-0000-4000-8000-000000000001"
	b.ID = "11111111-0000-4000-8000-000000000002"
	s.Load([]task.Task{a, b})

	if _, err := resolveID(s, "11111111"); !errors.Is(err, task.ErrValidation) {
		t.Errorf("ambiguous prefix: expected ErrValidation, got %v", err)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("12345678-aaaa"); got != "12345678" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("short input = %q", got)
	}
}
