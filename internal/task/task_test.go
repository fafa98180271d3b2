package task

import (
	"errors"
	"testing"
	"time"
)

func TestNew_SetsIdentityAndTimestamps(t *testing.T) {
	before := time.Now().UTC()
	tk := New("Write report", "quarterly numbers", StatusPending, DifficultyMedium, PriorityHigh, nil)
	after := time.Now().UTC()

	if tk.ID == "" {
		t.Fatal("expected a generated id")
	}
	if tk.Title != "Write report" {
		t.Errorf("expected title 'Write report', got %q", tk.Title)
	}
	if !tk.CreatedAt.Equal(tk.LastEditedAt) {
		t.Errorf("expected createdAt == lastEditedAt on a fresh task, got %v / %v", tk.CreatedAt, tk.LastEditedAt)
	}
	if tk.CreatedAt.Before(before) || tk.CreatedAt.After(after) {
		t.Errorf("createdAt %v outside [%v, %v]", tk.CreatedAt, before, after)
	}
	if tk.DueAt != nil {
		t.Errorf("expected nil dueAt, got %v", tk.DueAt)
	}
	if tk.Deleted {
		t.Error("fresh task must not be deleted")
	}
}

func TestNew_DistinctIDs(t *testing.T) {
	a := New("First", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	b := New("Second", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	if a.ID == b.ID {
		t.Fatalf("two tasks share id %s", a.ID)
	}
}

func TestWithTitle_PreservesIdentity(t *testing.T) {
	orig := New("Original", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	edited := orig.WithTitle("Renamed")

	if edited.ID != orig.ID {
		t.Errorf("id changed: %s -> %s", orig.ID, edited.ID)
	}
	if !edited.CreatedAt.Equal(orig.CreatedAt) {
		t.Errorf("createdAt changed: %v -> %v", orig.CreatedAt, edited.CreatedAt)
	}
	if edited.Title != "Renamed" {
		t.Errorf("expected title 'Renamed', got %q", edited.Title)
	}
	if orig.Title != "Original" {
		t.Errorf("original value mutated: %q", orig.Title)
	}
	if edited.LastEditedAt.Before(orig.LastEditedAt) {
		t.Errorf("lastEditedAt went backwards: %v -> %v", orig.LastEditedAt, edited.LastEditedAt)
	}
}

func TestWithStatus_And_WithPriority(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)

	tk = tk.WithStatus(StatusDone)
	if tk.Status != StatusDone {
		t.Errorf("expected done, got %s", tk.Status)
	}
	tk = tk.WithPriority(PriorityUrgent)
	if tk.Priority != PriorityUrgent {
		t.Errorf("expected urgent, got %s", tk.Priority)
	}
}

func TestWithDueAt_SetAndClear(t *testing.T) {
	due := time.Now().UTC().Add(24 * time.Hour)
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)

	tk = tk.WithDueAt(&due)
	if tk.DueAt == nil || !tk.DueAt.Equal(due) {
		t.Fatalf("expected dueAt %v, got %v", due, tk.DueAt)
	}
	tk = tk.WithDueAt(nil)
	if tk.DueAt != nil {
		t.Errorf("expected cleared dueAt, got %v", tk.DueAt)
	}
}

func TestMarkDeleted_And_Restore(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)

	tk = tk.MarkDeleted()
	if !tk.IsDeleted() {
		t.Fatal("expected deleted")
	}
	tk = tk.Restore()
	if tk.IsDeleted() {
		t.Fatal("expected restored")
	}
}

func TestAddRelation_Idempotent(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)

	once := tk.AddRelation("aaaa")
	if len(once.RelatedIDs) != 1 || once.RelatedIDs[0] != "aaaa" {
		t.Fatalf("expected [aaaa], got %v", once.RelatedIDs)
	}

	twice := once.AddRelation("aaaa")
	if len(twice.RelatedIDs) != 1 {
		t.Fatalf("duplicate relation added: %v", twice.RelatedIDs)
	}
	// A no-op add leaves the edit timestamp alone.
	if !twice.LastEditedAt.Equal(once.LastEditedAt) {
		t.Errorf("idempotent add touched lastEditedAt: %v -> %v", once.LastEditedAt, twice.LastEditedAt)
	}
}

func TestAddRelation_DoesNotAliasOriginalSlice(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	one := tk.AddRelation("a")
	two := one.AddRelation("b")

	if len(one.RelatedIDs) != 1 {
		t.Errorf("earlier value mutated: %v", one.RelatedIDs)
	}
	if len(two.RelatedIDs) != 2 {
		t.Errorf("expected 2 relations, got %v", two.RelatedIDs)
	}
}

func TestRemoveRelation_AbsentStillTouches(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	got := tk.RemoveRelation("not-there")

	if len(got.RelatedIDs) != 0 {
		t.Errorf("expected empty relations, got %v", got.RelatedIDs)
	}
	if got.LastEditedAt.Before(tk.LastEditedAt) {
		t.Errorf("lastEditedAt went backwards")
	}
}

func TestRemoveRelation_RemovesOnlyTarget(t *testing.T) {
	tk := New("Task", "", StatusPending, DifficultyEasy, PriorityLow, nil)
	tk = tk.AddRelation("a").AddRelation("b").AddRelation("c")

	tk = tk.RemoveRelation("b")
	if len(tk.RelatedIDs) != 2 || tk.RelatedIDs[0] != "a" || tk.RelatedIDs[1] != "c" {
		t.Fatalf("expected [a c], got %v", tk.RelatedIDs)
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		due  *time.Time
		st   Status
		want bool
	}{
		{"no due date", nil, StatusPending, false},
		{"future due", &future, StatusPending, false},
		{"past due pending", &past, StatusPending, true},
		{"past due in progress", &past, StatusInProgress, true},
		{"past due but done", &past, StatusDone, false},
		{"past due cancelled", &past, StatusCancelled, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := Task{Status: tt.st, DueAt: tt.due}
			if got := tk.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCritical(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name string
		tk   Task
		want bool
	}{
		{"urgent pending, no due", Task{Status: StatusPending, Priority: PriorityUrgent}, true},
		{"urgent done", Task{Status: StatusDone, Priority: PriorityUrgent}, false},
		{"high overdue", Task{Status: StatusPending, Priority: PriorityHigh, DueAt: &past}, true},
		{"high not overdue", Task{Status: StatusPending, Priority: PriorityHigh, DueAt: &future}, false},
		{"high no due", Task{Status: StatusPending, Priority: PriorityHigh}, false},
		{"low overdue", Task{Status: StatusPending, Priority: PriorityLow, DueAt: &past}, false},
		{"urgent overdue done", Task{Status: StatusDone, Priority: PriorityUrgent, DueAt: &past}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tk.IsCritical(now); got != tt.want {
				t.Errorf("IsCritical = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("in_progress")
	if err != nil {
		t.Fatalf("ParseStatus: %v", err)
	}
	if st != StatusInProgress {
		t.Errorf("expected in_progress, got %s", st)
	}

	if _, err := ParseStatus("unknown"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestParseDifficulty_And_ParsePriority(t *testing.T) {
	d, err := ParseDifficulty("hard")
	if err != nil || d != DifficultyHard {
		t.Errorf("ParseDifficulty(hard) = %v, %v", d, err)
	}
	p, err := ParsePriority("urgent")
	if err != nil || p != PriorityUrgent {
		t.Errorf("ParsePriority(urgent) = %v, %v", p, err)
	}
	if _, err := ParsePriority("critical"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestFormatInstant(t *testing.T) {
	if got := FormatInstant(nil); got != NoDuePlaceholder {
		t.Errorf("expected placeholder, got %q", got)
	}
	when := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	if got := FormatInstant(&when); got != "2026-03-14 09:30" {
		t.Errorf("expected '2026-03-14 09:30', got %q", got)
	}
}
