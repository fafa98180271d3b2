package store

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/avdeev/taskdeck/internal/task"
)

func TestStatistics_EmptyStore(t *testing.T) {
	s := New(language.English)
	st := s.Statistics()

	if st.Total != 0 {
		t.Errorf("total = %d", st.Total)
	}
	// No tasks means every bucket exists and sits at zero percent.
	for status := task.StatusPending; status <= task.StatusCancelled; status++ {
		b, ok := st.ByStatus[status]
		if !ok {
			t.Errorf("missing bucket for %s", status)
			continue
		}
		if b.Count != 0 || b.Percent != 0 {
			t.Errorf("bucket %s = %+v, want zeros", status, b)
		}
	}
	for d := task.DifficultyHard; d <= task.DifficultyEasy; d++ {
		if b := st.ByDifficulty[d]; b.Count != 0 || b.Percent != 0 {
			t.Errorf("bucket %s = %+v, want zeros", d, b)
		}
	}
}

func TestStatistics_CountsAndPercents(t *testing.T) {
	s := New(language.English)
	past := time.Now().Add(-time.Hour)

	mk := func(title string, st task.Status, d task.Difficulty, p task.Priority, due *time.Time) task.Task {
		return task.New(title, "", st, d, p, due)
	}
	tasks := []task.Task{
		mk("one", task.StatusPending, task.DifficultyEasy, task.PriorityLow, nil),
		mk("two", task.StatusPending, task.DifficultyHard, task.PriorityUrgent, nil),
		mk("three", task.StatusDone, task.DifficultyMedium, task.PriorityHigh, &past),
	}
	buried := mk("buried", task.StatusPending, task.DifficultyEasy, task.PriorityHigh, nil).MarkDeleted()
	overdue := mk("late", task.StatusInProgress, task.DifficultyEasy, task.PriorityLow, &past)
	s.Load(append(tasks, buried, overdue))

	st := s.Statistics()

	if st.Total != 4 {
		t.Errorf("total = %d, want 4 (deleted excluded)", st.Total)
	}
	if st.Deleted != 1 {
		t.Errorf("deleted = %d, want 1", st.Deleted)
	}
	if st.HighPriority != 2 {
		t.Errorf("highPriority = %d, want 2 (deleted one not counted)", st.HighPriority)
	}
	// "three" is done so only "late" is overdue.
	if st.Overdue != 1 {
		t.Errorf("overdue = %d, want 1", st.Overdue)
	}
	if b := st.ByStatus[task.StatusPending]; b.Count != 2 || b.Percent != 50 {
		t.Errorf("pending bucket = %+v, want {2 50}", b)
	}
	if b := st.ByStatus[task.StatusDone]; b.Count != 1 || b.Percent != 25 {
		t.Errorf("done bucket = %+v, want {1 25}", b)
	}
	if b := st.ByDifficulty[task.DifficultyEasy]; b.Count != 2 || b.Percent != 50 {
		t.Errorf("easy bucket = %+v, want {2 50}", b)
	}
}

func TestPercent_HalfUpRounding(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{1, 6, 17},
		{3, 3, 100},
	}
	for _, tt := range tests {
		if got := percent(tt.part, tt.total); got != tt.want {
			t.Errorf("percent(%d, %d) = %d, want %d", tt.part, tt.total, got, tt.want)
		}
	}
}
