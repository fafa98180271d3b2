package store

import (
	"time"

	"github.com/avdeev/taskdeck/internal/task"
)

// Bucket is one statistics slice: absolute count plus integer
// percentage of the active total.
type Bucket struct {
	Count   int
	Percent int
}

// Stats summarizes the store. Percentage breakdowns cover active tasks
// only; the Deleted, HighPriority, and Overdue counters are independent
// tallies, not part of any percentage breakdown.
type Stats struct {
	Total        int
	ByStatus     map[task.Status]Bucket
	ByDifficulty map[task.Difficulty]Bucket
	Deleted      int
	HighPriority int
	Overdue      int
}

// Statistics computes the summary in one pass over the collection.
// Every status and difficulty gets a bucket even at zero count, and a
// zero total yields zero percentages rather than a division failure.
func (s *Store) Statistics() Stats {
	now := time.Now()
	st := Stats{
		ByStatus:     make(map[task.Status]Bucket, 4),
		ByDifficulty: make(map[task.Difficulty]Bucket, 3),
	}

	statusCounts := make(map[task.Status]int, 4)
	difficultyCounts := make(map[task.Difficulty]int, 3)

	for i := range s.tasks {
		t := s.tasks[i]
		if t.Deleted {
			st.Deleted++
			continue
		}
		st.Total++
		statusCounts[t.Status]++
		difficultyCounts[t.Difficulty]++
		if t.IsHighPriority() {
			st.HighPriority++
		}
		if t.IsOverdue(now) {
			st.Overdue++
		}
	}

	for status := task.StatusPending; status <= task.StatusCancelled; status++ {
		n := statusCounts[status]
		st.ByStatus[status] = Bucket{Count: n, Percent: percent(n, st.Total)}
	}
	for difficulty := task.DifficultyHard; difficulty <= task.DifficultyEasy; difficulty++ {
		n := difficultyCounts[difficulty]
		st.ByDifficulty[difficulty] = Bucket{Count: n, Percent: percent(n, st.Total)}
	}

	return st
}

// percent rounds half-up; a zero total is defined as zero percent.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return (part*100 + total/2) / total
}
