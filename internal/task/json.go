package task

import (
	"encoding/json"
	"time"
)

// taskJSON is the on-disk shape: enums as their ordinals, instants as
// integer epoch milliseconds, dueAt null when absent.
type taskJSON struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       Status     `json:"status"`
	Difficulty   Difficulty `json:"difficulty"`
	Priority     Priority   `json:"priority"`
	CreatedAt    int64      `json:"createdAt"`
	LastEditedAt int64      `json:"lastEditedAt"`
	DueAt        *int64     `json:"dueAt"`
	RelatedIDs   []string   `json:"relatedIds"`
	Deleted      bool       `json:"deleted"`
}

// MarshalJSON implements json.Marshaler.
func (t Task) MarshalJSON() ([]byte, error) {
	w := taskJSON{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       t.Status,
		Difficulty:   t.Difficulty,
		Priority:     t.Priority,
		CreatedAt:    t.CreatedAt.UnixMilli(),
		LastEditedAt: t.LastEditedAt.UnixMilli(),
		RelatedIDs:   t.RelatedIDs,
	}
	if w.RelatedIDs == nil {
		w.RelatedIDs = []string{}
	}
	if t.DueAt != nil {
		ms := t.DueAt.UnixMilli()
		w.DueAt = &ms
	}
	w.Deleted = t.Deleted
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Task) UnmarshalJSON(data []byte) error {
	var w taskJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*t = Task{
		ID:           w.ID,
		Title:        w.Title,
		Description:  w.Description,
		Status:       w.Status,
		Difficulty:   w.Difficulty,
		Priority:     w.Priority,
		CreatedAt:    time.UnixMilli(w.CreatedAt).UTC(),
		LastEditedAt: time.UnixMilli(w.LastEditedAt).UTC(),
		RelatedIDs:   w.RelatedIDs,
		Deleted:      w.Deleted,
	}
	if w.DueAt != nil {
		due := time.UnixMilli(*w.DueAt).UTC()
		t.DueAt = &due
	}
	return nil
}
