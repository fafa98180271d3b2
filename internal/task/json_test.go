package task

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMarshalJSON_WireShape(t *testing.T) {
	due := time.UnixMilli(1767225600000).UTC()
	tk := Task{
		ID:           "3f1e9c2a-7b4d-4e8f-9a1b-2c3d4e5f6a7b",
		Title:        "Ship release",
		Description:  "tag and publish",
		Status:       StatusInProgress,
		Difficulty:   DifficultyHard,
		Priority:     PriorityUrgent,
		CreatedAt:    time.UnixMilli(1735689600000).UTC(),
		LastEditedAt: time.UnixMilli(1735693200000).UTC(),
		DueAt:        &due,
		RelatedIDs:   []string{"aaa"},
	}

	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)

	for _, want := range []string{
		`"status":1`,
		`"difficulty":0`,
		`"priority":3`,
		`"createdAt":1735689600000`,
		`"lastEditedAt":1735693200000`,
		`"dueAt":1767225600000`,
		`"relatedIds":["aaa"]`,
		`"deleted":false`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("wire JSON missing %s in %s", want, s)
		}
	}
}

func TestMarshalJSON_NilDueAndEmptyRelations(t *testing.T) {
	tk := Task{ID: "x", Title: "t"}

	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"dueAt":null`) {
		t.Errorf("expected null dueAt, got %s", s)
	}
	// relatedIds is always an array, never null.
	if !strings.Contains(s, `"relatedIds":[]`) {
		t.Errorf("expected empty relatedIds array, got %s", s)
	}
}

func TestUnmarshalJSON_RoundTrip(t *testing.T) {
	due := time.Now().UTC().Truncate(time.Millisecond).Add(48 * time.Hour)
	orig := New("Round trip", "desc", StatusPending, DifficultyMedium, PriorityHigh, &due)
	orig.CreatedAt = orig.CreatedAt.Truncate(time.Millisecond)
	orig.LastEditedAt = orig.LastEditedAt.Truncate(time.Millisecond)
	orig = orig.AddRelation("bbb")
	orig.LastEditedAt = orig.LastEditedAt.Truncate(time.Millisecond)

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Task
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.ID != orig.ID || got.Title != orig.Title || got.Description != orig.Description {
		t.Errorf("identity fields differ: %+v vs %+v", got, orig)
	}
	if got.Status != orig.Status || got.Difficulty != orig.Difficulty || got.Priority != orig.Priority {
		t.Errorf("enum fields differ: %+v vs %+v", got, orig)
	}
	if !got.CreatedAt.Equal(orig.CreatedAt) || !got.LastEditedAt.Equal(orig.LastEditedAt) {
		t.Errorf("timestamps differ: %v/%v vs %v/%v", got.CreatedAt, got.LastEditedAt, orig.CreatedAt, orig.LastEditedAt)
	}
	if got.DueAt == nil || !got.DueAt.Equal(due) {
		t.Errorf("dueAt differs: %v vs %v", got.DueAt, due)
	}
	if len(got.RelatedIDs) != 1 || got.RelatedIDs[0] != "bbb" {
		t.Errorf("relations differ: %v", got.RelatedIDs)
	}
}

func TestUnmarshalJSON_NullDue(t *testing.T) {
	raw := `{"id":"x","title":"t","description":"","status":0,"difficulty":2,"priority":1,` +
		`"createdAt":1000,"lastEditedAt":2000,"dueAt":null,"relatedIds":[],"deleted":true}`

	var got Task
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.DueAt != nil {
		t.Errorf("expected nil dueAt, got %v", got.DueAt)
	}
	if !got.Deleted {
		t.Error("expected deleted flag to survive")
	}
	if !got.CreatedAt.Equal(time.UnixMilli(1000).UTC()) {
		t.Errorf("createdAt = %v", got.CreatedAt)
	}
}
