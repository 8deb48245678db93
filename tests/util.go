package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/blink-new/study-saathi-app-dwaa98jh/core"
	"github.com/blink-new/study-saathi-app-dwaa98jh/core/planner"
	inmemdb "github.com/blink-new/study-saathi-app-dwaa98jh/storage/database/inmem"
)

// Now is the fixed clock of test stores: Monday, 15 Jan 2024, 10:00 UTC.
var Now = time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

// Clock returns a settable clock starting at Now.
func Clock() (now func() time.Time, set func(time.Time)) {
	t := Now
	return func() time.Time { return t }, func(nt time.Time) { t = nt }
}

// NewKV returns an empty in-memory KVStore.
func NewKV() core.KVStore {
	return inmemdb.NewKVStore(inmemdb.Open())
}

// NewStore returns an empty, synchronously persisted store backed by kv (a new
// in-memory KVStore when nil) with the clock fixed at Now. It is closed on cleanup.
func NewStore(t *testing.T, kv core.KVStore) *planner.Store {
	t.Helper()
	if kv == nil {
		kv = NewKV()
	}
	store := planner.NewStore(planner.Options{
		KV:  kv,
		Now: func() time.Time { return Now },
	})
	t.Cleanup(func() {
		if err := store.Close(context.Background()); err != nil {
			t.Errorf("store.Close() failed: %v", err)
		}
	})
	return store
}

func CreateAssignment(t *testing.T, store *planner.Store, title, subject string, due time.Time, status planner.Status) planner.Assignment {
	t.Helper()
	return store.AddAssignment(planner.Assignment{
		Title:       title,
		Subject:     subject,
		DueDate:     planner.DueLabel(due, Now),
		DueDateTime: due,
		Priority:    planner.PriorityMedium,
		Status:      status,
	})
}

func CreateClass(t *testing.T, store *planner.Store, subject, day string) planner.Class {
	t.Helper()
	return store.AddClass(planner.Class{
		Subject:  subject,
		Time:     "9:00 AM",
		Duration: "1h",
		Room:     "Room 101",
		Day:      day,
		Color:    planner.SubjectColor(subject),
	})
}

func CreateNote(t *testing.T, store *planner.Store, title, subject, content string) planner.Note {
	t.Helper()
	return store.AddNote(planner.Note{
		Title:   title,
		Subject: subject,
		Content: content,
		Type:    planner.NoteText,
	})
}
