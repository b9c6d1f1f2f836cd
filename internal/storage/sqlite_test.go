package storage

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"telegram-deadline-bot/internal/models"
)

var testLoc = time.FixedZone("YEKT", 5*3600)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"), testLoc)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndReadBackDeadline(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2025, 6, 15, 14, 30, 0, 0, testLoc)
	id, err := store.CreateDeadline(&models.Deadline{
		UserID:      42,
		Title:       "Course project",
		DueAt:       due,
		Description: "final draft",
		Reminder:    models.ReminderDay,
		PhotoFileID: "photo-123",
	})
	if err != nil {
		t.Fatalf("create deadline: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected assigned id")
	}

	list, err := store.ListByUser(42)
	if err != nil {
		t.Fatalf("list deadlines: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 deadline, got %d", len(list))
	}
	got := list[0]
	if got.Title != "Course project" {
		t.Fatalf("title = %q", got.Title)
	}
	if !got.DueAt.Equal(due) {
		t.Fatalf("due = %v, want %v", got.DueAt, due)
	}
	if got.Description != "final draft" {
		t.Fatalf("description = %q", got.Description)
	}
	if got.Reminder != models.ReminderDay {
		t.Fatalf("reminder = %q", got.Reminder)
	}
	if got.PhotoFileID != "photo-123" {
		t.Fatalf("photo = %q", got.PhotoFileID)
	}
	if got.Completed {
		t.Fatalf("expected completed=false for a fresh record")
	}
}

func TestListOrdersByDueDateAscending(t *testing.T) {
	store := newTestStore(t)

	later := time.Date(2025, 8, 1, 10, 0, 0, 0, testLoc)
	earlier := time.Date(2025, 6, 1, 10, 0, 0, 0, testLoc)
	if _, err := store.CreateDeadline(&models.Deadline{UserID: 1, Title: "later", DueAt: later}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := store.CreateDeadline(&models.Deadline{UserID: 1, Title: "earlier", DueAt: earlier}); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := store.ListByUser(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 deadlines, got %d", len(list))
	}
	if list[0].Title != "earlier" || list[1].Title != "later" {
		t.Fatalf("wrong order: %q, %q", list[0].Title, list[1].Title)
	}
}

func TestListIsolatesUsers(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, testLoc)
	if _, err := store.CreateDeadline(&models.Deadline{UserID: 1, Title: "mine", DueAt: due}); err != nil {
		t.Fatalf("create: %v", err)
	}
	list, err := store.ListByUser(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no deadlines for other user, got %d", len(list))
	}
}

func TestSetCompletedAndDelete(t *testing.T) {
	store := newTestStore(t)

	due := time.Date(2025, 7, 1, 9, 0, 0, 0, testLoc)
	id, err := store.CreateDeadline(&models.Deadline{UserID: 5, Title: "chore", DueAt: due})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := store.SetCompleted(id, true); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	got, err := store.GetDeadline(id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || !got.Completed {
		t.Fatalf("expected completed=true, got %+v", got)
	}

	if err := store.SetCompleted(id, false); err != nil {
		t.Fatalf("set completed: %v", err)
	}
	got, _ = store.GetDeadline(id)
	if got.Completed {
		t.Fatalf("expected completed=false after reset")
	}

	if err := store.DeleteDeadline(id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err = store.GetDeadline(id)
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil after delete, got %+v", got)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := NewSQLite(path, testLoc)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	due := time.Date(2025, 7, 1, 9, 0, 0, 0, testLoc)
	if _, err := first.CreateDeadline(&models.Deadline{UserID: 1, Title: "keep", DueAt: due}); err != nil {
		t.Fatalf("create: %v", err)
	}
	first.Close()

	second, err := NewSQLite(path, testLoc)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer second.Close()

	list, err := second.ListByUser(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "keep" {
		t.Fatalf("existing rows lost across migrations: %+v", list)
	}
}

func TestMigrationAddsPhotoColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.db")

	// a database created before the photo column existed
	legacy, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open legacy: %v", err)
	}
	_, err = legacy.Exec(`
        CREATE TABLE deadlines (
            id          INTEGER PRIMARY KEY AUTOINCREMENT,
            user_id     INTEGER,
            title       TEXT NOT NULL,
            date        TEXT NOT NULL,
            description TEXT,
            reminder    TEXT,
            completed   INTEGER DEFAULT 0
        );
        INSERT INTO deadlines (user_id, title, date) VALUES (9, 'old', '2025-05-01 10:00:00');
    `)
	if err != nil {
		t.Fatalf("seed legacy schema: %v", err)
	}
	legacy.Close()

	store, err := NewSQLite(path, testLoc)
	if err != nil {
		t.Fatalf("open with migration: %v", err)
	}
	defer store.Close()

	list, err := store.ListByUser(9)
	if err != nil {
		t.Fatalf("list after migration: %v", err)
	}
	if len(list) != 1 || list[0].Title != "old" {
		t.Fatalf("legacy row lost: %+v", list)
	}
	if list[0].PhotoFileID != "" {
		t.Fatalf("expected empty photo for legacy row, got %q", list[0].PhotoFileID)
	}
}
