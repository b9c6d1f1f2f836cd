package session

import (
	"testing"

	"telegram-deadline-bot/internal/models"
)

func TestIdlePairHasNoState(t *testing.T) {
	m := NewManager()
	if st := m.State(1, 1); st != models.StateNone {
		t.Fatalf("expected StateNone for idle pair, got %v", st)
	}
}

func TestUpdateCreatesAndClearRemoves(t *testing.T) {
	m := NewManager()

	m.Update(1, 1, func(s *Session) {
		s.State = models.StateAwaitingTitle
		s.Draft.Title = "essay"
	})
	got := m.Get(1, 1)
	if got.State != models.StateAwaitingTitle || got.Draft.Title != "essay" {
		t.Fatalf("unexpected session: %+v", got)
	}

	m.Clear(1, 1)
	if st := m.State(1, 1); st != models.StateNone {
		t.Fatalf("expected StateNone after clear, got %v", st)
	}
	if title := m.Get(1, 1).Draft.Title; title != "" {
		t.Fatalf("draft must be dropped on clear, got title %q", title)
	}
}

func TestPairsAreIsolated(t *testing.T) {
	m := NewManager()

	m.SetState(1, 1, models.StateAwaitingDate)
	m.SetState(1, 2, models.StateAwaitingPhoto)

	if st := m.State(1, 1); st != models.StateAwaitingDate {
		t.Fatalf("pair (1,1) state = %v", st)
	}
	if st := m.State(1, 2); st != models.StateAwaitingPhoto {
		t.Fatalf("pair (1,2) state = %v", st)
	}
	if st := m.State(2, 1); st != models.StateNone {
		t.Fatalf("pair (2,1) state = %v", st)
	}
}

func TestSetStateKeepsDraft(t *testing.T) {
	m := NewManager()

	m.Update(1, 1, func(s *Session) { s.Draft.Title = "kept" })
	m.SetState(1, 1, models.StateAwaitingTime)

	got := m.Get(1, 1)
	if got.State != models.StateAwaitingTime || got.Draft.Title != "kept" {
		t.Fatalf("draft lost across SetState: %+v", got)
	}
}
