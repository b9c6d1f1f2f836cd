package scheduler

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingNotifier struct {
	mu    sync.Mutex
	calls []Notification
}

func (r *recordingNotifier) NotifyDeadline(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, n)
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func newTestScheduler(t *testing.T) (*Scheduler, *recordingNotifier) {
	t.Helper()
	s, err := New(zap.NewNop())
	if err != nil {
		t.Fatalf("new scheduler: %v", err)
	}
	t.Cleanup(func() { s.Shutdown() })
	notifier := &recordingNotifier{}
	s.SetNotifier(notifier)
	return s, notifier
}

func TestSchedulePastIsDropped(t *testing.T) {
	s, notifier := newTestScheduler(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	s.Schedule(Notification{DeadlineID: 1, UserID: 10, Title: "late"}, now.Add(-time.Minute))
	s.Schedule(Notification{DeadlineID: 1, UserID: 10, Title: "late"}, now)

	s.mu.Lock()
	pending := len(s.jobs)
	s.mu.Unlock()
	if pending != 0 {
		t.Fatalf("expected no armed jobs for past fire times, got %d", pending)
	}
	if notifier.count() != 0 {
		t.Fatalf("past requests must not be delivered, got %d calls", notifier.count())
	}
}

func TestScheduleFiresOnce(t *testing.T) {
	s, notifier := newTestScheduler(t)

	due := time.Now().Add(time.Hour)
	s.Schedule(Notification{DeadlineID: 7, UserID: 10, Title: "soon", DueAt: due, IsDue: true},
		time.Now().Add(100*time.Millisecond))

	deadline := time.Now().Add(5 * time.Second)
	for notifier.count() == 0 && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if notifier.count() != 1 {
		t.Fatalf("expected exactly one delivery, got %d", notifier.count())
	}
	notifier.mu.Lock()
	got := notifier.calls[0]
	notifier.mu.Unlock()
	if got.DeadlineID != 7 || !got.IsDue || got.Title != "soon" {
		t.Fatalf("unexpected notification payload: %+v", got)
	}
}

func TestCancelForDisarmsPendingTimers(t *testing.T) {
	s, notifier := newTestScheduler(t)

	fireAt := time.Now().Add(time.Hour)
	s.Schedule(Notification{DeadlineID: 3, UserID: 10, Title: "a", IsDue: true}, fireAt)
	s.Schedule(Notification{DeadlineID: 3, UserID: 10, Title: "a"}, fireAt.Add(-time.Minute))
	s.Schedule(Notification{DeadlineID: 4, UserID: 10, Title: "b", IsDue: true}, fireAt)

	s.mu.Lock()
	armed := len(s.jobs[3])
	s.mu.Unlock()
	if armed != 2 {
		t.Fatalf("expected 2 armed jobs for deadline 3, got %d", armed)
	}

	s.CancelFor(3)

	s.mu.Lock()
	_, stillTracked := s.jobs[3]
	otherArmed := len(s.jobs[4])
	s.mu.Unlock()
	if stillTracked {
		t.Fatalf("expected deadline 3 jobs to be dropped")
	}
	if otherArmed != 1 {
		t.Fatalf("cancel must not touch other deadlines, got %d jobs", otherArmed)
	}
	if notifier.count() != 0 {
		t.Fatalf("nothing should have fired, got %d calls", notifier.count())
	}
}
