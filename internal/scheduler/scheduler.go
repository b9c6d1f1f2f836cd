package scheduler

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification is the payload delivered when a timer fires.
type Notification struct {
	DeadlineID  int64
	UserID      int64
	Title       string
	DueAt       time.Time
	PhotoFileID string
	IsDue       bool // true at the deadline moment, false for a lead reminder
}

// Notifier delivers one notification to the user. Delivery failures are
// the notifier's to log; the scheduler never retries.
type Notifier interface {
	NotifyDeadline(n Notification)
}

// Scheduler arms one-shot notification timers. Timers live in memory
// only: a process restart forgets anything still pending, and nothing
// re-arms them from the store.
type Scheduler struct {
	cron   gocron.Scheduler
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	notifier Notifier
	jobs     map[int64][]uuid.UUID // deadline id -> armed job handles
}

func New(logger *zap.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	s := &Scheduler{
		cron:   cron,
		logger: logger,
		now:    time.Now,
		jobs:   make(map[int64][]uuid.UUID),
	}
	cron.Start()
	return s, nil
}

// SetNotifier wires the delivery side. Must be called before the first
// timer can fire.
func (s *Scheduler) SetNotifier(n Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifier = n
}

// Schedule arms a one-shot delivery of n at fireAt. A request whose fire
// time has already passed is dropped, not fired immediately.
func (s *Scheduler) Schedule(n Notification, fireAt time.Time) {
	if !fireAt.After(s.now()) {
		s.logger.Warn("notification fire time already passed, dropping",
			zap.Int64("deadline_id", n.DeadlineID),
			zap.Time("fire_at", fireAt),
			zap.Bool("is_due", n.IsDue))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var jobID uuid.UUID
	job, err := s.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(fireAt)),
		gocron.NewTask(func() {
			s.fire(n)
			s.forget(n.DeadlineID, jobID)
		}),
	)
	if err != nil {
		s.logger.Error("failed to arm notification timer",
			zap.Error(err), zap.Int64("deadline_id", n.DeadlineID))
		return
	}
	jobID = job.ID()
	s.jobs[n.DeadlineID] = append(s.jobs[n.DeadlineID], jobID)

	s.logger.Info("notification scheduled",
		zap.Int64("deadline_id", n.DeadlineID),
		zap.Int64("user_id", n.UserID),
		zap.Time("fire_at", fireAt),
		zap.Duration("in", fireAt.Sub(s.now())),
		zap.Bool("is_due", n.IsDue))
}

// CancelFor disarms every timer still pending for the deadline.
func (s *Scheduler) CancelFor(deadlineID int64) {
	s.mu.Lock()
	ids := s.jobs[deadlineID]
	delete(s.jobs, deadlineID)
	s.mu.Unlock()

	for _, id := range ids {
		// already-fired jobs are gone from gocron; the error is harmless
		_ = s.cron.RemoveJob(id)
	}
	if len(ids) > 0 {
		s.logger.Info("notifications cancelled",
			zap.Int64("deadline_id", deadlineID), zap.Int("count", len(ids)))
	}
}

// Shutdown stops the underlying scheduler and drops all pending timers.
func (s *Scheduler) Shutdown() error {
	return s.cron.Shutdown()
}

func (s *Scheduler) fire(n Notification) {
	s.mu.Lock()
	notifier := s.notifier
	s.mu.Unlock()
	if notifier == nil {
		s.logger.Warn("timer fired with no notifier wired",
			zap.Int64("deadline_id", n.DeadlineID))
		return
	}
	notifier.NotifyDeadline(n)
}

func (s *Scheduler) forget(deadlineID int64, jobID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.jobs[deadlineID]
	for i, id := range ids {
		if id == jobID {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.jobs, deadlineID)
		return
	}
	s.jobs[deadlineID] = ids
}
