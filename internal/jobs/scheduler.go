// Package jobs runs the periodic background work of the service: relaying
// the booking outbox to the broker and purging stale refresh tokens.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/iliyamo/movie-ticketing/internal/lib/logger/sl"
)

// Task is one unit of periodic work.
type Task struct {
	Name    string
	Every   time.Duration
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

// Scheduler wraps a gocron scheduler. Jobs never overlap with themselves;
// a run that is still busy when the next tick fires is rescheduled.
type Scheduler struct {
	log  *slog.Logger
	cron gocron.Scheduler
	base context.Context
	stop context.CancelFunc
}

func NewScheduler(log *slog.Logger) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("jobs: new scheduler: %w", err)
	}
	base, stop := context.WithCancel(context.Background())
	return &Scheduler{log: log, cron: s, base: base, stop: stop}, nil
}

// Add registers t. Tasks with a non-positive interval are skipped.
func (s *Scheduler) Add(t Task) error {
	if t.Every <= 0 {
		s.log.Info("job disabled", slog.String("job", t.Name))
		return nil
	}
	timeout := t.Timeout
	if timeout <= 0 {
		timeout = t.Every
	}

	_, err := s.cron.NewJob(
		gocron.DurationJob(t.Every),
		gocron.NewTask(func() { s.runTask(t, timeout) }),
		gocron.WithName(t.Name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("jobs: add %s: %w", t.Name, err)
	}
	return nil
}

func (s *Scheduler) runTask(t Task, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(s.base, timeout)
	defer cancel()
	if err := t.Run(ctx); err != nil {
		s.log.Warn("job failed", slog.String("job", t.Name), sl.Err(err))
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("scheduler started", slog.Int("jobs", len(s.cron.Jobs())))
}

// Shutdown cancels running tasks and waits for them to return.
func (s *Scheduler) Shutdown() error {
	s.stop()
	return s.cron.Shutdown()
}

// RelayTask adapts r to a Task.
func RelayTask(r *Relay, every time.Duration) Task {
	return Task{
		Name:  "outbox-relay",
		Every: every,
		Run: func(ctx context.Context) error {
			_, err := r.RunOnce(ctx)
			return err
		},
	}
}

// TokenCleanupTask adapts c to a Task.
func TokenCleanupTask(c *TokenCleanup, every time.Duration) Task {
	return Task{
		Name:    "refresh-token-purge",
		Every:   every,
		Timeout: time.Minute,
		Run: func(ctx context.Context) error {
			_, err := c.RunOnce(ctx)
			return err
		},
	}
}
