package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/bszymi/tv-shows-api/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Config bounds the per-cycle retry. A failed cycle is retried with
// exponential backoff up to MaxAttempts, then abandoned until the next
// tick; there is no dead-letter.
type Config struct {
	Interval       time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Scheduler struct {
	syncer Syncer
	cfg    Config
	logger *slog.Logger
}

func NewScheduler(syncer Syncer, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer: syncer,
		cfg:    cfg,
		logger: logger,
	}
}

// Start runs one cycle immediately, then on every tick. Cycles run
// strictly sequentially on this goroutine, which is what keeps the
// snapshot read-then-write single-writer.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.cfg.Interval)

	s.runCycle(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Scheduler) runCycle(ctx context.Context) {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		syncCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		_, err := s.syncer.Sync(syncCtx)
		cancel()

		if err == nil {
			return
		}

		if attempt == s.cfg.MaxAttempts {
			s.logger.Error("sync cycle abandoned",
				"attempts", attempt,
				"error", err,
			)
			return
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("sync failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

func (s *Scheduler) calculateBackoff(attempt int) time.Duration {
	backoff := s.cfg.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.cfg.MaxBackoff {
		backoff = s.cfg.MaxBackoff
	}
	return backoff
}
