package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Pruner deletes history rows past the retention window.
type Pruner interface {
	PruneHistory(ctx context.Context, retention time.Duration) (int64, error)
}

// Scheduler runs history retention pruning on a fixed interval, with one
// immediate run at startup.
type Scheduler struct {
	pruner    Pruner
	interval  time.Duration
	retention time.Duration
	logger    *slog.Logger
}

func NewScheduler(pruner Pruner, interval, retention time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pruner:    pruner,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("history pruner started", "interval", s.interval, "retention", s.retention)

	s.runPrune(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("history pruner stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runPrune(ctx)
		}
	}
}

func (s *Scheduler) runPrune(ctx context.Context) {
	pruneCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := s.pruner.PruneHistory(pruneCtx, s.retention); err != nil {
		s.logger.Error("history prune failed", "error", err)
	}
}
