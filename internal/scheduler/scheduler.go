package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newshub/internal/domain"
)

// Refresher fetches one category and writes it through to the cache.
type Refresher interface {
	RefreshCategory(ctx context.Context, category string) (int, error)
}

// tickTimeout bounds one full pass over the category set. Individual
// fetches carry their own client timeout underneath it.
const tickTimeout = 2 * time.Minute

// Scheduler pre-warms the cache for a fixed category set on a fixed
// interval. Cadence is best-effort: an overrunning tick delays the next
// one, and missed ticks are not backfilled.
type Scheduler struct {
	refresher  Refresher
	interval   time.Duration
	categories []string
	logger     *slog.Logger
}

func New(refresher Refresher, interval time.Duration, categories []string, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		refresher:  refresher,
		interval:   interval,
		categories: categories,
		logger:     logger,
	}
}

// Start runs the refresh loop until ctx is cancelled. The first tick fires
// immediately so the cache is warm before the first interval elapses.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"interval", s.interval,
		"categories", s.categories,
	)

	s.runTick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runTick(ctx)
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, tickTimeout)
	defer cancel()

	stats := s.RunOnce(tickCtx)

	s.logger.Info("refresh tick completed",
		"refreshed", stats.Refreshed,
		"failed", stats.Failed,
		"articles", stats.Articles,
		"duration", stats.Duration,
	)
}

// RunOnce refreshes every configured category once. A failing category is
// logged and skipped; the remaining categories in the same pass are still
// attempted.
func (s *Scheduler) RunOnce(ctx context.Context) domain.RefreshStats {
	start := time.Now()

	var stats domain.RefreshStats
	for _, category := range s.categories {
		count, err := s.refresher.RefreshCategory(ctx, category)
		if err != nil {
			stats.Failed++
			s.logger.Error("category refresh failed",
				"category", category,
				"error", err,
			)
			continue
		}
		stats.Refreshed++
		stats.Articles += count
	}

	stats.Duration = time.Since(start)
	return stats
}
