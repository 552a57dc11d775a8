package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/internal/observability"
	"github.com/fastygo/dayplanner/repository"
)

// ExpiringStore is the part of the session store the sweeper needs.
type ExpiringStore interface {
	DeleteExpired(ctx context.Context, reference time.Time) (int, error)
	Stats(ctx context.Context) (repository.SessionStats, error)
}

// SweeperConfig controls how often idle sessions are evicted.
type SweeperConfig struct {
	Interval time.Duration
}

// SessionSweeper drops sessions whose expiry has passed.
type SessionSweeper struct {
	store  ExpiringStore
	logger *zap.Logger
	cron   *cron.Cron
	cfg    SweeperConfig
	now    func() time.Time
}

func NewSessionSweeper(store ExpiringStore, logger *zap.Logger, cfg SweeperConfig) (*SessionSweeper, error) {
	if cfg.Interval < time.Second {
		cfg.Interval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &SessionSweeper{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
		now:    time.Now,
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	if _, err := s.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := s.Sweep(ctx); err != nil {
			s.logger.Error("session sweep failed", zap.Error(err))
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule session sweep: %w", err)
	}

	return s, nil
}

// Start launches the cron scheduler.
func (s *SessionSweeper) Start() {
	if s == nil || s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("session sweeper started", zap.Duration("interval", s.cfg.Interval))
}

// Stop waits for a running sweep or for ctx, whichever ends first.
func (s *SessionSweeper) Stop(ctx context.Context) {
	if s == nil || s.cron == nil {
		return
	}
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	s.logger.Info("session sweeper stopped")
}

// Sweep evicts expired sessions synchronously and returns how many went.
func (s *SessionSweeper) Sweep(ctx context.Context) (int, error) {
	if s == nil || s.store == nil {
		return 0, nil
	}
	removed, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, err
	}
	observability.RecordSessionsEvicted(removed)

	if stats, err := s.store.Stats(ctx); err == nil {
		observability.SetActiveSessions(stats.Sessions)
	}
	if removed > 0 {
		s.logger.Info("expired sessions evicted", zap.Int("count", removed))
	}
	return removed, nil
}
