package monitor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/internal/observability"
	"github.com/fastygo/dayplanner/repository"
)

// StatsSource reports aggregate load of the session store.
type StatsSource interface {
	Stats(ctx context.Context) (repository.SessionStats, error)
}

// Monitor periodically samples the session store for /health and the gauges.
type Monitor struct {
	source StatsSource

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
	logger   *zap.Logger
}

func New(source StatsSource, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		source:   source,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

func (m *Monitor) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Healthy
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Refresh()
	for {
		select {
		case <-ticker.C:
			m.Refresh()
		case <-m.stopCh:
			return
		}
	}
}

// Refresh samples the store immediately and returns the new status.
func (m *Monitor) Refresh() Status {
	status := Status{LastCheck: time.Now()}

	if m.source == nil {
		status.Error = "no session store"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		stats, err := m.source.Stats(ctx)
		cancel()
		if err != nil {
			m.logger.Warn("session stats check failed", zap.Error(err))
			status.Error = err.Error()
		} else {
			status.Healthy = true
			status.Sessions = stats.Sessions
			status.Activities = stats.Activities
			status.PlannedMinutes = stats.Minutes
			observability.SetActiveSessions(stats.Sessions)
			observability.SetPlannedMinutes(stats.Minutes)
		}
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
	return status
}
