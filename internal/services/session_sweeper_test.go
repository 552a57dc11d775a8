package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/repository/memory"
)

func TestSweepEvictsExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	store := memory.NewSessionRepository(10*time.Minute, 0, memory.WithClock(clock))
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "old", Timeline: domain.NewSeededTimeline()}))

	sweeper, err := NewSessionSweeper(store, nil, SweeperConfig{Interval: time.Minute})
	require.NoError(t, err)

	sweeper.now = clock
	removed, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	sweeper.now = func() time.Time { return now.Add(11 * time.Minute) }
	removed, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Sessions)
}

func TestSweeperStartStop(t *testing.T) {
	sweeper, err := NewSessionSweeper(memory.NewSessionRepository(time.Minute, 0), nil, SweeperConfig{})
	require.NoError(t, err)
	assert.Equal(t, time.Minute, sweeper.cfg.Interval)

	sweeper.Start()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	sweeper.Stop(ctx)
}

func TestNilSweeperIsInert(t *testing.T) {
	var s *SessionSweeper
	removed, err := s.Sweep(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, removed)
	s.Start()
	s.Stop(context.Background())
}
