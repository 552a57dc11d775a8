package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dayplanner/domain"
)

type manualClock struct{ now time.Time }

func (c *manualClock) Now() time.Time { return c.now }

func newSession(id string) *domain.Session {
	return &domain.Session{ID: id, Timeline: domain.NewSeededTimeline()}
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	clock := &manualClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewSessionRepository(30*time.Minute, 0, WithClock(clock.Now))

	require.NoError(t, repo.Save(ctx, newSession("s1")))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, clock.now, got.CreatedAt)
	assert.Equal(t, clock.now.Add(30*time.Minute), got.ExpiresAt)
	assert.Equal(t, 6, got.Timeline.ItemCount())

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSaveRejectsIncompleteSession(t *testing.T) {
	repo := NewSessionRepository(time.Minute, 0)
	assert.ErrorIs(t, repo.Save(context.Background(), &domain.Session{ID: "x"}), domain.ErrInvalidPayload)
	assert.ErrorIs(t, repo.Save(context.Background(), nil), domain.ErrInvalidPayload)
}

func TestSaveHonoursLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute, 1)

	require.NoError(t, repo.Save(ctx, newSession("a")))
	err := repo.Save(ctx, newSession("b"))
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeConflict))

	// re-saving an existing id is not a new slot
	assert.NoError(t, repo.Save(ctx, newSession("a")))
}

func TestExtendSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	clock := &manualClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewSessionRepository(10*time.Minute, 0, WithClock(clock.Now))
	require.NoError(t, repo.Save(ctx, newSession("s1")))

	clock.now = clock.now.Add(5 * time.Minute)
	extended, err := repo.Extend(ctx, "s1", 0)
	require.NoError(t, err)
	assert.Equal(t, clock.now, extended.LastSeenAt)
	assert.Equal(t, clock.now.Add(10*time.Minute), extended.ExpiresAt)

	_, err = repo.Extend(ctx, "nope", time.Minute)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestDeleteExpired(t *testing.T) {
	ctx := context.Background()
	clock := &manualClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}
	repo := NewSessionRepository(10*time.Minute, 0, WithClock(clock.Now))
	require.NoError(t, repo.Save(ctx, newSession("old")))

	clock.now = clock.now.Add(8 * time.Minute)
	require.NoError(t, repo.Save(ctx, newSession("fresh")))

	removed, err := repo.DeleteExpired(ctx, clock.now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = repo.Get(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = repo.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestStatsSumsTimelines(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Hour, 0)
	a := newSession("a")
	_, err := a.Timeline.Add(domain.ActivityCandidate{Title: "Stretch break", StartTime: "10:00", DurationMinutes: 10})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, newSession("b")))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Sessions)
	assert.Equal(t, 13, stats.Activities)
	assert.Equal(t, 730, stats.Minutes)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repo := NewSessionRepository(time.Hour, 0)

	_, err := repo.Get(ctx, "x")
	assert.ErrorIs(t, err, context.Canceled)
}
