package timeline

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dayplanner/domain"
)

type stubSessions struct {
	sessions map[string]*domain.Session
}

func (s *stubSessions) GetSession(_ context.Context, id string) (*domain.Session, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

func newUseCase() *UseCase {
	return New(&stubSessions{sessions: map[string]*domain.Session{
		"s1": {ID: "s1", Timeline: domain.NewSeededTimeline(domain.WithDay("2025-06-02"))},
	}}, nil)
}

func durationFallbacks(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "dayplanner_timeline_duration_fallbacks_total" {
			return mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestAddActivityReturnsSummary(t *testing.T) {
	uc := newUseCase()

	activity, summary, err := uc.AddActivity(context.Background(), "s1", domain.ActivityCandidate{
		Title:           "Stretch break",
		StartTime:       "10:00",
		DurationMinutes: 10,
		Category:        domain.CategoryBreak,
		EnergyLevel:     domain.EnergyLow,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, 7, summary.ItemCount)
	assert.Equal(t, 370, summary.TotalMinutes)
	assert.Equal(t, "6h 10m", summary.TotalDisplay)

	snap, err := uc.Snapshot(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, activity.ID, snap.Activities[2].ID)
}

func TestAddActivityCountsFallback(t *testing.T) {
	uc := newUseCase()
	before := durationFallbacks(t)

	activity, _, err := uc.AddActivity(context.Background(), "s1", domain.ActivityCandidate{
		Title:     "Untimed",
		StartTime: "17:00",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDurationMinutes, activity.DurationMinutes)
	assert.Equal(t, before+1, durationFallbacks(t))
}

func TestAddActivityRejectsInvalid(t *testing.T) {
	uc := newUseCase()
	_, _, err := uc.AddActivity(context.Background(), "s1", domain.ActivityCandidate{StartTime: "10:00"})
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	summary, err := uc.Summary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 6, summary.ItemCount)
}

func TestUnknownSession(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Snapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = uc.Day(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSelectDay(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	day, err := uc.Day(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-02", day)

	selected, err := uc.SelectDay(ctx, "s1", " 2025-06-03 ")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", selected)

	snap, err := uc.Snapshot(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", snap.Day)
	assert.Len(t, snap.Activities, 6)

	_, err = uc.SelectDay(ctx, "s1", "  ")
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestReset(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	_, _, err := uc.AddActivity(ctx, "s1", domain.ActivityCandidate{Title: "Extra", StartTime: "19:00", DurationMinutes: 60})
	require.NoError(t, err)

	snap, err := uc.Reset(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 6, snap.Summary.ItemCount)
	assert.Equal(t, 360, snap.Summary.TotalMinutes)
	assert.Equal(t, "2025-06-02", snap.Day)
}
