package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fastygo/dayplanner/repository"
)

type stubSource struct {
	stats repository.SessionStats
	err   error
}

func (s stubSource) Stats(context.Context) (repository.SessionStats, error) {
	return s.stats, s.err
}

func TestRefreshHealthy(t *testing.T) {
	m := New(stubSource{stats: repository.SessionStats{Sessions: 2, Activities: 13, Minutes: 730}}, time.Second, nil)

	status := m.Refresh()
	assert.True(t, status.Healthy)
	assert.Equal(t, 2, status.Sessions)
	assert.Equal(t, 13, status.Activities)
	assert.Equal(t, 730, status.PlannedMinutes)
	assert.Equal(t, status, m.GetStatus())
	assert.True(t, m.IsHealthy())
}

func TestRefreshUnhealthy(t *testing.T) {
	m := New(stubSource{err: errors.New("boom")}, time.Second, nil)
	status := m.Refresh()
	assert.False(t, status.Healthy)
	assert.Equal(t, "boom", status.Error)

	assert.False(t, New(nil, 0, nil).Refresh().Healthy)
}

func TestStartStop(t *testing.T) {
	m := New(stubSource{stats: repository.SessionStats{Sessions: 1}}, 5*time.Millisecond, nil)
	m.Start()
	assert.Eventually(t, m.IsHealthy, time.Second, 5*time.Millisecond)
	m.Stop()
	m.Stop()
}
