package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/dayplanner/domain"
)

func TestDispatcherExecuteQuery(t *testing.T) {
	d := NewDispatcher()
	d.RegisterQuery("echo", func(_ context.Context, params interface{}) (interface{}, error) {
		return params, nil
	})

	out, err := d.ExecuteQuery(context.Background(), "echo", "ping")
	require.NoError(t, err)
	assert.Equal(t, "ping", out)
}

func TestDispatcherUnknownQuery(t *testing.T) {
	d := NewDispatcher()
	_, err := d.ExecuteQuery(context.Background(), "missing", nil)
	require.Error(t, err)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestDispatcherQueriesSorted(t *testing.T) {
	d := NewDispatcher()
	noop := func(context.Context, interface{}) (interface{}, error) { return nil, nil }
	d.RegisterQuery("journal", noop)
	d.RegisterQuery("breakdown", noop)
	assert.Equal(t, []string{"breakdown", "journal"}, d.Queries())
}
