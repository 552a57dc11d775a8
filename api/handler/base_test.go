package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/internal/infrastructure/monitor"
	"github.com/fastygo/dayplanner/repository"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: domain.ErrUnauthorized, status: http.StatusUnauthorized, code: "UNAUTHORIZED"},
		{err: domain.ErrInvalidActivity, status: http.StatusBadRequest, code: "INVALID"},
		{err: fmt.Errorf("lookup: %w", domain.ErrSessionNotFound), status: http.StatusNotFound, code: "NOT_FOUND"},
		{err: domain.ErrSessionLimit, status: http.StatusConflict, code: "CONFLICT"},
		{err: context.DeadlineExceeded, status: http.StatusGatewayTimeout, code: "TIMEOUT"},
		{err: errors.New("boom"), status: http.StatusInternalServerError, code: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, code := mapError(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	h := newBaseHandler(nil, nil)
	var ctx fasthttp.RequestCtx
	h.respondError(&ctx, context.Background(), errors.New("secret stack detail"))

	assert.Equal(t, http.StatusInternalServerError, ctx.Response.StatusCode())
	assert.NotContains(t, string(ctx.Response.Body()), "secret")
}

func TestProtectedHandlerWithoutSession(t *testing.T) {
	h := NewTimelineHandler(nil, nil, nil)
	var ctx fasthttp.RequestCtx
	h.GetTimeline(&ctx)
	assert.Equal(t, http.StatusUnauthorized, ctx.Response.StatusCode())
}

type failingStats struct{}

func (failingStats) Stats(context.Context) (repository.SessionStats, error) {
	return repository.SessionStats{}, errors.New("store offline")
}

func TestHealthDegraded(t *testing.T) {
	h := NewHealthHandler(monitor.New(failingStats{}, time.Minute, nil), nil, nil)
	var ctx fasthttp.RequestCtx
	h.Check(&ctx)

	assert.Equal(t, http.StatusServiceUnavailable, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "DEGRADED")
}
