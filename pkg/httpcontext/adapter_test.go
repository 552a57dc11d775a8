package httpcontext

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/dayplanner/pkg/logger"
)

func TestAttachPropagatesIDs(t *testing.T) {
	var rc fasthttp.RequestCtx
	rc.Request.Header.Set("X-Request-ID", "req-42")
	rc.Request.Header.Set(SessionHeader, "sess-7")

	ctx, cancel := NewAdapter(time.Second).Attach(&rc)
	defer cancel()

	assert.Equal(t, "sess-7", appLogger.SessionIDFromContext(ctx))
	assert.Equal(t, "req-42", string(rc.Response.Header.Peek("X-Request-ID")))
	_, hasDeadline := ctx.Deadline()
	assert.True(t, hasDeadline)
}

func TestAttachGeneratesRequestID(t *testing.T) {
	var rc fasthttp.RequestCtx
	ctx, cancel := NewAdapter(0).Attach(&rc)
	defer cancel()

	assert.NotEmpty(t, string(rc.Response.Header.Peek("X-Request-ID")))
	assert.Empty(t, appLogger.SessionIDFromContext(ctx))
}
