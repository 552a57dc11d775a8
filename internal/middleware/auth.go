package middleware

import (
	"strings"

	"github.com/bytedance/sonic"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
)

// TokenParser resolves a bearer token into the session id it was issued for.
type TokenParser interface {
	Parse(token string) (string, error)
}

// SessionAuth verifies the session token and forwards the session id in the
// X-Session-ID header. Any client supplied value of that header is dropped.
func SessionAuth(tokens TokenParser, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Request.Header.Del(httpcontext.SessionHeader)

			tokenString := extractToken(ctx)
			if tokenString == "" {
				unauthorized(ctx, "missing session token")
				return
			}

			sessionID, err := tokens.Parse(tokenString)
			if err != nil {
				logger.Warn("invalid session token", zap.Error(err))
				unauthorized(ctx, "invalid session token")
				return
			}

			ctx.Request.Header.Set(httpcontext.SessionHeader, sessionID)
			next(ctx)
		}
	}
}

func unauthorized(ctx *fasthttp.RequestCtx, message string) {
	body, _ := sonic.Marshal(transport.Failure(string(domain.ErrCodeUnauthorized), message))
	ctx.Response.Header.SetContentType("application/json")
	ctx.SetStatusCode(fasthttp.StatusUnauthorized)
	ctx.SetBody(body)
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := strings.TrimSpace(string(ctx.Request.Header.Peek("Authorization")))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return header
}
