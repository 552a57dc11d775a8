package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
	sessionUC "github.com/fastygo/dayplanner/usecase/session"
)

type SessionHandler struct {
	baseHandler
	uc *sessionUC.UseCase
}

func NewSessionHandler(uc *sessionUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Start a planning session with a seeded timeline
// @Tags sessions
// @Router /api/v1/sessions [post]
func (h *SessionHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.SessionRequest
	if !h.decode(ctx, &req, true) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	issued, err := h.uc.CreateSession(stdCtx, req.Day)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.NewSessionView(issued.Session, issued.Token))
}

// @Summary Extend the current session and re-issue its token
// @Tags sessions
// @Router /api/v1/sessions/refresh [post]
func (h *SessionHandler) Refresh(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	issued, err := h.uc.RefreshSession(stdCtx, sessionID)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewSessionView(issued.Session, issued.Token))
}

// @Summary End the current session
// @Tags sessions
// @Router /api/v1/sessions [delete]
func (h *SessionHandler) Revoke(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RevokeSession(stdCtx, sessionID); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}
