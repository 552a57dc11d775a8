package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
	timelineUC "github.com/fastygo/dayplanner/usecase/timeline"
)

type TimelineHandler struct {
	baseHandler
	uc *timelineUC.UseCase
}

func NewTimelineHandler(uc *timelineUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Ordered activities of the session with aggregates
// @Tags timeline
// @Router /api/v1/timeline [get]
func (h *TimelineHandler) GetTimeline(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	snap, err := h.uc.Snapshot(stdCtx, sessionID)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTimelineView(snap))
}

// @Summary Add an activity
// @Tags timeline
// @Accept json
// @Produce json
// @Router /api/v1/timeline/activities [post]
func (h *TimelineHandler) AddActivity(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	var req transport.ActivityRequest
	if !h.decode(ctx, &req, false) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	candidate, err := req.Candidate()
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	activity, summary, err := h.uc.AddActivity(stdCtx, sessionID, candidate)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, transport.AddActivityResponse{
		Activity: transport.NewActivityView(activity),
		Summary:  summary,
	})
}

// @Summary Aggregates only
// @Tags timeline
// @Router /api/v1/timeline/summary [get]
func (h *TimelineHandler) GetSummary(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	summary, err := h.uc.Summary(stdCtx, sessionID)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, summary)
}

// @Summary Replace the timeline with the seed activities
// @Tags timeline
// @Router /api/v1/timeline/reset [post]
func (h *TimelineHandler) Reset(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	snap, err := h.uc.Reset(stdCtx, sessionID)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.NewTimelineView(snap))
}
