package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
	timelineUC "github.com/fastygo/dayplanner/usecase/timeline"
)

// DayHandler reads and changes the selected day label of a session.
type DayHandler struct {
	baseHandler
	uc *timelineUC.UseCase
}

func NewDayHandler(uc *timelineUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DayHandler {
	return &DayHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get selected day
// @Tags day
// @Success 200 {object} transport.Envelope
// @Router /api/v1/timeline/day [get]
func (h *DayHandler) GetDay(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	day, err := h.uc.Day(stdCtx, sessionID)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.DayView{Day: day})
}

// @Summary Select day
// @Tags day
// @Accept json
// @Produce json
// @Router /api/v1/timeline/day [put]
func (h *DayHandler) SelectDay(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}

	var req transport.DayRequest
	if !h.decode(ctx, &req, false) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	day, err := h.uc.SelectDay(stdCtx, sessionID, req.Day)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.DayView{Day: day})
}
