package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/internal/infrastructure/monitor"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	if status.LastCheck.IsZero() {
		status = h.monitor.Refresh()
	}
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"sessions": map[string]interface{}{
			"active":          status.Sessions,
			"activities":      status.Activities,
			"planned_minutes": status.PlannedMinutes,
			"last_check":      status.LastCheck,
		},
	}

	if status.Healthy {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	payload["reason"] = status.Error
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.Failure("DEGRADED", "session store unhealthy").WithData(payload))
}
