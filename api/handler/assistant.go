package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dayplanner/api/transport"
	"github.com/fastygo/dayplanner/domain"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
	"github.com/fastygo/dayplanner/usecase"
	"github.com/fastygo/dayplanner/usecase/assistant"
)

type AssistantHandler struct {
	baseHandler
	dispatcher *usecase.Dispatcher
}

func NewAssistantHandler(dispatcher *usecase.Dispatcher, adapter *httpcontext.Adapter, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{
		baseHandler: newBaseHandler(adapter, logger),
		dispatcher:  dispatcher,
	}
}

// @Summary Ask one of the helper assistants
// @Tags assistants
// @Router /api/v1/assistants/{kind} [post]
func (h *AssistantHandler) Ask(ctx *fasthttp.RequestCtx) {
	if h.sessionID(ctx) == "" {
		return
	}

	kind, _ := ctx.UserValue("kind").(string)
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !assistant.IsKind(kind) {
		h.respondError(ctx, stdCtx, domain.ErrUnknownAssistant)
		return
	}

	var req transport.AssistantRequest
	if !h.decode(ctx, &req, true) {
		return
	}

	result, err := h.dispatcher.ExecuteQuery(stdCtx, kind, assistant.Request{Text: req.Text})
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, result)
}
