package router

import (
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	apiHandler "github.com/fastygo/dayplanner/api/handler"
)

type Handlers struct {
	Session   *apiHandler.SessionHandler
	Timeline  *apiHandler.TimelineHandler
	Day       *apiHandler.DayHandler
	Assistant *apiHandler.AssistantHandler
	Health    *apiHandler.HealthHandler
}

// Options toggles optional endpoints.
type Options struct {
	MetricsPath string
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler, opts Options) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)
	if opts.MetricsPath != "" {
		r.GET(opts.MetricsPath, fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))
	}

	// Session routes
	r.POST("/api/v1/sessions", handlers.Session.Create)
	r.POST("/api/v1/sessions/refresh", authMiddleware(handlers.Session.Refresh))
	r.DELETE("/api/v1/sessions", authMiddleware(handlers.Session.Revoke))

	// Protected routes
	r.GET("/api/v1/timeline", authMiddleware(handlers.Timeline.GetTimeline))
	r.POST("/api/v1/timeline/activities", authMiddleware(handlers.Timeline.AddActivity))
	r.GET("/api/v1/timeline/summary", authMiddleware(handlers.Timeline.GetSummary))
	r.POST("/api/v1/timeline/reset", authMiddleware(handlers.Timeline.Reset))

	r.GET("/api/v1/timeline/day", authMiddleware(handlers.Day.GetDay))
	r.PUT("/api/v1/timeline/day", authMiddleware(handlers.Day.SelectDay))

	r.POST("/api/v1/assistants/{kind}", authMiddleware(handlers.Assistant.Ask))

	return r
}
