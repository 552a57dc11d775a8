package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/dayplanner/api/handler"
	"github.com/fastygo/dayplanner/internal/config"
	"github.com/fastygo/dayplanner/internal/infrastructure/monitor"
	"github.com/fastygo/dayplanner/internal/middleware"
	"github.com/fastygo/dayplanner/internal/router"
	"github.com/fastygo/dayplanner/internal/services"
	"github.com/fastygo/dayplanner/internal/services/lifecycle"
	"github.com/fastygo/dayplanner/pkg/httpcontext"
	"github.com/fastygo/dayplanner/pkg/logger"
	"github.com/fastygo/dayplanner/repository/memory"
	"github.com/fastygo/dayplanner/usecase"
	"github.com/fastygo/dayplanner/usecase/assistant"
	sessionUC "github.com/fastygo/dayplanner/usecase/session"
	timelineUC "github.com/fastygo/dayplanner/usecase/timeline"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("config error: JWT_SECRET is required")
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		return fmt.Errorf("logger error: %w", err)
	}
	defer zapLogger.Sync()

	if parent == nil {
		parent = context.Background()
	}
	appCtx, cancel := context.WithCancel(parent)
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.MaxSessions)

	mon := monitor.New(sessionRepo, cfg.Monitor.Interval, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	sweeper, err := services.NewSessionSweeper(sessionRepo, zapLogger, services.SweeperConfig{
		Interval: cfg.Session.SweepInterval,
	})
	if err != nil {
		return err
	}
	sweeper.Start()
	manager.Register("session_sweeper", func(ctx context.Context) error {
		sweeper.Stop(ctx)
		return nil
	})

	tokens := sessionUC.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.Issuer)
	sessionUseCase := sessionUC.New(sessionRepo, tokens, cfg.Session.TTL, zapLogger)
	timelineUseCase := timelineUC.New(sessionUseCase, zapLogger)

	dispatcher := usecase.NewDispatcher()
	assistant.New(cfg.Assistant.Delay, zapLogger).Register(dispatcher)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Session:   apiHandler.NewSessionHandler(sessionUseCase, ctxAdapter, zapLogger),
		Timeline:  apiHandler.NewTimelineHandler(timelineUseCase, ctxAdapter, zapLogger),
		Day:       apiHandler.NewDayHandler(timelineUseCase, ctxAdapter, zapLogger),
		Assistant: apiHandler.NewAssistantHandler(dispatcher, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	opts := router.Options{}
	if cfg.HTTP.EnableMetrics {
		opts.MetricsPath = cfg.HTTP.MetricsPath
	}
	r := router.New(handlers, middleware.SessionAuth(tokens, zapLogger), opts)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	serveErr := make(chan error, 1)
	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			serveErr <- err
		}
		close(serveErr)
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	var runErr error
	select {
	case <-appCtx.Done():
	case err, ok := <-serveErr:
		if ok && err != nil {
			zapLogger.Error("server crashed", zap.Error(err))
			runErr = err
		}
	}

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
	return runErr
}
