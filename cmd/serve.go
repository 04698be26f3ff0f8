package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/KasumiMercury/primind-medication-sync/internal/handler"
	"github.com/KasumiMercury/primind-medication-sync/internal/health"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/middleware"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and the periodic sync",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return withObservability(ctx, func(ctx context.Context) error {
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		return serve(ctx, cancel, a)
	})
}

func serve(ctx context.Context, cancel context.CancelFunc, a *app) error {
	cfg := a.cfg

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP metrics: %w", err)
	}

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		Module:      logging.Module("medication-sync"),
		TracerName:  "github.com/KasumiMercury/primind-medication-sync/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(a.redis, Version).
		WithCheck("backend_auth", a.backend.CheckAuth)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	grpcPath, grpcHealth := healthChecker.GRPCHandler()
	r.POST(grpcPath+"*method", gin.WrapH(grpcHealth))

	v1 := r.Group("/api/v1")
	handler.RegisterRoutes(v1, handler.Handlers{
		Sync:     handler.NewSyncHandler(a.coordinator, a.coordinator),
		Schedule: handler.NewScheduleHandler(a.schedules, a.coordinator.Location()),
		Action:   handler.NewActionHandler(a.actions, a.coordinator),
		Alert:    handler.NewAlertHandler(a.notifier),
		Push:     handler.NewPushHandler(a.registrar),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(r, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	syncErr := make(chan error, 1)
	go func() {
		syncErr <- a.coordinator.Run(ctx, reconcile.RunConfig{
			Interval:    cfg.Sync.Interval,
			DayRollover: cfg.Sync.DayRollover,
			OnStartup:   cfg.Sync.OnStartup,
		})
	}()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("device_id", cfg.DeviceID),
			slog.Duration("sync_interval", cfg.Sync.Interval),
			slog.Duration("min_lead_time", cfg.Sync.MinLeadTime),
			slog.String("timezone", cfg.Sync.Location.String()),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		if err := <-syncErr; err != nil {
			slog.Warn("sync scheduler stopped with error", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return nil

	case err := <-syncErr:
		cancel()
		_ = srv.Close()
		if err != nil {
			return fmt.Errorf("sync scheduler exited: %w", err)
		}
		return nil

	case err := <-serverErr:
		cancel()
		if syncStopErr := <-syncErr; syncStopErr != nil {
			slog.Warn("sync scheduler stopped with error", slog.String("error", syncStopErr.Error()))
		}
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server exited with error: %w", err)
	}
}
