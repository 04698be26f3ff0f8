package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-medication-sync/internal/config"
	"github.com/KasumiMercury/primind-medication-sync/internal/device"
	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-sync/internal/infra/syncrecorder"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/action"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/alerting"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/push"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/reconcile"
	"github.com/KasumiMercury/primind-medication-sync/internal/service/schedule"
)

// app holds the wired services shared by the serve and sync commands.
type app struct {
	cfg         *config.Config
	redis       *redis.Client
	backend     *backend.Client
	notifier    *device.Notifier
	coordinator *reconcile.Coordinator
	actions     *action.Logger
	schedules   *schedule.Service
	registrar   *push.Registrar
	recorder    domain.SyncResultRecorder

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := config.ValidateForRun(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation error: %w", err)
	}

	a := &app{cfg: cfg}
	if err := a.wire(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *app) wire(ctx context.Context) error {
	cfg := a.cfg

	syncMetrics, err := metrics.NewSyncMetrics()
	if err != nil {
		return fmt.Errorf("failed to initialize sync metrics: %w", err)
	}

	// InfluxDB for local, BigQuery for gcloud
	recorder, err := syncrecorder.NewRecorder(ctx, syncrecorder.LoadConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize sync result recorder: %w", err)
	}
	a.recorder = recorder
	a.closers = append(a.closers, recorder.Close)

	taskQueue, cleanup, err := initTaskQueue(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize task queue: %w", err)
	}
	if cleanup != nil {
		a.closers = append(a.closers, cleanup)
	}

	redisClient, err := connectRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	a.redis = redisClient
	a.closers = append(a.closers, redisClient.Close)

	namespace := cfg.Redis.Namespace(cfg.DeviceID)
	alertRepo := repository.NewAlertRepository(redisClient, namespace)
	scheduleCache := repository.NewScheduleCache(redisClient, namespace, cfg.Alert.ScheduleCacheTTL)

	a.backend = backend.NewClient(cfg.BackendURL, cfg.AuthToken, cfg.Sync.Location)

	notifier, err := device.Init(ctx, device.Config{
		DeviceID: cfg.DeviceID,
		Channel: domain.AlertChannel{
			ID:         cfg.Alert.ChannelID,
			Name:       cfg.Alert.ChannelName,
			Importance: cfg.Alert.ChannelImportance,
		},
		AutoGrant: cfg.Alert.AutoGrant,
	}, alertRepo, taskQueue)
	if err != nil {
		return fmt.Errorf("failed to initialize device notifier: %w", err)
	}
	a.notifier = notifier

	if _, err := notifier.RequestPermission(ctx); err != nil {
		slog.WarnContext(ctx, "failed to request notification permission", slog.String("error", err.Error()))
	}

	scheduler := alerting.NewScheduler(notifier, scheduleCache, cfg.Sync.MinLeadTime, syncMetrics)
	a.coordinator = reconcile.NewCoordinator(a.backend, scheduler, recorder, syncMetrics, cfg.Sync.Location)

	a.actions = action.NewLogger(a.backend, syncMetrics)
	responses := notifier.Subscribe(a.actions.RecordResponse)
	a.closers = append(a.closers, func() error {
		responses.Close()
		return nil
	})

	a.schedules = schedule.NewService(a.backend, scheduleCache, a.coordinator)
	a.registrar = push.NewRegistrar(a.backend, syncMetrics)

	return nil
}

func connectRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(opts)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		_ = redisClient.Close()
		slog.ErrorContext(ctx, "failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		_ = redisClient.Close()
		slog.ErrorContext(ctx, "failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		slog.ErrorContext(ctx, "failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	slog.InfoContext(ctx, "redis connected", slog.String("addr", cfg.Addr))

	return redisClient, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil

	if err := errors.Join(errs...); err != nil {
		slog.Warn("failed to release resources", slog.String("error", err.Error()))
	}
}
