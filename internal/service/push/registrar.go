package push

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KasumiMercury/primind-medication-sync/internal/infra/backend"
	"github.com/KasumiMercury/primind-medication-sync/internal/observability/metrics"
)

type Mode string

const (
	ModePush      Mode = "push"
	ModeLocalOnly Mode = "local_only"
)

// Registrar registers the device for backend push. Registration problems are
// never returned to the caller; the device falls back to local alerts only.
type Registrar struct {
	repo        backend.DeviceRepository
	syncMetrics *metrics.SyncMetrics
}

func NewRegistrar(repo backend.DeviceRepository, syncMetrics *metrics.SyncMetrics) *Registrar {
	return &Registrar{
		repo:        repo,
		syncMetrics: syncMetrics,
	}
}

func (r *Registrar) Register(ctx context.Context, token, platform string, deviceInfo map[string]string) Mode {
	mode := r.register(ctx, strings.TrimSpace(token), platform, deviceInfo)
	if r.syncMetrics != nil {
		r.syncMetrics.RecordPushRegistration(ctx, string(mode))
	}
	return mode
}

func (r *Registrar) register(ctx context.Context, token, platform string, deviceInfo map[string]string) Mode {
	if token == "" {
		slog.InfoContext(ctx, "no push token available, using local alerts only")
		return ModeLocalOnly
	}

	err := r.repo.RegisterDevice(ctx, backend.DeviceRegistration{
		PushToken:  token,
		Platform:   platform,
		DeviceInfo: deviceInfo,
	})
	if err != nil {
		slog.WarnContext(ctx, "push registration failed, falling back to local alerts only",
			slog.String("platform", platform),
			slog.String("error", err.Error()),
		)
		return ModeLocalOnly
	}

	slog.InfoContext(ctx, "device registered for push",
		slog.String("platform", platform),
	)
	return ModePush
}
