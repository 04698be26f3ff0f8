//go:build !gcloud

package syncrecorder

import (
	"context"
	"log/slog"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-medication-sync/internal/domain"
)

const syncMeasurement = "sync_result"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	deviceID string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.SyncResultRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "sync result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, sync result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "sync result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		deviceID: cfg.DeviceID,
	}, nil
}

func (r *influxDBRecorder) RecordSync(ctx context.Context, record domain.SyncResultRecord) error {
	if err := r.writeAPI.WritePoint(ctx, syncPoint(r.deviceID, record)); err != nil {
		slog.WarnContext(ctx, "failed to write sync result to InfluxDB",
			slog.String("error", err.Error()),
			slog.String("reason", record.Reason),
			slog.String("outcome", record.Outcome),
		)
	}
	return nil
}

func syncPoint(deviceID string, record domain.SyncResultRecord) *write.Point {
	syncedAt := record.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}

	tags := map[string]string{
		"reason":  record.Reason,
		"outcome": record.Outcome,
	}
	if deviceID != "" {
		tags["device_id"] = deviceID
	}

	return influxdb2.NewPoint(
		syncMeasurement,
		tags,
		map[string]any{
			"pending_count":     record.PendingCount,
			"cancelled_count":   record.CancelledCount,
			"scheduled_count":   record.ScheduledCount,
			"skipped_count":     record.SkippedCount,
			"failed_count":      record.FailedCount,
			"permission_denied": record.PermissionDenied,
			"duration_ms":       record.Duration.Milliseconds(),
		},
		syncedAt,
	)
}

func (r *influxDBRecorder) Flush(ctx context.Context) error {
	return r.writeAPI.Flush(ctx)
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}
